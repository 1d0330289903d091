package employee

import (
	"context"
	"errors"
	"fmt"

	"github.com/albaworks/timeclock-backend-go/internal/domain/employee"
	"github.com/albaworks/timeclock-backend-go/internal/pkg/format"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{employeeRepo: employeeRepo}
}

func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	// Bulk import resolves rows by exact name, so names must stay unique.
	if err := s.checkNameAvailable(ctx, req.Name, ""); err != nil {
		return employee.EmployeeResponse{}, err
	}

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		Name:         req.Name,
		Wage:         req.ParsedWage(),
		PlannedHours: req.ParsedPlannedHours(),
	})
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("create employee: %w", err)
	}

	return mapEmployeeToResponse(created), nil
}

func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("get employee: %w", err)
	}
	return mapEmployeeToResponse(emp), nil
}

func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("get employee: %w", err)
	}

	if emp.Name != req.Name {
		if err := s.checkNameAvailable(ctx, req.Name, emp.ID); err != nil {
			return employee.EmployeeResponse{}, err
		}
	}

	emp.Name = req.Name
	emp.Wage = req.ParsedWage()
	emp.PlannedHours = req.ParsedPlannedHours()

	if err := s.employeeRepo.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("update employee: %w", err)
	}

	return mapEmployeeToResponse(emp), nil
}

func (s *EmployeeServiceImpl) checkNameAvailable(ctx context.Context, name, selfID string) error {
	existing, err := s.employeeRepo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return nil
		}
		return fmt.Errorf("check employee name: %w", err)
	}
	if existing.ID != selfID {
		return employee.ErrNameExists
	}
	return nil
}

func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	if _, err := s.employeeRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("get employee: %w", err)
	}

	// Work records keep the dangling employee id so historical payroll
	// pages stay auditable.
	if err := s.employeeRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	return nil
}

func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context) (employee.ListEmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return employee.ListEmployeeResponse{}, fmt.Errorf("list employees: %w", err)
	}

	response := employee.ListEmployeeResponse{
		Data:       make([]employee.EmployeeResponse, 0, len(employees)),
		TotalCount: int64(len(employees)),
	}
	for _, emp := range employees {
		response.Data = append(response.Data, mapEmployeeToResponse(emp))
	}
	return response, nil
}

func mapEmployeeToResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:            emp.ID,
		Name:          emp.Name,
		Wage:          emp.Wage.StringFixed(0),
		WageFormatted: format.Currency(emp.Wage.Round(0).IntPart()),
		PlannedHours:  emp.PlannedHours,
		HoursWorked:   emp.HoursWorked,
		CreatedAt:     emp.CreatedAt.Format("2006-01-02"),
	}
}
