package payroll

import (
	"context"
	"fmt"

	"github.com/albaworks/timeclock-backend-go/internal/domain/employee"
	"github.com/albaworks/timeclock-backend-go/internal/domain/payroll"
	"github.com/albaworks/timeclock-backend-go/internal/domain/workrecord"
	"github.com/albaworks/timeclock-backend-go/internal/pkg/excel"
	"github.com/albaworks/timeclock-backend-go/internal/pkg/format"
	"github.com/albaworks/timeclock-backend-go/internal/pkg/metrics"
)

type PayrollServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	workRecordRepo workrecord.WorkRecordRepository
	metrics        *metrics.Collector
}

func NewPayrollService(
	employeeRepo employee.EmployeeRepository,
	workRecordRepo workrecord.WorkRecordRepository,
	collector *metrics.Collector,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		employeeRepo:   employeeRepo,
		workRecordRepo: workRecordRepo,
		metrics:        collector,
	}
}

func (s *PayrollServiceImpl) GetPayroll(ctx context.Context, req payroll.PayrollRequest) (payroll.PayrollPageResponse, error) {
	rows, err := s.buildRows(ctx, req)
	if err != nil {
		return payroll.PayrollPageResponse{}, err
	}

	page, totalPages, start, end := Paginate(len(rows), payroll.PageSize, req.Page)

	return payroll.PayrollPageResponse{
		Data:       rows[start:end],
		Page:       page,
		TotalPages: totalPages,
		TotalItems: len(rows),
	}, nil
}

func (s *PayrollServiceImpl) ExportReport(ctx context.Context, req payroll.PayrollRequest) ([]byte, error) {
	rows, err := s.buildRows(ctx, req)
	if err != nil {
		return nil, err
	}

	reportRows := make([]excel.PayrollReportRow, 0, len(rows))
	for _, row := range rows {
		// The salary cell carries the figure and its Korean word form,
		// e.g. "75,000원 (7만5천)".
		salary := row.SalaryFormatted
		if row.SalaryInWords != "" {
			salary = fmt.Sprintf("%s (%s)", row.SalaryFormatted, row.SalaryInWords)
		}
		reportRows = append(reportRows, excel.PayrollReportRow{
			Name:          row.Name,
			Wage:          row.WageFormatted,
			PlannedHours:  format.Hours(row.PlannedHours),
			RecordedHours: format.Hours(row.RecordedHours),
			Salary:        salary,
		})
	}

	workbook, err := excel.PayrollReport(reportRows)
	if err != nil {
		return nil, fmt.Errorf("build payroll report: %w", err)
	}

	s.metrics.RecordPayrollReport()
	return workbook, nil
}

// buildRows assembles the full, unpaginated payroll table for the request's
// range and employee filter.
func (s *PayrollServiceImpl) buildRows(ctx context.Context, req payroll.PayrollRequest) ([]payroll.PayrollRow, error) {
	rng, err := req.Range()
	if err != nil {
		return nil, err
	}

	filter := req.EmployeeID
	if filter == "" {
		filter = FilterAll
	}

	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}

	records, err := s.workRecordRepo.ListByRange(ctx, rng)
	if err != nil {
		return nil, fmt.Errorf("list work records: %w", err)
	}

	totals := Aggregate(records, rng, filter)

	rows := make([]payroll.PayrollRow, 0, len(employees))
	for _, emp := range employees {
		if filter != FilterAll && emp.ID != filter {
			continue
		}

		recorded := totals[emp.ID]
		salary := EstimatedSalary(recorded, emp.Wage)

		rows = append(rows, payroll.PayrollRow{
			EmployeeID:      emp.ID,
			Name:            emp.Name,
			Wage:            emp.Wage.StringFixed(0),
			WageFormatted:   format.Currency(emp.Wage.Round(0).IntPart()),
			PlannedHours:    emp.PlannedHours,
			RecordedHours:   recorded,
			EstimatedSalary: salary,
			SalaryFormatted: format.Currency(salary),
			SalaryInWords:   format.NumberToKorean(salary),
		})
	}

	return rows, nil
}
