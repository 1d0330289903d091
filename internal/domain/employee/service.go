package employee

import "context"

// EmployeeService defines business logic for employee management (manager only)
type EmployeeService interface {
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)
	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// DeleteEmployee removes the employee without cascading to work records
	DeleteEmployee(ctx context.Context, id string) error

	ListEmployees(ctx context.Context) (ListEmployeeResponse, error)
}
