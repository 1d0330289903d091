package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)

	// GetByName resolves an exact name match, used by bulk import.
	GetByName(ctx context.Context, name string) (Employee, error)

	// List returns all employees ordered by creation time, newest first.
	List(ctx context.Context) ([]Employee, error)

	Update(ctx context.Context, emp Employee) error

	// Delete removes the employee only. Work records referencing the id
	// survive so historical payroll stays auditable.
	Delete(ctx context.Context, id string) error

	// AddHoursWorked atomically increments the denormalized running total.
	AddHoursWorked(ctx context.Context, id string, hours float64) error
}
