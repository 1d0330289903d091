package workrecord

import "context"

// WorkRecordRepository defines data access for work records.
type WorkRecordRepository interface {
	Create(ctx context.Context, record WorkRecord) (WorkRecord, error)
	GetByID(ctx context.Context, id string) (WorkRecord, error)
	Update(ctx context.Context, record WorkRecord) error

	// Delete removes the record without rolling back the cumulative hours
	// it contributed to the employee.
	Delete(ctx context.Context, id string) error

	// GetOpenByEmployee returns the employee's open shift, newest first.
	// ErrNoOpenShift when every shift is closed.
	GetOpenByEmployee(ctx context.Context, employeeID string) (WorkRecord, error)

	// ListByRange returns records whose clock-in falls inside rng,
	// inclusive on both ends, newest first.
	ListByRange(ctx context.Context, rng DateRange) ([]WorkRecord, error)

	// ListByEmployeeAndRange is the compound-filtered variant of
	// ListByRange. Callers must be prepared to fall back to ListByRange
	// plus local filtering when the compound query fails.
	ListByEmployeeAndRange(ctx context.Context, employeeID string, rng DateRange) ([]WorkRecord, error)
}
