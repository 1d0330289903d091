package workrecord

import "context"

// WorkRecordService defines business logic for shifts and schedules
type WorkRecordService interface {
	// ClockIn opens a shift for the session's employee
	ClockIn(ctx context.Context, req ClockInRequest) (WorkRecordResponse, error)

	// ClockOut closes the session employee's open shift
	ClockOut(ctx context.Context, req ClockOutRequest) (WorkRecordResponse, error)

	// GetMyRecords lists the session employee's records inside the range
	GetMyRecords(ctx context.Context, rng DateRange) (ListWorkRecordResponse, error)

	// List lists records with the manager's filters
	List(ctx context.Context, filter ListFilter) (ListWorkRecordResponse, error)

	// CreateRecords processes the manual single/multi-row form
	CreateRecords(ctx context.Context, req CreateWorkRecordsRequest) ([]WorkRecordResponse, error)

	// UpdateRecord edits a record without re-crediting cumulative hours
	UpdateRecord(ctx context.Context, req UpdateWorkRecordRequest) (WorkRecordResponse, error)

	// DeleteRecord removes a record without rolling back cumulative hours
	DeleteRecord(ctx context.Context, id string) error

	// ImportRows reconciles bulk-imported rows; unresolved names are
	// reported per row while the rest of the batch continues
	ImportRows(ctx context.Context, rows []ImportRow) (ImportResponse, error)
}
