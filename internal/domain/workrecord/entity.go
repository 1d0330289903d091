package workrecord

import (
	"time"
)

type WorkRecord struct {
	ID         string
	EmployeeID string
	ClockIn    time.Time

	// ClockOut is nil while the shift is still open. Open shifts contribute
	// zero hours to every aggregate until they are closed.
	ClockOut *time.Time

	Latitude  float64
	Longitude float64

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined for list views
	EmployeeName *string
}

// Open reports whether the shift has not been clocked out yet.
func (w WorkRecord) Open() bool {
	return w.ClockOut == nil
}

// DateRange scopes aggregation queries. Both ends are inclusive. Not
// persisted.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the range, inclusive on both ends.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}
