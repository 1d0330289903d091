package workrecord

import (
	"fmt"

	"github.com/albaworks/timeclock-backend-go/internal/pkg/validator"
)

type ClockInRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type ClockOutRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// EntryRow is one row of the manual schedule form or the bulk import sheet.
type EntryRow struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	ClockIn    string `json:"clock_in"`
	ClockOut   string `json:"clock_out"`
}

// CreateWorkRecordsRequest carries the single or multi-row manual entry form.
type CreateWorkRecordsRequest struct {
	Rows []EntryRow `json:"rows"`
}

// Validate flags every missing or malformed field of every row before
// anything is written; field keys carry the row index so the form can mark
// each input.
func (r *CreateWorkRecordsRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Rows) == 0 {
		errs = append(errs, validator.ValidationError{Field: "rows", Message: "at least one row is required"})
		return errs
	}

	for i, row := range r.Rows {
		field := func(name string) string { return fmt.Sprintf("rows[%d].%s", i, name) }

		if validator.IsEmpty(row.EmployeeID) {
			errs = append(errs, validator.ValidationError{Field: field("employee_id"), Message: "employee is required"})
		}
		if validator.IsEmpty(row.Date) {
			errs = append(errs, validator.ValidationError{Field: field("date"), Message: "date is required"})
		} else if _, ok := validator.IsValidDate(row.Date); !ok {
			errs = append(errs, validator.ValidationError{Field: field("date"), Message: "date must be YYYY-MM-DD"})
		}
		if validator.IsEmpty(row.ClockIn) {
			errs = append(errs, validator.ValidationError{Field: field("clock_in"), Message: "clock-in time is required"})
		} else if !validator.IsValidClockTime(row.ClockIn) {
			errs = append(errs, validator.ValidationError{Field: field("clock_in"), Message: "clock-in must be HH:MM"})
		}
		if validator.IsEmpty(row.ClockOut) {
			errs = append(errs, validator.ValidationError{Field: field("clock_out"), Message: "clock-out time is required"})
		} else if !validator.IsValidClockTime(row.ClockOut) {
			errs = append(errs, validator.ValidationError{Field: field("clock_out"), Message: "clock-out must be HH:MM"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateWorkRecordRequest struct {
	ID       string `json:"-"`
	Date     string `json:"date"`
	ClockIn  string `json:"clock_in"`
	ClockOut string `json:"clock_out"`
}

func (r *UpdateWorkRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date is required"})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be YYYY-MM-DD"})
	}
	if validator.IsEmpty(r.ClockIn) {
		errs = append(errs, validator.ValidationError{Field: "clock_in", Message: "clock-in time is required"})
	} else if !validator.IsValidClockTime(r.ClockIn) {
		errs = append(errs, validator.ValidationError{Field: "clock_in", Message: "clock-in must be HH:MM"})
	}
	if validator.IsEmpty(r.ClockOut) {
		errs = append(errs, validator.ValidationError{Field: "clock_out", Message: "clock-out time is required"})
	} else if !validator.IsValidClockTime(r.ClockOut) {
		errs = append(errs, validator.ValidationError{Field: "clock_out", Message: "clock-out must be HH:MM"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ListFilter scopes the manager's work record listing. EmployeeID "all"
// disables the employee filter.
type ListFilter struct {
	EmployeeID string
	Range      DateRange
}

// ImportRow is one parsed row of a bulk import upload. The employee is
// referenced by display name and resolved during reconciliation.
type ImportRow struct {
	EmployeeName string `json:"employee_name"`
	Date         string `json:"date"`
	ClockIn      string `json:"clock_in"`
	ClockOut     string `json:"clock_out"`
	Line         int    `json:"line"`
}

// ImportRowResult reports one row's outcome.
type ImportRowResult struct {
	Line         int     `json:"line"`
	EmployeeName string  `json:"employee_name"`
	Status       string  `json:"status"` // created | unresolved_name | invalid
	Reason       string  `json:"reason,omitempty"`
	RecordID     *string `json:"record_id,omitempty"`
	Hours        float64 `json:"hours,omitempty"`
}

const (
	ImportStatusCreated        = "created"
	ImportStatusUnresolvedName = "unresolved_name"
	ImportStatusInvalid        = "invalid"
)

type ImportResponse struct {
	Created int               `json:"created"`
	Skipped int               `json:"skipped"`
	Rows    []ImportRowResult `json:"rows"`
}

type WorkRecordResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name,omitempty"`
	Date         string  `json:"date"`
	ClockIn      string  `json:"clock_in"`
	ClockOut     string  `json:"clock_out,omitempty"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`

	// Duration renders as "-" when the shift is open or unparseable;
	// a dash never means zero hours.
	Duration string `json:"duration"`
}

type ListWorkRecordResponse struct {
	Data []WorkRecordResponse `json:"data"`
}
