package payroll

import (
	"github.com/albaworks/timeclock-backend-go/internal/domain/workrecord"
	"github.com/albaworks/timeclock-backend-go/internal/pkg/validator"
)

// PageSize is the fixed number of payroll rows per page.
const PageSize = 10

// PayrollRequest scopes the payroll view: the manager's selected date range,
// an optional single-employee filter and the requested page.
type PayrollRequest struct {
	EmployeeID string `json:"employee_id"` // "all" or an employee id
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Page       int    `json:"page"`
}

func (r *PayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	start, okStart := validator.IsValidDate(r.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date must be YYYY-MM-DD"})
	}
	end, okEnd := validator.IsValidDate(r.EndDate)
	if !okEnd {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must be YYYY-MM-DD"})
	}
	if okStart && okEnd && start.After(end) {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date must not be after end_date"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Range returns the inclusive date range, the end date extended to the last
// instant of its day so a shift clocked in that evening still counts.
func (r *PayrollRequest) Range() (workrecord.DateRange, error) {
	if err := r.Validate(); err != nil {
		return workrecord.DateRange{}, err
	}
	start, _ := validator.IsValidDate(r.StartDate)
	end, _ := validator.IsValidDate(r.EndDate)
	return workrecord.DateRange{
		Start: start,
		End:   end.AddDate(0, 0, 1).Add(-1),
	}, nil
}

// PayrollRow is one employee's payroll line for the selected range.
type PayrollRow struct {
	EmployeeID    string  `json:"employee_id"`
	Name          string  `json:"name"`
	Wage          string  `json:"wage"`
	WageFormatted string  `json:"wage_formatted"`
	PlannedHours  float64 `json:"planned_hours"`
	RecordedHours float64 `json:"recorded_hours"`

	// EstimatedSalary is recorded hours times wage, rounded to the won.
	EstimatedSalary int64 `json:"estimated_salary"`

	SalaryFormatted string `json:"salary_formatted"`

	// SalaryInWords is the Korean grouped-by-10000 word form, empty for a
	// zero salary.
	SalaryInWords string `json:"salary_in_words"`
}

type PayrollPageResponse struct {
	Data       []PayrollRow `json:"data"`
	Page       int          `json:"page"`
	TotalPages int          `json:"total_pages"`
	TotalItems int          `json:"total_items"`
}
