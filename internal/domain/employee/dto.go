package employee

import (
	"github.com/albaworks/timeclock-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// CreateEmployeeRequest carries the manual add/edit form. Numeric fields
// arrive as strings because the form lets users type formatted values; every
// field error is collected so the form can mark them all at once.
type CreateEmployeeRequest struct {
	Name         string `json:"name"`
	Wage         string `json:"wage"`
	PlannedHours string `json:"planned_hours,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "이름을 입력해주세요"})
	}

	if validator.IsEmpty(r.Wage) {
		errs = append(errs, validator.ValidationError{Field: "wage", Message: "유효한 시급을 입력해주세요"})
	} else if _, ok := validator.IsPositiveNumber(r.Wage); !ok {
		errs = append(errs, validator.ValidationError{Field: "wage", Message: "유효한 시급을 입력해주세요"})
	}

	if !validator.IsEmpty(r.PlannedHours) {
		if _, ok := validator.IsNonNegativeNumber(r.PlannedHours); !ok {
			errs = append(errs, validator.ValidationError{Field: "planned_hours", Message: "근무 시간은 0 이상이어야 합니다"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Wage and planned hours after validation.
func (r *CreateEmployeeRequest) ParsedWage() decimal.Decimal {
	wage, _ := decimal.NewFromString(r.Wage)
	return wage
}

func (r *CreateEmployeeRequest) ParsedPlannedHours() float64 {
	if validator.IsEmpty(r.PlannedHours) {
		return 0
	}
	hours, _ := validator.IsNonNegativeNumber(r.PlannedHours)
	return hours
}

type UpdateEmployeeRequest struct {
	ID           string `json:"-"`
	Name         string `json:"name"`
	Wage         string `json:"wage"`
	PlannedHours string `json:"planned_hours,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	create := CreateEmployeeRequest{Name: r.Name, Wage: r.Wage, PlannedHours: r.PlannedHours}
	return create.Validate()
}

func (r *UpdateEmployeeRequest) ParsedWage() decimal.Decimal {
	wage, _ := decimal.NewFromString(r.Wage)
	return wage
}

func (r *UpdateEmployeeRequest) ParsedPlannedHours() float64 {
	create := CreateEmployeeRequest{PlannedHours: r.PlannedHours}
	return create.ParsedPlannedHours()
}

type EmployeeResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Wage          string  `json:"wage"`
	WageFormatted string  `json:"wage_formatted"`
	PlannedHours  float64 `json:"planned_hours"`
	HoursWorked   float64 `json:"hours_worked"`
	CreatedAt     string  `json:"created_at"`
}

type ListEmployeeResponse struct {
	Data       []EmployeeResponse `json:"data"`
	TotalCount int64              `json:"total_count"`
}
