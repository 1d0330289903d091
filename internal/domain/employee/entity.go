package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID   string
	Name string

	// Wage is the hourly wage in won.
	Wage decimal.Decimal

	// PlannedHours is the contracted hours the manager entered by hand.
	PlannedHours float64

	// HoursWorked is the denormalized running total credited by recorded
	// shifts. Payroll recomputes recorded hours from work records; this
	// field only feeds the "entered hours" column.
	HoursWorked float64

	CreatedAt time.Time
	UpdatedAt time.Time
}
