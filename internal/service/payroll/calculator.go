package payroll

import (
	"github.com/albaworks/timeclock-backend-go/internal/domain/workrecord"
	"github.com/albaworks/timeclock-backend-go/internal/pkg/timeutil"
	"github.com/shopspring/decimal"
)

// FilterAll disables the per-employee filter.
const FilterAll = "all"

// Aggregate sums worked hours per employee over the records whose clock-in
// falls inside rng, inclusive on both ends. Open shifts contribute zero.
// Each employee's total is rounded to one decimal place. Pure function.
func Aggregate(records []workrecord.WorkRecord, rng workrecord.DateRange, employeeFilter string) map[string]float64 {
	totals := make(map[string]float64)

	for _, record := range records {
		if !rng.Contains(record.ClockIn) {
			continue
		}
		if employeeFilter != FilterAll && record.EmployeeID != employeeFilter {
			continue
		}
		totals[record.EmployeeID] += timeutil.Elapsed(record.ClockIn, record.ClockOut)
	}

	for id, hours := range totals {
		totals[id] = timeutil.RoundHours(hours)
	}

	return totals
}

// EstimatedSalary is the recorded hours times the hourly wage, rounded to the
// nearest won.
func EstimatedSalary(recordedHours float64, wage decimal.Decimal) int64 {
	return decimal.NewFromFloat(recordedHours).Mul(wage).Round(0).IntPart()
}

// Paginate clamps page into [1, ceil(total/pageSize)] and returns the
// half-open row interval for that page. An empty list is a single empty page.
func Paginate(total, pageSize, page int) (clampedPage, totalPages, start, end int) {
	totalPages = (total + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	clampedPage = page
	if clampedPage < 1 {
		clampedPage = 1
	}
	if clampedPage > totalPages {
		clampedPage = totalPages
	}

	start = (clampedPage - 1) * pageSize
	end = start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}
	return clampedPage, totalPages, start, end
}
