// Package timeutil implements the shift duration arithmetic used by work
// record entry, bulk import and payroll aggregation.
package timeutil

import (
	"math"
	"time"
)

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04"
)

// Combine builds an instant from a calendar date ("YYYY-MM-DD") and a clock
// time ("HH:MM"). ok is false when either part is missing or malformed.
func Combine(date, clock string) (time.Time, bool) {
	if date == "" || clock == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(dateLayout+"T"+clockLayout, date+"T"+clock)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ShiftInterval resolves a shift's clock-in and clock-out instants. A
// clock-out earlier than the clock-in means the shift crossed midnight, so the
// clock-out rolls over to the following day.
func ShiftInterval(date, clockIn, clockOut string) (in, out time.Time, ok bool) {
	in, ok = Combine(date, clockIn)
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	out, ok = Combine(date, clockOut)
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	if out.Before(in) {
		out = out.AddDate(0, 0, 1)
	}
	return in, out, true
}

// Duration returns the worked hours between clock-in and clock-out on the
// given date, overnight rollover applied, rounded to one decimal place.
// ok is false when any component is missing or malformed; callers must treat
// that as "cannot compute", never as zero.
func Duration(date, clockIn, clockOut string) (hours float64, ok bool) {
	in, out, ok := ShiftInterval(date, clockIn, clockOut)
	if !ok {
		return 0, false
	}
	return RoundHours(out.Sub(in).Hours()), true
}

// RoundHours rounds to one decimal place, half up.
func RoundHours(hours float64) float64 {
	return math.Floor(hours*10+0.5) / 10
}

// Elapsed returns the hours between two instants, unrounded. Open shifts
// (nil end) yield zero.
func Elapsed(in time.Time, out *time.Time) float64 {
	if out == nil {
		return 0
	}
	return float64(out.UnixMilli()-in.UnixMilli()) / (1000 * 60 * 60)
}
