package timeutil

import (
	"testing"
	"time"
)

func TestCombine(t *testing.T) {
	got, ok := Combine("2025-07-31", "09:30")
	if !ok {
		t.Fatal("Combine returned ok=false for valid input")
	}
	want := time.Date(2025, 7, 31, 9, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("Combine = %v, want %v", got, want)
	}

	invalid := []struct{ date, clock string }{
		{"", "09:00"},
		{"2025-07-31", ""},
		{"2025-13-01", "09:00"},
		{"2025-07-31", "25:00"},
		{"31-07-2025", "09:00"},
	}
	for _, c := range invalid {
		if _, ok := Combine(c.date, c.clock); ok {
			t.Errorf("Combine(%q, %q) ok = true, want false", c.date, c.clock)
		}
	}
}

func TestDuration(t *testing.T) {
	cases := []struct {
		name     string
		date     string
		clockIn  string
		clockOut string
		want     float64
		ok       bool
	}{
		{"same day", "2025-07-31", "09:00", "18:00", 9.0, true},
		{"half hour", "2025-07-31", "09:00", "17:30", 8.5, true},
		{"overnight", "2025-07-31", "23:00", "01:00", 2.0, true},
		{"overnight long", "2025-07-31", "22:00", "06:00", 8.0, true},
		{"zero length", "2025-07-31", "09:00", "09:00", 0.0, true},
		{"one minute", "2025-07-31", "09:00", "09:01", 0.0, true},
		{"rounds up", "2025-07-31", "09:00", "09:09", 0.2, true},
		{"missing date", "", "09:00", "18:00", 0, false},
		{"missing clock out", "2025-07-31", "09:00", "", 0, false},
		{"bad clock in", "2025-07-31", "9am", "18:00", 0, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := Duration(c.date, c.clockIn, c.clockOut)
			if ok != c.ok {
				t.Fatalf("Duration(%q, %q, %q) ok = %v, want %v", c.date, c.clockIn, c.clockOut, ok, c.ok)
			}
			if ok && got != c.want {
				t.Errorf("Duration(%q, %q, %q) = %v, want %v", c.date, c.clockIn, c.clockOut, got, c.want)
			}
		})
	}
}

func TestShiftIntervalOvernight(t *testing.T) {
	in, out, ok := ShiftInterval("2025-07-31", "23:00", "01:00")
	if !ok {
		t.Fatal("ShiftInterval returned ok=false")
	}
	if !out.After(in) {
		t.Errorf("clock-out %v is not after clock-in %v", out, in)
	}
	if out.Day() != 1 {
		t.Errorf("clock-out day = %d, want rollover to the 1st", out.Day())
	}
}

func TestRoundHours(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{1.04, 1.0},
		{1.05, 1.1},
		{1.949, 1.9},
		{1.95, 2.0},
		{8.25, 8.3},
	}
	for _, c := range cases {
		if got := RoundHours(c.in); got != c.want {
			t.Errorf("RoundHours(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestElapsed(t *testing.T) {
	in := time.Date(2025, 7, 31, 9, 0, 0, 0, time.UTC)
	out := in.Add(7*time.Hour + 30*time.Minute)

	if got := Elapsed(in, &out); got != 7.5 {
		t.Errorf("Elapsed = %v, want 7.5", got)
	}
	if got := Elapsed(in, nil); got != 0 {
		t.Errorf("Elapsed with nil end = %v, want 0", got)
	}
}
