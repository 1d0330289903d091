package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidUUID(t *testing.T) {
	valid := []string{
		"123e4567-e89b-12d3-a456-426614174000",
		"0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b",
		"0188D0F2-7B8C-7B4A-8A2B-6B8B8B8B8B8B",
	}
	invalid := []string{
		"0188d0f27b8c7b4a8a2b6b8b8b8b8b8b",     // missing dashes
		"g188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b", // invalid hex
		"",
	}
	for _, id := range valid {
		if !IsValidUUID(id) {
			t.Errorf("IsValidUUID(%q) = false, want true", id)
		}
	}
	for _, id := range invalid {
		if IsValidUUID(id) {
			t.Errorf("IsValidUUID(%q) = true, want false", id)
		}
	}
}

func TestIsValidClockTime(t *testing.T) {
	valid := []string{"00:00", "09:30", "18:00", "23:59"}
	invalid := []string{"24:00", "9:30", "09:60", "09-30", "0930", "", "09:3"}
	for _, clock := range valid {
		if !IsValidClockTime(clock) {
			t.Errorf("IsValidClockTime(%q) = false, want true", clock)
		}
	}
	for _, clock := range invalid {
		if IsValidClockTime(clock) {
			t.Errorf("IsValidClockTime(%q) = true, want false", clock)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2025-07-31"); !ok {
		t.Error("IsValidDate(2025-07-31) = false, want true")
	}
	invalid := []string{"2025-13-01", "2025-02-30", "31-07-2025", "2025/07/31", ""}
	for _, date := range invalid {
		if _, ok := IsValidDate(date); ok {
			t.Errorf("IsValidDate(%q) = true, want false", date)
		}
	}
}

func TestIsPositiveNumber(t *testing.T) {
	if n, ok := IsPositiveNumber("10030"); !ok || n != 10030 {
		t.Errorf("IsPositiveNumber(10030) = %v, %v", n, ok)
	}
	if n, ok := IsPositiveNumber(" 9.5 "); !ok || n != 9.5 {
		t.Errorf("IsPositiveNumber(' 9.5 ') = %v, %v", n, ok)
	}
	for _, s := range []string{"0", "-1", "abc", ""} {
		if _, ok := IsPositiveNumber(s); ok {
			t.Errorf("IsPositiveNumber(%q) = true, want false", s)
		}
	}
}

func TestIsNonNegativeNumber(t *testing.T) {
	if n, ok := IsNonNegativeNumber("0"); !ok || n != 0 {
		t.Errorf("IsNonNegativeNumber(0) = %v, %v", n, ok)
	}
	if _, ok := IsNonNegativeNumber("-0.1"); ok {
		t.Error("IsNonNegativeNumber(-0.1) = true, want false")
	}
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "name", Message: "required"},
		{Field: "wage", Message: "must be positive"},
	}

	m := errs.ToMap()
	if len(m) != 2 {
		t.Fatalf("ToMap returned %d entries, want 2", len(m))
	}
	if m["name"] != "required" || m["wage"] != "must be positive" {
		t.Errorf("ToMap = %v", m)
	}
}
