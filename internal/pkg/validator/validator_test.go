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

func TestIsValidDate(t *testing.T) {
	valid := []string{"2025-06-16", "2024-02-29", "2000-01-01"}
	invalid := []string{"2025-13-01", "2025-02-30", "16/06/2025", "2025-6-1", ""}
	for _, date := range valid {
		if _, ok := IsValidDate(date); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", date)
		}
	}
	for _, date := range invalid {
		if _, ok := IsValidDate(date); ok {
			t.Errorf("IsValidDate(%q) = true, want false", date)
		}
	}
}

func TestIsValidClock(t *testing.T) {
	valid := []string{"00:00", "09:15", "23:59"}
	invalid := []string{"24:00", "9:15", "09:60", "0915", "9am", ""}
	for _, clock := range valid {
		if !IsValidClock(clock) {
			t.Errorf("IsValidClock(%q) = false, want true", clock)
		}
	}
	for _, clock := range invalid {
		if IsValidClock(clock) {
			t.Errorf("IsValidClock(%q) = true, want false", clock)
		}
	}
}

func TestIsValidMonth(t *testing.T) {
	cases := []struct {
		input int
		want  bool
	}{
		{1, true},
		{12, true},
		{0, false},
		{13, false},
		{-3, false},
	}
	for _, c := range cases {
		got := IsValidMonth(c.input)
		if got != c.want {
			t.Errorf("IsValidMonth(%d) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidYear(t *testing.T) {
	cases := []struct {
		input int
		want  bool
	}{
		{2000, true},
		{2100, true},
		{1999, false},
		{2101, false},
	}
	for _, c := range cases {
		got := IsValidYear(c.input)
		if got != c.want {
			t.Errorf("IsValidYear(%d) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidWeekday(t *testing.T) {
	valid := []string{"monday", "Sunday", "FRIDAY"}
	invalid := []string{"mon", "funday", ""}
	for _, day := range valid {
		if !IsValidWeekday(day) {
			t.Errorf("IsValidWeekday(%q) = false, want true", day)
		}
	}
	for _, day := range invalid {
		if IsValidWeekday(day) {
			t.Errorf("IsValidWeekday(%q) = true, want false", day)
		}
	}
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "year", Message: "year is out of range"},
		{Field: "month", Message: "month must be between 1 and 12"},
	}

	m := errs.ToMap()
	if len(m) != 2 {
		t.Fatalf("ToMap() returned %d entries, want 2", len(m))
	}
	if m["year"] != "year is out of range" {
		t.Errorf("ToMap()[\"year\"] = %q", m["year"])
	}
}
