package validator

import (
	"regexp"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Date validation
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

var clockRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// IsValidClock checks an "HH:MM" wall-clock string.
func IsValidClock(s string) bool {
	return clockRegex.MatchString(s)
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}

// IsValidMonth checks a 1-based month number.
func IsValidMonth(month int) bool {
	return month >= 1 && month <= 12
}

// IsValidYear bounds year values to something sane for scheduling data.
func IsValidYear(year int) bool {
	return year >= 2000 && year <= 2100
}

var weekdayNames = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

// IsValidWeekday checks a lowercase English weekday name.
func IsValidWeekday(name string) bool {
	return IsInSlice(strings.ToLower(name), weekdayNames)
}
