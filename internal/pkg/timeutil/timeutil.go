package timeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TruncateToDay strips the time-of-day component, keeping the location.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// MonthRange returns the closed interval covering a whole month:
// [first-of-month 00:00:00, last-of-month 23:59:59.999]. month is 1-based.
func MonthRange(year, month int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 1, 0).Add(-time.Millisecond)
	return start, end
}

// EndOfDay returns t's date at 23:59:59.999, for inclusive whole-day ranges.
func EndOfDay(t time.Time) time.Time {
	return TruncateToDay(t).AddDate(0, 0, 1).Add(-time.Millisecond)
}

// ParseClock parses an "HH:MM" wall-clock string into hour and minute.
func ParseClock(s string) (int, int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid time %q: expected HH:MM", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("invalid hour in %q", s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid minute in %q", s)
	}
	return hour, minute, nil
}

// DurationInMinutes returns the minutes between two "HH:MM" wall-clock
// strings. An end earlier than the start is taken to cross midnight and
// gets a full day added; shifts spanning more than one midnight are not
// supported.
func DurationInMinutes(start, end string) (int, error) {
	sh, sm, err := ParseClock(start)
	if err != nil {
		return 0, err
	}
	eh, em, err := ParseClock(end)
	if err != nil {
		return 0, err
	}

	startMins := sh*60 + sm
	endMins := eh*60 + em
	if endMins < startMins {
		endMins += 24 * 60
	}
	return endMins - startMins, nil
}

// CombineDateAndClock attaches an "HH:MM" wall-clock time to a calendar date.
func CombineDateAndClock(date time.Time, clock string) (time.Time, error) {
	h, m, err := ParseClock(clock)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(), h, m, 0, 0, date.Location()), nil
}
