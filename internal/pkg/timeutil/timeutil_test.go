package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthRange(t *testing.T) {
	start, end := MonthRange(2025, 2)

	assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.Local), start)
	assert.Equal(t, time.Date(2025, 2, 28, 23, 59, 59, 999000000, time.Local), end)
}

func TestMonthRange_LeapYear(t *testing.T) {
	_, end := MonthRange(2024, 2)
	assert.Equal(t, 29, end.Day())
}

func TestMonthRange_December(t *testing.T) {
	start, end := MonthRange(2025, 12)

	assert.Equal(t, time.December, start.Month())
	assert.Equal(t, 31, end.Day())
	assert.Equal(t, 2025, end.Year())
}

func TestDurationInMinutes(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{"standard day shift", "09:00", "17:30", 510},
		{"crosses midnight", "22:00", "01:00", 180},
		{"zero length", "09:00", "09:00", 0},
		{"one minute before midnight", "23:59", "00:00", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DurationInMinutes(tt.start, tt.end)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDurationInMinutes_InvalidInput(t *testing.T) {
	_, err := DurationInMinutes("9am", "17:00")
	assert.Error(t, err)

	_, err = DurationInMinutes("09:00", "25:00")
	assert.Error(t, err)
}

func TestParseClock(t *testing.T) {
	h, m, err := ParseClock("08:05")
	require.NoError(t, err)
	assert.Equal(t, 8, h)
	assert.Equal(t, 5, m)

	_, _, err = ParseClock("08:60")
	assert.Error(t, err)

	_, _, err = ParseClock("0805")
	assert.Error(t, err)
}

func TestTruncateToDay(t *testing.T) {
	in := time.Date(2025, 6, 16, 14, 30, 45, 123, time.Local)
	assert.Equal(t, time.Date(2025, 6, 16, 0, 0, 0, 0, time.Local), TruncateToDay(in))
}

func TestSameDay(t *testing.T) {
	a := time.Date(2025, 6, 16, 0, 1, 0, 0, time.Local)
	b := time.Date(2025, 6, 16, 23, 59, 0, 0, time.Local)
	c := time.Date(2025, 6, 17, 0, 0, 0, 0, time.Local)

	assert.True(t, SameDay(a, b))
	assert.False(t, SameDay(b, c))
}

func TestCombineDateAndClock(t *testing.T) {
	date := time.Date(2025, 6, 16, 0, 0, 0, 0, time.Local)

	combined, err := CombineDateAndClock(date, "13:45")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 16, 13, 45, 0, 0, time.Local), combined)
}
