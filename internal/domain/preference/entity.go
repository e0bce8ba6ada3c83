package preference

import "time"

// ShiftPreference is one employee's submission for one (year, month).
// Uniqueness is enforced by query-then-upsert in the service plus a unique
// index on (employee_id, year, month).
type ShiftPreference struct {
	ID                 string
	EmployeeID         string
	Year               int
	Month              int
	DesiredDaysPerWeek int
	PreferredWeekdays  []string
	UnavailableDates   []time.Time
	Notes              string
	SubmittedAt        time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
