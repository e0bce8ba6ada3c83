package event

import "time"

// Event is a demand signal for scheduling: a date range, the stores it
// touches, and a predicted customer count.
type Event struct {
	ID                 string
	Name               string
	StartDate          time.Time
	EndDate            time.Time
	StoreIDs           []string
	CustomerPrediction int
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Overlaps reports whether the event's inclusive date range intersects
// [from, to].
func (e *Event) Overlaps(from, to time.Time) bool {
	return !e.StartDate.After(to) && !e.EndDate.Before(from)
}
