package shift

import "time"

type Status string

const (
	StatusPlanned   Status = "planned"
	StatusCompleted Status = "completed"
)

// Shift is one employee working at one store on one calendar date.
// StartTime/EndTime are wall-clock "HH:MM" strings; duration math combines
// them with Date and may cross midnight.
type Shift struct {
	ID         string
	EmployeeID string
	StoreID    string
	Date       time.Time
	StartTime  string
	EndTime    string
	Status     Status
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
