package attendance

import "time"

type Status string

const (
	StatusNormal Status = "normal"
	StatusLate   Status = "late"
	StatusEarly  Status = "early"
)

// Break is one rest period inside a working day. End is nil while the break
// is open; at most one break per attendance may be open at any instant.
type Break struct {
	Start *time.Time `json:"start"`
	End   *time.Time `json:"end"`
}

// Open reports whether the break has started but not ended.
func (b Break) Open() bool {
	return b.Start != nil && b.End == nil
}

// Attendance is one employee's working record for one calendar date.
// Date is truncated to day granularity; ClockIn/ClockOut/Breaks keep the
// full instant.
type Attendance struct {
	ID             string
	EmployeeID     string
	StoreID        string
	Date           time.Time
	ClockIn        time.Time
	ClockOut       *time.Time
	Breaks         []Break
	TotalWorkHours *float64
	Status         Status
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// OpenBreakIndex returns the index of the first break without an end time,
// or -1. Linear scan: if the one-open-break invariant is ever violated by
// corrupted data, only the first hit is acted on.
func (a *Attendance) OpenBreakIndex() int {
	for i, b := range a.Breaks {
		if b.Open() {
			return i
		}
	}
	return -1
}

// Window is the expected working window for a day, as local wall-clock hours.
type Window struct {
	StartHour int
	EndHour   int
}

// ExpectedWindowPolicy derives the expected working window from the clock-in
// instant. The default is a coarse placeholder (morning vs afternoon split),
// not a verified business rule; swap it for one backed by the actual
// assigned shift when product confirms that behavior.
type ExpectedWindowPolicy func(clockIn time.Time) Window

// DefaultWindowPolicy assumes a 09:00-17:00 day when clocking in before
// noon and a 13:00-21:00 day otherwise.
func DefaultWindowPolicy(clockIn time.Time) Window {
	if clockIn.Hour() < 12 {
		return Window{StartHour: 9, EndHour: 17}
	}
	return Window{StartHour: 13, EndHour: 21}
}
