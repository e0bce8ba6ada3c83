package attendance

import (
	"github.com/shiftnavi/shiftnavi-backend-go/internal/pkg/validator"
)

type ClockInRequest struct {
	EmployeeID string `json:"employee_id"`
	StoreID    string `json:"store_id"`
}

func (r *ClockInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if validator.IsEmpty(r.StoreID) {
		errs = append(errs, validator.ValidationError{
			Field:   "store_id",
			Message: "store_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateAttendanceRequest struct {
	ID          string  `json:"-"`
	ClockInTime *string `json:"clock_in_time,omitempty"`
	ClockOutTime *string `json:"clock_out_time,omitempty"`
	Status       *string `json:"status,omitempty"`
}

func (r *UpdateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Status != nil && !validator.IsInSlice(*r.Status, []string{
		string(StatusNormal), string(StatusLate), string(StatusEarly),
	}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: normal, late, early",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BreakResponse struct {
	Start *string `json:"start,omitempty"`
	End   *string `json:"end,omitempty"`
}

type AttendanceResponse struct {
	ID             string          `json:"id"`
	EmployeeID     string          `json:"employee_id"`
	StoreID        string          `json:"store_id"`
	Date           string          `json:"date"`
	ClockInTime    string          `json:"clock_in_time"`
	ClockOutTime   *string         `json:"clock_out_time,omitempty"`
	Breaks         []BreakResponse `json:"breaks"`
	TotalWorkHours *float64        `json:"total_work_hours,omitempty"`
	Status         string          `json:"status"`
	CreatedAt      string          `json:"created_at"`
	UpdatedAt      string          `json:"updated_at"`
}

// PeriodStats aggregates a date-bounded set of attendance records. A zero
// population yields all-zero aggregates, never an error.
type PeriodStats struct {
	TotalDays          int     `json:"total_days"`
	TotalHours         float64 `json:"total_hours"`
	LateCount          int     `json:"late_count"`
	EarlyCount         int     `json:"early_count"`
	AverageHoursPerDay float64 `json:"average_hours_per_day"`
}
