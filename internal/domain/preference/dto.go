package preference

import (
	"github.com/shiftnavi/shiftnavi-backend-go/internal/pkg/validator"
)

type SubmitPreferenceRequest struct {
	EmployeeID         string   `json:"employee_id"`
	Year               int      `json:"year"`
	Month              int      `json:"month"`
	DesiredDaysPerWeek int      `json:"desired_days_per_week"`
	PreferredWeekdays  []string `json:"preferred_weekdays"`
	UnavailableDates   []string `json:"unavailable_dates"`
	Notes              string   `json:"notes"`
}

func (r *SubmitPreferenceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if !validator.IsValidYear(r.Year) {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year is out of range",
		})
	}
	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}
	if r.DesiredDaysPerWeek < 0 || r.DesiredDaysPerWeek > 7 {
		errs = append(errs, validator.ValidationError{
			Field:   "desired_days_per_week",
			Message: "desired_days_per_week must be between 0 and 7",
		})
	}
	for _, wd := range r.PreferredWeekdays {
		if !validator.IsValidWeekday(wd) {
			errs = append(errs, validator.ValidationError{
				Field:   "preferred_weekdays",
				Message: "unknown weekday: " + wd,
			})
		}
	}
	for _, d := range r.UnavailableDates {
		if _, ok := validator.IsValidDate(d); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "unavailable_dates",
				Message: "dates must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PreferenceResponse struct {
	ID                 string   `json:"id"`
	EmployeeID         string   `json:"employee_id"`
	Year               int      `json:"year"`
	Month              int      `json:"month"`
	DesiredDaysPerWeek int      `json:"desired_days_per_week"`
	PreferredWeekdays  []string `json:"preferred_weekdays"`
	UnavailableDates   []string `json:"unavailable_dates"`
	Notes              string   `json:"notes,omitempty"`
	SubmittedAt        string   `json:"submitted_at"`
}

// SubmissionStatusEntry pairs one employee with whether a preference exists
// for the requested period.
type SubmissionStatusEntry struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Submitted    bool   `json:"submitted"`
}

type SubmissionStatusReport struct {
	Year           int                     `json:"year"`
	Month          int                     `json:"month"`
	TotalEmployees int                     `json:"total_employees"`
	SubmittedCount int                     `json:"submitted_count"`
	PendingCount   int                     `json:"pending_count"`
	Entries        []SubmissionStatusEntry `json:"entries"`
}
