package shift

import (
	"github.com/shiftnavi/shiftnavi-backend-go/internal/pkg/validator"
)

type CreateShiftRequest struct {
	EmployeeID string `json:"employee_id"`
	StoreID    string `json:"store_id"`
	Date       string `json:"date"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
}

func (r *CreateShiftRequest) Validate() error {
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
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}
	if !validator.IsValidClock(r.StartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be in HH:MM format",
		})
	}
	if !validator.IsValidClock(r.EndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be in HH:MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BatchCreateShiftsRequest struct {
	Shifts []CreateShiftRequest `json:"shifts"`
}

func (r *BatchCreateShiftsRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Shifts) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "shifts",
			Message: "shifts must not be empty",
		})
	}
	for _, s := range r.Shifts {
		if err := s.Validate(); err != nil {
			if ve, ok := err.(validator.ValidationErrors); ok {
				errs = append(errs, ve...)
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ShiftFilter struct {
	EmployeeID *string
	StoreID    *string
	Status     *string
}

type ShiftResponse struct {
	ID              string `json:"id"`
	EmployeeID      string `json:"employee_id"`
	StoreID         string `json:"store_id"`
	Date            string `json:"date"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	Status          string `json:"status"`
	DurationMinutes int    `json:"duration_minutes"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
}
