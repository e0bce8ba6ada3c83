package event

import (
	"github.com/shiftnavi/shiftnavi-backend-go/internal/pkg/validator"
)

type CreateEventRequest struct {
	Name               string   `json:"name"`
	StartDate          string   `json:"start_date"`
	EndDate            string   `json:"end_date"`
	StoreIDs           []string `json:"store_ids"`
	CustomerPrediction int      `json:"customer_prediction"`
}

func (r *CreateEventRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	start, okStart := validator.IsValidDate(r.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}
	end, okEnd := validator.IsValidDate(r.EndDate)
	if !okEnd {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}
	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}
	if r.CustomerPrediction < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "customer_prediction",
			Message: "customer_prediction must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEventRequest struct {
	ID                 string    `json:"-"`
	Name               *string   `json:"name,omitempty"`
	StartDate          *string   `json:"start_date,omitempty"`
	EndDate            *string   `json:"end_date,omitempty"`
	StoreIDs           *[]string `json:"store_ids,omitempty"`
	CustomerPrediction *int      `json:"customer_prediction,omitempty"`
}

func (r *UpdateEventRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.StartDate != nil {
		if _, ok := validator.IsValidDate(*r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}
	if r.EndDate != nil {
		if _, ok := validator.IsValidDate(*r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EventResponse struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	StartDate          string   `json:"start_date"`
	EndDate            string   `json:"end_date"`
	StoreIDs           []string `json:"store_ids"`
	CustomerPrediction int      `json:"customer_prediction"`
	CreatedAt          string   `json:"created_at"`
	UpdatedAt          string   `json:"updated_at"`
}
