package seasonal

import (
	"github.com/shiftnavi/shiftnavi-backend-go/internal/pkg/validator"
)

type AreaInput struct {
	Name         string  `json:"name"`
	Status       string  `json:"status"`
	ViewingStart *string `json:"viewing_start,omitempty"`
	ViewingEnd   *string `json:"viewing_end,omitempty"`
}

type SaveSeasonalInfoRequest struct {
	ID       string      `json:"-"`
	Type     string      `json:"type"`
	Name     string      `json:"name"`
	Progress float64     `json:"progress"`
	Areas    []AreaInput `json:"areas"`
}

func (r *SaveSeasonalInfoRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Type, InfoTypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of: sakura, azalea, other",
		})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	for _, area := range r.Areas {
		if validator.IsEmpty(area.Name) {
			errs = append(errs, validator.ValidationError{
				Field:   "areas",
				Message: "area name is required",
			})
		}
		if area.ViewingStart != nil {
			if _, ok := validator.IsValidDate(*area.ViewingStart); !ok {
				errs = append(errs, validator.ValidationError{
					Field:   "areas",
					Message: "viewing_start must be in YYYY-MM-DD format",
				})
			}
		}
		if area.ViewingEnd != nil {
			if _, ok := validator.IsValidDate(*area.ViewingEnd); !ok {
				errs = append(errs, validator.ValidationError{
					Field:   "areas",
					Message: "viewing_end must be in YYYY-MM-DD format",
				})
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AreaResponse struct {
	Name         string  `json:"name"`
	Status       string  `json:"status"`
	ViewingStart *string `json:"viewing_start,omitempty"`
	ViewingEnd   *string `json:"viewing_end,omitempty"`
}

type SeasonalInfoResponse struct {
	ID        string         `json:"id"`
	Type      string         `json:"type"`
	Name      string         `json:"name"`
	Progress  float64        `json:"progress"`
	Areas     []AreaResponse `json:"areas"`
	UpdatedAt string         `json:"updated_at"`
}

// HighlightResponse is the dashboard reduction of one seasonal record:
// name, progress, and at most the first three areas.
type HighlightResponse struct {
	Type      string         `json:"type"`
	Name      string         `json:"name"`
	Progress  float64        `json:"progress"`
	Areas     []AreaResponse `json:"areas"`
	UpdatedAt string         `json:"updated_at"`
}

// AreaInPeriodResponse is one area currently in its best-viewing period.
type AreaInPeriodResponse struct {
	SeasonalInfoID   string `json:"seasonal_info_id"`
	SeasonalInfoName string `json:"seasonal_info_name"`
	AreaName         string `json:"area_name"`
	Status           string `json:"status"`
	ViewingStart     string `json:"viewing_start"`
	ViewingEnd       string `json:"viewing_end"`
}
