package store

import (
	"github.com/shiftnavi/shiftnavi-backend-go/internal/pkg/validator"
)

type SkillRequirementInput struct {
	DayCategory string                    `json:"day_category"`
	Required    map[string]map[string]int `json:"required"`
}

type CreateStoreRequest struct {
	Name         string                  `json:"name"`
	Address      string                  `json:"address"`
	Phone        string                  `json:"phone"`
	Requirements []SkillRequirementInput `json:"requirements"`
}

func validateRequirements(reqs []SkillRequirementInput) validator.ValidationErrors {
	var errs validator.ValidationErrors

	seen := make(map[string]bool)
	for _, req := range reqs {
		if !validator.IsInSlice(req.DayCategory, DayCategoryValues) {
			errs = append(errs, validator.ValidationError{
				Field:   "requirements",
				Message: "unknown day category: " + req.DayCategory,
			})
			continue
		}
		if seen[req.DayCategory] {
			errs = append(errs, validator.ValidationError{
				Field:   "requirements",
				Message: "duplicate day category: " + req.DayCategory,
			})
		}
		seen[req.DayCategory] = true

		for skillType, levels := range req.Required {
			if !validator.IsInSlice(skillType, []string{"kitchen", "hall", "sales"}) {
				errs = append(errs, validator.ValidationError{
					Field:   "requirements",
					Message: "unknown skill type in requirement: " + skillType,
				})
			}
			for level, count := range levels {
				if !validator.IsInSlice(level, []string{"A", "B", "C"}) {
					errs = append(errs, validator.ValidationError{
						Field:   "requirements",
						Message: "skill level must be one of: A, B, C",
					})
				}
				if count < 0 {
					errs = append(errs, validator.ValidationError{
						Field:   "requirements",
						Message: "required headcount must not be negative",
					})
				}
			}
		}
	}
	return errs
}

func (r *CreateStoreRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	errs = append(errs, validateRequirements(r.Requirements)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateStoreRequest struct {
	ID           string                   `json:"-"`
	Name         *string                  `json:"name,omitempty"`
	Address      *string                  `json:"address,omitempty"`
	Phone        *string                  `json:"phone,omitempty"`
	Requirements *[]SkillRequirementInput `json:"requirements,omitempty"`
}

func (r *UpdateStoreRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Requirements != nil {
		errs = append(errs, validateRequirements(*r.Requirements)...)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type StoreResponse struct {
	ID           string                  `json:"id"`
	Name         string                  `json:"name"`
	Address      string                  `json:"address,omitempty"`
	Phone        string                  `json:"phone,omitempty"`
	Requirements []SkillRequirementInput `json:"requirements"`
	CreatedAt    string                  `json:"created_at"`
	UpdatedAt    string                  `json:"updated_at"`
}
