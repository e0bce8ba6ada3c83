package employee

import (
	"github.com/shiftnavi/shiftnavi-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Name            string            `json:"name"`
	Email           string            `json:"email"`
	Role            string            `json:"role"`
	EmploymentType  string            `json:"employment_type"`
	Skills          map[string]string `json:"skills"`
	DesiredWorkDays int               `json:"desired_work_days"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if !validator.IsInSlice(r.Role, RoleValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of: admin, employee",
		})
	}

	for skillType, level := range r.Skills {
		if !validator.IsInSlice(skillType, SkillTypeValues) {
			errs = append(errs, validator.ValidationError{
				Field:   "skills",
				Message: "unknown skill type: " + skillType,
			})
		}
		if !validator.IsInSlice(level, SkillLevelValues) {
			errs = append(errs, validator.ValidationError{
				Field:   "skills",
				Message: "skill level must be one of: A, B, C",
			})
		}
	}

	if r.DesiredWorkDays < 0 || r.DesiredWorkDays > 7 {
		errs = append(errs, validator.ValidationError{
			Field:   "desired_work_days",
			Message: "desired_work_days must be between 0 and 7",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID              string             `json:"-"`
	Name            *string            `json:"name,omitempty"`
	Email           *string            `json:"email,omitempty"`
	Role            *string            `json:"role,omitempty"`
	EmploymentType  *string            `json:"employment_type,omitempty"`
	Skills          *map[string]string `json:"skills,omitempty"`
	DesiredWorkDays *int               `json:"desired_work_days,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Role != nil && !validator.IsInSlice(*r.Role, RoleValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of: admin, employee",
		})
	}

	if r.Skills != nil {
		for skillType, level := range *r.Skills {
			if !validator.IsInSlice(skillType, SkillTypeValues) {
				errs = append(errs, validator.ValidationError{
					Field:   "skills",
					Message: "unknown skill type: " + skillType,
				})
			}
			if !validator.IsInSlice(level, SkillLevelValues) {
				errs = append(errs, validator.ValidationError{
					Field:   "skills",
					Message: "skill level must be one of: A, B, C",
				})
			}
		}
	}

	if r.DesiredWorkDays != nil && (*r.DesiredWorkDays < 0 || *r.DesiredWorkDays > 7) {
		errs = append(errs, validator.ValidationError{
			Field:   "desired_work_days",
			Message: "desired_work_days must be between 0 and 7",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeFilter struct {
	Role *string
	Name *string
}

type EmployeeResponse struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Email           string            `json:"email,omitempty"`
	Role            string            `json:"role"`
	EmploymentType  string            `json:"employment_type,omitempty"`
	Skills          map[string]string `json:"skills"`
	DesiredWorkDays int               `json:"desired_work_days"`
	CreatedAt       string            `json:"created_at"`
	UpdatedAt       string            `json:"updated_at"`
}
