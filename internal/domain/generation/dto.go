package generation

import (
	"github.com/shiftnavi/shiftnavi-backend-go/internal/domain/shift"
	"github.com/shiftnavi/shiftnavi-backend-go/internal/pkg/validator"
)

type GenerateScheduleRequest struct {
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
	Options   Options `json:"options"`
}

func (r *GenerateScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

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

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type GenerateScheduleResponse struct {
	Shifts []shift.ShiftResponse `json:"shifts"`
}

type CreateConstraintRequest struct {
	EmployeeA string `json:"employee_a"`
	EmployeeB string `json:"employee_b"`
	Reason    string `json:"reason"`
}

func (r *CreateConstraintRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeA) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_a",
			Message: "employee_a is required",
		})
	}
	if validator.IsEmpty(r.EmployeeB) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_b",
			Message: "employee_b is required",
		})
	}
	if !validator.IsEmpty(r.EmployeeA) && r.EmployeeA == r.EmployeeB {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_b",
			Message: "employee_b must differ from employee_a",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
