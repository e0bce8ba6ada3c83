package response

import (
	"errors"
	"net/http"

	"github.com/shiftnavi/shiftnavi-backend-go/internal/domain/attendance"
	"github.com/shiftnavi/shiftnavi-backend-go/internal/domain/employee"
	"github.com/shiftnavi/shiftnavi-backend-go/internal/domain/event"
	"github.com/shiftnavi/shiftnavi-backend-go/internal/domain/generation"
	"github.com/shiftnavi/shiftnavi-backend-go/internal/domain/preference"
	"github.com/shiftnavi/shiftnavi-backend-go/internal/domain/seasonal"
	"github.com/shiftnavi/shiftnavi-backend-go/internal/domain/shift"
	"github.com/shiftnavi/shiftnavi-backend-go/internal/domain/store"
	"github.com/shiftnavi/shiftnavi-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAlreadyClockedIn):
		Conflict(w, "Already clocked in today")
	case errors.Is(err, attendance.ErrAlreadyClockedOut):
		Conflict(w, "Already clocked out")
	case errors.Is(err, attendance.ErrBreakAlreadyActive):
		Conflict(w, "A break is already in progress")
	case errors.Is(err, attendance.ErrNoActiveBreak):
		Conflict(w, "No break is in progress")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Store domain errors
	case errors.Is(err, store.ErrStoreNotFound):
		NotFound(w, "Store not found")

	// Shift domain errors
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, shift.ErrShiftAlreadyComplete):
		Conflict(w, "Shift has already been completed")

	// Preference domain errors
	case errors.Is(err, preference.ErrPreferenceNotFound):
		NotFound(w, "Shift preference not found")

	// Event domain errors
	case errors.Is(err, event.ErrEventNotFound):
		NotFound(w, "Event not found")

	// Seasonal domain errors
	case errors.Is(err, seasonal.ErrSeasonalInfoNotFound):
		NotFound(w, "Seasonal info not found")

	// Generation domain errors
	case errors.Is(err, generation.ErrInvalidGenerationResult):
		BadGateway(w, "Shift generator returned an invalid result")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
