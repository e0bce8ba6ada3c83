package shift

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/shiftnavi/shiftnavi-backend-go/internal/domain/shift"
	"github.com/shiftnavi/shiftnavi-backend-go/internal/pkg/timeutil"
	"github.com/shiftnavi/shiftnavi-backend-go/internal/pkg/validator"
)

type ShiftServiceImpl struct {
	shift.ShiftRepository
}

func NewShiftService(repo shift.ShiftRepository) shift.ShiftService {
	return &ShiftServiceImpl{ShiftRepository: repo}
}

// CreateShift implements shift.ShiftService.
func (s *ShiftServiceImpl) CreateShift(ctx context.Context, req shift.CreateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	date, _ := time.ParseInLocation("2006-01-02", req.Date, time.Local)
	created, err := s.ShiftRepository.Create(ctx, shift.Shift{
		EmployeeID: req.EmployeeID,
		StoreID:    req.StoreID,
		Date:       date,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Status:     shift.StatusPlanned,
	})
	if err != nil {
		return shift.ShiftResponse{}, fmt.Errorf("failed to create shift: %w", err)
	}

	return mapShiftToResponse(created), nil
}

// CreateShifts implements shift.ShiftService. IDs are assigned up front so
// responses match what the transaction commits.
func (s *ShiftServiceImpl) CreateShifts(ctx context.Context, req shift.BatchCreateShiftsRequest) ([]shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	shifts := make([]shift.Shift, 0, len(req.Shifts))
	for _, in := range req.Shifts {
		date, _ := time.ParseInLocation("2006-01-02", in.Date, time.Local)
		shifts = append(shifts, shift.Shift{
			ID:         uuid.NewString(),
			EmployeeID: in.EmployeeID,
			StoreID:    in.StoreID,
			Date:       date,
			StartTime:  in.StartTime,
			EndTime:    in.EndTime,
			Status:     shift.StatusPlanned,
			CreatedAt:  now,
			UpdatedAt:  now,
		})
	}

	if err := s.ShiftRepository.CreateBatch(ctx, shifts); err != nil {
		return nil, fmt.Errorf("failed to create shift batch: %w", err)
	}

	responses := make([]shift.ShiftResponse, 0, len(shifts))
	for _, sh := range shifts {
		responses = append(responses, mapShiftToResponse(sh))
	}
	return responses, nil
}

// GetShift implements shift.ShiftService.
func (s *ShiftServiceImpl) GetShift(ctx context.Context, id string) (shift.ShiftResponse, error) {
	sh, err := s.ShiftRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, shift.ErrShiftNotFound) {
			return shift.ShiftResponse{}, shift.ErrShiftNotFound
		}
		return shift.ShiftResponse{}, fmt.Errorf("failed to get shift: %w", err)
	}
	return mapShiftToResponse(sh), nil
}

// ListShiftsByMonth implements shift.ShiftService.
func (s *ShiftServiceImpl) ListShiftsByMonth(ctx context.Context, year, month int, filter shift.ShiftFilter) ([]shift.ShiftResponse, error) {
	from, to := timeutil.MonthRange(year, month)
	return s.listRange(ctx, from, to, filter)
}

// ListShiftsByRange implements shift.ShiftService.
func (s *ShiftServiceImpl) ListShiftsByRange(ctx context.Context, from, to string, filter shift.ShiftFilter) ([]shift.ShiftResponse, error) {
	var errs validator.ValidationErrors
	if _, ok := validator.IsValidDate(from); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "from",
			Message: "from must be in YYYY-MM-DD format",
		})
	}
	if _, ok := validator.IsValidDate(to); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "to",
			Message: "to must be in YYYY-MM-DD format",
		})
	}
	if len(errs) > 0 {
		return nil, errs
	}

	start, _ := time.ParseInLocation("2006-01-02", from, time.Local)
	end, _ := time.ParseInLocation("2006-01-02", to, time.Local)
	return s.listRange(ctx, start, timeutil.EndOfDay(end), filter)
}

func (s *ShiftServiceImpl) listRange(ctx context.Context, from, to time.Time, filter shift.ShiftFilter) ([]shift.ShiftResponse, error) {
	shifts, err := s.ShiftRepository.ListByDateRange(ctx, from, to, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}

	responses := make([]shift.ShiftResponse, 0, len(shifts))
	for _, sh := range shifts {
		responses = append(responses, mapShiftToResponse(sh))
	}
	return responses, nil
}

// CompleteShift implements shift.ShiftService.
func (s *ShiftServiceImpl) CompleteShift(ctx context.Context, id string) (shift.ShiftResponse, error) {
	sh, err := s.ShiftRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, shift.ErrShiftNotFound) {
			return shift.ShiftResponse{}, shift.ErrShiftNotFound
		}
		return shift.ShiftResponse{}, fmt.Errorf("failed to get shift: %w", err)
	}

	if sh.Status == shift.StatusCompleted {
		return shift.ShiftResponse{}, shift.ErrShiftAlreadyComplete
	}

	sh.Status = shift.StatusCompleted
	if err := s.ShiftRepository.Update(ctx, sh); err != nil {
		return shift.ShiftResponse{}, fmt.Errorf("failed to update shift: %w", err)
	}

	return mapShiftToResponse(sh), nil
}

// DeleteShift implements shift.ShiftService.
func (s *ShiftServiceImpl) DeleteShift(ctx context.Context, id string) error {
	if err := s.ShiftRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, shift.ErrShiftNotFound) {
			return shift.ErrShiftNotFound
		}
		return fmt.Errorf("failed to delete shift: %w", err)
	}
	return nil
}

func mapShiftToResponse(sh shift.Shift) shift.ShiftResponse {
	// Validated upstream, a zero duration only appears on corrupted rows.
	duration, _ := timeutil.DurationInMinutes(sh.StartTime, sh.EndTime)

	return shift.ShiftResponse{
		ID:              sh.ID,
		EmployeeID:      sh.EmployeeID,
		StoreID:         sh.StoreID,
		Date:            sh.Date.Format("2006-01-02"),
		StartTime:       sh.StartTime,
		EndTime:         sh.EndTime,
		Status:          string(sh.Status),
		DurationMinutes: duration,
		CreatedAt:       sh.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:       sh.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
