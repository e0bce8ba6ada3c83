package attendance

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/shiftnavi/shiftnavi-backend-go/internal/domain/attendance"
	"github.com/shiftnavi/shiftnavi-backend-go/internal/pkg/clock"
	"github.com/shiftnavi/shiftnavi-backend-go/internal/pkg/timeutil"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	clock  clock.Clock
	window attendance.ExpectedWindowPolicy
}

func NewAttendanceService(
	repo attendance.AttendanceRepository,
	clk clock.Clock,
	window attendance.ExpectedWindowPolicy,
) attendance.AttendanceService {
	if window == nil {
		window = attendance.DefaultWindowPolicy
	}
	return &AttendanceServiceImpl{
		AttendanceRepository: repo,
		clock:                clk,
		window:               window,
	}
}

// isLateArrival: past the expected start hour, or at it with more than 15
// minutes past the top of the hour.
func isLateArrival(clockIn time.Time, startHour int) bool {
	if clockIn.Hour() > startHour {
		return true
	}
	return clockIn.Hour() == startHour && clockIn.Minute() > 15
}

// isEarlyLeave: clock-out lands in an hour before the expected end hour.
func isEarlyLeave(clockOut time.Time, endHour int) bool {
	return clockOut.Hour() < endHour
}

// CalculateTotalWorkHours returns (clockOut - clockIn - sum of completed
// breaks) in hours, rounded to 2 decimals. Break order does not matter;
// breaks missing a start or end are ignored.
func CalculateTotalWorkHours(clockIn, clockOut time.Time, breaks []attendance.Break) float64 {
	work := clockOut.Sub(clockIn)
	for _, b := range breaks {
		if b.Start == nil || b.End == nil {
			continue
		}
		work -= b.End.Sub(*b.Start)
	}
	return math.Round(work.Hours()*100) / 100
}

// ClockIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ClockIn(ctx context.Context, req attendance.ClockInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := s.clock.Now()
	date := timeutil.TruncateToDay(now)

	existing, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, req.EmployeeID, date)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check existing attendance: %w", err)
	}
	if existing != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyClockedIn
	}

	status := attendance.StatusNormal
	if isLateArrival(now, s.window(now).StartHour) {
		status = attendance.StatusLate
	}

	created, err := s.AttendanceRepository.Create(ctx, attendance.Attendance{
		EmployeeID: req.EmployeeID,
		StoreID:    req.StoreID,
		Date:       date,
		ClockIn:    now,
		Breaks:     []attendance.Break{},
		Status:     status,
	})
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return mapAttendanceToResponse(created), nil
}

// StartBreak implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) StartBreak(ctx context.Context, attendanceID string) (attendance.AttendanceResponse, error) {
	att, err := s.AttendanceRepository.GetByID(ctx, attendanceID)
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.AttendanceResponse{}, attendance.ErrAttendanceNotFound
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get attendance: %w", err)
	}

	if att.ClockOut != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyClockedOut
	}
	if att.OpenBreakIndex() != -1 {
		return attendance.AttendanceResponse{}, attendance.ErrBreakAlreadyActive
	}

	now := s.clock.Now()
	att.Breaks = append(att.Breaks, attendance.Break{Start: &now})

	if err := s.AttendanceRepository.Update(ctx, att); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance: %w", err)
	}

	return mapAttendanceToResponse(att), nil
}

// EndBreak implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) EndBreak(ctx context.Context, attendanceID string) (attendance.AttendanceResponse, error) {
	att, err := s.AttendanceRepository.GetByID(ctx, attendanceID)
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.AttendanceResponse{}, attendance.ErrAttendanceNotFound
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get attendance: %w", err)
	}

	idx := att.OpenBreakIndex()
	if idx == -1 {
		return attendance.AttendanceResponse{}, attendance.ErrNoActiveBreak
	}

	now := s.clock.Now()
	att.Breaks[idx].End = &now

	if err := s.AttendanceRepository.Update(ctx, att); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance: %w", err)
	}

	return mapAttendanceToResponse(att), nil
}

// ClockOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ClockOut(ctx context.Context, attendanceID string) (attendance.AttendanceResponse, error) {
	att, err := s.AttendanceRepository.GetByID(ctx, attendanceID)
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.AttendanceResponse{}, attendance.ErrAttendanceNotFound
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get attendance: %w", err)
	}

	if att.ClockOut != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyClockedOut
	}

	now := s.clock.Now()

	// An open break is force-closed at the clock-out instant, not an error.
	if idx := att.OpenBreakIndex(); idx != -1 {
		att.Breaks[idx].End = &now
	}

	total := CalculateTotalWorkHours(att.ClockIn, now, att.Breaks)
	att.ClockOut = &now
	att.TotalWorkHours = &total

	// Late takes priority: a record never flips from late to early.
	if att.Status != attendance.StatusLate && isEarlyLeave(now, s.window(att.ClockIn).EndHour) {
		att.Status = attendance.StatusEarly
	}

	if err := s.AttendanceRepository.Update(ctx, att); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance: %w", err)
	}

	return mapAttendanceToResponse(att), nil
}

// GetAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetAttendance(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	att, err := s.AttendanceRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.AttendanceResponse{}, attendance.ErrAttendanceNotFound
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get attendance: %w", err)
	}
	return mapAttendanceToResponse(att), nil
}

// ListByEmployeeMonth implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListByEmployeeMonth(ctx context.Context, employeeID string, year, month int) ([]attendance.AttendanceResponse, error) {
	from, to := timeutil.MonthRange(year, month)
	records, err := s.AttendanceRepository.ListByEmployeeAndRange(ctx, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, att := range records {
		responses = append(responses, mapAttendanceToResponse(att))
	}
	return responses, nil
}

// UpdateAttendance implements attendance.AttendanceService. Administrative
// correction path: managers fix wrong clock times after the fact.
func (s *AttendanceServiceImpl) UpdateAttendance(ctx context.Context, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	att, err := s.AttendanceRepository.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.AttendanceResponse{}, attendance.ErrAttendanceNotFound
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get attendance: %w", err)
	}

	if req.ClockInTime != nil && *req.ClockInTime != "" {
		t, err := parseInstant(att.Date, *req.ClockInTime)
		if err != nil {
			return attendance.AttendanceResponse{}, err
		}
		att.ClockIn = t
	}
	if req.ClockOutTime != nil && *req.ClockOutTime != "" {
		t, err := parseInstant(att.Date, *req.ClockOutTime)
		if err != nil {
			return attendance.AttendanceResponse{}, err
		}
		att.ClockOut = &t
	}
	if req.Status != nil {
		att.Status = attendance.Status(*req.Status)
	}

	if att.ClockOut != nil {
		total := CalculateTotalWorkHours(att.ClockIn, *att.ClockOut, att.Breaks)
		att.TotalWorkHours = &total
	}

	if err := s.AttendanceRepository.Update(ctx, att); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance: %w", err)
	}

	return mapAttendanceToResponse(att), nil
}

// DeleteAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) DeleteAttendance(ctx context.Context, id string) error {
	if err := s.AttendanceRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.ErrAttendanceNotFound
		}
		return fmt.Errorf("failed to delete attendance: %w", err)
	}
	return nil
}

// GetEmployeeMonthlyStats implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetEmployeeMonthlyStats(ctx context.Context, employeeID string, year, month int) (attendance.PeriodStats, error) {
	from, to := timeutil.MonthRange(year, month)
	records, err := s.AttendanceRepository.ListByEmployeeAndRange(ctx, employeeID, from, to)
	if err != nil {
		return attendance.PeriodStats{}, fmt.Errorf("failed to list attendances: %w", err)
	}
	return computeStats(records), nil
}

// GetStoreMonthlyStats implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetStoreMonthlyStats(ctx context.Context, storeID string, year, month int) (attendance.PeriodStats, error) {
	from, to := timeutil.MonthRange(year, month)
	records, err := s.AttendanceRepository.ListByStoreAndRange(ctx, storeID, from, to)
	if err != nil {
		return attendance.PeriodStats{}, fmt.Errorf("failed to list attendances: %w", err)
	}
	return computeStats(records), nil
}

// computeStats aggregates a record set; an empty set yields zero values.
func computeStats(records []attendance.Attendance) attendance.PeriodStats {
	stats := attendance.PeriodStats{TotalDays: len(records)}
	for _, att := range records {
		if att.TotalWorkHours != nil {
			stats.TotalHours += *att.TotalWorkHours
		}
		switch att.Status {
		case attendance.StatusLate:
			stats.LateCount++
		case attendance.StatusEarly:
			stats.EarlyCount++
		}
	}
	stats.TotalHours = math.Round(stats.TotalHours*100) / 100
	if stats.TotalDays > 0 {
		stats.AverageHoursPerDay = math.Round(stats.TotalHours/float64(stats.TotalDays)*100) / 100
	}
	return stats
}

// parseInstant accepts either a full "2006-01-02 15:04:05" timestamp or an
// "HH:MM" wall-clock time combined with the attendance date.
func parseInstant(date time.Time, value string) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02 15:04:05", value, date.Location()); err == nil {
		return t, nil
	}
	t, err := timeutil.CombineDateAndClock(date, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time value %q: %w", value, err)
	}
	return t, nil
}

func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format("2006-01-02 15:04:05")
	return &format
}

func mapAttendanceToResponse(att attendance.Attendance) attendance.AttendanceResponse {
	breaks := make([]attendance.BreakResponse, 0, len(att.Breaks))
	for _, b := range att.Breaks {
		breaks = append(breaks, attendance.BreakResponse{
			Start: timePtrToString(b.Start),
			End:   timePtrToString(b.End),
		})
	}

	return attendance.AttendanceResponse{
		ID:             att.ID,
		EmployeeID:     att.EmployeeID,
		StoreID:        att.StoreID,
		Date:           att.Date.Format("2006-01-02"),
		ClockInTime:    att.ClockIn.Format("2006-01-02 15:04:05"),
		ClockOutTime:   timePtrToString(att.ClockOut),
		Breaks:         breaks,
		TotalWorkHours: att.TotalWorkHours,
		Status:         string(att.Status),
		CreatedAt:      att.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:      att.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
