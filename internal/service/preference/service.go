package preference

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shiftnavi/shiftnavi-backend-go/internal/domain/employee"
	"github.com/shiftnavi/shiftnavi-backend-go/internal/domain/preference"
	"github.com/shiftnavi/shiftnavi-backend-go/internal/pkg/clock"
)

type PreferenceServiceImpl struct {
	preference.PreferenceRepository
	employeeRepo employee.EmployeeRepository
	clock        clock.Clock
}

func NewPreferenceService(
	repo preference.PreferenceRepository,
	employeeRepo employee.EmployeeRepository,
	clk clock.Clock,
) preference.PreferenceService {
	return &PreferenceServiceImpl{
		PreferenceRepository: repo,
		employeeRepo:         employeeRepo,
		clock:                clk,
	}
}

// SubmitPreference implements preference.PreferenceService. Resubmitting for
// the same period replaces the earlier submission in place.
func (s *PreferenceServiceImpl) SubmitPreference(ctx context.Context, req preference.SubmitPreferenceRequest) (preference.PreferenceResponse, error) {
	if err := req.Validate(); err != nil {
		return preference.PreferenceResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return preference.PreferenceResponse{}, employee.ErrEmployeeNotFound
		}
		return preference.PreferenceResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	// Duplicate calendar days collapse to one entry.
	unavailable := make([]time.Time, 0, len(req.UnavailableDates))
	seenDays := make(map[string]bool, len(req.UnavailableDates))
	for _, d := range req.UnavailableDates {
		if seenDays[d] {
			continue
		}
		seenDays[d] = true
		t, _ := time.ParseInLocation("2006-01-02", d, time.Local)
		unavailable = append(unavailable, t)
	}

	now := s.clock.Now()

	existing, err := s.PreferenceRepository.GetByEmployeeAndPeriod(ctx, req.EmployeeID, req.Year, req.Month)
	if err != nil {
		return preference.PreferenceResponse{}, fmt.Errorf("failed to check existing preference: %w", err)
	}

	if existing != nil {
		existing.DesiredDaysPerWeek = req.DesiredDaysPerWeek
		existing.PreferredWeekdays = req.PreferredWeekdays
		existing.UnavailableDates = unavailable
		existing.Notes = req.Notes
		existing.SubmittedAt = now

		if err := s.PreferenceRepository.Update(ctx, *existing); err != nil {
			return preference.PreferenceResponse{}, fmt.Errorf("failed to update preference: %w", err)
		}
		return mapPreferenceToResponse(*existing), nil
	}

	created, err := s.PreferenceRepository.Create(ctx, preference.ShiftPreference{
		EmployeeID:         req.EmployeeID,
		Year:               req.Year,
		Month:              req.Month,
		DesiredDaysPerWeek: req.DesiredDaysPerWeek,
		PreferredWeekdays:  req.PreferredWeekdays,
		UnavailableDates:   unavailable,
		Notes:              req.Notes,
		SubmittedAt:        now,
	})
	if err != nil {
		return preference.PreferenceResponse{}, fmt.Errorf("failed to create preference: %w", err)
	}

	return mapPreferenceToResponse(created), nil
}

// GetPreference implements preference.PreferenceService.
func (s *PreferenceServiceImpl) GetPreference(ctx context.Context, employeeID string, year, month int) (preference.PreferenceResponse, error) {
	pref, err := s.PreferenceRepository.GetByEmployeeAndPeriod(ctx, employeeID, year, month)
	if err != nil {
		return preference.PreferenceResponse{}, fmt.Errorf("failed to get preference: %w", err)
	}
	if pref == nil {
		return preference.PreferenceResponse{}, preference.ErrPreferenceNotFound
	}
	return mapPreferenceToResponse(*pref), nil
}

// ListPreferencesByPeriod implements preference.PreferenceService.
func (s *PreferenceServiceImpl) ListPreferencesByPeriod(ctx context.Context, year, month int) ([]preference.PreferenceResponse, error) {
	prefs, err := s.PreferenceRepository.ListByPeriod(ctx, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list preferences: %w", err)
	}

	responses := make([]preference.PreferenceResponse, 0, len(prefs))
	for _, p := range prefs {
		responses = append(responses, mapPreferenceToResponse(p))
	}
	return responses, nil
}

// GetSubmissionStatus implements preference.PreferenceService. Admins are
// not expected to submit preferences, so the roster is role-filtered.
func (s *PreferenceServiceImpl) GetSubmissionStatus(ctx context.Context, year, month int) (preference.SubmissionStatusReport, error) {
	role := string(employee.RoleEmployee)
	employees, err := s.employeeRepo.List(ctx, employee.EmployeeFilter{Role: &role})
	if err != nil {
		return preference.SubmissionStatusReport{}, fmt.Errorf("failed to list employees: %w", err)
	}

	prefs, err := s.PreferenceRepository.ListByPeriod(ctx, year, month)
	if err != nil {
		return preference.SubmissionStatusReport{}, fmt.Errorf("failed to list preferences: %w", err)
	}

	submitted := make(map[string]bool, len(prefs))
	for _, p := range prefs {
		submitted[p.EmployeeID] = true
	}

	report := preference.SubmissionStatusReport{
		Year:           year,
		Month:          month,
		TotalEmployees: len(employees),
		Entries:        make([]preference.SubmissionStatusEntry, 0, len(employees)),
	}
	for _, emp := range employees {
		entry := preference.SubmissionStatusEntry{
			EmployeeID:   emp.ID,
			EmployeeName: emp.Name,
			Submitted:    submitted[emp.ID],
		}
		if entry.Submitted {
			report.SubmittedCount++
		} else {
			report.PendingCount++
		}
		report.Entries = append(report.Entries, entry)
	}
	return report, nil
}

// DeletePreference implements preference.PreferenceService.
func (s *PreferenceServiceImpl) DeletePreference(ctx context.Context, id string) error {
	if err := s.PreferenceRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, preference.ErrPreferenceNotFound) {
			return preference.ErrPreferenceNotFound
		}
		return fmt.Errorf("failed to delete preference: %w", err)
	}
	return nil
}

func mapPreferenceToResponse(p preference.ShiftPreference) preference.PreferenceResponse {
	dates := make([]string, 0, len(p.UnavailableDates))
	for _, d := range p.UnavailableDates {
		dates = append(dates, d.Format("2006-01-02"))
	}

	weekdays := p.PreferredWeekdays
	if weekdays == nil {
		weekdays = []string{}
	}

	return preference.PreferenceResponse{
		ID:                 p.ID,
		EmployeeID:         p.EmployeeID,
		Year:               p.Year,
		Month:              p.Month,
		DesiredDaysPerWeek: p.DesiredDaysPerWeek,
		PreferredWeekdays:  weekdays,
		UnavailableDates:   dates,
		Notes:              p.Notes,
		SubmittedAt:        p.SubmittedAt.Format("2006-01-02 15:04:05"),
	}
}
