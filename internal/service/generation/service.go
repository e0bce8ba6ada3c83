package generation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/shiftnavi/shiftnavi-backend-go/internal/domain/employee"
	"github.com/shiftnavi/shiftnavi-backend-go/internal/domain/event"
	"github.com/shiftnavi/shiftnavi-backend-go/internal/domain/generation"
	"github.com/shiftnavi/shiftnavi-backend-go/internal/domain/preference"
	"github.com/shiftnavi/shiftnavi-backend-go/internal/domain/shift"
	"github.com/shiftnavi/shiftnavi-backend-go/internal/domain/store"
	"github.com/shiftnavi/shiftnavi-backend-go/internal/pkg/timeutil"
	"github.com/shiftnavi/shiftnavi-backend-go/internal/pkg/validator"
)

type GenerationServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	storeRepo      store.StoreRepository
	preferenceRepo preference.PreferenceRepository
	eventRepo      event.EventRepository
	constraintRepo generation.ConstraintRepository
	constraints    generation.ConstraintProvider
	generator      generation.Generator
	shiftService   shift.ShiftService
}

func NewGenerationService(
	employeeRepo employee.EmployeeRepository,
	storeRepo store.StoreRepository,
	preferenceRepo preference.PreferenceRepository,
	eventRepo event.EventRepository,
	constraintRepo generation.ConstraintRepository,
	constraints generation.ConstraintProvider,
	generator generation.Generator,
	shiftService shift.ShiftService,
) generation.GenerationService {
	return &GenerationServiceImpl{
		employeeRepo:   employeeRepo,
		storeRepo:      storeRepo,
		preferenceRepo: preferenceRepo,
		eventRepo:      eventRepo,
		constraintRepo: constraintRepo,
		constraints:    constraints,
		generator:      generator,
		shiftService:   shiftService,
	}
}

// BuildPackage implements generation.GenerationService. The five inputs are
// independent reads, so they are fetched concurrently.
func (s *GenerationServiceImpl) BuildPackage(ctx context.Context, req generation.GenerateScheduleRequest) (generation.Package, error) {
	if err := req.Validate(); err != nil {
		return generation.Package{}, err
	}

	start, _ := time.ParseInLocation("2006-01-02", req.StartDate, time.Local)
	end, _ := time.ParseInLocation("2006-01-02", req.EndDate, time.Local)

	pkg := generation.Package{
		StartDate: start,
		EndDate:   end,
		Options:   req.Options,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		employees, err := s.employeeRepo.List(gctx, employee.EmployeeFilter{})
		if err != nil {
			return fmt.Errorf("failed to list employees: %w", err)
		}
		pkg.Employees = employees
		return nil
	})
	g.Go(func() error {
		stores, err := s.storeRepo.List(gctx)
		if err != nil {
			return fmt.Errorf("failed to list stores: %w", err)
		}
		pkg.Stores = stores
		return nil
	})
	g.Go(func() error {
		prefs, err := s.listPreferencesInRange(gctx, start, end)
		if err != nil {
			return err
		}
		pkg.Preferences = prefs
		return nil
	})
	g.Go(func() error {
		events, err := s.eventRepo.ListOverlapping(gctx, start, timeutil.EndOfDay(end))
		if err != nil {
			return fmt.Errorf("failed to list events: %w", err)
		}
		pkg.Events = events
		return nil
	})
	g.Go(func() error {
		constraints, err := s.constraints.ListConstraints(gctx)
		if err != nil {
			return fmt.Errorf("failed to list constraints: %w", err)
		}
		pkg.Constraints = constraints
		return nil
	})

	if err := g.Wait(); err != nil {
		return generation.Package{}, err
	}
	return pkg, nil
}

// listPreferencesInRange collects submissions for every (year, month) the
// range touches, deduplicated per (employee, year, month).
func (s *GenerationServiceImpl) listPreferencesInRange(ctx context.Context, start, end time.Time) ([]preference.ShiftPreference, error) {
	var prefs []preference.ShiftPreference

	cursor := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, start.Location())
	for !cursor.After(end) {
		monthly, err := s.preferenceRepo.ListByPeriod(ctx, cursor.Year(), int(cursor.Month()))
		if err != nil {
			return nil, fmt.Errorf("failed to list preferences: %w", err)
		}
		prefs = append(prefs, monthly...)
		cursor = cursor.AddDate(0, 1, 0)
	}
	return prefs, nil
}

// GenerateSchedule implements generation.GenerationService.
func (s *GenerationServiceImpl) GenerateSchedule(ctx context.Context, req generation.GenerateScheduleRequest) (generation.GenerateScheduleResponse, error) {
	pkg, err := s.BuildPackage(ctx, req)
	if err != nil {
		return generation.GenerateScheduleResponse{}, err
	}

	assignments, err := s.generator.Generate(ctx, pkg)
	if err != nil {
		return generation.GenerateScheduleResponse{}, fmt.Errorf("generation failed: %w", err)
	}

	if err := validateAssignments(assignments, pkg); err != nil {
		return generation.GenerateScheduleResponse{}, err
	}

	batch := shift.BatchCreateShiftsRequest{
		Shifts: make([]shift.CreateShiftRequest, 0, len(assignments)),
	}
	for _, a := range assignments {
		batch.Shifts = append(batch.Shifts, shift.CreateShiftRequest{
			EmployeeID: a.EmployeeID,
			StoreID:    a.StoreID,
			Date:       a.Date,
			StartTime:  a.StartTime,
			EndTime:    a.EndTime,
		})
	}

	shifts, err := s.shiftService.CreateShifts(ctx, batch)
	if err != nil {
		return generation.GenerateScheduleResponse{}, fmt.Errorf("failed to persist generated shifts: %w", err)
	}

	return generation.GenerateScheduleResponse{Shifts: shifts}, nil
}

// validateAssignments rejects generator output referencing unknown employees
// or stores, malformed dates or times, or dates outside the requested range.
func validateAssignments(assignments []generation.ProposedAssignment, pkg generation.Package) error {
	if len(assignments) == 0 {
		return fmt.Errorf("%w: empty assignment list", generation.ErrInvalidGenerationResult)
	}

	knownEmployees := make(map[string]bool, len(pkg.Employees))
	for _, emp := range pkg.Employees {
		knownEmployees[emp.ID] = true
	}
	knownStores := make(map[string]bool, len(pkg.Stores))
	for _, st := range pkg.Stores {
		knownStores[st.ID] = true
	}

	for i, a := range assignments {
		if !knownEmployees[a.EmployeeID] {
			return fmt.Errorf("%w: assignment %d references unknown employee %q", generation.ErrInvalidGenerationResult, i, a.EmployeeID)
		}
		if !knownStores[a.StoreID] {
			return fmt.Errorf("%w: assignment %d references unknown store %q", generation.ErrInvalidGenerationResult, i, a.StoreID)
		}
		if _, ok := validator.IsValidDate(a.Date); !ok {
			return fmt.Errorf("%w: assignment %d has invalid date %q", generation.ErrInvalidGenerationResult, i, a.Date)
		}
		date, _ := time.ParseInLocation("2006-01-02", a.Date, time.Local)
		if date.Before(pkg.StartDate) || date.After(timeutil.EndOfDay(pkg.EndDate)) {
			return fmt.Errorf("%w: assignment %d date %q is outside the requested range", generation.ErrInvalidGenerationResult, i, a.Date)
		}
		if !validator.IsValidClock(a.StartTime) || !validator.IsValidClock(a.EndTime) {
			return fmt.Errorf("%w: assignment %d has invalid times %q-%q", generation.ErrInvalidGenerationResult, i, a.StartTime, a.EndTime)
		}
	}
	return nil
}

// CreateConstraint implements generation.GenerationService.
func (s *GenerationServiceImpl) CreateConstraint(ctx context.Context, req generation.CreateConstraintRequest) (generation.RelationshipConstraint, error) {
	if err := req.Validate(); err != nil {
		return generation.RelationshipConstraint{}, err
	}

	for _, id := range []string{req.EmployeeA, req.EmployeeB} {
		if _, err := s.employeeRepo.GetByID(ctx, id); err != nil {
			if errors.Is(err, employee.ErrEmployeeNotFound) {
				return generation.RelationshipConstraint{}, employee.ErrEmployeeNotFound
			}
			return generation.RelationshipConstraint{}, fmt.Errorf("failed to get employee: %w", err)
		}
	}

	created, err := s.constraintRepo.Create(ctx, generation.RelationshipConstraint{
		EmployeeA: req.EmployeeA,
		EmployeeB: req.EmployeeB,
		Reason:    req.Reason,
	})
	if err != nil {
		return generation.RelationshipConstraint{}, fmt.Errorf("failed to create constraint: %w", err)
	}
	return created, nil
}

// ListConstraints implements generation.GenerationService.
func (s *GenerationServiceImpl) ListConstraints(ctx context.Context) ([]generation.RelationshipConstraint, error) {
	constraints, err := s.constraintRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list constraints: %w", err)
	}
	return constraints, nil
}

// DeleteConstraint implements generation.GenerationService.
func (s *GenerationServiceImpl) DeleteConstraint(ctx context.Context, id string) error {
	if err := s.constraintRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete constraint: %w", err)
	}
	return nil
}
