package generation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftnavi/shiftnavi-backend-go/internal/domain/employee"
	"github.com/shiftnavi/shiftnavi-backend-go/internal/domain/event"
	"github.com/shiftnavi/shiftnavi-backend-go/internal/domain/generation"
	"github.com/shiftnavi/shiftnavi-backend-go/internal/domain/preference"
	"github.com/shiftnavi/shiftnavi-backend-go/internal/domain/shift"
	"github.com/shiftnavi/shiftnavi-backend-go/internal/domain/store"
)

type stubEmployeeRepo struct {
	employees []employee.Employee
}

func (s *stubEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (s *stubEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	for _, emp := range s.employees {
		if emp.ID == id {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (s *stubEmployeeRepo) GetByEmail(ctx context.Context, email string) (*employee.Employee, error) {
	return nil, nil
}

func (s *stubEmployeeRepo) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, error) {
	return s.employees, nil
}

func (s *stubEmployeeRepo) Update(ctx context.Context, emp employee.Employee) error { return nil }
func (s *stubEmployeeRepo) Delete(ctx context.Context, id string) error             { return nil }

type stubStoreRepo struct {
	stores []store.Store
}

func (s *stubStoreRepo) Create(ctx context.Context, st store.Store) (store.Store, error) {
	return st, nil
}

func (s *stubStoreRepo) GetByID(ctx context.Context, id string) (store.Store, error) {
	return store.Store{}, store.ErrStoreNotFound
}

func (s *stubStoreRepo) List(ctx context.Context) ([]store.Store, error) {
	return s.stores, nil
}

func (s *stubStoreRepo) Update(ctx context.Context, st store.Store) error { return nil }
func (s *stubStoreRepo) Delete(ctx context.Context, id string) error      { return nil }

type stubPreferenceRepo struct {
	byPeriod map[string][]preference.ShiftPreference
}

func periodKey(year, month int) string {
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).Format("2006-01")
}

func (s *stubPreferenceRepo) Create(ctx context.Context, p preference.ShiftPreference) (preference.ShiftPreference, error) {
	return p, nil
}

func (s *stubPreferenceRepo) GetByID(ctx context.Context, id string) (preference.ShiftPreference, error) {
	return preference.ShiftPreference{}, preference.ErrPreferenceNotFound
}

func (s *stubPreferenceRepo) GetByEmployeeAndPeriod(ctx context.Context, employeeID string, year, month int) (*preference.ShiftPreference, error) {
	return nil, nil
}

func (s *stubPreferenceRepo) ListByPeriod(ctx context.Context, year, month int) ([]preference.ShiftPreference, error) {
	return s.byPeriod[periodKey(year, month)], nil
}

func (s *stubPreferenceRepo) Update(ctx context.Context, p preference.ShiftPreference) error {
	return nil
}

func (s *stubPreferenceRepo) Delete(ctx context.Context, id string) error { return nil }

type stubEventRepo struct {
	events []event.Event
}

func (s *stubEventRepo) Create(ctx context.Context, e event.Event) (event.Event, error) {
	return e, nil
}

func (s *stubEventRepo) GetByID(ctx context.Context, id string) (event.Event, error) {
	return event.Event{}, event.ErrEventNotFound
}

func (s *stubEventRepo) List(ctx context.Context) ([]event.Event, error) {
	return s.events, nil
}

func (s *stubEventRepo) ListOverlapping(ctx context.Context, from, to time.Time) ([]event.Event, error) {
	return s.events, nil
}

func (s *stubEventRepo) Update(ctx context.Context, e event.Event) error { return nil }
func (s *stubEventRepo) Delete(ctx context.Context, id string) error     { return nil }

type stubConstraintRepo struct {
	constraints []generation.RelationshipConstraint
}

func (s *stubConstraintRepo) Create(ctx context.Context, c generation.RelationshipConstraint) (generation.RelationshipConstraint, error) {
	c.ID = "con-1"
	s.constraints = append(s.constraints, c)
	return c, nil
}

func (s *stubConstraintRepo) List(ctx context.Context) ([]generation.RelationshipConstraint, error) {
	return s.constraints, nil
}

func (s *stubConstraintRepo) ListConstraints(ctx context.Context) ([]generation.RelationshipConstraint, error) {
	return s.constraints, nil
}

func (s *stubConstraintRepo) Delete(ctx context.Context, id string) error { return nil }

// stubGenerator returns a canned candidate schedule or a canned failure.
type stubGenerator struct {
	assignments []generation.ProposedAssignment
	err         error
}

func (s *stubGenerator) Generate(ctx context.Context, pkg generation.Package) ([]generation.ProposedAssignment, error) {
	return s.assignments, s.err
}

// stubShiftService records the batch it was asked to persist.
type stubShiftService struct {
	shift.ShiftService

	lastBatch shift.BatchCreateShiftsRequest
}

func (s *stubShiftService) CreateShifts(ctx context.Context, req shift.BatchCreateShiftsRequest) ([]shift.ShiftResponse, error) {
	s.lastBatch = req

	responses := make([]shift.ShiftResponse, 0, len(req.Shifts))
	for i, sh := range req.Shifts {
		responses = append(responses, shift.ShiftResponse{
			ID:         string(rune('a' + i)),
			EmployeeID: sh.EmployeeID,
			StoreID:    sh.StoreID,
			Date:       sh.Date,
			StartTime:  sh.StartTime,
			EndTime:    sh.EndTime,
			Status:     string(shift.StatusPlanned),
		})
	}
	return responses, nil
}

type generationFixture struct {
	employeeRepo   *stubEmployeeRepo
	constraintRepo *stubConstraintRepo
	generator      *stubGenerator
	shiftService   *stubShiftService
	service        generation.GenerationService
}

func newGenerationFixture(gen *stubGenerator) *generationFixture {
	employeeRepo := &stubEmployeeRepo{employees: []employee.Employee{
		{ID: "emp-1", Name: "Aoki"},
		{ID: "emp-2", Name: "Tanaka"},
	}}
	constraintRepo := &stubConstraintRepo{}
	shiftService := &stubShiftService{}

	svc := NewGenerationService(
		employeeRepo,
		&stubStoreRepo{stores: []store.Store{{ID: "store-1", Name: "Honten"}}},
		&stubPreferenceRepo{byPeriod: map[string][]preference.ShiftPreference{
			periodKey(2025, 6): {{EmployeeID: "emp-1", Year: 2025, Month: 6}},
			periodKey(2025, 7): {{EmployeeID: "emp-2", Year: 2025, Month: 7}},
		}},
		&stubEventRepo{},
		constraintRepo,
		constraintRepo,
		gen,
		shiftService,
	)

	return &generationFixture{
		employeeRepo:   employeeRepo,
		constraintRepo: constraintRepo,
		generator:      gen,
		shiftService:   shiftService,
		service:        svc,
	}
}

func TestBuildPackage_CollectsAllInputs(t *testing.T) {
	ctx := context.Background()
	f := newGenerationFixture(&stubGenerator{})
	f.constraintRepo.constraints = []generation.RelationshipConstraint{
		{ID: "con-1", EmployeeA: "emp-1", EmployeeB: "emp-2"},
	}

	pkg, err := f.service.BuildPackage(ctx, generation.GenerateScheduleRequest{
		StartDate: "2025-06-16",
		EndDate:   "2025-07-05",
	})

	require.NoError(t, err)
	assert.Len(t, pkg.Employees, 2)
	assert.Len(t, pkg.Stores, 1)
	assert.Len(t, pkg.Constraints, 1)
	// Range spans June and July, so both monthly submissions are included.
	assert.Len(t, pkg.Preferences, 2)
}

func TestBuildPackage_RejectsInvertedRange(t *testing.T) {
	ctx := context.Background()
	f := newGenerationFixture(&stubGenerator{})

	_, err := f.service.BuildPackage(ctx, generation.GenerateScheduleRequest{
		StartDate: "2025-07-01",
		EndDate:   "2025-06-01",
	})
	assert.Error(t, err)
}

func TestGenerateSchedule_PersistsValidOutput(t *testing.T) {
	ctx := context.Background()
	f := newGenerationFixture(&stubGenerator{assignments: []generation.ProposedAssignment{
		{EmployeeID: "emp-1", StoreID: "store-1", Date: "2025-06-17", StartTime: "09:00", EndTime: "17:00"},
		{EmployeeID: "emp-2", StoreID: "store-1", Date: "2025-06-30", StartTime: "13:00", EndTime: "21:00"},
	}})

	resp, err := f.service.GenerateSchedule(ctx, generation.GenerateScheduleRequest{
		StartDate: "2025-06-16",
		EndDate:   "2025-06-30",
	})

	require.NoError(t, err)
	assert.Len(t, resp.Shifts, 2)
	require.Len(t, f.shiftService.lastBatch.Shifts, 2)
	assert.Equal(t, "emp-1", f.shiftService.lastBatch.Shifts[0].EmployeeID)
	assert.Equal(t, "09:00", f.shiftService.lastBatch.Shifts[0].StartTime)
}

func TestGenerateSchedule_RejectsEmptyOutput(t *testing.T) {
	ctx := context.Background()
	f := newGenerationFixture(&stubGenerator{assignments: nil})

	_, err := f.service.GenerateSchedule(ctx, generation.GenerateScheduleRequest{
		StartDate: "2025-06-16",
		EndDate:   "2025-06-30",
	})
	assert.ErrorIs(t, err, generation.ErrInvalidGenerationResult)
	assert.Empty(t, f.shiftService.lastBatch.Shifts)
}

func TestGenerateSchedule_RejectsBadReferences(t *testing.T) {
	tests := []struct {
		name       string
		assignment generation.ProposedAssignment
	}{
		{
			"unknown employee",
			generation.ProposedAssignment{EmployeeID: "ghost", StoreID: "store-1", Date: "2025-06-17", StartTime: "09:00", EndTime: "17:00"},
		},
		{
			"unknown store",
			generation.ProposedAssignment{EmployeeID: "emp-1", StoreID: "nowhere", Date: "2025-06-17", StartTime: "09:00", EndTime: "17:00"},
		},
		{
			"malformed date",
			generation.ProposedAssignment{EmployeeID: "emp-1", StoreID: "store-1", Date: "17/06/2025", StartTime: "09:00", EndTime: "17:00"},
		},
		{
			"date before range",
			generation.ProposedAssignment{EmployeeID: "emp-1", StoreID: "store-1", Date: "2025-06-01", StartTime: "09:00", EndTime: "17:00"},
		},
		{
			"date after range",
			generation.ProposedAssignment{EmployeeID: "emp-1", StoreID: "store-1", Date: "2025-07-01", StartTime: "09:00", EndTime: "17:00"},
		},
		{
			"malformed time",
			generation.ProposedAssignment{EmployeeID: "emp-1", StoreID: "store-1", Date: "2025-06-17", StartTime: "9am", EndTime: "17:00"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			f := newGenerationFixture(&stubGenerator{assignments: []generation.ProposedAssignment{tt.assignment}})

			_, err := f.service.GenerateSchedule(ctx, generation.GenerateScheduleRequest{
				StartDate: "2025-06-16",
				EndDate:   "2025-06-30",
			})
			assert.ErrorIs(t, err, generation.ErrInvalidGenerationResult)
			assert.Empty(t, f.shiftService.lastBatch.Shifts)
		})
	}
}

func TestGenerateSchedule_GeneratorFailure(t *testing.T) {
	ctx := context.Background()
	f := newGenerationFixture(&stubGenerator{err: errors.New("upstream timeout")})

	_, err := f.service.GenerateSchedule(ctx, generation.GenerateScheduleRequest{
		StartDate: "2025-06-16",
		EndDate:   "2025-06-30",
	})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, generation.ErrInvalidGenerationResult)
}

func TestCreateConstraint(t *testing.T) {
	ctx := context.Background()
	f := newGenerationFixture(&stubGenerator{})

	created, err := f.service.CreateConstraint(ctx, generation.CreateConstraintRequest{
		EmployeeA: "emp-1",
		EmployeeB: "emp-2",
		Reason:    "former partners",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.True(t, created.Matches("emp-2", "emp-1"))
}

func TestCreateConstraint_UnknownEmployee(t *testing.T) {
	ctx := context.Background()
	f := newGenerationFixture(&stubGenerator{})

	_, err := f.service.CreateConstraint(ctx, generation.CreateConstraintRequest{
		EmployeeA: "emp-1",
		EmployeeB: "ghost",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestCreateConstraint_SamePairRejected(t *testing.T) {
	ctx := context.Background()
	f := newGenerationFixture(&stubGenerator{})

	_, err := f.service.CreateConstraint(ctx, generation.CreateConstraintRequest{
		EmployeeA: "emp-1",
		EmployeeB: "emp-1",
	})
	assert.Error(t, err)
}

func TestEmptyConstraintProvider(t *testing.T) {
	constraints, err := generation.EmptyConstraintProvider{}.ListConstraints(context.Background())
	require.NoError(t, err)
	assert.Empty(t, constraints)
}
