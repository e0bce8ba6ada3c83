package preference

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftnavi/shiftnavi-backend-go/internal/domain/employee"
	"github.com/shiftnavi/shiftnavi-backend-go/internal/domain/preference"
	"github.com/shiftnavi/shiftnavi-backend-go/internal/pkg/clock"
)

type fakePreferenceRepo struct {
	prefs  map[string]preference.ShiftPreference
	nextID int
}

func newFakePreferenceRepo() *fakePreferenceRepo {
	return &fakePreferenceRepo{prefs: make(map[string]preference.ShiftPreference)}
}

func (f *fakePreferenceRepo) Create(ctx context.Context, p preference.ShiftPreference) (preference.ShiftPreference, error) {
	f.nextID++
	p.ID = fmt.Sprintf("pref-%d", f.nextID)
	f.prefs[p.ID] = p
	return p, nil
}

func (f *fakePreferenceRepo) GetByID(ctx context.Context, id string) (preference.ShiftPreference, error) {
	p, ok := f.prefs[id]
	if !ok {
		return preference.ShiftPreference{}, preference.ErrPreferenceNotFound
	}
	return p, nil
}

func (f *fakePreferenceRepo) GetByEmployeeAndPeriod(ctx context.Context, employeeID string, year, month int) (*preference.ShiftPreference, error) {
	for _, p := range f.prefs {
		if p.EmployeeID == employeeID && p.Year == year && p.Month == month {
			found := p
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakePreferenceRepo) ListByPeriod(ctx context.Context, year, month int) ([]preference.ShiftPreference, error) {
	var result []preference.ShiftPreference
	for _, p := range f.prefs {
		if p.Year == year && p.Month == month {
			result = append(result, p)
		}
	}
	return result, nil
}

func (f *fakePreferenceRepo) Update(ctx context.Context, p preference.ShiftPreference) error {
	if _, ok := f.prefs[p.ID]; !ok {
		return preference.ErrPreferenceNotFound
	}
	f.prefs[p.ID] = p
	return nil
}

func (f *fakePreferenceRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.prefs[id]; !ok {
		return preference.ErrPreferenceNotFound
	}
	delete(f.prefs, id)
	return nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func newFakeEmployeeRepo(ids ...string) *fakeEmployeeRepo {
	f := &fakeEmployeeRepo{employees: make(map[string]employee.Employee)}
	for _, id := range ids {
		f.employees[id] = employee.Employee{ID: id, Name: "Employee " + id, Role: employee.RoleEmployee}
	}
	return f
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	f.employees[emp.ID] = emp
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByEmail(ctx context.Context, email string) (*employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, error) {
	var result []employee.Employee
	for _, emp := range f.employees {
		if filter.Role != nil && string(emp.Role) != *filter.Role {
			continue
		}
		result = append(result, emp)
	}
	return result, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, emp employee.Employee) error { return nil }
func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string) error             { return nil }

func TestSubmitPreference_CreatesNewSubmission(t *testing.T) {
	ctx := context.Background()
	repo := newFakePreferenceRepo()
	clk := clock.Fixed(time.Date(2025, 5, 20, 10, 0, 0, 0, time.Local))
	svc := NewPreferenceService(repo, newFakeEmployeeRepo("emp-1"), clk)

	resp, err := svc.SubmitPreference(ctx, preference.SubmitPreferenceRequest{
		EmployeeID:         "emp-1",
		Year:               2025,
		Month:              6,
		DesiredDaysPerWeek: 4,
		PreferredWeekdays:  []string{"monday", "friday"},
		UnavailableDates:   []string{"2025-06-10"},
	})

	require.NoError(t, err)
	assert.Equal(t, 4, resp.DesiredDaysPerWeek)
	assert.Equal(t, []string{"2025-06-10"}, resp.UnavailableDates)
	assert.Equal(t, "2025-05-20 10:00:00", resp.SubmittedAt)
}

func TestSubmitPreference_ResubmissionReplacesInPlace(t *testing.T) {
	ctx := context.Background()
	repo := newFakePreferenceRepo()
	clk := clock.Fixed(time.Date(2025, 5, 20, 10, 0, 0, 0, time.Local))
	svc := NewPreferenceService(repo, newFakeEmployeeRepo("emp-1"), clk)

	first, err := svc.SubmitPreference(ctx, preference.SubmitPreferenceRequest{
		EmployeeID: "emp-1", Year: 2025, Month: 6, DesiredDaysPerWeek: 3,
	})
	require.NoError(t, err)

	clk.Set(time.Date(2025, 5, 25, 9, 0, 0, 0, time.Local))
	second, err := svc.SubmitPreference(ctx, preference.SubmitPreferenceRequest{
		EmployeeID: "emp-1", Year: 2025, Month: 6, DesiredDaysPerWeek: 5,
	})
	require.NoError(t, err)

	// Same record, new content and timestamp
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 5, second.DesiredDaysPerWeek)
	assert.Equal(t, "2025-05-25 09:00:00", second.SubmittedAt)
	assert.Len(t, repo.prefs, 1)
}

func TestSubmitPreference_DeduplicatesUnavailableDates(t *testing.T) {
	ctx := context.Background()
	clk := clock.Fixed(time.Date(2025, 5, 20, 10, 0, 0, 0, time.Local))
	svc := NewPreferenceService(newFakePreferenceRepo(), newFakeEmployeeRepo("emp-1"), clk)

	resp, err := svc.SubmitPreference(ctx, preference.SubmitPreferenceRequest{
		EmployeeID:       "emp-1",
		Year:             2025,
		Month:            6,
		UnavailableDates: []string{"2025-06-10", "2025-06-10", "2025-06-12"},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"2025-06-10", "2025-06-12"}, resp.UnavailableDates)
}

func TestSubmitPreference_UnknownEmployee(t *testing.T) {
	ctx := context.Background()
	svc := NewPreferenceService(newFakePreferenceRepo(), newFakeEmployeeRepo(), clock.Fixed(time.Now()))

	_, err := svc.SubmitPreference(ctx, preference.SubmitPreferenceRequest{
		EmployeeID: "ghost", Year: 2025, Month: 6,
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestSubmitPreference_InvalidMonth(t *testing.T) {
	ctx := context.Background()
	svc := NewPreferenceService(newFakePreferenceRepo(), newFakeEmployeeRepo("emp-1"), clock.Fixed(time.Now()))

	_, err := svc.SubmitPreference(ctx, preference.SubmitPreferenceRequest{
		EmployeeID: "emp-1", Year: 2025, Month: 13,
	})
	assert.Error(t, err)
}

func TestGetPreference_NotFound(t *testing.T) {
	ctx := context.Background()
	svc := NewPreferenceService(newFakePreferenceRepo(), newFakeEmployeeRepo("emp-1"), clock.Fixed(time.Now()))

	_, err := svc.GetPreference(ctx, "emp-1", 2025, 6)
	assert.ErrorIs(t, err, preference.ErrPreferenceNotFound)
}

func TestGetSubmissionStatus(t *testing.T) {
	ctx := context.Background()
	repo := newFakePreferenceRepo()
	empRepo := newFakeEmployeeRepo("emp-1", "emp-2", "emp-3")
	empRepo.employees["adm-1"] = employee.Employee{ID: "adm-1", Name: "Manager", Role: employee.RoleAdmin}
	clk := clock.Fixed(time.Date(2025, 5, 20, 10, 0, 0, 0, time.Local))
	svc := NewPreferenceService(repo, empRepo, clk)

	_, err := svc.SubmitPreference(ctx, preference.SubmitPreferenceRequest{
		EmployeeID: "emp-2", Year: 2025, Month: 6, DesiredDaysPerWeek: 4,
	})
	require.NoError(t, err)

	report, err := svc.GetSubmissionStatus(ctx, 2025, 6)
	require.NoError(t, err)

	assert.Equal(t, 3, report.TotalEmployees)
	assert.Equal(t, 1, report.SubmittedCount)
	assert.Equal(t, 2, report.PendingCount)

	byID := make(map[string]bool)
	for _, entry := range report.Entries {
		byID[entry.EmployeeID] = entry.Submitted
	}
	assert.True(t, byID["emp-2"])
	assert.False(t, byID["emp-1"])
}
