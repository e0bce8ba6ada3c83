package shift

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftnavi/shiftnavi-backend-go/internal/domain/shift"
)

type fakeShiftRepo struct {
	shifts map[string]shift.Shift
	nextID int
}

func newFakeShiftRepo() *fakeShiftRepo {
	return &fakeShiftRepo{shifts: make(map[string]shift.Shift)}
}

func (f *fakeShiftRepo) Create(ctx context.Context, s shift.Shift) (shift.Shift, error) {
	f.nextID++
	s.ID = fmt.Sprintf("shift-%d", f.nextID)
	now := time.Now()
	s.CreatedAt = now
	s.UpdatedAt = now
	f.shifts[s.ID] = s
	return s, nil
}

func (f *fakeShiftRepo) CreateBatch(ctx context.Context, shifts []shift.Shift) error {
	for _, s := range shifts {
		if s.ID == "" {
			return fmt.Errorf("batch insert requires pre-assigned ids")
		}
		f.shifts[s.ID] = s
	}
	return nil
}

func (f *fakeShiftRepo) GetByID(ctx context.Context, id string) (shift.Shift, error) {
	s, ok := f.shifts[id]
	if !ok {
		return shift.Shift{}, shift.ErrShiftNotFound
	}
	return s, nil
}

func (f *fakeShiftRepo) ListByDateRange(ctx context.Context, from, to time.Time, filter shift.ShiftFilter) ([]shift.Shift, error) {
	var result []shift.Shift
	for _, s := range f.shifts {
		if s.Date.Before(from) || s.Date.After(to) {
			continue
		}
		if filter.EmployeeID != nil && s.EmployeeID != *filter.EmployeeID {
			continue
		}
		if filter.StoreID != nil && s.StoreID != *filter.StoreID {
			continue
		}
		if filter.Status != nil && string(s.Status) != *filter.Status {
			continue
		}
		result = append(result, s)
	}
	return result, nil
}

func (f *fakeShiftRepo) Update(ctx context.Context, s shift.Shift) error {
	if _, ok := f.shifts[s.ID]; !ok {
		return shift.ErrShiftNotFound
	}
	f.shifts[s.ID] = s
	return nil
}

func (f *fakeShiftRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.shifts[id]; !ok {
		return shift.ErrShiftNotFound
	}
	delete(f.shifts, id)
	return nil
}

func validCreateRequest() shift.CreateShiftRequest {
	return shift.CreateShiftRequest{
		EmployeeID: "emp-1",
		StoreID:    "store-1",
		Date:       "2025-06-16",
		StartTime:  "09:00",
		EndTime:    "17:30",
	}
}

func TestCreateShift(t *testing.T) {
	ctx := context.Background()
	svc := NewShiftService(newFakeShiftRepo())

	resp, err := svc.CreateShift(ctx, validCreateRequest())

	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, string(shift.StatusPlanned), resp.Status)
	assert.Equal(t, 510, resp.DurationMinutes)
}

func TestCreateShift_InvalidTime(t *testing.T) {
	ctx := context.Background()
	svc := NewShiftService(newFakeShiftRepo())

	req := validCreateRequest()
	req.StartTime = "9am"

	_, err := svc.CreateShift(ctx, req)
	assert.Error(t, err)
}

func TestCreateShifts_AssignsUniqueIDs(t *testing.T) {
	ctx := context.Background()
	repo := newFakeShiftRepo()
	svc := NewShiftService(repo)

	req := shift.BatchCreateShiftsRequest{Shifts: []shift.CreateShiftRequest{
		validCreateRequest(),
		{EmployeeID: "emp-2", StoreID: "store-1", Date: "2025-06-16", StartTime: "13:00", EndTime: "21:00"},
	}}

	responses, err := svc.CreateShifts(ctx, req)

	require.NoError(t, err)
	require.Len(t, responses, 2)
	assert.NotEmpty(t, responses[0].ID)
	assert.NotEmpty(t, responses[1].ID)
	assert.NotEqual(t, responses[0].ID, responses[1].ID)
	assert.Len(t, repo.shifts, 2)
}

func TestCreateShifts_EmptyBatchRejected(t *testing.T) {
	ctx := context.Background()
	svc := NewShiftService(newFakeShiftRepo())

	_, err := svc.CreateShifts(ctx, shift.BatchCreateShiftsRequest{})
	assert.Error(t, err)
}

func TestCompleteShift(t *testing.T) {
	ctx := context.Background()
	repo := newFakeShiftRepo()
	svc := NewShiftService(repo)

	created, err := svc.CreateShift(ctx, validCreateRequest())
	require.NoError(t, err)

	completed, err := svc.CompleteShift(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, string(shift.StatusCompleted), completed.Status)

	_, err = svc.CompleteShift(ctx, created.ID)
	assert.ErrorIs(t, err, shift.ErrShiftAlreadyComplete)
}

func TestCompleteShift_NotFound(t *testing.T) {
	ctx := context.Background()
	svc := NewShiftService(newFakeShiftRepo())

	_, err := svc.CompleteShift(ctx, "missing")
	assert.ErrorIs(t, err, shift.ErrShiftNotFound)
}

func TestListShiftsByMonth_FiltersAndBounds(t *testing.T) {
	ctx := context.Background()
	repo := newFakeShiftRepo()
	svc := NewShiftService(repo)

	_, err := svc.CreateShift(ctx, validCreateRequest())
	require.NoError(t, err)
	_, err = svc.CreateShift(ctx, shift.CreateShiftRequest{
		EmployeeID: "emp-2", StoreID: "store-1", Date: "2025-06-30", StartTime: "13:00", EndTime: "21:00",
	})
	require.NoError(t, err)
	_, err = svc.CreateShift(ctx, shift.CreateShiftRequest{
		EmployeeID: "emp-1", StoreID: "store-1", Date: "2025-07-01", StartTime: "09:00", EndTime: "17:00",
	})
	require.NoError(t, err)

	all, err := svc.ListShiftsByMonth(ctx, 2025, 6, shift.ShiftFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	empID := "emp-1"
	mine, err := svc.ListShiftsByMonth(ctx, 2025, 6, shift.ShiftFilter{EmployeeID: &empID})
	require.NoError(t, err)
	assert.Len(t, mine, 1)
}

func TestListShiftsByRange_InvalidDates(t *testing.T) {
	ctx := context.Background()
	svc := NewShiftService(newFakeShiftRepo())

	_, err := svc.ListShiftsByRange(ctx, "June 1", "2025-06-30", shift.ShiftFilter{})
	assert.Error(t, err)
}

func TestDeleteShift_NotFound(t *testing.T) {
	ctx := context.Background()
	svc := NewShiftService(newFakeShiftRepo())

	err := svc.DeleteShift(ctx, "missing")
	assert.ErrorIs(t, err, shift.ErrShiftNotFound)
}
