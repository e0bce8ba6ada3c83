package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftnavi/shiftnavi-backend-go/internal/domain/attendance"
	"github.com/shiftnavi/shiftnavi-backend-go/internal/domain/event"
	"github.com/shiftnavi/shiftnavi-backend-go/internal/domain/seasonal"
	"github.com/shiftnavi/shiftnavi-backend-go/internal/pkg/clock"
)

type stubEventRepo struct {
	events []event.Event

	lastFrom time.Time
	lastTo   time.Time
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
	s.lastFrom = from
	s.lastTo = to
	return s.events, nil
}

func (s *stubEventRepo) Update(ctx context.Context, e event.Event) error { return nil }
func (s *stubEventRepo) Delete(ctx context.Context, id string) error     { return nil }

type stubSeasonalRepo struct {
	infos []seasonal.SeasonalInfo
}

func (s *stubSeasonalRepo) Create(ctx context.Context, info seasonal.SeasonalInfo) (seasonal.SeasonalInfo, error) {
	return info, nil
}

func (s *stubSeasonalRepo) GetByID(ctx context.Context, id string) (seasonal.SeasonalInfo, error) {
	return seasonal.SeasonalInfo{}, seasonal.ErrSeasonalInfoNotFound
}

func (s *stubSeasonalRepo) List(ctx context.Context) ([]seasonal.SeasonalInfo, error) {
	return s.infos, nil
}

func (s *stubSeasonalRepo) Update(ctx context.Context, info seasonal.SeasonalInfo) error { return nil }
func (s *stubSeasonalRepo) Delete(ctx context.Context, id string) error                  { return nil }

// stubAttendanceService only answers the store stats call the dashboard makes.
type stubAttendanceService struct {
	attendance.AttendanceService

	stats attendance.PeriodStats
}

func (s *stubAttendanceService) GetStoreMonthlyStats(ctx context.Context, storeID string, year, month int) (attendance.PeriodStats, error) {
	return s.stats, nil
}

func datePtr(year, month, day int) *time.Time {
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
	return &t
}

func TestGetDashboard_ComposesAllSections(t *testing.T) {
	ctx := context.Background()
	today := time.Date(2025, 4, 5, 10, 0, 0, 0, time.Local)

	eventRepo := &stubEventRepo{events: []event.Event{
		{
			ID:        "ev-1",
			Name:      "Spring Festival",
			StartDate: time.Date(2025, 4, 10, 0, 0, 0, 0, time.Local),
			EndDate:   time.Date(2025, 4, 12, 0, 0, 0, 0, time.Local),
		},
	}}
	seasonalRepo := &stubSeasonalRepo{infos: []seasonal.SeasonalInfo{
		{
			ID:   "si-1",
			Type: seasonal.TypeSakura,
			Name: "Sakura 2025",
			Areas: []seasonal.Area{
				{Name: "North Park", Status: "full bloom", ViewingStart: datePtr(2025, 4, 1), ViewingEnd: datePtr(2025, 4, 10)},
			},
			UpdatedAt: time.Date(2025, 4, 1, 8, 0, 0, 0, time.Local),
		},
	}}
	attendanceSvc := &stubAttendanceService{stats: attendance.PeriodStats{TotalDays: 20, TotalHours: 160}}

	svc := NewDashboardService(eventRepo, seasonalRepo, attendanceSvc, clock.Fixed(today))

	resp, err := svc.GetDashboard(ctx, "store-1", 30)
	require.NoError(t, err)

	assert.Len(t, resp.UpcomingEvents, 1)
	assert.Equal(t, "Spring Festival", resp.UpcomingEvents[0].Name)
	assert.Len(t, resp.SeasonalHighlights, 1)
	assert.Len(t, resp.AreasInBestPeriod, 1)
	assert.Equal(t, 20, resp.AttendanceSummary.TotalDays)

	// Event window starts at midnight today and covers the requested horizon.
	assert.Equal(t, time.Date(2025, 4, 5, 0, 0, 0, 0, time.Local), eventRepo.lastFrom)
	assert.Equal(t, 5, eventRepo.lastTo.Day())
	assert.Equal(t, time.May, eventRepo.lastTo.Month())
}

func TestBuildHighlights_MostRecentPerType(t *testing.T) {
	infos := []seasonal.SeasonalInfo{
		{
			ID:        "si-1",
			Type:      seasonal.TypeSakura,
			Name:      "Sakura old",
			UpdatedAt: time.Date(2025, 3, 1, 0, 0, 0, 0, time.Local),
		},
		{
			ID:        "si-2",
			Type:      seasonal.TypeSakura,
			Name:      "Sakura new",
			UpdatedAt: time.Date(2025, 4, 1, 0, 0, 0, 0, time.Local),
		},
		{
			ID:        "si-3",
			Type:      seasonal.TypeAzalea,
			Name:      "Azalea",
			UpdatedAt: time.Date(2025, 3, 15, 0, 0, 0, 0, time.Local),
		},
	}

	highlights := buildHighlights(infos)

	require.Len(t, highlights, 2)
	assert.Equal(t, "Sakura new", highlights[0].Name)
	assert.Equal(t, "Azalea", highlights[1].Name)
}

func TestBuildHighlights_TrimsAreas(t *testing.T) {
	infos := []seasonal.SeasonalInfo{
		{
			ID:   "si-1",
			Type: seasonal.TypeSakura,
			Name: "Sakura 2025",
			Areas: []seasonal.Area{
				{Name: "A"}, {Name: "B"}, {Name: "C"}, {Name: "D"}, {Name: "E"},
			},
			UpdatedAt: time.Date(2025, 4, 1, 0, 0, 0, 0, time.Local),
		},
	}

	highlights := buildHighlights(infos)

	require.Len(t, highlights, 1)
	require.Len(t, highlights[0].Areas, 3)
	assert.Equal(t, "A", highlights[0].Areas[0].Name)
	assert.Equal(t, "C", highlights[0].Areas[2].Name)
}

func TestBuildHighlights_StableForEqualTimestamps(t *testing.T) {
	ts := time.Date(2025, 4, 1, 0, 0, 0, 0, time.Local)
	infos := []seasonal.SeasonalInfo{
		{ID: "si-1", Type: seasonal.TypeSakura, Name: "First", UpdatedAt: ts},
		{ID: "si-2", Type: seasonal.TypeSakura, Name: "Second", UpdatedAt: ts},
	}

	highlights := buildHighlights(infos)

	require.Len(t, highlights, 1)
	assert.Equal(t, "First", highlights[0].Name)
}

func TestAreasInPeriod(t *testing.T) {
	today := time.Date(2025, 4, 5, 0, 0, 0, 0, time.Local)
	infos := []seasonal.SeasonalInfo{
		{
			ID:   "si-1",
			Name: "Sakura 2025",
			Areas: []seasonal.Area{
				{Name: "In period", Status: "full bloom", ViewingStart: datePtr(2025, 4, 1), ViewingEnd: datePtr(2025, 4, 10)},
				{Name: "Starts today", Status: "blooming", ViewingStart: datePtr(2025, 4, 5), ViewingEnd: datePtr(2025, 4, 20)},
				{Name: "Ended yesterday", Status: "fallen", ViewingStart: datePtr(2025, 3, 20), ViewingEnd: datePtr(2025, 4, 4)},
				{Name: "No range", Status: "budding"},
			},
		},
	}

	areas := areasInPeriod(infos, today)

	require.Len(t, areas, 2)
	assert.Equal(t, "In period", areas[0].AreaName)
	assert.Equal(t, "Starts today", areas[1].AreaName)
	assert.Equal(t, "2025-04-01", areas[0].ViewingStart)
	assert.Equal(t, "2025-04-10", areas[0].ViewingEnd)
}

func TestGetUpcomingEvents(t *testing.T) {
	ctx := context.Background()
	today := time.Date(2025, 4, 5, 10, 0, 0, 0, time.Local)

	eventRepo := &stubEventRepo{events: []event.Event{
		{
			ID:                 "ev-1",
			Name:               "Night Market",
			StartDate:          time.Date(2025, 4, 8, 0, 0, 0, 0, time.Local),
			EndDate:            time.Date(2025, 4, 9, 0, 0, 0, 0, time.Local),
			CustomerPrediction: 450,
		},
	}}
	svc := NewDashboardService(eventRepo, &stubSeasonalRepo{}, &stubAttendanceService{}, clock.Fixed(today))

	upcoming, err := svc.GetUpcomingEvents(ctx, 7)
	require.NoError(t, err)

	require.Len(t, upcoming, 1)
	assert.Equal(t, "Night Market", upcoming[0].Name)
	assert.Equal(t, "2025-04-08", upcoming[0].StartDate)
	assert.Equal(t, 450, upcoming[0].CustomerPrediction)
}
