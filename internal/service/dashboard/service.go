package dashboard

import (
	"context"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/shiftnavi/shiftnavi-backend-go/internal/domain/attendance"
	"github.com/shiftnavi/shiftnavi-backend-go/internal/domain/dashboard"
	"github.com/shiftnavi/shiftnavi-backend-go/internal/domain/event"
	"github.com/shiftnavi/shiftnavi-backend-go/internal/domain/seasonal"
	"github.com/shiftnavi/shiftnavi-backend-go/internal/pkg/clock"
	"github.com/shiftnavi/shiftnavi-backend-go/internal/pkg/timeutil"

	eventsvc "github.com/shiftnavi/shiftnavi-backend-go/internal/service/event"
	seasonalsvc "github.com/shiftnavi/shiftnavi-backend-go/internal/service/seasonal"
)

const maxHighlightAreas = 3

type DashboardServiceImpl struct {
	eventRepo         event.EventRepository
	seasonalRepo      seasonal.SeasonalRepository
	attendanceService attendance.AttendanceService
	clock             clock.Clock
}

func NewDashboardService(
	eventRepo event.EventRepository,
	seasonalRepo seasonal.SeasonalRepository,
	attendanceService attendance.AttendanceService,
	clk clock.Clock,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		eventRepo:         eventRepo,
		seasonalRepo:      seasonalRepo,
		attendanceService: attendanceService,
		clock:             clk,
	}
}

// GetDashboard implements dashboard.DashboardService. The three sources are
// independent, so they are fetched concurrently and composed at the end.
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context, storeID string, days int) (dashboard.DashboardResponse, error) {
	now := s.clock.Now()
	today := timeutil.TruncateToDay(now)

	resp := dashboard.DashboardResponse{
		UpcomingEvents:     []event.EventResponse{},
		SeasonalHighlights: []seasonal.HighlightResponse{},
		AreasInBestPeriod:  []seasonal.AreaInPeriodResponse{},
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		events, err := s.eventRepo.ListOverlapping(gctx, today, timeutil.EndOfDay(today.AddDate(0, 0, days)))
		if err != nil {
			return fmt.Errorf("failed to list upcoming events: %w", err)
		}
		for _, ev := range events {
			resp.UpcomingEvents = append(resp.UpcomingEvents, eventsvc.MapEventToResponse(ev))
		}
		return nil
	})

	g.Go(func() error {
		infos, err := s.seasonalRepo.List(gctx)
		if err != nil {
			return fmt.Errorf("failed to list seasonal infos: %w", err)
		}
		resp.SeasonalHighlights = buildHighlights(infos)
		resp.AreasInBestPeriod = areasInPeriod(infos, today)
		return nil
	})

	g.Go(func() error {
		stats, err := s.attendanceService.GetStoreMonthlyStats(gctx, storeID, now.Year(), int(now.Month()))
		if err != nil {
			return fmt.Errorf("failed to get attendance summary: %w", err)
		}
		resp.AttendanceSummary = stats
		return nil
	})

	if err := g.Wait(); err != nil {
		return dashboard.DashboardResponse{}, err
	}
	return resp, nil
}

// GetUpcomingEvents implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetUpcomingEvents(ctx context.Context, days int) ([]dashboard.UpcomingEvent, error) {
	today := timeutil.TruncateToDay(s.clock.Now())

	events, err := s.eventRepo.ListOverlapping(ctx, today, timeutil.EndOfDay(today.AddDate(0, 0, days)))
	if err != nil {
		return nil, fmt.Errorf("failed to list upcoming events: %w", err)
	}

	upcoming := make([]dashboard.UpcomingEvent, 0, len(events))
	for _, ev := range events {
		upcoming = append(upcoming, dashboard.UpcomingEvent{
			ID:                 ev.ID,
			Name:               ev.Name,
			StartDate:          ev.StartDate.Format("2006-01-02"),
			EndDate:            ev.EndDate.Format("2006-01-02"),
			CustomerPrediction: ev.CustomerPrediction,
		})
	}
	return upcoming, nil
}

// buildHighlights keeps the most recently updated record per seasonal type
// and trims each to its first areas. Stable sort keeps insertion order for
// records updated at the same instant.
func buildHighlights(infos []seasonal.SeasonalInfo) []seasonal.HighlightResponse {
	sorted := make([]seasonal.SeasonalInfo, len(infos))
	copy(sorted, infos)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].UpdatedAt.After(sorted[j].UpdatedAt)
	})

	seen := make(map[seasonal.InfoType]bool)
	highlights := []seasonal.HighlightResponse{}
	for _, info := range sorted {
		if seen[info.Type] {
			continue
		}
		seen[info.Type] = true

		areas := info.Areas
		if len(areas) > maxHighlightAreas {
			areas = areas[:maxHighlightAreas]
		}
		areaResponses := make([]seasonal.AreaResponse, 0, len(areas))
		for _, area := range areas {
			areaResponses = append(areaResponses, seasonalsvc.MapAreaToResponse(area))
		}

		highlights = append(highlights, seasonal.HighlightResponse{
			Type:      string(info.Type),
			Name:      info.Name,
			Progress:  info.Progress,
			Areas:     areaResponses,
			UpdatedAt: info.UpdatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return highlights
}

// areasInPeriod flattens every area whose viewing range covers today,
// preserving record order then area order.
func areasInPeriod(infos []seasonal.SeasonalInfo, today time.Time) []seasonal.AreaInPeriodResponse {
	inPeriod := []seasonal.AreaInPeriodResponse{}
	for _, info := range infos {
		for _, area := range info.Areas {
			if !area.InViewingPeriod(today) {
				continue
			}
			inPeriod = append(inPeriod, seasonal.AreaInPeriodResponse{
				SeasonalInfoID:   info.ID,
				SeasonalInfoName: info.Name,
				AreaName:         area.Name,
				Status:           area.Status,
				ViewingStart:     area.ViewingStart.Format("2006-01-02"),
				ViewingEnd:       area.ViewingEnd.Format("2006-01-02"),
			})
		}
	}
	return inPeriod
}
