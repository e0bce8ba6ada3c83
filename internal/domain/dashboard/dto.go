package dashboard

import (
	"github.com/shiftnavi/shiftnavi-backend-go/internal/domain/attendance"
	"github.com/shiftnavi/shiftnavi-backend-go/internal/domain/event"
	"github.com/shiftnavi/shiftnavi-backend-go/internal/domain/seasonal"
)

type DashboardResponse struct {
	UpcomingEvents     []event.EventResponse           `json:"upcoming_events"`
	SeasonalHighlights []seasonal.HighlightResponse    `json:"seasonal_highlights"`
	AreasInBestPeriod  []seasonal.AreaInPeriodResponse `json:"areas_in_best_period"`
	AttendanceSummary  attendance.PeriodStats          `json:"attendance_summary"`
}
