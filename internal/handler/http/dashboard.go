package http

import (
	"net/http"
	"strconv"

	"github.com/shiftnavi/shiftnavi-backend-go/internal/domain/dashboard"
	"github.com/shiftnavi/shiftnavi-backend-go/internal/handler/http/response"
)

const defaultUpcomingDays = 30

type DashboardHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	UpcomingEvents(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{
		dashboardService: dashboardService,
	}
}

func parseDays(r *http.Request) int {
	days := defaultUpcomingDays
	if v := r.URL.Query().Get("days"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			days = parsed
		}
	}
	return days
}

// Get implements DashboardHandler.
func (h *dashboardHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	storeID := r.URL.Query().Get("store_id")
	if storeID == "" {
		response.BadRequest(w, "store_id query parameter is required", nil)
		return
	}

	result, err := h.dashboardService.GetDashboard(r.Context(), storeID, parseDays(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpcomingEvents implements DashboardHandler.
func (h *dashboardHandlerImpl) UpcomingEvents(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetUpcomingEvents(r.Context(), parseDays(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
