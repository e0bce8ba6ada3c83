package dashboard

import "context"

type DashboardService interface {
	// GetDashboard composes the cross-cutting summary: events overlapping
	// [today, today+days], one highlight per seasonal type, areas currently
	// in their best-viewing period, and this month's attendance aggregates
	// for a store.
	GetDashboard(ctx context.Context, storeID string, days int) (DashboardResponse, error)

	GetUpcomingEvents(ctx context.Context, days int) ([]UpcomingEvent, error)
}

// UpcomingEvent re-exports the event fields the dashboard shows.
type UpcomingEvent struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	StartDate          string `json:"start_date"`
	EndDate            string `json:"end_date"`
	CustomerPrediction int    `json:"customer_prediction"`
}
