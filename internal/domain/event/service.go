package event

import "context"

type EventService interface {
	CreateEvent(ctx context.Context, req CreateEventRequest) (EventResponse, error)
	GetEvent(ctx context.Context, id string) (EventResponse, error)
	ListEvents(ctx context.Context) ([]EventResponse, error)
	ListEventsInRange(ctx context.Context, from, to string) ([]EventResponse, error)
	UpdateEvent(ctx context.Context, req UpdateEventRequest) (EventResponse, error)
	DeleteEvent(ctx context.Context, id string) error
}
