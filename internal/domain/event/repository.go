package event

import (
	"context"
	"time"
)

type EventRepository interface {
	Create(ctx context.Context, e Event) (Event, error)
	GetByID(ctx context.Context, id string) (Event, error)
	List(ctx context.Context) ([]Event, error)

	// ListOverlapping returns events whose inclusive date range intersects
	// [from, to], ordered by start date ascending, then insertion order.
	ListOverlapping(ctx context.Context, from, to time.Time) ([]Event, error)

	Update(ctx context.Context, e Event) error
	Delete(ctx context.Context, id string) error
}
