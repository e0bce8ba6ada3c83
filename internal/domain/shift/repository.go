package shift

import (
	"context"
	"time"
)

type ShiftRepository interface {
	Create(ctx context.Context, s Shift) (Shift, error)

	// CreateBatch persists all shifts in a single transaction; IDs must be
	// assigned by the caller before the commit.
	CreateBatch(ctx context.Context, shifts []Shift) error

	GetByID(ctx context.Context, id string) (Shift, error)

	// ListByDateRange returns shifts whose date falls inside the closed
	// interval [from, to].
	ListByDateRange(ctx context.Context, from, to time.Time, filter ShiftFilter) ([]Shift, error)

	Update(ctx context.Context, s Shift) error
	Delete(ctx context.Context, id string) error
}
