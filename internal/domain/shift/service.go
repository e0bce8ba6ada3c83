package shift

import "context"

type ShiftService interface {
	CreateShift(ctx context.Context, req CreateShiftRequest) (ShiftResponse, error)

	// CreateShifts persists a batch atomically; the returned responses carry
	// the identities assigned before the commit.
	CreateShifts(ctx context.Context, req BatchCreateShiftsRequest) ([]ShiftResponse, error)

	GetShift(ctx context.Context, id string) (ShiftResponse, error)
	ListShiftsByMonth(ctx context.Context, year, month int, filter ShiftFilter) ([]ShiftResponse, error)
	ListShiftsByRange(ctx context.Context, from, to string, filter ShiftFilter) ([]ShiftResponse, error)

	// CompleteShift is the only supported status transition: planned -> completed.
	CompleteShift(ctx context.Context, id string) (ShiftResponse, error)

	DeleteShift(ctx context.Context, id string) error
}
