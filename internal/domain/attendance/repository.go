package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	Create(ctx context.Context, att Attendance) (Attendance, error)
	GetByID(ctx context.Context, id string) (Attendance, error)

	// GetByEmployeeAndDate returns nil without error when no record exists
	// for that employee on that calendar date. Used to prevent double
	// clock-in.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)

	// ListByEmployeeAndRange returns records whose date falls inside the
	// closed interval [from, to].
	ListByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]Attendance, error)

	// ListByStoreAndRange is the store-scoped variant of the range query.
	ListByStoreAndRange(ctx context.Context, storeID string, from, to time.Time) ([]Attendance, error)

	Update(ctx context.Context, att Attendance) error
	Delete(ctx context.Context, id string) error
}
