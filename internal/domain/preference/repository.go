package preference

import "context"

type PreferenceRepository interface {
	Create(ctx context.Context, p ShiftPreference) (ShiftPreference, error)
	GetByID(ctx context.Context, id string) (ShiftPreference, error)

	// GetByEmployeeAndPeriod returns nil without error when no submission
	// exists for that (employee, year, month).
	GetByEmployeeAndPeriod(ctx context.Context, employeeID string, year, month int) (*ShiftPreference, error)

	ListByPeriod(ctx context.Context, year, month int) ([]ShiftPreference, error)
	Update(ctx context.Context, p ShiftPreference) error
	Delete(ctx context.Context, id string) error
}
