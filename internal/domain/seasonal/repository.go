package seasonal

import "context"

type SeasonalRepository interface {
	Create(ctx context.Context, info SeasonalInfo) (SeasonalInfo, error)
	GetByID(ctx context.Context, id string) (SeasonalInfo, error)
	List(ctx context.Context) ([]SeasonalInfo, error)

	// Update refreshes UpdatedAt on every save.
	Update(ctx context.Context, info SeasonalInfo) error
	Delete(ctx context.Context, id string) error
}
