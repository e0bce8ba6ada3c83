package seasonal

import "context"

type SeasonalService interface {
	CreateSeasonalInfo(ctx context.Context, req SaveSeasonalInfoRequest) (SeasonalInfoResponse, error)
	GetSeasonalInfo(ctx context.Context, id string) (SeasonalInfoResponse, error)
	ListSeasonalInfos(ctx context.Context) ([]SeasonalInfoResponse, error)
	UpdateSeasonalInfo(ctx context.Context, req SaveSeasonalInfoRequest) (SeasonalInfoResponse, error)
	DeleteSeasonalInfo(ctx context.Context, id string) error
}
