package store

import "context"

type StoreService interface {
	CreateStore(ctx context.Context, req CreateStoreRequest) (StoreResponse, error)
	GetStore(ctx context.Context, id string) (StoreResponse, error)
	ListStores(ctx context.Context) ([]StoreResponse, error)
	UpdateStore(ctx context.Context, req UpdateStoreRequest) (StoreResponse, error)
	DeleteStore(ctx context.Context, id string) error
}
