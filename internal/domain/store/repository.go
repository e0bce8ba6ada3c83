package store

import "context"

type StoreRepository interface {
	Create(ctx context.Context, s Store) (Store, error)
	GetByID(ctx context.Context, id string) (Store, error)
	List(ctx context.Context) ([]Store, error)
	Update(ctx context.Context, s Store) error
	Delete(ctx context.Context, id string) error
}
