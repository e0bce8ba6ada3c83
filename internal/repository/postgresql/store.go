package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/shiftnavi/shiftnavi-backend-go/internal/domain/store"
	"github.com/shiftnavi/shiftnavi-backend-go/internal/pkg/database"
)

type storeRepository struct {
	db *database.DB
}

func NewStoreRepository(db *database.DB) store.StoreRepository {
	return &storeRepository{db: db}
}

const storeColumns = `id, name, address, phone, requirements, created_at, updated_at`

func scanStore(row pgx.Row) (store.Store, error) {
	var st store.Store
	err := row.Scan(
		&st.ID, &st.Name, &st.Address, &st.Phone, &st.Requirements,
		&st.CreatedAt, &st.UpdatedAt,
	)
	return st, err
}

// Create implements store.StoreRepository.
func (s *storeRepository) Create(ctx context.Context, st store.Store) (store.Store, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		INSERT INTO stores (name, address, phone, requirements)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		st.Name,
		st.Address,
		st.Phone,
		st.Requirements,
	).Scan(&st.ID, &st.CreatedAt, &st.UpdatedAt)

	if err != nil {
		return store.Store{}, fmt.Errorf("failed to create store: %w", err)
	}

	return st, nil
}

// GetByID implements store.StoreRepository.
func (s *storeRepository) GetByID(ctx context.Context, id string) (store.Store, error) {
	q := GetQuerier(ctx, s.db)

	query := `SELECT ` + storeColumns + ` FROM stores WHERE id = $1`

	st, err := scanStore(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return store.Store{}, store.ErrStoreNotFound
		}
		return store.Store{}, fmt.Errorf("failed to get store: %w", err)
	}

	return st, nil
}

// List implements store.StoreRepository.
func (s *storeRepository) List(ctx context.Context) ([]store.Store, error) {
	q := GetQuerier(ctx, s.db)

	query := `SELECT ` + storeColumns + ` FROM stores ORDER BY created_at ASC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list stores: %w", err)
	}
	defer rows.Close()

	var stores []store.Store
	for rows.Next() {
		st, err := scanStore(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan store: %w", err)
		}
		stores = append(stores, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate stores: %w", err)
	}

	return stores, nil
}

// Update implements store.StoreRepository.
func (s *storeRepository) Update(ctx context.Context, st store.Store) error {
	q := GetQuerier(ctx, s.db)

	query := `
		UPDATE stores
		SET name = $2, address = $3, phone = $4, requirements = $5, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, st.ID, st.Name, st.Address, st.Phone, st.Requirements)
	if err != nil {
		return fmt.Errorf("failed to update store: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrStoreNotFound
	}

	return nil
}

// Delete implements store.StoreRepository.
func (s *storeRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, s.db)

	tag, err := q.Exec(ctx, `DELETE FROM stores WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete store: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrStoreNotFound
	}

	return nil
}
