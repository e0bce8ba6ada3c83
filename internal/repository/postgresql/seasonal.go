package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/shiftnavi/shiftnavi-backend-go/internal/domain/seasonal"
	"github.com/shiftnavi/shiftnavi-backend-go/internal/pkg/database"
)

type seasonalRepository struct {
	db *database.DB
}

func NewSeasonalRepository(db *database.DB) seasonal.SeasonalRepository {
	return &seasonalRepository{db: db}
}

const seasonalColumns = `id, type, name, progress, areas, created_at, updated_at`

func scanSeasonalInfo(row pgx.Row) (seasonal.SeasonalInfo, error) {
	var info seasonal.SeasonalInfo
	err := row.Scan(
		&info.ID, &info.Type, &info.Name, &info.Progress, &info.Areas,
		&info.CreatedAt, &info.UpdatedAt,
	)
	return info, err
}

// Create implements seasonal.SeasonalRepository.
func (s *seasonalRepository) Create(ctx context.Context, info seasonal.SeasonalInfo) (seasonal.SeasonalInfo, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		INSERT INTO seasonal_infos (type, name, progress, areas)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		info.Type,
		info.Name,
		info.Progress,
		info.Areas,
	).Scan(&info.ID, &info.CreatedAt, &info.UpdatedAt)

	if err != nil {
		return seasonal.SeasonalInfo{}, fmt.Errorf("failed to create seasonal info: %w", err)
	}

	return info, nil
}

// GetByID implements seasonal.SeasonalRepository.
func (s *seasonalRepository) GetByID(ctx context.Context, id string) (seasonal.SeasonalInfo, error) {
	q := GetQuerier(ctx, s.db)

	query := `SELECT ` + seasonalColumns + ` FROM seasonal_infos WHERE id = $1`

	info, err := scanSeasonalInfo(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return seasonal.SeasonalInfo{}, seasonal.ErrSeasonalInfoNotFound
		}
		return seasonal.SeasonalInfo{}, fmt.Errorf("failed to get seasonal info: %w", err)
	}

	return info, nil
}

// List implements seasonal.SeasonalRepository.
func (s *seasonalRepository) List(ctx context.Context) ([]seasonal.SeasonalInfo, error) {
	q := GetQuerier(ctx, s.db)

	query := `SELECT ` + seasonalColumns + ` FROM seasonal_infos ORDER BY created_at ASC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list seasonal infos: %w", err)
	}
	defer rows.Close()

	var infos []seasonal.SeasonalInfo
	for rows.Next() {
		info, err := scanSeasonalInfo(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan seasonal info: %w", err)
		}
		infos = append(infos, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate seasonal infos: %w", err)
	}

	return infos, nil
}

// Update implements seasonal.SeasonalRepository.
func (s *seasonalRepository) Update(ctx context.Context, info seasonal.SeasonalInfo) error {
	q := GetQuerier(ctx, s.db)

	query := `
		UPDATE seasonal_infos
		SET type = $2, name = $3, progress = $4, areas = $5, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, info.ID, info.Type, info.Name, info.Progress, info.Areas)
	if err != nil {
		return fmt.Errorf("failed to update seasonal info: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return seasonal.ErrSeasonalInfoNotFound
	}

	return nil
}

// Delete implements seasonal.SeasonalRepository.
func (s *seasonalRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, s.db)

	tag, err := q.Exec(ctx, `DELETE FROM seasonal_infos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete seasonal info: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return seasonal.ErrSeasonalInfoNotFound
	}

	return nil
}
