package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/shiftnavi/shiftnavi-backend-go/internal/domain/shift"
	"github.com/shiftnavi/shiftnavi-backend-go/internal/pkg/database"
)

type shiftRepository struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.ShiftRepository {
	return &shiftRepository{db: db}
}

const shiftColumns = `
	id, employee_id, store_id, date, start_time, end_time, status,
	created_at, updated_at`

func scanShift(row pgx.Row) (shift.Shift, error) {
	var sh shift.Shift
	err := row.Scan(
		&sh.ID, &sh.EmployeeID, &sh.StoreID, &sh.Date, &sh.StartTime, &sh.EndTime,
		&sh.Status, &sh.CreatedAt, &sh.UpdatedAt,
	)
	return sh, err
}

// Create implements shift.ShiftRepository.
func (s *shiftRepository) Create(ctx context.Context, sh shift.Shift) (shift.Shift, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		INSERT INTO shifts (employee_id, store_id, date, start_time, end_time, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		sh.EmployeeID,
		sh.StoreID,
		sh.Date,
		sh.StartTime,
		sh.EndTime,
		sh.Status,
	).Scan(&sh.ID, &sh.CreatedAt, &sh.UpdatedAt)

	if err != nil {
		return shift.Shift{}, fmt.Errorf("failed to create shift: %w", err)
	}

	return sh, nil
}

// CreateBatch implements shift.ShiftRepository. All rows commit or none do.
func (s *shiftRepository) CreateBatch(ctx context.Context, shifts []shift.Shift) error {
	return WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO shifts (id, employee_id, store_id, date, start_time, end_time, status, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		`
		for _, sh := range shifts {
			if _, err := tx.Exec(ctx, query,
				sh.ID,
				sh.EmployeeID,
				sh.StoreID,
				sh.Date,
				sh.StartTime,
				sh.EndTime,
				sh.Status,
				sh.CreatedAt,
				sh.UpdatedAt,
			); err != nil {
				return fmt.Errorf("failed to insert shift %s: %w", sh.ID, err)
			}
		}
		return nil
	})
}

// GetByID implements shift.ShiftRepository.
func (s *shiftRepository) GetByID(ctx context.Context, id string) (shift.Shift, error) {
	q := GetQuerier(ctx, s.db)

	query := `SELECT ` + shiftColumns + ` FROM shifts WHERE id = $1`

	sh, err := scanShift(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return shift.Shift{}, shift.ErrShiftNotFound
		}
		return shift.Shift{}, fmt.Errorf("failed to get shift: %w", err)
	}

	return sh, nil
}

// ListByDateRange implements shift.ShiftRepository.
func (s *shiftRepository) ListByDateRange(ctx context.Context, from, to time.Time, filter shift.ShiftFilter) ([]shift.Shift, error) {
	q := GetQuerier(ctx, s.db)

	query := `SELECT ` + shiftColumns + ` FROM shifts`

	conditions := []string{"date >= $1", "date <= $2"}
	args := []interface{}{from, to}
	argIndex := 3

	if filter.EmployeeID != nil {
		conditions = append(conditions, fmt.Sprintf("employee_id = $%d", argIndex))
		args = append(args, *filter.EmployeeID)
		argIndex++
	}
	if filter.StoreID != nil {
		conditions = append(conditions, fmt.Sprintf("store_id = $%d", argIndex))
		args = append(args, *filter.StoreID)
		argIndex++
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIndex))
		args = append(args, *filter.Status)
		argIndex++
	}

	query += " WHERE " + strings.Join(conditions, " AND ")
	query += " ORDER BY date ASC, start_time ASC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	defer rows.Close()

	var shifts []shift.Shift
	for rows.Next() {
		sh, err := scanShift(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		shifts = append(shifts, sh)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate shifts: %w", err)
	}

	return shifts, nil
}

// Update implements shift.ShiftRepository.
func (s *shiftRepository) Update(ctx context.Context, sh shift.Shift) error {
	q := GetQuerier(ctx, s.db)

	query := `
		UPDATE shifts
		SET employee_id = $2, store_id = $3, date = $4, start_time = $5,
			end_time = $6, status = $7, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		sh.ID,
		sh.EmployeeID,
		sh.StoreID,
		sh.Date,
		sh.StartTime,
		sh.EndTime,
		sh.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to update shift: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}

	return nil
}

// Delete implements shift.ShiftRepository.
func (s *shiftRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, s.db)

	tag, err := q.Exec(ctx, `DELETE FROM shifts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete shift: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}

	return nil
}
