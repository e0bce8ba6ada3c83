package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/shiftnavi/shiftnavi-backend-go/internal/domain/preference"
	"github.com/shiftnavi/shiftnavi-backend-go/internal/pkg/database"
)

type preferenceRepository struct {
	db *database.DB
}

func NewPreferenceRepository(db *database.DB) preference.PreferenceRepository {
	return &preferenceRepository{db: db}
}

const preferenceColumns = `
	id, employee_id, year, month, desired_days_per_week, preferred_weekdays,
	unavailable_dates, notes, submitted_at, created_at, updated_at`

func scanPreference(row pgx.Row) (preference.ShiftPreference, error) {
	var p preference.ShiftPreference
	err := row.Scan(
		&p.ID, &p.EmployeeID, &p.Year, &p.Month, &p.DesiredDaysPerWeek,
		&p.PreferredWeekdays, &p.UnavailableDates, &p.Notes, &p.SubmittedAt,
		&p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

// Create implements preference.PreferenceRepository.
func (r *preferenceRepository) Create(ctx context.Context, p preference.ShiftPreference) (preference.ShiftPreference, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shift_preferences (
			employee_id, year, month, desired_days_per_week, preferred_weekdays,
			unavailable_dates, notes, submitted_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		p.EmployeeID,
		p.Year,
		p.Month,
		p.DesiredDaysPerWeek,
		p.PreferredWeekdays,
		p.UnavailableDates,
		p.Notes,
		p.SubmittedAt,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)

	if err != nil {
		return preference.ShiftPreference{}, fmt.Errorf("failed to create preference: %w", err)
	}

	return p, nil
}

// GetByID implements preference.PreferenceRepository.
func (r *preferenceRepository) GetByID(ctx context.Context, id string) (preference.ShiftPreference, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + preferenceColumns + ` FROM shift_preferences WHERE id = $1`

	p, err := scanPreference(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return preference.ShiftPreference{}, preference.ErrPreferenceNotFound
		}
		return preference.ShiftPreference{}, fmt.Errorf("failed to get preference: %w", err)
	}

	return p, nil
}

// GetByEmployeeAndPeriod implements preference.PreferenceRepository.
func (r *preferenceRepository) GetByEmployeeAndPeriod(ctx context.Context, employeeID string, year, month int) (*preference.ShiftPreference, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + preferenceColumns + `
		FROM shift_preferences
		WHERE employee_id = $1 AND year = $2 AND month = $3
		LIMIT 1
	`

	p, err := scanPreference(q.QueryRow(ctx, query, employeeID, year, month))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get preference by period: %w", err)
	}

	return &p, nil
}

// ListByPeriod implements preference.PreferenceRepository.
func (r *preferenceRepository) ListByPeriod(ctx context.Context, year, month int) ([]preference.ShiftPreference, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + preferenceColumns + `
		FROM shift_preferences
		WHERE year = $1 AND month = $2
		ORDER BY submitted_at ASC
	`

	rows, err := q.Query(ctx, query, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list preferences: %w", err)
	}
	defer rows.Close()

	var prefs []preference.ShiftPreference
	for rows.Next() {
		p, err := scanPreference(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan preference: %w", err)
		}
		prefs = append(prefs, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate preferences: %w", err)
	}

	return prefs, nil
}

// Update implements preference.PreferenceRepository.
func (r *preferenceRepository) Update(ctx context.Context, p preference.ShiftPreference) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shift_preferences
		SET desired_days_per_week = $2, preferred_weekdays = $3,
			unavailable_dates = $4, notes = $5, submitted_at = $6, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		p.ID,
		p.DesiredDaysPerWeek,
		p.PreferredWeekdays,
		p.UnavailableDates,
		p.Notes,
		p.SubmittedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update preference: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return preference.ErrPreferenceNotFound
	}

	return nil
}

// Delete implements preference.PreferenceRepository.
func (r *preferenceRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM shift_preferences WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete preference: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return preference.ErrPreferenceNotFound
	}

	return nil
}
