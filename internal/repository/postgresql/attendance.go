package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/shiftnavi/shiftnavi-backend-go/internal/domain/attendance"
	"github.com/shiftnavi/shiftnavi-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	id, employee_id, store_id, date, clock_in, clock_out,
	breaks, total_work_hours, status, created_at, updated_at`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var att attendance.Attendance
	err := row.Scan(
		&att.ID, &att.EmployeeID, &att.StoreID, &att.Date, &att.ClockIn, &att.ClockOut,
		&att.Breaks, &att.TotalWorkHours, &att.Status, &att.CreatedAt, &att.UpdatedAt,
	)
	return att, err
}

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepository) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendances (
			employee_id, store_id, date, clock_in, clock_out,
			breaks, total_work_hours, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		att.EmployeeID,
		att.StoreID,
		att.Date,
		att.ClockIn,
		att.ClockOut,
		att.Breaks,
		att.TotalWorkHours,
		att.Status,
	).Scan(&att.ID, &att.CreatedAt, &att.UpdatedAt)

	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return att, nil
}

// GetByID implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendances WHERE id = $1`

	att, err := scanAttendance(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance: %w", err)
	}

	return att, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE employee_id = $1 AND date = $2
		LIMIT 1
	`

	att, err := scanAttendance(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // No existing attendance found
		}
		return nil, fmt.Errorf("failed to get attendance by employee and date: %w", err)
	}

	return &att, nil
}

// ListByEmployeeAndRange implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Attendance, error) {
	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE employee_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date ASC
	`
	return a.list(ctx, query, employeeID, from, to)
}

// ListByStoreAndRange implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByStoreAndRange(ctx context.Context, storeID string, from, to time.Time) ([]attendance.Attendance, error) {
	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE store_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date ASC, employee_id ASC
	`
	return a.list(ctx, query, storeID, from, to)
}

func (a *attendanceRepository) list(ctx context.Context, query string, args ...interface{}) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances: %w", err)
	}
	defer rows.Close()

	var attendances []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		attendances = append(attendances, att)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendances: %w", err)
	}

	return attendances, nil
}

// Update implements attendance.AttendanceRepository.
func (a *attendanceRepository) Update(ctx context.Context, att attendance.Attendance) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendances
		SET clock_in = $2, clock_out = $3, breaks = $4,
			total_work_hours = $5, status = $6, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		att.ID,
		att.ClockIn,
		att.ClockOut,
		att.Breaks,
		att.TotalWorkHours,
		att.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

// Delete implements attendance.AttendanceRepository.
func (a *attendanceRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, a.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendances WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}
