package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/shiftnavi/shiftnavi-backend-go/internal/domain/event"
	"github.com/shiftnavi/shiftnavi-backend-go/internal/pkg/database"
)

type eventRepository struct {
	db *database.DB
}

func NewEventRepository(db *database.DB) event.EventRepository {
	return &eventRepository{db: db}
}

const eventColumns = `
	id, name, start_date, end_date, store_ids, customer_prediction,
	created_at, updated_at`

func scanEvent(row pgx.Row) (event.Event, error) {
	var ev event.Event
	err := row.Scan(
		&ev.ID, &ev.Name, &ev.StartDate, &ev.EndDate, &ev.StoreIDs,
		&ev.CustomerPrediction, &ev.CreatedAt, &ev.UpdatedAt,
	)
	return ev, err
}

// Create implements event.EventRepository.
func (e *eventRepository) Create(ctx context.Context, ev event.Event) (event.Event, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO events (name, start_date, end_date, store_ids, customer_prediction)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		ev.Name,
		ev.StartDate,
		ev.EndDate,
		ev.StoreIDs,
		ev.CustomerPrediction,
	).Scan(&ev.ID, &ev.CreatedAt, &ev.UpdatedAt)

	if err != nil {
		return event.Event{}, fmt.Errorf("failed to create event: %w", err)
	}

	return ev, nil
}

// GetByID implements event.EventRepository.
func (e *eventRepository) GetByID(ctx context.Context, id string) (event.Event, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`

	ev, err := scanEvent(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return event.Event{}, event.ErrEventNotFound
		}
		return event.Event{}, fmt.Errorf("failed to get event: %w", err)
	}

	return ev, nil
}

// List implements event.EventRepository.
func (e *eventRepository) List(ctx context.Context) ([]event.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events ORDER BY start_date ASC, created_at ASC`
	return e.list(ctx, query)
}

// ListOverlapping implements event.EventRepository.
func (e *eventRepository) ListOverlapping(ctx context.Context, from, to time.Time) ([]event.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE start_date <= $2 AND end_date >= $1
		ORDER BY start_date ASC, created_at ASC
	`
	return e.list(ctx, query, from, to)
}

func (e *eventRepository) list(ctx context.Context, query string, args ...interface{}) ([]event.Event, error) {
	q := GetQuerier(ctx, e.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	var events []event.Event
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate events: %w", err)
	}

	return events, nil
}

// Update implements event.EventRepository.
func (e *eventRepository) Update(ctx context.Context, ev event.Event) error {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE events
		SET name = $2, start_date = $3, end_date = $4, store_ids = $5,
			customer_prediction = $6, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		ev.ID,
		ev.Name,
		ev.StartDate,
		ev.EndDate,
		ev.StoreIDs,
		ev.CustomerPrediction,
	)
	if err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return event.ErrEventNotFound
	}

	return nil
}

// Delete implements event.EventRepository.
func (e *eventRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, e.db)

	tag, err := q.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return event.ErrEventNotFound
	}

	return nil
}
