package postgresql

import (
	"context"
	"fmt"

	"github.com/shiftnavi/shiftnavi-backend-go/internal/domain/generation"
	"github.com/shiftnavi/shiftnavi-backend-go/internal/pkg/database"
)

type constraintRepository struct {
	db *database.DB
}

// NewConstraintRepository persists relationship constraints. The returned
// value also satisfies generation.ConstraintProvider, so the package builder
// can read straight from storage.
func NewConstraintRepository(db *database.DB) generation.ConstraintRepository {
	return &constraintRepository{db: db}
}

// Create implements generation.ConstraintRepository.
func (c *constraintRepository) Create(ctx context.Context, rc generation.RelationshipConstraint) (generation.RelationshipConstraint, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		INSERT INTO relationship_constraints (employee_a, employee_b, reason)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := q.QueryRow(ctx, query, rc.EmployeeA, rc.EmployeeB, rc.Reason).Scan(&rc.ID)
	if err != nil {
		return generation.RelationshipConstraint{}, fmt.Errorf("failed to create constraint: %w", err)
	}

	return rc, nil
}

// List implements generation.ConstraintRepository.
func (c *constraintRepository) List(ctx context.Context) ([]generation.RelationshipConstraint, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		SELECT id, employee_a, employee_b, reason
		FROM relationship_constraints
		ORDER BY created_at ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list constraints: %w", err)
	}
	defer rows.Close()

	var constraints []generation.RelationshipConstraint
	for rows.Next() {
		var rc generation.RelationshipConstraint
		if err := rows.Scan(&rc.ID, &rc.EmployeeA, &rc.EmployeeB, &rc.Reason); err != nil {
			return nil, fmt.Errorf("failed to scan constraint: %w", err)
		}
		constraints = append(constraints, rc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate constraints: %w", err)
	}

	return constraints, nil
}

// ListConstraints implements generation.ConstraintProvider.
func (c *constraintRepository) ListConstraints(ctx context.Context) ([]generation.RelationshipConstraint, error) {
	return c.List(ctx)
}

// Delete implements generation.ConstraintRepository.
func (c *constraintRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, c.db)

	if _, err := q.Exec(ctx, `DELETE FROM relationship_constraints WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete constraint: %w", err)
	}
	return nil
}
