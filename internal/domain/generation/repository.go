package generation

import "context"

// Generator is the external shift-generation capability: non-deterministic,
// treated as a black box returning a candidate schedule.
type Generator interface {
	Generate(ctx context.Context, pkg Package) ([]ProposedAssignment, error)
}

// ConstraintProvider supplies relationship constraints to the builder. The
// legacy behavior was an always-empty list; the repository-backed provider
// closes that gap while EmptyConstraintProvider reproduces it for
// comparison.
type ConstraintProvider interface {
	ListConstraints(ctx context.Context) ([]RelationshipConstraint, error)
}

// ConstraintRepository persists relationship constraints. It doubles as a
// ConstraintProvider so the package builder can read straight from storage.
type ConstraintRepository interface {
	ConstraintProvider

	Create(ctx context.Context, c RelationshipConstraint) (RelationshipConstraint, error)
	List(ctx context.Context) ([]RelationshipConstraint, error)
	Delete(ctx context.Context, id string) error
}

// EmptyConstraintProvider always returns no constraints.
type EmptyConstraintProvider struct{}

func (EmptyConstraintProvider) ListConstraints(ctx context.Context) ([]RelationshipConstraint, error) {
	return nil, nil
}
