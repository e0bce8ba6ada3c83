package generation

import "context"

type GenerationService interface {
	// BuildPackage assembles the full constraint input for [start, end]
	// without calling the generator. Exposed for inspection and tests.
	BuildPackage(ctx context.Context, req GenerateScheduleRequest) (Package, error)

	// GenerateSchedule builds the package, delegates to the external
	// generator, validates its result, and persists the proposed shifts as
	// one planned batch.
	GenerateSchedule(ctx context.Context, req GenerateScheduleRequest) (GenerateScheduleResponse, error)

	CreateConstraint(ctx context.Context, req CreateConstraintRequest) (RelationshipConstraint, error)
	ListConstraints(ctx context.Context) ([]RelationshipConstraint, error)
	DeleteConstraint(ctx context.Context, id string) error
}
