package generation

import "errors"

var (
	// ErrInvalidGenerationResult marks a generator response without a
	// well-formed assignment list.
	ErrInvalidGenerationResult = errors.New("generator returned an invalid result")
)
