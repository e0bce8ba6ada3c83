package seasonal

import "errors"

var (
	ErrSeasonalInfoNotFound = errors.New("seasonal info not found")
)
