package preference

import "errors"

var (
	ErrPreferenceNotFound = errors.New("shift preference not found")
)
