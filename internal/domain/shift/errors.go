package shift

import "errors"

var (
	ErrShiftNotFound        = errors.New("shift not found")
	ErrShiftAlreadyComplete = errors.New("shift has already been completed")
)
