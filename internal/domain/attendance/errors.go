package attendance

import "errors"

var (
	ErrAlreadyClockedIn  = errors.New("already clocked in for this date")
	ErrAlreadyClockedOut = errors.New("already clocked out")
	ErrBreakAlreadyActive = errors.New("a break is already active")
	ErrNoActiveBreak      = errors.New("no active break to end")
	ErrAttendanceNotFound = errors.New("attendance record not found")
)
