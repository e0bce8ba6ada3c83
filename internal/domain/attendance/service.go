package attendance

import "context"

// AttendanceService owns the clock-in/out state machine:
// NotClockedIn -> ClockedIn <-> OnBreak -> ClockedOut (terminal).
type AttendanceService interface {
	ClockIn(ctx context.Context, req ClockInRequest) (AttendanceResponse, error)
	StartBreak(ctx context.Context, attendanceID string) (AttendanceResponse, error)
	EndBreak(ctx context.Context, attendanceID string) (AttendanceResponse, error)
	ClockOut(ctx context.Context, attendanceID string) (AttendanceResponse, error)

	GetAttendance(ctx context.Context, id string) (AttendanceResponse, error)
	ListByEmployeeMonth(ctx context.Context, employeeID string, year, month int) ([]AttendanceResponse, error)

	// UpdateAttendance is the administrative correction path.
	UpdateAttendance(ctx context.Context, req UpdateAttendanceRequest) (AttendanceResponse, error)
	DeleteAttendance(ctx context.Context, id string) error

	GetEmployeeMonthlyStats(ctx context.Context, employeeID string, year, month int) (PeriodStats, error)
	GetStoreMonthlyStats(ctx context.Context, storeID string, year, month int) (PeriodStats, error)
}
