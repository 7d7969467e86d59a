package attendance

import "errors"

// Attendance domain errors
var (
	// Invalid argument errors
	ErrInvalidDay      = errors.New("day is out of range for the month")
	ErrInvalidMonthKey = errors.New("month must be in YYYY-MM format")
	ErrInvalidClock    = errors.New("time must be in HH:MM format")
	ErrInvalidStatus   = errors.New("unknown attendance status")

	// Lookup errors
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrDayNotFound        = errors.New("no attendance entry for this day")
)
