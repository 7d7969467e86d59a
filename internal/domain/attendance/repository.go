package attendance

import (
	"context"
)

// AttendanceRepository stores one blob row per (employee, month).
type AttendanceRepository interface {
	// GetByEmployeeAndMonth returns nil when the month has never been saved.
	GetByEmployeeAndMonth(ctx context.Context, employeeID string, month string) (*Attendance, error)

	// GetByEmployeeAndMonthForUpdate is GetByEmployeeAndMonth with a row lock; use inside a transaction.
	GetByEmployeeAndMonthForUpdate(ctx context.Context, employeeID string, month string) (*Attendance, error)

	// LockMonth creates an empty row for the month if none exists, then locks it.
	// Use inside a transaction; concurrent first saves serialize on the row.
	LockMonth(ctx context.Context, employeeID string, month string) (Attendance, error)

	// Upsert writes the whole row, keyed by (employee_id, month).
	Upsert(ctx context.Context, attendance Attendance) (Attendance, error)

	ListByEmployee(ctx context.Context, employeeID string) ([]Attendance, error)
	ListAll(ctx context.Context) ([]Attendance, error)
}
