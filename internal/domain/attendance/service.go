package attendance

import (
	"context"

	"github.com/cmlabs-hris/teamtime-backend-go/internal/domain/holiday"
)

// AttendanceService defines business logic for the attendance calendar
type AttendanceService interface {
	// GetMonth returns the calendar of an employee for a month with holiday and status overlays
	GetMonth(ctx context.Context, employeeID string, month string) (MonthResponse, error)

	// SaveDay merges one day into the employee's month and persists it
	SaveDay(ctx context.Context, req SaveDayRequest) (DayResponse, error)

	// ClearDay removes the entry of one day
	ClearDay(ctx context.Context, req ClearDayRequest) error

	ListStatuses() []StatusResponse
	ListHolidays(month string) ([]holiday.Holiday, error)
}
