package attendance

import "time"

// DayRecord is one calendar day's attendance for one employee.
// Overtime is derived from StartTime/EndTime when the day is saved.
type DayRecord struct {
	Status    Status  `json:"status,omitempty"`
	Note      string  `json:"note,omitempty"`
	StartTime string  `json:"start_time,omitempty"` // HH:MM
	EndTime   string  `json:"end_time,omitempty"`   // HH:MM
	Overtime  float64 `json:"overtime"`
}

// MonthRecord holds the saved days of one month, keyed by day of month.
type MonthRecord struct {
	Month string            `json:"month"` // YYYY-MM
	Days  map[int]DayRecord `json:"days"`
}

// Blob is the stored attendance value of an employee: month key -> month.
type Blob map[string]MonthRecord

// Attendance is a row of the attendance table, one per (employee, month).
type Attendance struct {
	ID         string
	EmployeeID string
	Month      string
	Data       Blob
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// MonthSummary aggregates a month for display.
type MonthSummary struct {
	TotalOvertime float64        `json:"total_overtime"`
	RecordedDays  int            `json:"recorded_days"`
	StatusCounts  map[Status]int `json:"status_counts"`
}
