package attendance

import (
	"strconv"
	"strings"

	"github.com/cmlabs-hris/teamtime-backend-go/internal/domain/holiday"
	"github.com/cmlabs-hris/teamtime-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

// SaveDayRequest edits one day of an employee's month.
// Overtime is accepted for compatibility with older clients and is always recomputed.
type SaveDayRequest struct {
	EmployeeID string   `json:"-"`
	Month      string   `json:"-"` // YYYY-MM
	Day        int      `json:"-"`
	Status     Status   `json:"status"`
	Note       string   `json:"note"`
	StartTime  string   `json:"start_time"`
	EndTime    string   `json:"end_time"`
	Overtime   *float64 `json:"overtime,omitempty"`
}

func (r *SaveDayRequest) Validate() error {
	var errs validator.ValidationErrors

	errs = append(errs, validateDayRef(r.EmployeeID, r.Month, r.Day)...)

	if r.Status != "" && !r.Status.IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: " + statusList(),
		})
	}

	if r.StartTime != "" && !validator.IsValidClock(r.StartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be in HH:MM format",
		})
	}

	if r.EndTime != "" && !validator.IsValidClock(r.EndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be in HH:MM format",
		})
	}

	if len(r.Note) > 500 {
		errs = append(errs, validator.ValidationError{
			Field:   "note",
			Message: "note must not exceed 500 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// DayRecord converts the request into the record to be merged.
func (r *SaveDayRequest) DayRecord() DayRecord {
	rec := DayRecord{
		Status:    r.Status,
		Note:      r.Note,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
	}
	if r.Overtime != nil {
		rec.Overtime = *r.Overtime
	}
	return rec
}

type ClearDayRequest struct {
	EmployeeID string
	Month      string
	Day        int
}

func (r *ClearDayRequest) Validate() error {
	if errs := validateDayRef(r.EmployeeID, r.Month, r.Day); len(errs) > 0 {
		return errs
	}
	return nil
}

func validateDayRef(employeeID, month string, day int) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if validator.IsEmpty(employeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	year, m, err := ParseMonthKey(month)
	if err != nil || !validator.IsValidMonthKey(month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be in YYYY-MM format",
		})
	} else if day < 1 || day > DaysInMonth(year, m) {
		errs = append(errs, validator.ValidationError{
			Field:   "day",
			Message: "day must be between 1 and " + strconv.Itoa(DaysInMonth(year, m)),
		})
	}

	return errs
}

func statusList() string {
	names := make([]string, 0, len(statusOrder))
	for _, st := range statusOrder {
		names = append(names, string(st))
	}
	return strings.Join(names, ", ")
}

type DayResponse struct {
	EmployeeID string    `json:"employee_id"`
	Month      string    `json:"month"`
	Day        int       `json:"day"`
	Date       string    `json:"date"`
	Record     DayRecord `json:"record"`
}

// CalendarCell is one cell of the month grid. Padding cells have Day 0 and
// carry nothing else.
type CalendarCell struct {
	Day       int              `json:"day"`
	Date      string           `json:"date,omitempty"`
	Weekday   string           `json:"weekday,omitempty"`
	IsWeekend bool             `json:"is_weekend"`
	Holiday   *holiday.Holiday `json:"holiday,omitempty"`
	Record    *DayRecord       `json:"record,omitempty"`
}

type MonthResponse struct {
	EmployeeID string            `json:"employee_id"`
	Month      string            `json:"month"`
	Days       map[int]DayRecord `json:"days"`
	Cells      []CalendarCell    `json:"cells"`
	Holidays   []holiday.Holiday `json:"holidays"`
	Summary    MonthSummary      `json:"summary"`
}

type StatusResponse struct {
	Value Status `json:"value"`
	Label string `json:"label"`
	Color string `json:"color"`
}
