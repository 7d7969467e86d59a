package record

import (
	"time"

	"github.com/cmlabs-hris/teamtime-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type RecordResponse struct {
	ID          string  `json:"id"`
	ProjectID   string  `json:"project_id"`
	EmployeeID  string  `json:"employee_id"`
	Date        string  `json:"date"`
	Hours       float64 `json:"hours"`
	Description *string `json:"description,omitempty"`
}

func NewRecordResponse(r Record) RecordResponse {
	return RecordResponse{
		ID:          r.ID,
		ProjectID:   r.ProjectID,
		EmployeeID:  r.EmployeeID,
		Date:        r.Date.Format(dateLayout),
		Hours:       r.Hours.InexactFloat64(),
		Description: r.Description,
	}
}

// RecordFilter is built from query parameters; all fields are optional.
type RecordFilter struct {
	ProjectID  *string
	EmployeeID *string
	Month      *string // YYYY-MM
}

func (f *RecordFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.ProjectID != nil && !validator.IsValidUUID(*f.ProjectID) {
		errs = append(errs, validator.ValidationError{
			Field:   "project_id",
			Message: "project_id must be a valid UUID",
		})
	}

	if f.EmployeeID != nil && !validator.IsValidUUID(*f.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must be a valid UUID",
		})
	}

	if f.Month != nil && !validator.IsValidMonthKey(*f.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be in YYYY-MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// MonthRange returns the half-open date range [first day, first day of next month).
func (f *RecordFilter) MonthRange() (time.Time, time.Time, bool) {
	if f.Month == nil {
		return time.Time{}, time.Time{}, false
	}
	from, err := time.Parse("2006-01", *f.Month)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	return from, from.AddDate(0, 1, 0), true
}

type CreateRecordRequest struct {
	ProjectID   string  `json:"project_id"`
	EmployeeID  string  `json:"employee_id"`
	Date        string  `json:"date"`
	Hours       float64 `json:"hours"`
	Description *string `json:"description,omitempty"`
}

func (r *CreateRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ProjectID) {
		errs = append(errs, validator.ValidationError{
			Field:   "project_id",
			Message: "project_id must be a valid UUID",
		})
	}

	if !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must be a valid UUID",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if !validHours(r.Hours) {
		errs = append(errs, validator.ValidationError{
			Field:   "hours",
			Message: ErrInvalidHours.Error(),
		})
	}

	if r.Description != nil && len(*r.Description) > 500 {
		errs = append(errs, validator.ValidationError{
			Field:   "description",
			Message: "description must not exceed 500 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Record converts a validated request into an entity.
func (r *CreateRecordRequest) Record() Record {
	date, _ := validator.IsValidDate(r.Date)
	return Record{
		ProjectID:   r.ProjectID,
		EmployeeID:  r.EmployeeID,
		Date:        date,
		Hours:       roundHours(r.Hours),
		Description: r.Description,
	}
}

type UpdateRecordRequest struct {
	ID          string   `json:"-"`
	ProjectID   *string  `json:"project_id,omitempty"`
	Date        *string  `json:"date,omitempty"`
	Hours       *float64 `json:"hours,omitempty"`
	Description *string  `json:"description,omitempty"`
}

func (r *UpdateRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.ProjectID != nil && !validator.IsValidUUID(*r.ProjectID) {
		errs = append(errs, validator.ValidationError{
			Field:   "project_id",
			Message: "project_id must be a valid UUID",
		})
	}

	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if r.Hours != nil && !validHours(*r.Hours) {
		errs = append(errs, validator.ValidationError{
			Field:   "hours",
			Message: ErrInvalidHours.Error(),
		})
	}

	if r.Description != nil && len(*r.Description) > 500 {
		errs = append(errs, validator.ValidationError{
			Field:   "description",
			Message: "description must not exceed 500 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// HoursDecimal returns the rounded hours, or nil when they are not being changed.
func (r *UpdateRecordRequest) HoursDecimal() *decimal.Decimal {
	if r.Hours == nil {
		return nil
	}
	h := roundHours(*r.Hours)
	return &h
}

func roundHours(h float64) decimal.Decimal {
	return decimal.NewFromFloat(h).Round(2)
}

func validHours(h float64) bool {
	d := roundHours(h)
	return d.IsPositive() && d.LessThanOrEqual(MaxHours)
}
