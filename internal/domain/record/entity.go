package record

import (
	"time"

	"github.com/shopspring/decimal"
)

// Record is one time entry: hours an employee spent on a project on a date.
type Record struct {
	ID          string
	ProjectID   string
	EmployeeID  string
	Date        time.Time
	Hours       decimal.Decimal
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

const dateLayout = "2006-01-02"

// MaxHours is the upper bound of a single entry.
var MaxHours = decimal.NewFromInt(24)
