package attendance

import (
	"fmt"
	"strconv"

	"github.com/cmlabs-hris/teamtime-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

const (
	minutesPerDay         = 24 * 60
	breakMinutes          = 30
	standardShiftMinutes  = 8 * 60
	overtimeDecimalPlaces = 2
)

// ParseClock parses a zero-padded 24-hour HH:MM string into minutes since
// midnight. It accepts exactly what validator.IsValidClock accepts.
func ParseClock(s string) (int, error) {
	if !validator.IsValidClock(s) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}

	h, _ := strconv.Atoi(s[:2])
	m, _ := strconv.Atoi(s[3:])
	return h*60 + m, nil
}

// CalculateOvertime returns the hours worked beyond an 8-hour shift after a
// fixed 30-minute break, rounded to two decimals. A shift ending before it
// starts is taken to cross midnight once. Missing or unparsable times yield 0.
func CalculateOvertime(startTime, endTime string) float64 {
	if startTime == "" || endTime == "" {
		return 0
	}
	start, err := ParseClock(startTime)
	if err != nil {
		return 0
	}
	end, err := ParseClock(endTime)
	if err != nil {
		return 0
	}

	elapsed := end - start
	if elapsed < 0 {
		elapsed += minutesPerDay
	}
	// The break is taken off before the threshold, even on short shifts.
	elapsed -= breakMinutes

	overtime := max(0, elapsed-standardShiftMinutes)

	return decimal.NewFromInt(int64(overtime)).
		Div(decimal.NewFromInt(60)).
		Round(overtimeDecimalPlaces).
		InexactFloat64()
}
