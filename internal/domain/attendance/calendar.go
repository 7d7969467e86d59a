package attendance

import (
	"fmt"
	"time"
)

const monthKeyLayout = "2006-01"

// MonthKey formats a year and month as YYYY-MM.
func MonthKey(year int, month time.Month) string {
	return fmt.Sprintf("%04d-%02d", year, int(month))
}

// ParseMonthKey splits a YYYY-MM key into year and month.
func ParseMonthKey(key string) (int, time.Month, error) {
	t, err := time.Parse(monthKeyLayout, key)
	if err != nil || len(key) != len(monthKeyLayout) {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidMonthKey, key)
	}
	return t.Year(), t.Month(), nil
}

// DaysInMonth returns the number of days of a month in the proleptic Gregorian calendar.
func DaysInMonth(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MondayOffset maps a weekday to its column in a Monday-first week.
func MondayOffset(wd time.Weekday) int {
	if wd == time.Sunday {
		return 6
	}
	return int(wd) - 1
}

// BuildCalendarGrid lays a month out for a Monday-first, 7-column grid.
// Leading cells before the 1st are 0; no trailing padding is added.
func BuildCalendarGrid(year int, month time.Month) []int {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	offset := MondayOffset(first.Weekday())
	days := DaysInMonth(year, month)

	grid := make([]int, offset, offset+days)
	for d := 1; d <= days; d++ {
		grid = append(grid, d)
	}
	return grid
}

// DateOf returns the YYYY-MM-DD string of a day in the month identified by monthKey.
func DateOf(monthKey string, day int) string {
	return fmt.Sprintf("%s-%02d", monthKey, day)
}
