package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCalendarGrid_KnownMonths(t *testing.T) {
	cases := []struct {
		year    int
		month   time.Month
		leading int
		days    int
	}{
		{2025, time.June, 6, 30},      // starts on a Sunday
		{2025, time.September, 0, 30}, // starts on a Monday
		{2024, time.February, 3, 29},  // leap year, Thursday
		{2025, time.February, 5, 28},  // Saturday
		{2026, time.October, 3, 31},   // Thursday
	}

	for _, c := range cases {
		grid := BuildCalendarGrid(c.year, c.month)
		require.Len(t, grid, c.leading+c.days, "%d-%02d", c.year, c.month)
		for i := 0; i < c.leading; i++ {
			assert.Zero(t, grid[i])
		}
		assert.Equal(t, 1, grid[c.leading])
		assert.Equal(t, c.days, grid[len(grid)-1])
	}
}

func TestBuildCalendarGrid_Properties(t *testing.T) {
	for year := 1899; year <= 2101; year++ {
		for month := time.January; month <= time.December; month++ {
			grid := BuildCalendarGrid(year, month)
			days := DaysInMonth(year, month)

			leading := 0
			for leading < len(grid) && grid[leading] == 0 {
				leading++
			}
			require.GreaterOrEqual(t, leading, 0)
			require.LessOrEqual(t, leading, 6)
			require.Len(t, grid, leading+days)

			for i, d := range grid[leading:] {
				require.Equal(t, i+1, d)
				date := time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
				require.Equal(t, MondayOffset(date.Weekday()), (leading+i)%7, "%s", date.Format("2006-01-02"))
			}
		}
	}
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 31, DaysInMonth(2025, time.January))
	assert.Equal(t, 28, DaysInMonth(2025, time.February))
	assert.Equal(t, 29, DaysInMonth(2024, time.February))
	assert.Equal(t, 28, DaysInMonth(1900, time.February))
	assert.Equal(t, 29, DaysInMonth(2000, time.February))
	assert.Equal(t, 30, DaysInMonth(2025, time.April))
	assert.Equal(t, 31, DaysInMonth(2025, time.December))
}

func TestMondayOffset(t *testing.T) {
	assert.Equal(t, 0, MondayOffset(time.Monday))
	assert.Equal(t, 5, MondayOffset(time.Saturday))
	assert.Equal(t, 6, MondayOffset(time.Sunday))
}

func TestParseMonthKey(t *testing.T) {
	year, month, err := ParseMonthKey("2025-06")
	require.NoError(t, err)
	assert.Equal(t, 2025, year)
	assert.Equal(t, time.June, month)
	assert.Equal(t, "2025-06", MonthKey(year, month))

	for _, bad := range []string{"", "2025-6", "2025-13", "06-2025", "2025-06-01"} {
		_, _, err := ParseMonthKey(bad)
		assert.ErrorIs(t, err, ErrInvalidMonthKey, bad)
	}
}

func TestDateOf(t *testing.T) {
	assert.Equal(t, "2025-06-05", DateOf("2025-06", 5))
	assert.Equal(t, "2025-06-30", DateOf("2025-06", 30))
}
