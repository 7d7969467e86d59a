package fixtures

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cmlabs-hris/teamtime-backend-go/internal/domain/holiday"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadHolidayTable_Default(t *testing.T) {
	table, err := LoadHolidayTable("")
	require.NoError(t, err)

	june := table.ForMonth("2025-06")
	require.Len(t, june, 4)
	assert.Equal(t, []string{"2025-06-06", "2025-06-07", "2025-06-08", "2025-06-09"},
		[]string{june[0].Date, june[1].Date, june[2].Date, june[3].Date})
	assert.Equal(t, []int{2025, 2026}, table.Years())
}

func TestLoadHolidayTable_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "holidays.yaml")
	content := `
2027:
  - date: "2027-01-01"
    name: New Year's Day
  - date: "2027-10-29"
    name: Republic Day
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	table, err := LoadHolidayTable(path)
	require.NoError(t, err)

	h, ok := table.ForDate("2027-10-29")
	require.True(t, ok)
	assert.Equal(t, "Republic Day", h.Name)
	assert.Empty(t, table.ForMonth("2025-06"))
}

func TestLoadHolidayTable_WrongYear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "holidays.yaml")
	require.NoError(t, os.WriteFile(path, []byte("2027:\n  - date: \"2028-01-01\"\n    name: x\n"), 0o644))

	_, err := LoadHolidayTable(path)
	var dateErr *holiday.DateError
	require.ErrorAs(t, err, &dateErr)
	assert.Equal(t, 2027, dateErr.Year)
}

func TestLoadHolidayTable_MissingFile(t *testing.T) {
	_, err := LoadHolidayTable(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestDefaultHolidays_Valid(t *testing.T) {
	_, err := holiday.NewTable(DefaultHolidays())
	assert.NoError(t, err)
}
