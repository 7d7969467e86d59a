package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cmlabs-hris/teamtime-backend-go/internal/domain/holiday"
	"github.com/cmlabs-hris/teamtime-backend-go/internal/fixtures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultTable(t *testing.T) holiday.Table {
	t.Helper()
	table, err := holiday.NewTable(fixtures.DefaultHolidays())
	require.NoError(t, err)
	return table
}

func execRoot(args ...string) (string, error) {
	stdout := new(bytes.Buffer)
	cmd := newRootCmd()
	cmd.SetOut(stdout)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}

func TestRunOvertime(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
		want       string
	}{
		{"regular day", "09:00", "17:30", "0.00\n"},
		{"one hour over", "09:00", "18:30", "1.00\n"},
		{"overnight", "22:00", "08:00", "1.50\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := new(bytes.Buffer)
			require.NoError(t, runOvertime(buf, tt.start, tt.end))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestRunOvertime_RejectsMalformedClock(t *testing.T) {
	err := runOvertime(new(bytes.Buffer), "9am", "17:00")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "start")

	err = runOvertime(new(bytes.Buffer), "09:00", "25:00")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "end")
}

func TestRunCalendar_MondayFirstWithHolidays(t *testing.T) {
	buf := new(bytes.Buffer)
	require.NoError(t, runCalendar(buf, defaultTable(t), "2025-03"))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.GreaterOrEqual(t, len(lines), 8)

	assert.Equal(t, "March 2025", lines[0])
	assert.Equal(t, " Mo  Tu  We  Th  Fr  Sa  Su", lines[1])
	// March 1st 2025 is a Saturday.
	assert.Equal(t, strings.Repeat(" ", 22)+"1.  2.", lines[2])
	assert.Equal(t, "  3   4   5   6   7   8.  9.", lines[3])
	assert.Equal(t, " 24  25  26  27  28  29. 30*", lines[6])
	assert.Equal(t, " 31*", lines[7])

	assert.Contains(t, buf.String(), "2025-03-30  Ramadan Feast (Day 1)")
	assert.Contains(t, buf.String(), "2025-03-31  Ramadan Feast (Day 2)")
}

func TestRunCalendar_InvalidMonth(t *testing.T) {
	err := runCalendar(new(bytes.Buffer), defaultTable(t), "2025-13")
	assert.Error(t, err)
}

func TestRunHolidays(t *testing.T) {
	table := defaultTable(t)

	buf := new(bytes.Buffer)
	require.NoError(t, runHolidays(buf, table, "2025-04"))
	assert.Equal(t,
		"2025-04-01  Ramadan Feast (Day 3)\n2025-04-23  National Sovereignty and Children's Day\n",
		buf.String())

	buf.Reset()
	require.NoError(t, runHolidays(buf, table, ""))
	assert.Equal(t, "2025: 14 holidays\n2026: 14 holidays\n", buf.String())

	assert.Error(t, runHolidays(new(bytes.Buffer), table, "April"))
}

func TestHolidaysCommand_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "holidays.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`2027:
  - date: "2027-01-01"
    name: New Year's Day
`), 0o600))

	out, err := execRoot("holidays", "2027-01", "--file", path)
	require.NoError(t, err)
	assert.Equal(t, "2027-01-01  New Year's Day\n", out)
}

func TestOvertimeCommand_ArgCount(t *testing.T) {
	_, err := execRoot("overtime", "09:00")
	assert.Error(t, err)
}

func TestCreateAdmin_RequiresFlags(t *testing.T) {
	_, err := execRoot("create-admin", "--username", "root")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--password")
}
