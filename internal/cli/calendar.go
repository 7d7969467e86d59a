package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/cmlabs-hris/teamtime-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/teamtime-backend-go/internal/domain/holiday"
	"github.com/cmlabs-hris/teamtime-backend-go/internal/fixtures"
	"github.com/spf13/cobra"
)

var calendarCmd = LeafCommand{
	Use:   "calendar <YYYY-MM>",
	Short: "Print the Monday-first calendar of a month with its holidays",
	Args:  cobra.ExactArgs(1),
	StrFlags: []StringFlag{
		{Name: "holidays", Usage: "YAML holiday file (defaults to the built-in table)"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("holidays")
		table, err := fixtures.LoadHolidayTable(file)
		if err != nil {
			return err
		}
		return runCalendar(cmd.OutOrStdout(), table, args[0])
	},
}.Build()

// runCalendar marks holidays with '*' and weekends with '.'.
func runCalendar(w io.Writer, table holiday.Table, monthKey string) error {
	year, month, err := attendance.ParseMonthKey(monthKey)
	if err != nil {
		return err
	}

	holidays := table.ForMonth(monthKey)
	isHoliday := make(map[string]bool, len(holidays))
	for _, h := range holidays {
		isHoliday[h.Date] = true
	}

	_, _ = fmt.Fprintf(w, "%s %d\n", month, year)
	_, _ = fmt.Fprintln(w, " Mo  Tu  We  Th  Fr  Sa  Su")

	var line strings.Builder
	for i, day := range attendance.BuildCalendarGrid(year, month) {
		switch {
		case day == 0:
			line.WriteString("    ")
		case isHoliday[attendance.DateOf(monthKey, day)]:
			fmt.Fprintf(&line, "%3d*", day)
		case i%7 >= 5:
			fmt.Fprintf(&line, "%3d.", day)
		default:
			fmt.Fprintf(&line, "%3d ", day)
		}
		if i%7 == 6 {
			_, _ = fmt.Fprintln(w, strings.TrimRight(line.String(), " "))
			line.Reset()
		}
	}
	if line.Len() > 0 {
		_, _ = fmt.Fprintln(w, strings.TrimRight(line.String(), " "))
	}

	if len(holidays) > 0 {
		_, _ = fmt.Fprintln(w)
		for _, h := range holidays {
			_, _ = fmt.Fprintf(w, "%s  %s\n", h.Date, h.Name)
		}
	}
	return nil
}
