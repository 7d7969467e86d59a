package cli

import (
	"fmt"
	"io"

	"github.com/cmlabs-hris/teamtime-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/teamtime-backend-go/internal/domain/holiday"
	"github.com/cmlabs-hris/teamtime-backend-go/internal/fixtures"
	"github.com/spf13/cobra"
)

var holidaysCmd = LeafCommand{
	Use:   "holidays [YYYY-MM]",
	Short: "List holidays of a month, or check a holiday file",
	Args:  cobra.MaximumNArgs(1),
	StrFlags: []StringFlag{
		{Name: "file", Usage: "YAML holiday file (defaults to the built-in table)"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("file")
		table, err := fixtures.LoadHolidayTable(file)
		if err != nil {
			return err
		}
		month := ""
		if len(args) == 1 {
			month = args[0]
		}
		return runHolidays(cmd.OutOrStdout(), table, month)
	},
}.Build()

// runHolidays without a month prints a per-year count, which doubles as a file check.
func runHolidays(w io.Writer, table holiday.Table, month string) error {
	if month == "" {
		for _, year := range table.Years() {
			_, _ = fmt.Fprintf(w, "%d: %d holidays\n", year, len(table.ForYear(year)))
		}
		return nil
	}

	if _, _, err := attendance.ParseMonthKey(month); err != nil {
		return err
	}
	for _, h := range table.ForMonth(month) {
		_, _ = fmt.Fprintf(w, "%s  %s\n", h.Date, h.Name)
	}
	return nil
}
