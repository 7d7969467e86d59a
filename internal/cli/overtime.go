package cli

import (
	"fmt"
	"io"

	"github.com/cmlabs-hris/teamtime-backend-go/internal/domain/attendance"
	"github.com/spf13/cobra"
)

var overtimeCmd = LeafCommand{
	Use:   "overtime <start HH:MM> <end HH:MM>",
	Short: "Compute overtime hours for a working day",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOvertime(cmd.OutOrStdout(), args[0], args[1])
	},
}.Build()

func runOvertime(w io.Writer, start, end string) error {
	if _, err := attendance.ParseClock(start); err != nil {
		return fmt.Errorf("start: %w", err)
	}
	if _, err := attendance.ParseClock(end); err != nil {
		return fmt.Errorf("end: %w", err)
	}

	_, _ = fmt.Fprintf(w, "%.2f\n", attendance.CalculateOvertime(start, end))
	return nil
}
