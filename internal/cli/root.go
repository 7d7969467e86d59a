// Package cli implements teamtimectl, the operator tool next to the API server.
package cli

import (
	"github.com/spf13/cobra"
)

var versionString = "dev"

// SetVersion sets the version reported by --version.
func SetVersion(v string) {
	versionString = v
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "teamtimectl",
		Short:         "Operator tool for the teamtime backend",
		Version:       versionString,
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(
		calendarCmd,
		overtimeCmd,
		holidaysCmd,
		exportCmd,
		createAdminCmd,
	)
	return root
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}
