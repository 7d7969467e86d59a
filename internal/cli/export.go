package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/cmlabs-hris/teamtime-backend-go/internal/domain/backup"
	"github.com/cmlabs-hris/teamtime-backend-go/internal/repository/postgresql"
	backupService "github.com/cmlabs-hris/teamtime-backend-go/internal/service/backup"
	"github.com/spf13/cobra"
)

var exportCmd = LeafCommand{
	Use:   "export",
	Short: "Write a JSON snapshot of every collection",
	Args:  cobra.NoArgs,
	StrFlags: []StringFlag{
		{Name: "out", Usage: "output file (defaults to stdout)"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")

		e, err := openEnv(cmd.Context())
		if err != nil {
			return err
		}
		defer e.Close()

		svc := backupService.NewBackupService(
			postgresql.NewTransactor(e.db),
			postgresql.NewProjectRepository(e.db),
			postgresql.NewEmployeeRepository(e.db),
			postgresql.NewRecordRepository(e.db),
			postgresql.NewUserRepository(e.db),
			postgresql.NewAttendanceRepository(e.db),
			nil,
			e.cfg.Backup.Prefix,
		)
		snap, err := svc.Snapshot(cmd.Context())
		if err != nil {
			return err
		}

		if out == "" {
			return writeSnapshot(cmd.OutOrStdout(), snap)
		}

		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("create %s: %w", out, err)
		}
		if err := writeSnapshot(f, snap); err != nil {
			_ = f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s (%d projects, %d employees, %d records)\n",
			out, len(snap.Projects), len(snap.Employees), len(snap.Records))
		return nil
	},
}.Build()

func writeSnapshot(w io.Writer, snap backup.Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return nil
}
