package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/teamtime-backend-go/internal/domain/backup"
)

// BackupJobs periodically writes a snapshot of every collection to file storage.
type BackupJobs struct {
	backupSvc backup.BackupService
	interval  time.Duration
	keep      int
}

func NewBackupJobs(backupSvc backup.BackupService, interval time.Duration, keep int) *BackupJobs {
	return &BackupJobs{
		backupSvc: backupSvc,
		interval:  interval,
		keep:      keep,
	}
}

func (j *BackupJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob(Job{
		Name:     "write_backup_snapshot",
		Interval: j.interval,
		Fn:       j.WriteSnapshot,
	})
}

func (j *BackupJobs) WriteSnapshot(ctx context.Context) error {
	stored, err := j.backupSvc.WriteToStorage(ctx)
	if err != nil {
		return err
	}
	slog.Info("Cron: backup snapshot written", "path", stored.Path, "size", stored.Size)

	if j.keep > 0 {
		removed, err := j.backupSvc.Prune(ctx, j.keep)
		if err != nil {
			return err
		}
		if removed > 0 {
			slog.Info("Cron: old backup snapshots removed", "count", removed)
		}
	}
	return nil
}
