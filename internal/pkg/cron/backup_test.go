package cron

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/cmlabs-hris/teamtime-backend-go/internal/domain/backup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBackupService struct {
	writeErr  error
	writes    int
	pruneKeep []int
}

func (f *fakeBackupService) Snapshot(ctx context.Context) (backup.Snapshot, error) {
	return backup.Snapshot{}, nil
}

func (f *fakeBackupService) WriteToStorage(ctx context.Context) (backup.StoredBackup, error) {
	if f.writeErr != nil {
		return backup.StoredBackup{}, f.writeErr
	}
	f.writes++
	return backup.StoredBackup{Path: "backups/teamtime-20250301T000000Z.json", Size: 42, GeneratedAt: time.Now()}, nil
}

func (f *fakeBackupService) ListStored(ctx context.Context) ([]string, error) {
	return nil, nil
}

func (f *fakeBackupService) OpenStored(ctx context.Context, name string) (io.ReadCloser, error) {
	return nil, backup.ErrBackupNotFound
}

func (f *fakeBackupService) Prune(ctx context.Context, keep int) (int, error) {
	f.pruneKeep = append(f.pruneKeep, keep)
	return 1, nil
}

func TestBackupJobs_WriteSnapshotPrunes(t *testing.T) {
	svc := &fakeBackupService{}
	jobs := NewBackupJobs(svc, time.Hour, 3)

	require.NoError(t, jobs.WriteSnapshot(context.Background()))
	assert.Equal(t, 1, svc.writes)
	assert.Equal(t, []int{3}, svc.pruneKeep)
}

func TestBackupJobs_NoPruneWhenKeepDisabled(t *testing.T) {
	svc := &fakeBackupService{}
	require.NoError(t, NewBackupJobs(svc, time.Hour, 0).WriteSnapshot(context.Background()))
	assert.Empty(t, svc.pruneKeep)
}

func TestBackupJobs_WriteFailureSkipsPrune(t *testing.T) {
	svc := &fakeBackupService{writeErr: errors.New("disk full")}
	err := NewBackupJobs(svc, time.Hour, 3).WriteSnapshot(context.Background())
	assert.EqualError(t, err, "disk full")
	assert.Empty(t, svc.pruneKeep)
}

func TestBackupJobs_Register(t *testing.T) {
	svc := &fakeBackupService{}
	s := NewScheduler()
	NewBackupJobs(svc, time.Hour, 3).RegisterJobs(s)

	s.RunOnce(context.Background())
	assert.Equal(t, 1, svc.writes)
}
