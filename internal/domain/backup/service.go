package backup

import (
	"context"
	"io"
)

type BackupService interface {
	// Snapshot reads every collection into memory
	Snapshot(ctx context.Context) (Snapshot, error)

	// WriteToStorage writes a fresh snapshot below the configured prefix
	WriteToStorage(ctx context.Context) (StoredBackup, error)

	// ListStored returns the stored snapshot paths, oldest first
	ListStored(ctx context.Context) ([]string, error)

	// OpenStored opens one stored snapshot by its file name
	OpenStored(ctx context.Context, name string) (io.ReadCloser, error)

	// Prune keeps the newest keep snapshots and returns how many were removed
	Prune(ctx context.Context, keep int) (int, error)
}
