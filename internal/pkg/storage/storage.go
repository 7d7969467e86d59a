package storage

import (
	"context"
	"errors"
	"io"
)

var (
	ErrInvalidPath  = errors.New("invalid file path")
	ErrFileNotFound = errors.New("file not found")
)

// FileStorage holds backup snapshots and other generated files.
type FileStorage interface {
	// Upload stores the content under path and returns the cleaned path
	Upload(ctx context.Context, file io.Reader, path string) (string, error)

	// Download opens a stored file
	Download(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes a file; deleting a missing file is not an error
	Delete(ctx context.Context, path string) error

	// List returns the paths below prefix, oldest name first
	List(ctx context.Context, prefix string) ([]string, error)

	// Exists checks if file exists
	Exists(ctx context.Context, path string) (bool, error)
}
