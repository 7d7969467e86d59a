package backup

import "errors"

var (
	ErrStorageNotConfigured = errors.New("backup storage is not configured")
	ErrBackupNotFound       = errors.New("backup not found")
)
