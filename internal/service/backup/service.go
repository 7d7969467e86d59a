package backup

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/cmlabs-hris/teamtime-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/teamtime-backend-go/internal/domain/backup"
	"github.com/cmlabs-hris/teamtime-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/teamtime-backend-go/internal/domain/project"
	"github.com/cmlabs-hris/teamtime-backend-go/internal/domain/record"
	"github.com/cmlabs-hris/teamtime-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/teamtime-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/teamtime-backend-go/internal/pkg/storage"
)

const (
	defaultPrefix  = "backups"
	fileNamePrefix = "teamtime-"
	fileNameLayout = "20060102T150405Z"
)

type BackupServiceImpl struct {
	tx             database.Transactor
	projectRepo    project.ProjectRepository
	employeeRepo   employee.EmployeeRepository
	recordRepo     record.RecordRepository
	userRepo       user.UserRepository
	attendanceRepo attendance.AttendanceRepository
	storage        storage.FileStorage
	prefix         string
	now            func() time.Time
}

// NewBackupService wires the snapshot sources. fileStorage may be nil, in which
// case only Snapshot is usable.
func NewBackupService(
	tx database.Transactor,
	projectRepo project.ProjectRepository,
	employeeRepo employee.EmployeeRepository,
	recordRepo record.RecordRepository,
	userRepo user.UserRepository,
	attendanceRepo attendance.AttendanceRepository,
	fileStorage storage.FileStorage,
	prefix string,
) *BackupServiceImpl {
	prefix = strings.Trim(prefix, "/")
	if prefix == "" {
		prefix = defaultPrefix
	}
	return &BackupServiceImpl{
		tx:             tx,
		projectRepo:    projectRepo,
		employeeRepo:   employeeRepo,
		recordRepo:     recordRepo,
		userRepo:       userRepo,
		attendanceRepo: attendanceRepo,
		storage:        fileStorage,
		prefix:         prefix,
		now:            time.Now,
	}
}

// Snapshot implements backup.BackupService.
func (s *BackupServiceImpl) Snapshot(ctx context.Context) (backup.Snapshot, error) {
	snap := backup.Snapshot{
		Version:     backup.SnapshotVersion,
		GeneratedAt: s.now().UTC(),
		Projects:    []project.ProjectResponse{},
		Employees:   []employee.EmployeeResponse{},
		Records:     []record.RecordResponse{},
		Users:       []user.UserResponse{},
		Attendance:  []backup.AttendanceMonth{},
	}

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		projects, err := s.projectRepo.List(ctx)
		if err != nil {
			return fmt.Errorf("failed to read projects: %w", err)
		}
		for _, p := range projects {
			snap.Projects = append(snap.Projects, project.NewProjectResponse(p))
		}

		employees, err := s.employeeRepo.List(ctx, employee.ListEmployeeFilter{})
		if err != nil {
			return fmt.Errorf("failed to read employees: %w", err)
		}
		for _, e := range employees {
			snap.Employees = append(snap.Employees, employee.NewEmployeeResponse(e))
		}

		records, err := s.recordRepo.List(ctx, record.RecordFilter{})
		if err != nil {
			return fmt.Errorf("failed to read records: %w", err)
		}
		for _, r := range records {
			snap.Records = append(snap.Records, record.NewRecordResponse(r))
		}

		users, err := s.userRepo.List(ctx)
		if err != nil {
			return fmt.Errorf("failed to read users: %w", err)
		}
		for _, u := range users {
			snap.Users = append(snap.Users, user.NewUserResponse(u))
		}

		rows, err := s.attendanceRepo.ListAll(ctx)
		if err != nil {
			return fmt.Errorf("failed to read attendance: %w", err)
		}
		for _, a := range rows {
			snap.Attendance = append(snap.Attendance, backup.AttendanceMonth{
				EmployeeID: a.EmployeeID,
				Month:      a.Month,
				Data:       a.Data,
			})
		}
		return nil
	})
	if err != nil {
		return backup.Snapshot{}, err
	}

	return snap, nil
}

// WriteToStorage implements backup.BackupService.
func (s *BackupServiceImpl) WriteToStorage(ctx context.Context) (backup.StoredBackup, error) {
	if s.storage == nil {
		return backup.StoredBackup{}, backup.ErrStorageNotConfigured
	}

	snap, err := s.Snapshot(ctx)
	if err != nil {
		return backup.StoredBackup{}, err
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		return backup.StoredBackup{}, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	size := int64(buf.Len())

	name := fileNamePrefix + snap.GeneratedAt.Format(fileNameLayout) + ".json"
	stored, err := s.storage.Upload(ctx, &buf, path.Join(s.prefix, name))
	if err != nil {
		return backup.StoredBackup{}, fmt.Errorf("failed to store snapshot: %w", err)
	}

	return backup.StoredBackup{Path: stored, Size: size, GeneratedAt: snap.GeneratedAt}, nil
}

// ListStored implements backup.BackupService.
func (s *BackupServiceImpl) ListStored(ctx context.Context) ([]string, error) {
	if s.storage == nil {
		return nil, backup.ErrStorageNotConfigured
	}

	paths, err := s.storage.List(ctx, s.prefix)
	if err != nil {
		return nil, err
	}

	stored := []string{}
	for _, p := range paths {
		base := path.Base(p)
		if strings.HasPrefix(base, fileNamePrefix) && strings.HasSuffix(base, ".json") {
			stored = append(stored, p)
		}
	}
	return stored, nil
}

// OpenStored implements backup.BackupService.
func (s *BackupServiceImpl) OpenStored(ctx context.Context, name string) (io.ReadCloser, error) {
	if s.storage == nil {
		return nil, backup.ErrStorageNotConfigured
	}

	base := path.Base(name)
	if !strings.HasPrefix(base, fileNamePrefix) || !strings.HasSuffix(base, ".json") {
		return nil, backup.ErrBackupNotFound
	}

	rc, err := s.storage.Download(ctx, path.Join(s.prefix, base))
	if err != nil {
		if errors.Is(err, storage.ErrFileNotFound) {
			return nil, backup.ErrBackupNotFound
		}
		return nil, err
	}
	return rc, nil
}

// Prune implements backup.BackupService.
func (s *BackupServiceImpl) Prune(ctx context.Context, keep int) (int, error) {
	if keep <= 0 {
		return 0, nil
	}

	stored, err := s.ListStored(ctx)
	if err != nil {
		return 0, err
	}
	if len(stored) <= keep {
		return 0, nil
	}

	// names embed a sortable timestamp, so the list is oldest first
	removed := 0
	for _, p := range stored[:len(stored)-keep] {
		if err := s.storage.Delete(ctx, p); err != nil {
			return removed, fmt.Errorf("failed to remove %s: %w", p, err)
		}
		removed++
	}
	return removed, nil
}
