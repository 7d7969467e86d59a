package backup

import (
	"time"

	"github.com/cmlabs-hris/teamtime-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/teamtime-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/teamtime-backend-go/internal/domain/project"
	"github.com/cmlabs-hris/teamtime-backend-go/internal/domain/record"
	"github.com/cmlabs-hris/teamtime-backend-go/internal/domain/user"
)

// SnapshotVersion is bumped whenever the snapshot layout changes.
const SnapshotVersion = 1

// Snapshot is a full export of every collection. Password hashes are never included.
type Snapshot struct {
	Version     int                         `json:"version"`
	GeneratedAt time.Time                   `json:"generated_at"`
	Projects    []project.ProjectResponse   `json:"projects"`
	Employees   []employee.EmployeeResponse `json:"employees"`
	Records     []record.RecordResponse     `json:"records"`
	Users       []user.UserResponse         `json:"users"`
	Attendance  []AttendanceMonth           `json:"attendance"`
}

type AttendanceMonth struct {
	EmployeeID string          `json:"employee_id"`
	Month      string          `json:"month"`
	Data       attendance.Blob `json:"data"`
}

// StoredBackup describes a snapshot written to file storage.
type StoredBackup struct {
	Path        string    `json:"path"`
	Size        int64     `json:"size"`
	GeneratedAt time.Time `json:"generated_at"`
}
