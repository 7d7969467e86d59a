package user

type Permission string

const (
	// Attendance
	PermissionAttendanceView Permission = "attendance.view"
	PermissionAttendanceEdit Permission = "attendance.edit"

	// Time records
	PermissionRecordView   Permission = "record.view"
	PermissionRecordManage Permission = "record.manage"

	// Master data
	PermissionProjectManage  Permission = "project.manage"
	PermissionEmployeeManage Permission = "employee.manage"

	// Admin panel
	PermissionUserManage   Permission = "user.manage"
	PermissionBackupExport Permission = "backup.export"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermissionAttendanceView,
		PermissionAttendanceEdit,
		PermissionRecordView,
		PermissionRecordManage,
		PermissionProjectManage,
		PermissionEmployeeManage,
		PermissionUserManage,
		PermissionBackupExport,
	},
	RoleManager: {
		PermissionAttendanceView,
		PermissionAttendanceEdit,
		PermissionRecordView,
		PermissionRecordManage,
		PermissionEmployeeManage,
	},
	RoleUser: {
		PermissionAttendanceView,
		PermissionRecordView,
	},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}

	return false
}
