package user

import "time"

type Role string

const (
	RoleAdmin   Role = "admin"   // Manages users, projects and backups
	RoleManager Role = "manager" // Edits attendance and time records
	RoleUser    Role = "user"    // Read access scoped to one project
)

// Roles lists every valid role.
var Roles = []Role{RoleAdmin, RoleManager, RoleUser}

type User struct {
	ID           string
	AuthUserID   *string // id at the identity provider
	Username     string
	PasswordHash string
	Role         Role
	ProjectKey   *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin checks if user is an administrator
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsManager checks if user is manager or admin
func (u *User) IsManager() bool {
	return u.Role == RoleManager || u.Role == RoleAdmin
}

func (r Role) IsValid() bool {
	for _, role := range Roles {
		if r == role {
			return true
		}
	}
	return false
}
