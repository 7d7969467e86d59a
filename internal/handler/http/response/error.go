package response

import (
	"errors"
	"net/http"

	"github.com/cmlabs-hris/teamtime-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/teamtime-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/teamtime-backend-go/internal/domain/backup"
	"github.com/cmlabs-hris/teamtime-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/teamtime-backend-go/internal/domain/project"
	"github.com/cmlabs-hris/teamtime-backend-go/internal/domain/record"
	"github.com/cmlabs-hris/teamtime-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/teamtime-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrMissingClaims):
		Unauthorized(w, "Missing or invalid token claims")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUsernameExists):
		Conflict(w, "Username already taken")
	case errors.Is(err, user.ErrInsufficientPermissions):
		Forbidden(w, err.Error())
	case errors.Is(err, user.ErrCannotDeleteSelf):
		BadRequest(w, "You cannot delete your own account", nil)
	case errors.Is(err, user.ErrLastAdmin):
		Conflict(w, "At least one admin must remain")
	case errors.Is(err, user.ErrProjectKeyNotFound):
		BadRequest(w, "Project key does not exist", nil)
	case errors.Is(err, user.ErrIdentityProvisionFailed):
		BadGateway(w, "Failed to create login identity")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrInvalidDay),
		errors.Is(err, attendance.ErrInvalidMonthKey),
		errors.Is(err, attendance.ErrInvalidClock),
		errors.Is(err, attendance.ErrInvalidStatus):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance not found")
	case errors.Is(err, attendance.ErrDayNotFound):
		NotFound(w, "No attendance entry for this day")

	// Project domain errors
	case errors.Is(err, project.ErrProjectNotFound):
		NotFound(w, "Project not found")
	case errors.Is(err, project.ErrProjectKeyExists):
		Conflict(w, "Project key already exists")
	case errors.Is(err, project.ErrProjectInUse):
		Conflict(w, "Project still has employees or records")
	case errors.Is(err, project.ErrProjectAccessDenied):
		Forbidden(w, "Project is outside of your scope")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrProjectNotFound):
		BadRequest(w, "Assigned project does not exist", nil)
	case errors.Is(err, employee.ErrEmployeeHasRecords):
		Conflict(w, "Employee still has time records")

	// Record domain errors
	case errors.Is(err, record.ErrRecordNotFound):
		NotFound(w, "Record not found")
	case errors.Is(err, record.ErrInvalidHours):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, record.ErrProjectNotFound):
		BadRequest(w, "Project does not exist", nil)
	case errors.Is(err, record.ErrEmployeeNotFound):
		BadRequest(w, "Employee does not exist", nil)

	// Backup domain errors
	case errors.Is(err, backup.ErrBackupNotFound):
		NotFound(w, "Backup not found")
	case errors.Is(err, backup.ErrStorageNotConfigured):
		ServiceUnavailable(w, "Backup storage is not configured")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
