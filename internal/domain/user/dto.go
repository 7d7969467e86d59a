package user

import (
	"strings"

	"github.com/cmlabs-hris/teamtime-backend-go/internal/pkg/validator"
)

// UserResponse represents user data in API responses
type UserResponse struct {
	ID         string  `json:"id"`
	AuthUserID *string `json:"auth_user_id,omitempty"`
	Username   string  `json:"username"`
	Role       string  `json:"role"`
	ProjectKey *string `json:"project_key,omitempty"`
	CreatedAt  string  `json:"created_at"`
	UpdatedAt  string  `json:"updated_at"`
}

func NewUserResponse(u User) UserResponse {
	return UserResponse{
		ID:         u.ID,
		AuthUserID: u.AuthUserID,
		Username:   u.Username,
		Role:       string(u.Role),
		ProjectKey: u.ProjectKey,
		CreatedAt:  u.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:  u.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

// CreateUserRequest is the body of the provisioning endpoint
type CreateUserRequest struct {
	Username   string  `json:"username"`
	Password   string  `json:"password"`
	Role       string  `json:"role"`
	ProjectKey *string `json:"project_key,omitempty"`
}

func (r *CreateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Username = strings.TrimSpace(r.Username)
	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username is required",
		})
	} else if !validator.IsValidUsername(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username must be 3-50 characters of letters, numbers, dots, underscores or hyphens",
		})
	}

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	} else if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}

	if validator.IsEmpty(r.Role) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role is required",
		})
	} else if !Role(r.Role).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of: admin, manager, user",
		})
	}

	if r.ProjectKey != nil && *r.ProjectKey != "" && !validator.IsValidProjectKey(*r.ProjectKey) {
		errs = append(errs, validator.ValidationError{
			Field:   "project_key",
			Message: "invalid project_key",
		})
	}

	if Role(r.Role) == RoleUser && (r.ProjectKey == nil || *r.ProjectKey == "") {
		errs = append(errs, validator.ValidationError{
			Field:   "project_key",
			Message: "project_key is required for the user role",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ProvisionResponse is returned after a user has been provisioned
type ProvisionResponse struct {
	ID         string `json:"id"`
	AuthUserID string `json:"auth_user_id"`
}

// UpdateUserRequest changes the role or project scope of a user
type UpdateUserRequest struct {
	ID         string  `json:"-"`
	Role       *string `json:"role,omitempty"`
	ProjectKey *string `json:"project_key,omitempty"`
}

func (r *UpdateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.Role != nil && !Role(*r.Role).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of: admin, manager, user",
		})
	}

	if r.ProjectKey != nil && *r.ProjectKey != "" && !validator.IsValidProjectKey(*r.ProjectKey) {
		errs = append(errs, validator.ValidationError{
			Field:   "project_key",
			Message: "invalid project_key",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ResetPasswordRequest struct {
	ID       string `json:"-"`
	Password string `json:"password"`
}

func (r *ResetPasswordRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
