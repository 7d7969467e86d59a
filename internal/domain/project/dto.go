package project

import (
	"strings"

	"github.com/cmlabs-hris/teamtime-backend-go/internal/pkg/validator"
)

// ProjectResponse represents the response structure for a project.
type ProjectResponse struct {
	ID          string  `json:"id"`
	Key         string  `json:"key"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

func NewProjectResponse(p Project) ProjectResponse {
	return ProjectResponse{
		ID:          p.ID,
		Key:         p.Key,
		Name:        p.Name,
		Description: p.Description,
	}
}

// CreateProjectRequest represents the request structure for creating a project.
type CreateProjectRequest struct {
	Key         string  `json:"key"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

func (r *CreateProjectRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Key = strings.ToUpper(strings.TrimSpace(r.Key))
	if validator.IsEmpty(r.Key) {
		errs = append(errs, validator.ValidationError{
			Field:   "key",
			Message: "key is required",
		})
	} else if !validator.IsValidProjectKey(r.Key) {
		errs = append(errs, validator.ValidationError{
			Field:   "key",
			Message: "key must be 2-20 uppercase letters, digits or hyphens",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if len(r.Name) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 100 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateProjectRequest represents the request structure for updating a project.
type UpdateProjectRequest struct {
	ID          string  `json:"-"`
	Key         *string `json:"key,omitempty"`
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (r *UpdateProjectRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.Key != nil {
		key := strings.ToUpper(strings.TrimSpace(*r.Key))
		r.Key = &key
		if !validator.IsValidProjectKey(key) {
			errs = append(errs, validator.ValidationError{
				Field:   "key",
				Message: "key must be 2-20 uppercase letters, digits or hyphens",
			})
		}
	}

	if r.Name != nil {
		if validator.IsEmpty(*r.Name) {
			errs = append(errs, validator.ValidationError{
				Field:   "name",
				Message: "name must not be empty",
			})
		}
		if len(*r.Name) > 100 {
			errs = append(errs, validator.ValidationError{
				Field:   "name",
				Message: "name must not exceed 100 characters",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
