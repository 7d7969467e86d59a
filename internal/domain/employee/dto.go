package employee

import "github.com/cmlabs-hris/teamtime-backend-go/internal/pkg/validator"

type EmployeeResponse struct {
	ID        string  `json:"id"`
	FullName  string  `json:"full_name"`
	Title     string  `json:"title"`
	ProjectID *string `json:"project_id,omitempty"`
}

func NewEmployeeResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:        e.ID,
		FullName:  e.FullName,
		Title:     e.Title,
		ProjectID: e.ProjectID,
	}
}

// ListEmployeeFilter narrows the employee list; ProjectID comes from ?project_id=
type ListEmployeeFilter struct {
	ProjectID *string
}

type CreateEmployeeRequest struct {
	FullName  string  `json:"full_name"`
	Title     string  `json:"title"`
	ProjectID *string `json:"project_id,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	} else if len(r.FullName) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name must not exceed 100 characters",
		})
	}

	if len(r.Title) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title must not exceed 100 characters",
		})
	}

	if r.ProjectID != nil && !validator.IsValidUUID(*r.ProjectID) {
		errs = append(errs, validator.ValidationError{
			Field:   "project_id",
			Message: "project_id must be a valid UUID",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateEmployeeRequest changes only the fields that are present.
// An empty project_id detaches the employee from its project.
type UpdateEmployeeRequest struct {
	ID        string  `json:"-"`
	FullName  *string `json:"full_name,omitempty"`
	Title     *string `json:"title,omitempty"`
	ProjectID *string `json:"project_id,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.FullName != nil {
		if validator.IsEmpty(*r.FullName) {
			errs = append(errs, validator.ValidationError{
				Field:   "full_name",
				Message: "full_name must not be empty",
			})
		} else if len(*r.FullName) > 100 {
			errs = append(errs, validator.ValidationError{
				Field:   "full_name",
				Message: "full_name must not exceed 100 characters",
			})
		}
	}

	if r.Title != nil && len(*r.Title) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title must not exceed 100 characters",
		})
	}

	if r.ProjectID != nil && *r.ProjectID != "" && !validator.IsValidUUID(*r.ProjectID) {
		errs = append(errs, validator.ValidationError{
			Field:   "project_id",
			Message: "project_id must be a valid UUID",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
