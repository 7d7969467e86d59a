package employee

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/teamtime-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/teamtime-backend-go/internal/domain/project"
	"github.com/cmlabs-hris/teamtime-backend-go/internal/domain/record"
	"github.com/cmlabs-hris/teamtime-backend-go/internal/service/scope"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	projectRepo  project.ProjectRepository
	recordRepo   record.RecordRepository
}

func NewEmployeeService(
	employeeRepo employee.EmployeeRepository,
	projectRepo project.ProjectRepository,
	recordRepo record.RecordRepository,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
		projectRepo:  projectRepo,
		recordRepo:   recordRepo,
	}
}

// ensureProject checks that an assigned project exists. Nil or empty means unassigned.
func (s *EmployeeServiceImpl) ensureProject(ctx context.Context, projectID *string) error {
	if projectID == nil || *projectID == "" {
		return nil
	}
	if _, err := s.projectRepo.GetByID(ctx, *projectID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrProjectNotFound
		}
		return fmt.Errorf("failed to check project: %w", err)
	}
	return nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context, filter employee.ListEmployeeFilter) ([]employee.EmployeeResponse, error) {
	ps, err := scope.Resolve(ctx, s.projectRepo)
	if err != nil {
		return nil, err
	}

	if ps.Restricted {
		if ps.ProjectID == "" {
			return []employee.EmployeeResponse{}, nil
		}
		if filter.ProjectID != nil && *filter.ProjectID != ps.ProjectID {
			return []employee.EmployeeResponse{}, nil
		}
		filter.ProjectID = &ps.ProjectID
	}

	employees, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, employee.NewEmployeeResponse(e))
	}
	return responses, nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	ps, err := scope.Resolve(ctx, s.projectRepo)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	e, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, err
	}

	// Employees outside the caller's project are reported as missing.
	if !ps.Allows(e.ProjectID) {
		return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
	}
	return employee.NewEmployeeResponse(e), nil
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}
	if err := s.ensureProject(ctx, req.ProjectID); err != nil {
		return employee.EmployeeResponse{}, err
	}

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		FullName:  req.FullName,
		Title:     req.Title,
		ProjectID: req.ProjectID,
	})
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	slog.Info("employee created", "employee_id", created.ID)
	return employee.NewEmployeeResponse(created), nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}
	if err := s.ensureProject(ctx, req.ProjectID); err != nil {
		return employee.EmployeeResponse{}, err
	}

	updated, err := s.employeeRepo.Update(ctx, req)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}
	return employee.NewEmployeeResponse(updated), nil
}

// Delete implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	n, err := s.recordRepo.CountByEmployee(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return employee.ErrEmployeeHasRecords
	}

	if err := s.employeeRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return employee.ErrEmployeeHasRecords
		}
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	slog.Info("employee deleted", "employee_id", id)
	return nil
}
