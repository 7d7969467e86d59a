package record

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/teamtime-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/teamtime-backend-go/internal/domain/project"
	"github.com/cmlabs-hris/teamtime-backend-go/internal/domain/record"
	"github.com/cmlabs-hris/teamtime-backend-go/internal/service/scope"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type RecordServiceImpl struct {
	recordRepo   record.RecordRepository
	projectRepo  project.ProjectRepository
	employeeRepo employee.EmployeeRepository
}

func NewRecordService(
	recordRepo record.RecordRepository,
	projectRepo project.ProjectRepository,
	employeeRepo employee.EmployeeRepository,
) record.RecordService {
	return &RecordServiceImpl{
		recordRepo:   recordRepo,
		projectRepo:  projectRepo,
		employeeRepo: employeeRepo,
	}
}

func (s *RecordServiceImpl) ensureProject(ctx context.Context, id string) error {
	if _, err := s.projectRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return record.ErrProjectNotFound
		}
		return fmt.Errorf("failed to check project: %w", err)
	}
	return nil
}

func (s *RecordServiceImpl) ensureEmployee(ctx context.Context, id string) error {
	if _, err := s.employeeRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return record.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to check employee: %w", err)
	}
	return nil
}

func (s *RecordServiceImpl) getVisible(ctx context.Context, ps scope.ProjectScope, id string) (record.Record, error) {
	rec, err := s.recordRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return record.Record{}, record.ErrRecordNotFound
		}
		return record.Record{}, err
	}
	if !ps.Allows(&rec.ProjectID) {
		return record.Record{}, record.ErrRecordNotFound
	}
	return rec, nil
}

func mapWriteError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == "23503" && pgErr.ConstraintName == "records_employee_id_fkey":
			return record.ErrEmployeeNotFound
		case pgErr.Code == "23503":
			return record.ErrProjectNotFound
		case pgErr.Code == "23514": // check_violation
			return record.ErrInvalidHours
		}
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return record.ErrRecordNotFound
	}
	return err
}

// List implements record.RecordService.
func (s *RecordServiceImpl) List(ctx context.Context, filter record.RecordFilter) ([]record.RecordResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	ps, err := scope.Resolve(ctx, s.projectRepo)
	if err != nil {
		return nil, err
	}
	if ps.Restricted {
		if ps.ProjectID == "" || (filter.ProjectID != nil && *filter.ProjectID != ps.ProjectID) {
			return []record.RecordResponse{}, nil
		}
		filter.ProjectID = &ps.ProjectID
	}

	records, err := s.recordRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}

	responses := make([]record.RecordResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, record.NewRecordResponse(r))
	}
	return responses, nil
}

// Get implements record.RecordService.
func (s *RecordServiceImpl) Get(ctx context.Context, id string) (record.RecordResponse, error) {
	ps, err := scope.Resolve(ctx, s.projectRepo)
	if err != nil {
		return record.RecordResponse{}, err
	}

	rec, err := s.getVisible(ctx, ps, id)
	if err != nil {
		return record.RecordResponse{}, err
	}
	return record.NewRecordResponse(rec), nil
}

// Create implements record.RecordService.
func (s *RecordServiceImpl) Create(ctx context.Context, req record.CreateRecordRequest) (record.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return record.RecordResponse{}, err
	}

	ps, err := scope.Resolve(ctx, s.projectRepo)
	if err != nil {
		return record.RecordResponse{}, err
	}
	if !ps.Allows(&req.ProjectID) {
		return record.RecordResponse{}, project.ErrProjectAccessDenied
	}

	if err := s.ensureProject(ctx, req.ProjectID); err != nil {
		return record.RecordResponse{}, err
	}
	if err := s.ensureEmployee(ctx, req.EmployeeID); err != nil {
		return record.RecordResponse{}, err
	}

	created, err := s.recordRepo.Create(ctx, req.Record())
	if err != nil {
		return record.RecordResponse{}, mapWriteError(err)
	}
	return record.NewRecordResponse(created), nil
}

// Update implements record.RecordService.
func (s *RecordServiceImpl) Update(ctx context.Context, req record.UpdateRecordRequest) (record.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return record.RecordResponse{}, err
	}

	ps, err := scope.Resolve(ctx, s.projectRepo)
	if err != nil {
		return record.RecordResponse{}, err
	}
	if _, err := s.getVisible(ctx, ps, req.ID); err != nil {
		return record.RecordResponse{}, err
	}

	if req.ProjectID != nil {
		if !ps.Allows(req.ProjectID) {
			return record.RecordResponse{}, project.ErrProjectAccessDenied
		}
		if err := s.ensureProject(ctx, *req.ProjectID); err != nil {
			return record.RecordResponse{}, err
		}
	}

	updated, err := s.recordRepo.Update(ctx, req)
	if err != nil {
		return record.RecordResponse{}, mapWriteError(err)
	}
	return record.NewRecordResponse(updated), nil
}

// Delete implements record.RecordService.
func (s *RecordServiceImpl) Delete(ctx context.Context, id string) error {
	ps, err := scope.Resolve(ctx, s.projectRepo)
	if err != nil {
		return err
	}
	if _, err := s.getVisible(ctx, ps, id); err != nil {
		return err
	}

	if err := s.recordRepo.Delete(ctx, id); err != nil {
		return mapWriteError(err)
	}
	return nil
}
