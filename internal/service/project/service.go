package project

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/teamtime-backend-go/internal/domain/project"
	"github.com/cmlabs-hris/teamtime-backend-go/internal/domain/record"
	"github.com/cmlabs-hris/teamtime-backend-go/internal/service/scope"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type projectServiceImpl struct {
	projectRepo project.ProjectRepository
	recordRepo  record.RecordRepository
}

func NewProjectService(projectRepo project.ProjectRepository, recordRepo record.RecordRepository) project.ProjectService {
	return &projectServiceImpl{
		projectRepo: projectRepo,
		recordRepo:  recordRepo,
	}
}

func mapWriteError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return project.ErrProjectKeyExists
		case "23503": // foreign_key_violation
			return project.ErrProjectInUse
		}
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return project.ErrProjectNotFound
	}
	return err
}

// List implements project.ProjectService.
func (s *projectServiceImpl) List(ctx context.Context) ([]project.ProjectResponse, error) {
	ps, err := scope.Resolve(ctx, s.projectRepo)
	if err != nil {
		return nil, err
	}

	projects, err := s.projectRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := []project.ProjectResponse{}
	for _, p := range projects {
		if ps.Allows(&p.ID) {
			responses = append(responses, project.NewProjectResponse(p))
		}
	}
	return responses, nil
}

// Get implements project.ProjectService.
func (s *projectServiceImpl) Get(ctx context.Context, id string) (project.ProjectResponse, error) {
	ps, err := scope.Resolve(ctx, s.projectRepo)
	if err != nil {
		return project.ProjectResponse{}, err
	}

	p, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return project.ProjectResponse{}, project.ErrProjectNotFound
		}
		return project.ProjectResponse{}, err
	}

	if !ps.Allows(&p.ID) {
		return project.ProjectResponse{}, project.ErrProjectAccessDenied
	}
	return project.NewProjectResponse(p), nil
}

// Create implements project.ProjectService.
func (s *projectServiceImpl) Create(ctx context.Context, req project.CreateProjectRequest) (project.ProjectResponse, error) {
	if err := req.Validate(); err != nil {
		return project.ProjectResponse{}, err
	}

	created, err := s.projectRepo.Create(ctx, project.Project{
		Key:         req.Key,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		if mapped := mapWriteError(err); mapped != err {
			return project.ProjectResponse{}, mapped
		}
		return project.ProjectResponse{}, fmt.Errorf("failed to create project: %w", err)
	}

	return project.NewProjectResponse(created), nil
}

// Update implements project.ProjectService.
func (s *projectServiceImpl) Update(ctx context.Context, req project.UpdateProjectRequest) (project.ProjectResponse, error) {
	if err := req.Validate(); err != nil {
		return project.ProjectResponse{}, err
	}

	updated, err := s.projectRepo.Update(ctx, req)
	if err != nil {
		return project.ProjectResponse{}, mapWriteError(err)
	}
	return project.NewProjectResponse(updated), nil
}

// Delete implements project.ProjectService.
func (s *projectServiceImpl) Delete(ctx context.Context, id string) error {
	n, err := s.recordRepo.CountByProject(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return project.ErrProjectInUse
	}

	if err := s.projectRepo.Delete(ctx, id); err != nil {
		return mapWriteError(err)
	}
	return nil
}
