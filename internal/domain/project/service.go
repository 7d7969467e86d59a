package project

import "context"

type ProjectService interface {
	List(ctx context.Context) ([]ProjectResponse, error)
	Get(ctx context.Context, id string) (ProjectResponse, error)
	Create(ctx context.Context, req CreateProjectRequest) (ProjectResponse, error)
	Update(ctx context.Context, req UpdateProjectRequest) (ProjectResponse, error)
	Delete(ctx context.Context, id string) error
}
