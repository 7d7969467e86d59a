package project

import "context"

type ProjectRepository interface {
	Create(ctx context.Context, project Project) (Project, error)
	GetByID(ctx context.Context, id string) (Project, error)
	GetByKey(ctx context.Context, key string) (Project, error)
	List(ctx context.Context) ([]Project, error)
	Update(ctx context.Context, req UpdateProjectRequest) (Project, error)
	Delete(ctx context.Context, id string) error
}
