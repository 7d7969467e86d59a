package record

import "context"

type RecordRepository interface {
	Create(ctx context.Context, rec Record) (Record, error)
	GetByID(ctx context.Context, id string) (Record, error)
	List(ctx context.Context, filter RecordFilter) ([]Record, error)
	Update(ctx context.Context, req UpdateRecordRequest) (Record, error)
	Delete(ctx context.Context, id string) error
	CountByEmployee(ctx context.Context, employeeID string) (int, error)
	CountByProject(ctx context.Context, projectID string) (int, error)
}
