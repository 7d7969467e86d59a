package record

import "context"

type RecordService interface {
	List(ctx context.Context, filter RecordFilter) ([]RecordResponse, error)
	Get(ctx context.Context, id string) (RecordResponse, error)
	Create(ctx context.Context, req CreateRecordRequest) (RecordResponse, error)
	Update(ctx context.Context, req UpdateRecordRequest) (RecordResponse, error)
	Delete(ctx context.Context, id string) error
}
