package employee

import "context"

type Service interface {
	Create(ctx context.Context, req CreateRequest) (Response, error)
	Get(ctx context.Context, id string) (Response, error)
	GetByCode(ctx context.Context, employeeCode string) (Response, error)
	Update(ctx context.Context, req UpdateRequest) (Response, error)
	List(ctx context.Context, filter ListFilter) ([]Response, error)
	Deactivate(ctx context.Context, id string) error
}
