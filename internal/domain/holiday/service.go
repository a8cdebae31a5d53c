package holiday

import "context"

type Service interface {
	Create(ctx context.Context, req CreateRequest) (Response, error)
	Get(ctx context.Context, id string) (Response, error)
	List(ctx context.Context) ([]Response, error)
	Upcoming(ctx context.Context) ([]Response, error)
	Update(ctx context.Context, id string, req UpdateRequest) (Response, error)
	Delete(ctx context.Context, id string) error
}
