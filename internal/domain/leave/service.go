package leave

import "context"

type Service interface {
	Create(ctx context.Context, req CreateRequest) (Response, error)
	Get(ctx context.Context, id string) (Response, error)
	List(ctx context.Context, filter ListFilter) ([]Response, error)

	// Review approves or rejects a pending request. An approved leave that
	// spans today flips the employee's attendance row to On Leave.
	Review(ctx context.Context, id string, req ReviewRequest) (Response, error)
}
