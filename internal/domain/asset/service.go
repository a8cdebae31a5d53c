package asset

import "context"

type Service interface {
	Create(ctx context.Context, req CreateRequest) (Response, error)
	Get(ctx context.Context, id string) (Response, error)
	List(ctx context.Context, filter ListFilter) ([]Response, error)

	// Assign hands the asset to an employee, stamping today's date and
	// flipping the status to Assigned.
	Assign(ctx context.Context, id string, req AssignRequest) (Response, error)

	// Unassign returns the asset to the pool, restoring Available.
	Unassign(ctx context.Context, id string) (Response, error)

	Delete(ctx context.Context, id string) error
}
