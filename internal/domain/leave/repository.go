package leave

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, req Request) (Request, error)
	GetByID(ctx context.Context, id string) (Request, error)

	// GetForUpdate locks the row for review; must run inside a transaction.
	GetForUpdate(ctx context.Context, id string) (Request, error)

	List(ctx context.Context, filter ListFilter) ([]Request, error)
	UpdateStatus(ctx context.Context, id string, status Status, reviewer *string) error
	CountPending(ctx context.Context) (int, error)

	// HasOverlap reports whether the employee already has a non-rejected
	// request intersecting [start, end].
	HasOverlap(ctx context.Context, employeeID string, start, end time.Time) (bool, error)
}
