package onboarding

import "context"

type Service interface {
	Create(ctx context.Context, req CreateRequest) (Response, error)
	List(ctx context.Context) ([]Response, error)
	ListByEmployee(ctx context.Context, employeeCode string) ([]Response, error)

	// UpdateStatus moves a task forward. Only Pending → In Progress →
	// Completed steps are accepted; Completed stamps CompletedAt.
	UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (Response, error)

	Delete(ctx context.Context, id string) error
}
