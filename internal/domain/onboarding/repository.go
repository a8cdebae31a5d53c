package onboarding

import "context"

type Repository interface {
	Create(ctx context.Context, t Task) (Task, error)
	GetByID(ctx context.Context, id string) (Task, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Task, error)
	List(ctx context.Context) ([]Task, error)
	Update(ctx context.Context, t Task) (Task, error)
	Delete(ctx context.Context, id string) error
}
