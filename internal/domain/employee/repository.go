package employee

import "context"

type Repository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByCode(ctx context.Context, employeeCode string) (Employee, error)
	Create(ctx context.Context, emp Employee) (Employee, error)
	Update(ctx context.Context, emp Employee) error
	List(ctx context.Context, filter ListFilter) ([]Employee, error)
	ListActive(ctx context.Context) ([]Employee, error)
	Deactivate(ctx context.Context, id string) error
}
