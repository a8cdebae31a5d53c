package asset

import "context"

type Repository interface {
	Create(ctx context.Context, a Asset) (Asset, error)
	GetByID(ctx context.Context, id string) (Asset, error)

	// GetForUpdate locks the row for assignment; must run inside a
	// transaction.
	GetForUpdate(ctx context.Context, id string) (Asset, error)

	List(ctx context.Context, filter ListFilter) ([]Asset, error)
	Update(ctx context.Context, a Asset) (Asset, error)
	Delete(ctx context.Context, id string) error
}
