package holiday

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, h Holiday) (Holiday, error)
	GetByID(ctx context.Context, id string) (Holiday, error)
	List(ctx context.Context) ([]Holiday, error)

	// ListUpcoming returns holidays on or after from, soonest first,
	// including recurring holidays whose anniversary falls after from.
	ListUpcoming(ctx context.Context, from time.Time, limit int) ([]Holiday, error)

	Update(ctx context.Context, h Holiday) (Holiday, error)
	Delete(ctx context.Context, id string) error
}
