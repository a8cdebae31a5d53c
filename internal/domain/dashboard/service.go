package dashboard

import "context"

type Service interface {
	Stats(ctx context.Context) (StatsResponse, error)
}
