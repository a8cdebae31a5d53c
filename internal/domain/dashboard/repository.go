package dashboard

import "context"

// Repository aggregates counts that have no single owning module.
type Repository interface {
	EmployeeCounts(ctx context.Context) (EmployeeStats, error)
	AssetCounts(ctx context.Context) (AssetStats, error)
}
