package postgresql

import (
	"context"
	"fmt"

	"github.com/staffhub-hq/staffhub-backend-go/internal/domain/dashboard"
	"github.com/staffhub-hq/staffhub-backend-go/internal/pkg/database"
)

type dashboardRepository struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.Repository {
	return &dashboardRepository{db: db}
}

// EmployeeCounts implements dashboard.Repository.
func (r *dashboardRepository) EmployeeCounts(ctx context.Context) (dashboard.EmployeeStats, error) {
	q := GetQuerier(ctx, r.db)

	var stats dashboard.EmployeeStats
	err := q.QueryRow(ctx, `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE is_active)
		FROM employees
	`).Scan(&stats.Total, &stats.Active)
	if err != nil {
		return dashboard.EmployeeStats{}, fmt.Errorf("failed to count employees: %w", err)
	}
	stats.Inactive = stats.Total - stats.Active

	return stats, nil
}

// AssetCounts implements dashboard.Repository.
func (r *dashboardRepository) AssetCounts(ctx context.Context) (dashboard.AssetStats, error) {
	q := GetQuerier(ctx, r.db)

	var stats dashboard.AssetStats
	err := q.QueryRow(ctx, `
		SELECT COUNT(*),
			   COUNT(*) FILTER (WHERE status = 'Assigned'),
			   COUNT(*) FILTER (WHERE status = 'Available')
		FROM assets
	`).Scan(&stats.Total, &stats.Assigned, &stats.Available)
	if err != nil {
		return dashboard.AssetStats{}, fmt.Errorf("failed to count assets: %w", err)
	}

	return stats, nil
}
