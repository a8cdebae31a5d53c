package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/staffhub-hq/staffhub-backend-go/internal/domain/asset"
	"github.com/staffhub-hq/staffhub-backend-go/internal/pkg/database"
)

type assetRepository struct {
	db *database.DB
}

func NewAssetRepository(db *database.DB) asset.Repository {
	return &assetRepository{db: db}
}

const assetColumns = `
	a.id, a.name, a.asset_tag, a.category, a.serial_number, a.status,
	a.assigned_to, a.assigned_date, a.created_at, a.updated_at,
	e.first_name || ' ' || e.last_name, e.employee_code
`

func scanAsset(row pgx.Row) (asset.Asset, error) {
	var a asset.Asset
	err := row.Scan(
		&a.ID, &a.Name, &a.AssetTag, &a.Category, &a.SerialNumber, &a.Status,
		&a.AssignedTo, &a.AssignedDate, &a.CreatedAt, &a.UpdatedAt,
		&a.AssignedName, &a.AssignedCode,
	)
	return a, err
}

// Create implements asset.Repository.
func (r *assetRepository) Create(ctx context.Context, a asset.Asset) (asset.Asset, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO assets (id, name, asset_tag, category, serial_number, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query, a.ID, a.Name, a.AssetTag, a.Category, a.SerialNumber, a.Status).
		Scan(&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return asset.Asset{}, asset.ErrAssetTagExists
		}
		return asset.Asset{}, fmt.Errorf("failed to create asset: %w", err)
	}

	return a, nil
}

// GetByID implements asset.Repository.
func (r *assetRepository) GetByID(ctx context.Context, id string) (asset.Asset, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + assetColumns + `
		FROM assets a
		LEFT JOIN employees e ON e.id = a.assigned_to
		WHERE a.id = $1
	`

	a, err := scanAsset(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return asset.Asset{}, asset.ErrAssetNotFound
		}
		return asset.Asset{}, fmt.Errorf("failed to get asset: %w", err)
	}

	return a, nil
}

// GetForUpdate implements asset.Repository. Must run inside a transaction.
func (r *assetRepository) GetForUpdate(ctx context.Context, id string) (asset.Asset, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, asset_tag, category, serial_number, status,
			   assigned_to, assigned_date, created_at, updated_at
		FROM assets
		WHERE id = $1
		FOR UPDATE
	`

	var a asset.Asset
	err := q.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.Name, &a.AssetTag, &a.Category, &a.SerialNumber, &a.Status,
		&a.AssignedTo, &a.AssignedDate, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return asset.Asset{}, asset.ErrAssetNotFound
		}
		return asset.Asset{}, fmt.Errorf("failed to lock asset: %w", err)
	}

	return a, nil
}

// List implements asset.Repository.
func (r *assetRepository) List(ctx context.Context, filter asset.ListFilter) ([]asset.Asset, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + assetColumns + `
		FROM assets a
		LEFT JOIN employees e ON e.id = a.assigned_to
		WHERE 1=1
	`
	args := []any{}
	argPos := 1

	if filter.Status != nil {
		query += fmt.Sprintf(" AND a.status = $%d", argPos)
		args = append(args, *filter.Status)
		argPos++
	}
	if filter.Category != nil {
		query += fmt.Sprintf(" AND a.category = $%d", argPos)
		args = append(args, *filter.Category)
		argPos++
	}

	query += " ORDER BY a.asset_tag ASC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	defer rows.Close()

	var assets []asset.Asset
	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan asset: %w", err)
		}
		assets = append(assets, a)
	}

	return assets, rows.Err()
}

// Update implements asset.Repository.
func (r *assetRepository) Update(ctx context.Context, a asset.Asset) (asset.Asset, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE assets
		SET name = $2, asset_tag = $3, category = $4, serial_number = $5,
			status = $6, assigned_to = $7, assigned_date = $8, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		a.ID, a.Name, a.AssetTag, a.Category, a.SerialNumber,
		a.Status, a.AssignedTo, a.AssignedDate,
	).Scan(&a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return asset.Asset{}, asset.ErrAssetNotFound
		}
		return asset.Asset{}, fmt.Errorf("failed to update asset: %w", err)
	}

	return a, nil
}

// Delete implements asset.Repository.
func (r *assetRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM assets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete asset: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return asset.ErrAssetNotFound
	}

	return nil
}
