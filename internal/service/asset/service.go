package asset

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/staffhub-hq/staffhub-backend-go/internal/domain/asset"
	"github.com/staffhub-hq/staffhub-backend-go/internal/domain/employee"
	"github.com/staffhub-hq/staffhub-backend-go/internal/pkg/database"
	"github.com/staffhub-hq/staffhub-backend-go/internal/repository/postgresql"
)

type ServiceImpl struct {
	db           *database.DB
	assetRepo    asset.Repository
	employeeRepo employee.Repository
}

func NewAssetService(db *database.DB, assetRepo asset.Repository, employeeRepo employee.Repository) asset.Service {
	return &ServiceImpl{
		db:           db,
		assetRepo:    assetRepo,
		employeeRepo: employeeRepo,
	}
}

func toResponse(a asset.Asset) asset.Response {
	resp := asset.Response{
		ID:           a.ID,
		Name:         a.Name,
		AssetTag:     a.AssetTag,
		Category:     a.Category,
		SerialNumber: a.SerialNumber,
		Status:       string(a.Status),
		AssignedTo:   a.AssignedCode,
		AssignedName: a.AssignedName,
	}
	if a.AssignedDate != nil {
		assigned := a.AssignedDate.Format("2006-01-02")
		resp.AssignedDate = &assigned
	}
	return resp
}

// Create implements asset.Service.
func (s *ServiceImpl) Create(ctx context.Context, req asset.CreateRequest) (asset.Response, error) {
	if err := req.Validate(); err != nil {
		return asset.Response{}, err
	}

	created, err := s.assetRepo.Create(ctx, asset.Asset{
		ID:           uuid.NewString(),
		Name:         req.Name,
		AssetTag:     req.AssetTag,
		Category:     req.Category,
		SerialNumber: req.SerialNumber,
		Status:       asset.StatusAvailable,
	})
	if err != nil {
		return asset.Response{}, err
	}

	return toResponse(created), nil
}

// Get implements asset.Service.
func (s *ServiceImpl) Get(ctx context.Context, id string) (asset.Response, error) {
	a, err := s.assetRepo.GetByID(ctx, id)
	if err != nil {
		return asset.Response{}, err
	}
	return toResponse(a), nil
}

// List implements asset.Service.
func (s *ServiceImpl) List(ctx context.Context, filter asset.ListFilter) ([]asset.Response, error) {
	assets, err := s.assetRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}

	responses := make([]asset.Response, 0, len(assets))
	for _, a := range assets {
		responses = append(responses, toResponse(a))
	}

	return responses, nil
}

// Assign implements asset.Service.
func (s *ServiceImpl) Assign(ctx context.Context, id string, req asset.AssignRequest) (asset.Response, error) {
	if err := req.Validate(); err != nil {
		return asset.Response{}, err
	}

	emp, err := s.employeeRepo.GetByCode(ctx, req.EmployeeCode)
	if err != nil {
		return asset.Response{}, err
	}

	err = postgresql.WithTransaction(ctx, s.db, func(ctx context.Context) error {
		a, err := s.assetRepo.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}

		if a.Status == asset.StatusAssigned {
			return asset.ErrAlreadyAssigned
		}
		if a.Status != asset.StatusAvailable {
			return asset.ErrAssetUnavailable
		}

		now := time.Now()
		a.Status = asset.StatusAssigned
		a.AssignedTo = &emp.ID
		a.AssignedDate = &now

		_, err = s.assetRepo.Update(ctx, a)
		return err
	})
	if err != nil {
		return asset.Response{}, err
	}

	slog.Info("asset assigned", "asset_id", id, "employee_code", emp.EmployeeCode)

	return s.Get(ctx, id)
}

// Unassign implements asset.Service.
func (s *ServiceImpl) Unassign(ctx context.Context, id string) (asset.Response, error) {
	err := postgresql.WithTransaction(ctx, s.db, func(ctx context.Context) error {
		a, err := s.assetRepo.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}

		if a.Status != asset.StatusAssigned {
			return asset.ErrNotAssigned
		}

		a.Status = asset.StatusAvailable
		a.AssignedTo = nil
		a.AssignedDate = nil

		_, err = s.assetRepo.Update(ctx, a)
		return err
	})
	if err != nil {
		return asset.Response{}, err
	}

	slog.Info("asset returned", "asset_id", id)

	return s.Get(ctx, id)
}

// Delete implements asset.Service.
func (s *ServiceImpl) Delete(ctx context.Context, id string) error {
	return s.assetRepo.Delete(ctx, id)
}
