package holiday

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/staffhub-hq/staffhub-backend-go/internal/domain/holiday"
)

const upcomingLimit = 10

type ServiceImpl struct {
	holidayRepo holiday.Repository
}

func NewHolidayService(holidayRepo holiday.Repository) holiday.Service {
	return &ServiceImpl{holidayRepo: holidayRepo}
}

func toResponse(h holiday.Holiday) holiday.Response {
	return holiday.Response{
		ID:          h.ID,
		Name:        h.Name,
		Date:        h.Date.Format("2006-01-02"),
		Recurring:   h.Recurring,
		Description: h.Description,
	}
}

// Create implements holiday.Service.
func (s *ServiceImpl) Create(ctx context.Context, req holiday.CreateRequest) (holiday.Response, error) {
	if err := req.Validate(); err != nil {
		return holiday.Response{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	created, err := s.holidayRepo.Create(ctx, holiday.Holiday{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Date:        date,
		Recurring:   req.Recurring,
		Description: req.Description,
	})
	if err != nil {
		return holiday.Response{}, err
	}

	return toResponse(created), nil
}

// Get implements holiday.Service.
func (s *ServiceImpl) Get(ctx context.Context, id string) (holiday.Response, error) {
	h, err := s.holidayRepo.GetByID(ctx, id)
	if err != nil {
		return holiday.Response{}, err
	}
	return toResponse(h), nil
}

// List implements holiday.Service.
func (s *ServiceImpl) List(ctx context.Context) ([]holiday.Response, error) {
	holidays, err := s.holidayRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}

	responses := make([]holiday.Response, 0, len(holidays))
	for _, h := range holidays {
		responses = append(responses, toResponse(h))
	}

	return responses, nil
}

// Upcoming implements holiday.Service.
func (s *ServiceImpl) Upcoming(ctx context.Context) ([]holiday.Response, error) {
	holidays, err := s.holidayRepo.ListUpcoming(ctx, time.Now(), upcomingLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list upcoming holidays: %w", err)
	}

	responses := make([]holiday.Response, 0, len(holidays))
	for _, h := range holidays {
		responses = append(responses, toResponse(h))
	}

	return responses, nil
}

// Update implements holiday.Service.
func (s *ServiceImpl) Update(ctx context.Context, id string, req holiday.UpdateRequest) (holiday.Response, error) {
	if err := req.Validate(); err != nil {
		return holiday.Response{}, err
	}

	h, err := s.holidayRepo.GetByID(ctx, id)
	if err != nil {
		return holiday.Response{}, err
	}

	if req.Name != nil {
		h.Name = *req.Name
	}
	if req.Date != nil {
		date, _ := time.Parse("2006-01-02", *req.Date)
		h.Date = date
	}
	if req.Recurring != nil {
		h.Recurring = *req.Recurring
	}
	if req.Description != nil {
		h.Description = *req.Description
	}

	updated, err := s.holidayRepo.Update(ctx, h)
	if err != nil {
		return holiday.Response{}, err
	}

	return toResponse(updated), nil
}

// Delete implements holiday.Service.
func (s *ServiceImpl) Delete(ctx context.Context, id string) error {
	return s.holidayRepo.Delete(ctx, id)
}
