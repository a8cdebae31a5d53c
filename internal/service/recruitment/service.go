package recruitment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/staffhub-hq/staffhub-backend-go/internal/domain/recruitment"
)

type ServiceImpl struct {
	recruitmentRepo recruitment.Repository
}

func NewRecruitmentService(recruitmentRepo recruitment.Repository) recruitment.Service {
	return &ServiceImpl{recruitmentRepo: recruitmentRepo}
}

func toResponse(p recruitment.JobPosting) recruitment.Response {
	return recruitment.Response{
		ID:              p.ID,
		Title:           p.Title,
		Department:      p.Department,
		Location:        p.Location,
		JobType:         p.JobType,
		ApplicantsCount: p.ApplicantsCount,
		Status:          string(p.Status),
		PostedDate:      p.PostedDate.Format("2006-01-02"),
	}
}

// Create implements recruitment.Service.
func (s *ServiceImpl) Create(ctx context.Context, req recruitment.CreateRequest) (recruitment.Response, error) {
	if err := req.Validate(); err != nil {
		return recruitment.Response{}, err
	}

	status := recruitment.PostingActive
	if req.Status != "" {
		status = recruitment.PostingStatus(req.Status)
	}

	created, err := s.recruitmentRepo.Create(ctx, recruitment.JobPosting{
		ID:         uuid.NewString(),
		Title:      req.Title,
		Department: req.Department,
		Location:   req.Location,
		JobType:    req.JobType,
		Status:     status,
		PostedDate: time.Now(),
	})
	if err != nil {
		return recruitment.Response{}, err
	}

	return toResponse(created), nil
}

// Get implements recruitment.Service.
func (s *ServiceImpl) Get(ctx context.Context, id string) (recruitment.Response, error) {
	p, err := s.recruitmentRepo.GetByID(ctx, id)
	if err != nil {
		return recruitment.Response{}, err
	}
	return toResponse(p), nil
}

// List implements recruitment.Service.
func (s *ServiceImpl) List(ctx context.Context, filter recruitment.ListFilter) ([]recruitment.Response, error) {
	postings, err := s.recruitmentRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list job postings: %w", err)
	}

	responses := make([]recruitment.Response, 0, len(postings))
	for _, p := range postings {
		responses = append(responses, toResponse(p))
	}

	return responses, nil
}

// Update implements recruitment.Service.
func (s *ServiceImpl) Update(ctx context.Context, id string, req recruitment.UpdateRequest) (recruitment.Response, error) {
	if err := req.Validate(); err != nil {
		return recruitment.Response{}, err
	}

	p, err := s.recruitmentRepo.GetByID(ctx, id)
	if err != nil {
		return recruitment.Response{}, err
	}

	if req.Title != nil {
		p.Title = *req.Title
	}
	if req.Department != nil {
		p.Department = *req.Department
	}
	if req.Location != nil {
		p.Location = *req.Location
	}
	if req.JobType != nil {
		p.JobType = *req.JobType
	}
	if req.ApplicantsCount != nil {
		p.ApplicantsCount = *req.ApplicantsCount
	}
	if req.Status != nil {
		p.Status = recruitment.PostingStatus(*req.Status)
	}

	updated, err := s.recruitmentRepo.Update(ctx, p)
	if err != nil {
		return recruitment.Response{}, err
	}

	return toResponse(updated), nil
}

// Delete implements recruitment.Service.
func (s *ServiceImpl) Delete(ctx context.Context, id string) error {
	return s.recruitmentRepo.Delete(ctx, id)
}

// Stats implements recruitment.Service.
func (s *ServiceImpl) Stats(ctx context.Context) (recruitment.StatsResponse, error) {
	stats, err := s.recruitmentRepo.Counts(ctx)
	if err != nil {
		return recruitment.StatsResponse{}, fmt.Errorf("failed to get recruitment stats: %w", err)
	}
	return stats, nil
}
