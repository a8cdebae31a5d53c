package onboarding

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/staffhub-hq/staffhub-backend-go/internal/domain/employee"
	"github.com/staffhub-hq/staffhub-backend-go/internal/domain/onboarding"
)

type ServiceImpl struct {
	onboardingRepo onboarding.Repository
	employeeRepo   employee.Repository
}

func NewOnboardingService(onboardingRepo onboarding.Repository, employeeRepo employee.Repository) onboarding.Service {
	return &ServiceImpl{
		onboardingRepo: onboardingRepo,
		employeeRepo:   employeeRepo,
	}
}

func toResponse(t onboarding.Task) onboarding.Response {
	resp := onboarding.Response{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
	}
	if t.EmployeeCode != nil {
		resp.EmployeeCode = *t.EmployeeCode
	}
	if t.EmployeeName != nil {
		resp.EmployeeName = *t.EmployeeName
	}
	if t.DueDate != nil {
		due := t.DueDate.Format("2006-01-02")
		resp.DueDate = &due
	}
	if t.CompletedAt != nil {
		completed := t.CompletedAt.Format(time.RFC3339)
		resp.CompletedAt = &completed
	}
	return resp
}

// Create implements onboarding.Service.
func (s *ServiceImpl) Create(ctx context.Context, req onboarding.CreateRequest) (onboarding.Response, error) {
	if err := req.Validate(); err != nil {
		return onboarding.Response{}, err
	}

	emp, err := s.employeeRepo.GetByCode(ctx, req.EmployeeCode)
	if err != nil {
		return onboarding.Response{}, err
	}

	task := onboarding.Task{
		ID:          uuid.NewString(),
		EmployeeID:  emp.ID,
		Title:       req.Title,
		Description: req.Description,
		Status:      onboarding.TaskPending,
	}
	if req.DueDate != nil && *req.DueDate != "" {
		due, _ := time.Parse("2006-01-02", *req.DueDate)
		task.DueDate = &due
	}

	created, err := s.onboardingRepo.Create(ctx, task)
	if err != nil {
		return onboarding.Response{}, err
	}

	name := emp.FullName()
	created.EmployeeCode = &emp.EmployeeCode
	created.EmployeeName = &name

	return toResponse(created), nil
}

// List implements onboarding.Service.
func (s *ServiceImpl) List(ctx context.Context) ([]onboarding.Response, error) {
	tasks, err := s.onboardingRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list onboarding tasks: %w", err)
	}
	return toResponses(tasks), nil
}

// ListByEmployee implements onboarding.Service.
func (s *ServiceImpl) ListByEmployee(ctx context.Context, employeeCode string) ([]onboarding.Response, error) {
	emp, err := s.employeeRepo.GetByCode(ctx, employeeCode)
	if err != nil {
		return nil, err
	}

	tasks, err := s.onboardingRepo.ListByEmployee(ctx, emp.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employee onboarding tasks: %w", err)
	}
	return toResponses(tasks), nil
}

func toResponses(tasks []onboarding.Task) []onboarding.Response {
	responses := make([]onboarding.Response, 0, len(tasks))
	for _, t := range tasks {
		responses = append(responses, toResponse(t))
	}
	return responses
}

// allowedTransitions encodes the forward-only task flow.
var allowedTransitions = map[onboarding.TaskStatus]onboarding.TaskStatus{
	onboarding.TaskPending:    onboarding.TaskInProgress,
	onboarding.TaskInProgress: onboarding.TaskCompleted,
}

// UpdateStatus implements onboarding.Service.
func (s *ServiceImpl) UpdateStatus(ctx context.Context, id string, req onboarding.UpdateStatusRequest) (onboarding.Response, error) {
	if err := req.Validate(); err != nil {
		return onboarding.Response{}, err
	}
	newStatus := onboarding.TaskStatus(req.Status)

	task, err := s.onboardingRepo.GetByID(ctx, id)
	if err != nil {
		return onboarding.Response{}, err
	}

	if allowedTransitions[task.Status] != newStatus {
		return onboarding.Response{}, onboarding.ErrInvalidTransition
	}

	task.Status = newStatus
	if newStatus == onboarding.TaskCompleted {
		now := time.Now()
		task.CompletedAt = &now
	}

	updated, err := s.onboardingRepo.Update(ctx, task)
	if err != nil {
		return onboarding.Response{}, err
	}
	updated.EmployeeCode = task.EmployeeCode
	updated.EmployeeName = task.EmployeeName

	return toResponse(updated), nil
}

// Delete implements onboarding.Service.
func (s *ServiceImpl) Delete(ctx context.Context, id string) error {
	return s.onboardingRepo.Delete(ctx, id)
}
