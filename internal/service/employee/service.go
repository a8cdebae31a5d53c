package employee

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/staffhub-hq/staffhub-backend-go/internal/domain/employee"
	"github.com/staffhub-hq/staffhub-backend-go/internal/domain/onboarding"
	"github.com/staffhub-hq/staffhub-backend-go/internal/fixtures"
)

type ServiceImpl struct {
	employeeRepo   employee.Repository
	onboardingRepo onboarding.Repository
}

func NewEmployeeService(employeeRepo employee.Repository, onboardingRepo onboarding.Repository) employee.Service {
	return &ServiceImpl{
		employeeRepo:   employeeRepo,
		onboardingRepo: onboardingRepo,
	}
}

func toResponse(emp employee.Employee) employee.Response {
	resp := employee.Response{
		ID:            emp.ID,
		EmployeeCode:  emp.EmployeeCode,
		FirstName:     emp.FirstName,
		LastName:      emp.LastName,
		FullName:      emp.FullName(),
		Gender:        string(emp.Gender),
		Email:         emp.Email,
		Phone:         emp.Phone,
		Address:       emp.Address,
		Department:    emp.Department,
		Designation:   emp.Designation,
		DateOfJoining: emp.DateOfJoining.Format("2006-01-02"),
		BasicSalary:   emp.BasicSalary,
		IsActive:      emp.IsActive,
	}
	if emp.DateOfBirth != nil {
		dob := emp.DateOfBirth.Format("2006-01-02")
		resp.DateOfBirth = &dob
	}
	return resp
}

// Create implements employee.Service.
func (s *ServiceImpl) Create(ctx context.Context, req employee.CreateRequest) (employee.Response, error) {
	if err := req.Validate(); err != nil {
		return employee.Response{}, err
	}

	joining, _ := time.Parse("2006-01-02", req.DateOfJoining)

	emp := employee.Employee{
		ID:            uuid.NewString(),
		EmployeeCode:  req.EmployeeCode,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Gender:        employee.Gender(req.Gender),
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		Department:    req.Department,
		Designation:   req.Designation,
		DateOfJoining: joining,
		BasicSalary:   req.BasicSalary,
		IsActive:      true,
	}
	if req.DateOfBirth != nil && *req.DateOfBirth != "" {
		dob, _ := time.Parse("2006-01-02", *req.DateOfBirth)
		emp.DateOfBirth = &dob
	}

	created, err := s.employeeRepo.Create(ctx, emp)
	if err != nil {
		return employee.Response{}, err
	}

	// Seed the standard new-hire checklist. The employee exists either way,
	// so a seeding failure is logged rather than returned.
	for _, task := range fixtures.DefaultOnboardingTasks(created.ID, created.DateOfJoining) {
		if _, err := s.onboardingRepo.Create(ctx, task); err != nil {
			slog.Error("failed to seed onboarding task",
				"employee_code", created.EmployeeCode,
				"title", task.Title,
				"error", err,
			)
			break
		}
	}

	slog.Info("employee created", "employee_code", created.EmployeeCode)

	return toResponse(created), nil
}

// Get implements employee.Service.
func (s *ServiceImpl) Get(ctx context.Context, id string) (employee.Response, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.Response{}, err
	}
	return toResponse(emp), nil
}

// GetByCode implements employee.Service.
func (s *ServiceImpl) GetByCode(ctx context.Context, employeeCode string) (employee.Response, error) {
	emp, err := s.employeeRepo.GetByCode(ctx, employeeCode)
	if err != nil {
		return employee.Response{}, err
	}
	return toResponse(emp), nil
}

// Update implements employee.Service.
func (s *ServiceImpl) Update(ctx context.Context, req employee.UpdateRequest) (employee.Response, error) {
	if err := req.Validate(); err != nil {
		return employee.Response{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.Response{}, err
	}

	if req.FirstName != nil {
		emp.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		emp.LastName = *req.LastName
	}
	if req.Email != nil {
		emp.Email = *req.Email
	}
	if req.Phone != nil {
		emp.Phone = *req.Phone
	}
	if req.Address != nil {
		emp.Address = req.Address
	}
	if req.Department != nil {
		emp.Department = *req.Department
	}
	if req.Designation != nil {
		emp.Designation = *req.Designation
	}
	if req.BasicSalary != nil {
		emp.BasicSalary = req.BasicSalary
	}
	if req.IsActive != nil {
		emp.IsActive = *req.IsActive
	}

	if err := s.employeeRepo.Update(ctx, emp); err != nil {
		return employee.Response{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return toResponse(emp), nil
}

// List implements employee.Service.
func (s *ServiceImpl) List(ctx context.Context, filter employee.ListFilter) ([]employee.Response, error) {
	employees, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.Response, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, toResponse(emp))
	}

	return responses, nil
}

// Deactivate implements employee.Service.
func (s *ServiceImpl) Deactivate(ctx context.Context, id string) error {
	if err := s.employeeRepo.Deactivate(ctx, id); err != nil {
		return err
	}

	slog.Info("employee deactivated", "employee_id", id)
	return nil
}
