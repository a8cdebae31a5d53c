package leave

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/staffhub-hq/staffhub-backend-go/internal/domain/attendance"
	"github.com/staffhub-hq/staffhub-backend-go/internal/domain/employee"
	"github.com/staffhub-hq/staffhub-backend-go/internal/domain/leave"
	"github.com/staffhub-hq/staffhub-backend-go/internal/pkg/database"
	"github.com/staffhub-hq/staffhub-backend-go/internal/repository/postgresql"
)

type ServiceImpl struct {
	db             *database.DB
	leaveRepo      leave.Repository
	employeeRepo   employee.Repository
	attendanceRepo attendance.Repository
}

func NewLeaveService(
	db *database.DB,
	leaveRepo leave.Repository,
	employeeRepo employee.Repository,
	attendanceRepo attendance.Repository,
) leave.Service {
	return &ServiceImpl{
		db:             db,
		leaveRepo:      leaveRepo,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
	}
}

func toResponse(req leave.Request) leave.Response {
	resp := leave.Response{
		ID:         req.ID,
		LeaveType:  string(req.LeaveType),
		StartDate:  req.StartDate.Format("2006-01-02"),
		EndDate:    req.EndDate.Format("2006-01-02"),
		Days:       req.Days,
		Reason:     req.Reason,
		Status:     string(req.Status),
		ReviewedBy: req.ReviewedBy,
		CreatedAt:  req.CreatedAt.Format(time.RFC3339),
		Department: req.Department,
	}
	if req.EmployeeCode != nil {
		resp.EmployeeCode = *req.EmployeeCode
	}
	if req.EmployeeName != nil {
		resp.EmployeeName = *req.EmployeeName
	}
	if req.ReviewedAt != nil {
		reviewed := req.ReviewedAt.Format(time.RFC3339)
		resp.ReviewedAt = &reviewed
	}
	return resp
}

// Create implements leave.Service.
func (s *ServiceImpl) Create(ctx context.Context, req leave.CreateRequest) (leave.Response, error) {
	if err := req.Validate(); err != nil {
		return leave.Response{}, err
	}

	emp, err := s.employeeRepo.GetByCode(ctx, req.EmployeeCode)
	if err != nil {
		return leave.Response{}, err
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)

	overlap, err := s.leaveRepo.HasOverlap(ctx, emp.ID, start, end)
	if err != nil {
		return leave.Response{}, fmt.Errorf("failed to check leave overlap: %w", err)
	}
	if overlap {
		return leave.Response{}, leave.ErrOverlappingLeave
	}

	request := leave.Request{
		ID:         uuid.NewString(),
		EmployeeID: emp.ID,
		LeaveType:  leave.Type(req.LeaveType),
		StartDate:  start,
		EndDate:    end,
		Days:       leave.DayCount(start, end),
		Reason:     req.Reason,
		Status:     leave.StatusPending,
	}

	created, err := s.leaveRepo.Create(ctx, request)
	if err != nil {
		return leave.Response{}, err
	}

	slog.Info("leave request created",
		"employee_code", emp.EmployeeCode,
		"leave_type", request.LeaveType,
		"days", request.Days,
	)

	name := emp.FullName()
	created.EmployeeCode = &emp.EmployeeCode
	created.EmployeeName = &name

	return toResponse(created), nil
}

// Get implements leave.Service.
func (s *ServiceImpl) Get(ctx context.Context, id string) (leave.Response, error) {
	req, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		return leave.Response{}, err
	}
	return toResponse(req), nil
}

// List implements leave.Service.
func (s *ServiceImpl) List(ctx context.Context, filter leave.ListFilter) ([]leave.Response, error) {
	requests, err := s.leaveRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	responses := make([]leave.Response, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, toResponse(req))
	}

	return responses, nil
}

// Review implements leave.Service. Approval spanning today also flips the
// employee's attendance row to On Leave inside the same transaction.
func (s *ServiceImpl) Review(ctx context.Context, id string, req leave.ReviewRequest) (leave.Response, error) {
	if err := req.Validate(); err != nil {
		return leave.Response{}, err
	}
	newStatus := leave.Status(req.Status)

	err := postgresql.WithTransaction(ctx, s.db, func(ctx context.Context) error {
		request, err := s.leaveRepo.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}

		if request.Status != leave.StatusPending {
			return leave.ErrAlreadyReviewed
		}

		if err := s.leaveRepo.UpdateStatus(ctx, id, newStatus, req.Reviewer); err != nil {
			return err
		}

		if newStatus == leave.StatusApproved {
			now := time.Now()
			todayDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
			if !todayDate.Before(request.StartDate) && !todayDate.After(request.EndDate) {
				if err := s.attendanceRepo.SetOnLeave(ctx, request.EmployeeID, todayDate); err != nil {
					return err
				}
			}
		}

		return nil
	})
	if err != nil {
		return leave.Response{}, err
	}

	slog.Info("leave request reviewed", "leave_id", id, "status", newStatus)

	return s.Get(ctx, id)
}
