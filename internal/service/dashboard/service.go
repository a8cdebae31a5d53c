package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/staffhub-hq/staffhub-backend-go/internal/domain/attendance"
	"github.com/staffhub-hq/staffhub-backend-go/internal/domain/dashboard"
	"github.com/staffhub-hq/staffhub-backend-go/internal/domain/leave"
	"github.com/staffhub-hq/staffhub-backend-go/internal/domain/payroll"
	"github.com/staffhub-hq/staffhub-backend-go/internal/domain/recruitment"
)

type ServiceImpl struct {
	dashboardRepo   dashboard.Repository
	attendanceRepo  attendance.Repository
	leaveRepo       leave.Repository
	payrollRepo     payroll.Repository
	recruitmentRepo recruitment.Repository
}

func NewDashboardService(
	dashboardRepo dashboard.Repository,
	attendanceRepo attendance.Repository,
	leaveRepo leave.Repository,
	payrollRepo payroll.Repository,
	recruitmentRepo recruitment.Repository,
) dashboard.Service {
	return &ServiceImpl{
		dashboardRepo:   dashboardRepo,
		attendanceRepo:  attendanceRepo,
		leaveRepo:       leaveRepo,
		payrollRepo:     payrollRepo,
		recruitmentRepo: recruitmentRepo,
	}
}

// Stats implements dashboard.Service.
func (s *ServiceImpl) Stats(ctx context.Context) (dashboard.StatsResponse, error) {
	var resp dashboard.StatsResponse

	employees, err := s.dashboardRepo.EmployeeCounts(ctx)
	if err != nil {
		return dashboard.StatsResponse{}, fmt.Errorf("failed to get employee counts: %w", err)
	}
	resp.Employees = employees

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	counts, err := s.attendanceRepo.CountByStatus(ctx, today)
	if err != nil {
		return dashboard.StatsResponse{}, fmt.Errorf("failed to get attendance counts: %w", err)
	}
	resp.Attendance = dashboard.AttendanceStats{
		Date:     today.Format("2006-01-02"),
		ByStatus: make(map[string]int, len(counts)),
	}
	for status, count := range counts {
		resp.Attendance.ByStatus[string(status)] = count
	}

	pending, err := s.leaveRepo.CountPending(ctx)
	if err != nil {
		return dashboard.StatsResponse{}, fmt.Errorf("failed to count pending leaves: %w", err)
	}
	resp.Leaves = dashboard.LeaveStats{Pending: pending}

	payrollStats, err := s.payrollRepo.Stats(ctx)
	if err != nil {
		return dashboard.StatsResponse{}, fmt.Errorf("failed to get payroll stats: %w", err)
	}
	resp.Payroll = dashboard.PayrollStats{
		Total:   payrollStats.Total,
		Paid:    payrollStats.Paid,
		Pending: payrollStats.Pending,
	}

	assets, err := s.dashboardRepo.AssetCounts(ctx)
	if err != nil {
		return dashboard.StatsResponse{}, fmt.Errorf("failed to get asset counts: %w", err)
	}
	resp.Assets = assets

	hiring, err := s.recruitmentRepo.Counts(ctx)
	if err != nil {
		return dashboard.StatsResponse{}, fmt.Errorf("failed to get recruitment counts: %w", err)
	}
	resp.Recruitment = dashboard.RecruitmentStats{
		OpenPositions:   hiring.OpenPositions,
		TotalApplicants: hiring.TotalApplicants,
	}

	return resp, nil
}
