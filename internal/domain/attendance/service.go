package attendance

import (
	"context"
)

// Service defines the attendance business operations.
type Service interface {
	// CheckIn stamps the employee's check-in for today.
	CheckIn(ctx context.Context, req CheckInRequest) (CheckInResponse, error)

	// CheckOut stamps the employee's check-out for today and derives the
	// final status and working hours.
	CheckOut(ctx context.Context, req CheckOutRequest) (CheckOutResponse, error)

	// Today returns the employee's attendance snapshot for today, or the
	// "Not Checked In" placeholder when no record exists.
	Today(ctx context.Context, employeeCode string) (TodayResponse, error)

	// MonthlyReport returns per-status counts plus records for a month.
	MonthlyReport(ctx context.Context, filter ReportFilter) (ReportResponse, error)

	// List returns attendance records for a day.
	List(ctx context.Context, filter ListFilter) ([]RecordResponse, error)

	// DailyStats returns the per-status summary cards for a day.
	DailyStats(ctx context.Context, date *string) ([]StatCard, error)

	// GenerateDaily creates Absent-default records for all active employees
	// lacking one on the target date. Idempotent.
	GenerateDaily(ctx context.Context, req GenerateDailyRequest) (BatchResponse, error)

	// AutoAbsent marks employees with no check-in as Absent. Only permitted
	// after the configured cutoff time.
	AutoAbsent(ctx context.Context) (BatchResponse, error)
}
