package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/staffhub-hq/staffhub-backend-go/internal/domain/attendance"
	"github.com/staffhub-hq/staffhub-backend-go/internal/domain/employee"
	"github.com/staffhub-hq/staffhub-backend-go/internal/pkg/database"
	"github.com/staffhub-hq/staffhub-backend-go/internal/pkg/validator"
	"github.com/staffhub-hq/staffhub-backend-go/internal/repository/postgresql"
)

type ServiceImpl struct {
	db              *database.DB
	attendanceRepo  attendance.Repository
	employeeRepo    employee.Repository
	lateAfter       string
	autoAbsentAfter string
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.Repository,
	employeeRepo employee.Repository,
	lateAfter string,
	autoAbsentAfter string,
) attendance.Service {
	if lateAfter == "" {
		lateAfter = attendance.DefaultLateAfter
	}
	return &ServiceImpl{
		db:              db,
		attendanceRepo:  attendanceRepo,
		employeeRepo:    employeeRepo,
		lateAfter:       lateAfter,
		autoAbsentAfter: autoAbsentAfter,
	}
}

func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format("2006-01-02 15:04:05")
	return &formatted
}

// today truncates now to midnight for use as the record date.
func today(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// CheckIn implements attendance.Service.
func (s *ServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.CheckInResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.CheckInResponse{}, err
	}

	emp, err := s.employeeRepo.GetByCode(ctx, req.EmployeeCode)
	if err != nil {
		return attendance.CheckInResponse{}, err
	}

	now := time.Now()
	date := today(now)

	var rec attendance.Record
	err = postgresql.WithTransaction(ctx, s.db, func(ctx context.Context) error {
		existing, err := s.attendanceRepo.GetForUpdate(ctx, emp.ID, date)
		if err != nil {
			if !errors.Is(err, attendance.ErrRecordNotFound) {
				return fmt.Errorf("failed to get attendance for check-in: %w", err)
			}

			fresh := attendance.Record{
				ID:         uuid.NewString(),
				EmployeeID: emp.ID,
				Date:       date,
				CheckIn:    &now,
			}
			fresh = attendance.DeriveState(fresh, s.lateAfter)

			rec, err = s.attendanceRepo.Create(ctx, fresh)
			if errors.Is(err, attendance.ErrDuplicateRecord) {
				// Lost the race against a concurrent check-in on the same key.
				return &attendance.StateError{
					Err:    attendance.ErrAlreadyCheckedIn,
					Status: attendance.StatusWorking,
				}
			}
			return err
		}

		if existing.CheckIn != nil {
			return &attendance.StateError{
				Err:         attendance.ErrAlreadyCheckedIn,
				CheckInTime: timePtrToString(existing.CheckIn),
				Status:      existing.Status,
			}
		}

		existing.CheckIn = &now
		existing = attendance.DeriveState(existing, s.lateAfter)
		if err := s.attendanceRepo.Update(ctx, existing); err != nil {
			return err
		}
		rec = existing
		return nil
	})
	if err != nil {
		return attendance.CheckInResponse{}, err
	}

	slog.Info("employee checked in",
		"employee_code", emp.EmployeeCode,
		"date", date.Format("2006-01-02"),
		"status", rec.Status,
	)

	return attendance.CheckInResponse{
		EmployeeID:   emp.ID,
		EmployeeCode: emp.EmployeeCode,
		EmployeeName: emp.FullName(),
		Date:         date.Format("2006-01-02"),
		CheckInTime:  now.Format("2006-01-02 15:04:05"),
		Status:       string(rec.Status),
	}, nil
}

// CheckOut implements attendance.Service.
func (s *ServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.CheckOutResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.CheckOutResponse{}, err
	}

	emp, err := s.employeeRepo.GetByCode(ctx, req.EmployeeCode)
	if err != nil {
		return attendance.CheckOutResponse{}, err
	}

	now := time.Now()
	date := today(now)

	var rec attendance.Record
	err = postgresql.WithTransaction(ctx, s.db, func(ctx context.Context) error {
		existing, err := s.attendanceRepo.GetForUpdate(ctx, emp.ID, date)
		if err != nil {
			if errors.Is(err, attendance.ErrRecordNotFound) {
				return attendance.ErrNotCheckedInYet
			}
			return fmt.Errorf("failed to get attendance for check-out: %w", err)
		}

		if existing.CheckIn == nil {
			return attendance.ErrCheckOutBeforeCheckIn
		}
		if existing.CheckOut != nil {
			return &attendance.StateError{
				Err:          attendance.ErrAlreadyCheckedOut,
				CheckOutTime: timePtrToString(existing.CheckOut),
				WorkingHours: &existing.WorkingHours,
				Status:       existing.Status,
			}
		}
		if now.Before(*existing.CheckIn) {
			return attendance.ErrCheckOutEarlierThanIn
		}

		existing.CheckOut = &now
		existing = attendance.DeriveState(existing, s.lateAfter)
		if err := s.attendanceRepo.Update(ctx, existing); err != nil {
			return err
		}
		rec = existing
		return nil
	})
	if err != nil {
		return attendance.CheckOutResponse{}, err
	}

	slog.Info("employee checked out",
		"employee_code", emp.EmployeeCode,
		"working_hours", rec.WorkingHours,
		"status", rec.Status,
	)

	return attendance.CheckOutResponse{
		EmployeeID:       emp.ID,
		EmployeeCode:     emp.EmployeeCode,
		EmployeeName:     emp.FullName(),
		Date:             date.Format("2006-01-02"),
		CheckInTime:      rec.CheckIn.Format("2006-01-02 15:04:05"),
		CheckOutTime:     now.Format("2006-01-02 15:04:05"),
		WorkingHours:     rec.WorkingHours,
		WorkingHoursText: rec.WorkingHoursText,
		Status:           string(rec.Status),
	}, nil
}

// Today implements attendance.Service.
func (s *ServiceImpl) Today(ctx context.Context, employeeCode string) (attendance.TodayResponse, error) {
	emp, err := s.employeeRepo.GetByCode(ctx, employeeCode)
	if err != nil {
		return attendance.TodayResponse{}, err
	}

	date := today(time.Now())
	resp := attendance.TodayResponse{
		EmployeeID:   emp.ID,
		EmployeeCode: emp.EmployeeCode,
		Date:         date.Format("2006-01-02"),
		Status:       attendance.NotCheckedInPlaceholder,
	}

	rec, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, emp.ID, date)
	if err != nil {
		if errors.Is(err, attendance.ErrRecordNotFound) {
			return resp, nil
		}
		return attendance.TodayResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}

	resp.CheckedIn = rec.CheckIn != nil
	resp.CheckInTime = timePtrToString(rec.CheckIn)
	resp.CheckOutTime = timePtrToString(rec.CheckOut)
	resp.WorkingHours = &rec.WorkingHours
	resp.WorkingHoursText = &rec.WorkingHoursText
	resp.Status = string(rec.Status)

	return resp, nil
}

func toRecordResponse(rec attendance.Record) attendance.RecordResponse {
	resp := attendance.RecordResponse{
		ID:               rec.ID,
		EmployeeID:       rec.EmployeeID,
		Date:             rec.Date.Format("2006-01-02"),
		CheckInTime:      timePtrToString(rec.CheckIn),
		CheckOutTime:     timePtrToString(rec.CheckOut),
		WorkingHours:     rec.WorkingHours,
		WorkingHoursText: rec.WorkingHoursText,
		Status:           string(rec.Status),
		Department:       rec.Department,
	}
	if rec.EmployeeCode != nil {
		resp.EmployeeCode = *rec.EmployeeCode
	}
	if rec.EmployeeName != nil {
		resp.EmployeeName = *rec.EmployeeName
	}
	return resp
}

// MonthlyReport implements attendance.Service.
func (s *ServiceImpl) MonthlyReport(ctx context.Context, filter attendance.ReportFilter) (attendance.ReportResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ReportResponse{}, err
	}

	month, err := time.Parse("2006-01", filter.Month)
	if err != nil {
		return attendance.ReportResponse{}, fmt.Errorf("failed to parse report month: %w", err)
	}

	var employeeID *string
	if filter.EmployeeCode != nil && *filter.EmployeeCode != "" {
		emp, err := s.employeeRepo.GetByCode(ctx, *filter.EmployeeCode)
		if err != nil {
			return attendance.ReportResponse{}, err
		}
		employeeID = &emp.ID
	}

	records, err := s.attendanceRepo.ListByMonth(ctx, month.Year(), month.Month(), employeeID)
	if err != nil {
		return attendance.ReportResponse{}, fmt.Errorf("failed to build monthly report: %w", err)
	}

	resp := attendance.ReportResponse{
		Month:   filter.Month,
		Summary: make(map[string]int),
		Records: make([]attendance.RecordResponse, 0, len(records)),
	}
	for _, rec := range records {
		resp.Summary[string(rec.Status)]++
		resp.Records = append(resp.Records, toRecordResponse(rec))
	}

	return resp, nil
}

// List implements attendance.Service.
func (s *ServiceImpl) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.RecordResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	records, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, toRecordResponse(rec))
	}

	return responses, nil
}

// statCardOrder fixes the display order of the daily summary.
var statCardOrder = []attendance.Status{
	attendance.StatusPresent,
	attendance.StatusLate,
	attendance.StatusHalfDay,
	attendance.StatusWorking,
	attendance.StatusOnLeave,
	attendance.StatusAbsent,
}

// DailyStats implements attendance.Service.
func (s *ServiceImpl) DailyStats(ctx context.Context, dateStr *string) ([]attendance.StatCard, error) {
	date := today(time.Now())
	if dateStr != nil && *dateStr != "" {
		parsed, ok := validator.IsValidDate(*dateStr)
		if !ok {
			return nil, validator.ValidationErrors{
				{Field: "date", Message: "date must be in YYYY-MM-DD format"},
			}
		}
		date = parsed
	}

	counts, err := s.attendanceRepo.CountByStatus(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to get daily stats: %w", err)
	}

	cards := make([]attendance.StatCard, 0, len(statCardOrder))
	for _, status := range statCardOrder {
		cards = append(cards, attendance.StatCard{
			Label: string(status),
			Value: counts[status],
		})
	}

	return cards, nil
}

// GenerateDaily implements attendance.Service.
func (s *ServiceImpl) GenerateDaily(ctx context.Context, req attendance.GenerateDailyRequest) (attendance.BatchResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.BatchResponse{}, err
	}

	date := today(time.Now())
	if req.Date != nil && *req.Date != "" {
		parsed, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			return attendance.BatchResponse{}, fmt.Errorf("failed to parse date: %w", err)
		}
		date = parsed
	}

	created, err := s.attendanceRepo.InsertAbsentDefaults(ctx, date)
	if err != nil {
		return attendance.BatchResponse{}, fmt.Errorf("failed to generate daily attendance: %w", err)
	}

	slog.Info("generated daily attendance", "date", date.Format("2006-01-02"), "created", created)

	message := fmt.Sprintf("created %d attendance records", created)
	if created == 0 {
		message = "attendance records already exist for this date"
	}

	return attendance.BatchResponse{
		Date:    date.Format("2006-01-02"),
		Count:   created,
		Message: message,
	}, nil
}

// AutoAbsent implements attendance.Service.
func (s *ServiceImpl) AutoAbsent(ctx context.Context) (attendance.BatchResponse, error) {
	now := time.Now()
	if now.Format("15:04") < s.autoAbsentAfter {
		return attendance.BatchResponse{}, attendance.ErrAutoAbsentBeforeCutoff
	}

	date := today(now)
	marked, err := s.attendanceRepo.MarkAbsentees(ctx, date)
	if err != nil {
		return attendance.BatchResponse{}, fmt.Errorf("failed to auto-mark absentees: %w", err)
	}

	slog.Info("auto-marked absentees", "date", date.Format("2006-01-02"), "marked", marked)

	return attendance.BatchResponse{
		Date:    date.Format("2006-01-02"),
		Count:   marked,
		Message: fmt.Sprintf("marked %d employees as Absent", marked),
	}, nil
}
