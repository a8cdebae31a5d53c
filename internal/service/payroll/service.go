package payroll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/staffhub-hq/staffhub-backend-go/internal/domain/employee"
	"github.com/staffhub-hq/staffhub-backend-go/internal/domain/payroll"
	"github.com/staffhub-hq/staffhub-backend-go/internal/pkg/database"
	"github.com/staffhub-hq/staffhub-backend-go/internal/repository/postgresql"
)

// Notifier receives a ping when a payroll flips to Paid. Implementations
// must not block; failures are logged and ignored.
type Notifier interface {
	PayrollPaid(employeeName string, employeeCode string, netSalary decimal.Decimal)
}

// Defaults holds the fallback amounts used when an employee has no basic
// salary on file.
type Defaults struct {
	BasicSalary decimal.Decimal
	Allowances  decimal.Decimal
	Deductions  decimal.Decimal
}

const statusLogLimit = 100

type ServiceImpl struct {
	db           *database.DB
	payrollRepo  payroll.Repository
	employeeRepo employee.Repository
	defaults     Defaults
	notifier     Notifier
}

func NewPayrollService(
	db *database.DB,
	payrollRepo payroll.Repository,
	employeeRepo employee.Repository,
	defaults Defaults,
	notifier Notifier,
) payroll.Service {
	return &ServiceImpl{
		db:           db,
		payrollRepo:  payrollRepo,
		employeeRepo: employeeRepo,
		defaults:     defaults,
		notifier:     notifier,
	}
}

// Run implements payroll.Service.
func (s *ServiceImpl) Run(ctx context.Context) (payroll.RunResponse, error) {
	now := time.Now()
	month := int(now.Month())
	year := now.Year()

	employees, err := s.employeeRepo.ListActive(ctx)
	if err != nil {
		return payroll.RunResponse{}, fmt.Errorf("failed to list active employees: %w", err)
	}

	created := 0
	for _, emp := range employees {
		_, err := s.payrollRepo.GetByEmployeePeriod(ctx, emp.ID, month, year)
		if err == nil {
			continue
		}
		if !errors.Is(err, payroll.ErrRecordNotFound) {
			return payroll.RunResponse{}, fmt.Errorf("failed to check existing payroll: %w", err)
		}

		basic := s.defaults.BasicSalary
		if emp.BasicSalary != nil && emp.BasicSalary.IsPositive() {
			basic = *emp.BasicSalary
		}

		rec := payroll.Record{
			ID:           uuid.NewString(),
			EmployeeID:   emp.ID,
			PayrollMonth: month,
			PayrollYear:  year,
			BasicSalary:  basic,
			Allowances:   s.defaults.Allowances,
			Deductions:   s.defaults.Deductions,
			Status:       payroll.StatusPending,
			PayDate:      now,
		}
		rec.Recalculate()

		if _, err := s.payrollRepo.Create(ctx, rec); err != nil {
			if errors.Is(err, payroll.ErrRecordAlreadyExists) {
				// Another run got there first; treat the record as existing.
				continue
			}
			return payroll.RunResponse{}, fmt.Errorf("failed to create payroll record: %w", err)
		}
		created++
	}

	slog.Info("payroll run finished", "month", month, "year", year, "created", created)

	message := fmt.Sprintf("created %d payroll records", created)
	if created == 0 {
		message = "payroll is up to date for this month"
	}

	return payroll.RunResponse{
		Month:   month,
		Year:    year,
		Created: created,
		Message: message,
	}, nil
}

// SetStatus implements payroll.Service.
func (s *ServiceImpl) SetStatus(ctx context.Context, req payroll.SetStatusRequest) (payroll.SetStatusResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.SetStatusResponse{}, err
	}
	newStatus := payroll.Status(req.Status)

	payrollID, employeeCode, err := s.resolveTarget(ctx, req)
	if err != nil {
		return payroll.SetStatusResponse{}, err
	}

	var resp payroll.SetStatusResponse
	err = postgresql.WithTransaction(ctx, s.db, func(ctx context.Context) error {
		rec, err := s.payrollRepo.GetForUpdate(ctx, payrollID)
		if err != nil {
			return err
		}

		if rec.Status == payroll.StatusPaid && newStatus == payroll.StatusPaid {
			return payroll.ErrAlreadyPaid
		}

		entry := payroll.StatusLog{
			ID:        uuid.NewString(),
			PayrollID: rec.ID,
			OldStatus: rec.Status,
			NewStatus: newStatus,
			ChangedBy: req.Actor,
			Notes:     req.Notes,
		}
		if _, err := s.payrollRepo.AppendLog(ctx, entry); err != nil {
			return err
		}
		if err := s.payrollRepo.UpdateStatus(ctx, rec.ID, newStatus); err != nil {
			return err
		}

		resp = payroll.SetStatusResponse{
			PayrollID:    rec.ID,
			EmployeeCode: employeeCode,
			OldStatus:    string(rec.Status),
			NewStatus:    string(newStatus),
		}
		return nil
	})
	if err != nil {
		return payroll.SetStatusResponse{}, err
	}

	slog.Info("payroll status changed",
		"payroll_id", resp.PayrollID,
		"old_status", resp.OldStatus,
		"new_status", resp.NewStatus,
	)

	if s.notifier != nil && newStatus == payroll.StatusPaid {
		if rec, err := s.payrollRepo.GetByID(ctx, resp.PayrollID); err == nil {
			name := ""
			if rec.EmployeeName != nil {
				name = *rec.EmployeeName
			}
			s.notifier.PayrollPaid(name, employeeCode, rec.NetSalary)
		}
	}

	return resp, nil
}

// resolveTarget picks the payroll row: by id when given, otherwise the
// employee's most recent record.
func (s *ServiceImpl) resolveTarget(ctx context.Context, req payroll.SetStatusRequest) (payrollID, employeeCode string, err error) {
	if req.PayrollID != nil && *req.PayrollID != "" {
		rec, err := s.payrollRepo.GetByID(ctx, *req.PayrollID)
		if err != nil {
			return "", "", err
		}
		if rec.EmployeeCode != nil {
			employeeCode = *rec.EmployeeCode
		}
		return rec.ID, employeeCode, nil
	}

	emp, err := s.employeeRepo.GetByCode(ctx, *req.EmployeeCode)
	if err != nil {
		return "", "", err
	}
	rec, err := s.payrollRepo.GetLatestByEmployee(ctx, emp.ID)
	if err != nil {
		return "", "", err
	}
	return rec.ID, emp.EmployeeCode, nil
}

func toRecordResponse(rec payroll.Record) payroll.RecordResponse {
	resp := payroll.RecordResponse{
		ID:           rec.ID,
		EmployeeID:   rec.EmployeeID,
		PayrollMonth: rec.PayrollMonth,
		PayrollYear:  rec.PayrollYear,
		BasicSalary:  rec.BasicSalary,
		Allowances:   rec.Allowances,
		Deductions:   rec.Deductions,
		NetSalary:    rec.NetSalary,
		Status:       string(rec.Status),
		PayDate:      rec.PayDate.Format("2006-01-02"),
		Department:   rec.Department,
		Designation:  rec.Designation,
	}
	if rec.EmployeeCode != nil {
		resp.EmployeeCode = *rec.EmployeeCode
	}
	if rec.EmployeeName != nil {
		resp.EmployeeName = *rec.EmployeeName
	}
	return resp
}

// EmployeePayrolls implements payroll.Service.
func (s *ServiceImpl) EmployeePayrolls(ctx context.Context, employeeCode string) (payroll.EmployeePayrollsResponse, error) {
	emp, err := s.employeeRepo.GetByCode(ctx, employeeCode)
	if err != nil {
		return payroll.EmployeePayrollsResponse{}, err
	}

	records, err := s.payrollRepo.ListByEmployee(ctx, emp.ID)
	if err != nil {
		return payroll.EmployeePayrollsResponse{}, fmt.Errorf("failed to list employee payrolls: %w", err)
	}

	resp := payroll.EmployeePayrollsResponse{
		EmployeeCode: emp.EmployeeCode,
		EmployeeName: emp.FullName(),
		Payrolls:     make([]payroll.RecordResponse, 0, len(records)),
	}
	for _, rec := range records {
		resp.Payrolls = append(resp.Payrolls, toRecordResponse(rec))
	}

	return resp, nil
}

// List implements payroll.Service.
func (s *ServiceImpl) List(ctx context.Context, filter payroll.ListFilter) (payroll.ListResponse, error) {
	records, err := s.payrollRepo.List(ctx, filter)
	if err != nil {
		return payroll.ListResponse{}, fmt.Errorf("failed to list payrolls: %w", err)
	}

	stats, err := s.payrollRepo.Stats(ctx)
	if err != nil {
		return payroll.ListResponse{}, fmt.Errorf("failed to get payroll stats: %w", err)
	}

	resp := payroll.ListResponse{
		Summary:  stats,
		Payrolls: make([]payroll.RecordResponse, 0, len(records)),
	}
	for _, rec := range records {
		resp.Payrolls = append(resp.Payrolls, toRecordResponse(rec))
	}

	return resp, nil
}

// Logs implements payroll.Service.
func (s *ServiceImpl) Logs(ctx context.Context, filter payroll.LogFilter) ([]payroll.LogResponse, error) {
	logs, err := s.payrollRepo.ListLogs(ctx, filter, statusLogLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll status logs: %w", err)
	}

	responses := make([]payroll.LogResponse, 0, len(logs))
	for _, entry := range logs {
		responses = append(responses, payroll.LogResponse{
			ID:           entry.ID,
			PayrollID:    entry.PayrollID,
			EmployeeCode: entry.EmployeeCode,
			EmployeeName: entry.EmployeeName,
			OldStatus:    string(entry.OldStatus),
			NewStatus:    string(entry.NewStatus),
			ChangedBy:    entry.ChangedBy,
			ChangedAt:    entry.ChangedAt.Format(time.RFC3339),
			Notes:        entry.Notes,
		})
	}

	return responses, nil
}

// Stats implements payroll.Service.
func (s *ServiceImpl) Stats(ctx context.Context) (payroll.StatsResponse, error) {
	return s.payrollRepo.Stats(ctx)
}
