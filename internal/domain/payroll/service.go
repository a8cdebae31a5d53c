package payroll

import "context"

type Service interface {
	// Run generates this month's payroll for every active employee lacking
	// one. Re-running in the same month is a no-op.
	Run(ctx context.Context) (RunResponse, error)

	// SetStatus performs a guarded status transition and appends exactly
	// one audit-log entry per accepted change.
	SetStatus(ctx context.Context, req SetStatusRequest) (SetStatusResponse, error)

	// EmployeePayrolls returns every payroll record for one employee.
	EmployeePayrolls(ctx context.Context, employeeCode string) (EmployeePayrollsResponse, error)

	// List returns payroll records with a per-status money summary.
	List(ctx context.Context, filter ListFilter) (ListResponse, error)

	// Logs returns up to 100 status-log entries, newest first.
	Logs(ctx context.Context, filter LogFilter) ([]LogResponse, error)

	// Stats returns total/paid/pending net-salary sums.
	Stats(ctx context.Context) (StatsResponse, error)
}
