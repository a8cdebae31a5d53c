package payroll

import "context"

// Repository defines data access for payroll records and their status log.
// The storage layer enforces the unique (employee_id, payroll_month,
// payroll_year) key: a second conflicting create fails with
// ErrRecordAlreadyExists.
type Repository interface {
	Create(ctx context.Context, rec Record) (Record, error)
	GetByID(ctx context.Context, id string) (Record, error)

	// GetForUpdate locks the row for a status transition; must run inside a
	// transaction.
	GetForUpdate(ctx context.Context, id string) (Record, error)

	// GetByEmployeePeriod returns the record for one employee and month, or
	// ErrRecordNotFound.
	GetByEmployeePeriod(ctx context.Context, employeeID string, month, year int) (Record, error)

	// GetLatestByEmployee returns the employee's most recent record.
	GetLatestByEmployee(ctx context.Context, employeeID string) (Record, error)

	ListByEmployee(ctx context.Context, employeeID string) ([]Record, error)
	List(ctx context.Context, filter ListFilter) ([]Record, error)

	// UpdateStatus rewrites the record's status.
	UpdateStatus(ctx context.Context, id string, status Status) error

	// Stats returns net-salary sums: total, paid, pending.
	Stats(ctx context.Context) (StatsResponse, error)

	// AppendLog inserts one status-log entry. Log rows are never updated
	// or deleted.
	AppendLog(ctx context.Context, entry StatusLog) (StatusLog, error)

	// ListLogs returns up to limit entries, newest first.
	ListLogs(ctx context.Context, filter LogFilter, limit int) ([]StatusLog, error)
}
