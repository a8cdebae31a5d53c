package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/staffhub-hq/staffhub-backend-go/internal/domain/payroll"
	"github.com/staffhub-hq/staffhub-backend-go/internal/pkg/database"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.Repository {
	return &payrollRepository{db: db}
}

const payrollColumns = `
	p.id, p.employee_id, p.payroll_month, p.payroll_year,
	p.basic_salary, p.allowances, p.deductions, p.net_salary,
	p.status, p.pay_date, p.created_at, p.updated_at,
	e.first_name || ' ' || e.last_name, e.employee_code, e.department, e.designation
`

func scanPayroll(row pgx.Row) (payroll.Record, error) {
	var rec payroll.Record
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.PayrollMonth, &rec.PayrollYear,
		&rec.BasicSalary, &rec.Allowances, &rec.Deductions, &rec.NetSalary,
		&rec.Status, &rec.PayDate, &rec.CreatedAt, &rec.UpdatedAt,
		&rec.EmployeeName, &rec.EmployeeCode, &rec.Department, &rec.Designation,
	)
	return rec, err
}

// Create implements payroll.Repository. A concurrent insert for the same
// (employee_id, payroll_month, payroll_year) hits the unique key.
func (p *payrollRepository) Create(ctx context.Context, rec payroll.Record) (payroll.Record, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		INSERT INTO payroll_records (
			id, employee_id, payroll_month, payroll_year,
			basic_salary, allowances, deductions, net_salary, status, pay_date
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		rec.ID,
		rec.EmployeeID,
		rec.PayrollMonth,
		rec.PayrollYear,
		rec.BasicSalary,
		rec.Allowances,
		rec.Deductions,
		rec.NetSalary,
		rec.Status,
		rec.PayDate,
	).Scan(&rec.CreatedAt, &rec.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return payroll.Record{}, payroll.ErrRecordAlreadyExists
		}
		return payroll.Record{}, fmt.Errorf("failed to create payroll record: %w", err)
	}

	return rec, nil
}

// GetByID implements payroll.Repository.
func (p *payrollRepository) GetByID(ctx context.Context, id string) (payroll.Record, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT ` + payrollColumns + `
		FROM payroll_records p
		JOIN employees e ON e.id = p.employee_id
		WHERE p.id = $1
	`

	rec, err := scanPayroll(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Record{}, payroll.ErrRecordNotFound
		}
		return payroll.Record{}, fmt.Errorf("failed to get payroll record: %w", err)
	}

	return rec, nil
}

// GetForUpdate implements payroll.Repository. Must run inside a transaction.
func (p *payrollRepository) GetForUpdate(ctx context.Context, id string) (payroll.Record, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT id, employee_id, payroll_month, payroll_year,
			   basic_salary, allowances, deductions, net_salary,
			   status, pay_date, created_at, updated_at
		FROM payroll_records
		WHERE id = $1
		FOR UPDATE
	`

	var rec payroll.Record
	err := q.QueryRow(ctx, query, id).Scan(
		&rec.ID, &rec.EmployeeID, &rec.PayrollMonth, &rec.PayrollYear,
		&rec.BasicSalary, &rec.Allowances, &rec.Deductions, &rec.NetSalary,
		&rec.Status, &rec.PayDate, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Record{}, payroll.ErrRecordNotFound
		}
		return payroll.Record{}, fmt.Errorf("failed to lock payroll record: %w", err)
	}

	return rec, nil
}

// GetByEmployeePeriod implements payroll.Repository.
func (p *payrollRepository) GetByEmployeePeriod(ctx context.Context, employeeID string, month, year int) (payroll.Record, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT ` + payrollColumns + `
		FROM payroll_records p
		JOIN employees e ON e.id = p.employee_id
		WHERE p.employee_id = $1
		  AND p.payroll_month = $2
		  AND p.payroll_year = $3
	`

	rec, err := scanPayroll(q.QueryRow(ctx, query, employeeID, month, year))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Record{}, payroll.ErrRecordNotFound
		}
		return payroll.Record{}, fmt.Errorf("failed to get payroll by period: %w", err)
	}

	return rec, nil
}

// GetLatestByEmployee implements payroll.Repository.
func (p *payrollRepository) GetLatestByEmployee(ctx context.Context, employeeID string) (payroll.Record, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT ` + payrollColumns + `
		FROM payroll_records p
		JOIN employees e ON e.id = p.employee_id
		WHERE p.employee_id = $1
		ORDER BY p.payroll_year DESC, p.payroll_month DESC
		LIMIT 1
	`

	rec, err := scanPayroll(q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Record{}, payroll.ErrRecordNotFound
		}
		return payroll.Record{}, fmt.Errorf("failed to get latest payroll: %w", err)
	}

	return rec, nil
}

// ListByEmployee implements payroll.Repository.
func (p *payrollRepository) ListByEmployee(ctx context.Context, employeeID string) ([]payroll.Record, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT ` + payrollColumns + `
		FROM payroll_records p
		JOIN employees e ON e.id = p.employee_id
		WHERE p.employee_id = $1
		ORDER BY p.payroll_year DESC, p.payroll_month DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employee payrolls: %w", err)
	}
	defer rows.Close()

	return collectPayrolls(rows)
}

// List implements payroll.Repository.
func (p *payrollRepository) List(ctx context.Context, filter payroll.ListFilter) ([]payroll.Record, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT ` + payrollColumns + `
		FROM payroll_records p
		JOIN employees e ON e.id = p.employee_id
		WHERE 1=1
	`
	args := []any{}
	argPos := 1

	if filter.Status != nil {
		query += fmt.Sprintf(" AND p.status = $%d", argPos)
		args = append(args, *filter.Status)
		argPos++
	}
	if filter.Month != nil {
		query += fmt.Sprintf(" AND p.payroll_month = $%d", argPos)
		args = append(args, *filter.Month)
		argPos++
	}
	if filter.Year != nil {
		query += fmt.Sprintf(" AND p.payroll_year = $%d", argPos)
		args = append(args, *filter.Year)
		argPos++
	}

	query += " ORDER BY p.payroll_year DESC, p.payroll_month DESC, e.employee_code ASC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll records: %w", err)
	}
	defer rows.Close()

	return collectPayrolls(rows)
}

func collectPayrolls(rows pgx.Rows) ([]payroll.Record, error) {
	var records []payroll.Record
	for rows.Next() {
		rec, err := scanPayroll(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// UpdateStatus implements payroll.Repository.
func (p *payrollRepository) UpdateStatus(ctx context.Context, id string, status payroll.Status) error {
	q := GetQuerier(ctx, p.db)

	tag, err := q.Exec(ctx, `
		UPDATE payroll_records SET status = $2, updated_at = NOW() WHERE id = $1
	`, id, status)
	if err != nil {
		return fmt.Errorf("failed to update payroll status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrRecordNotFound
	}

	return nil
}

// Stats implements payroll.Repository.
func (p *payrollRepository) Stats(ctx context.Context) (payroll.StatsResponse, error) {
	q := GetQuerier(ctx, p.db)

	var stats payroll.StatsResponse
	err := q.QueryRow(ctx, `
		SELECT COALESCE(SUM(net_salary), 0),
			   COALESCE(SUM(net_salary) FILTER (WHERE status = 'Paid'), 0),
			   COALESCE(SUM(net_salary) FILTER (WHERE status = 'Pending'), 0)
		FROM payroll_records
	`).Scan(&stats.Total, &stats.Paid, &stats.Pending)
	if err != nil {
		return payroll.StatsResponse{}, fmt.Errorf("failed to get payroll stats: %w", err)
	}

	return stats, nil
}

// AppendLog implements payroll.Repository.
func (p *payrollRepository) AppendLog(ctx context.Context, entry payroll.StatusLog) (payroll.StatusLog, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		INSERT INTO payroll_status_logs (id, payroll_id, old_status, new_status, changed_by, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING changed_at
	`

	err := q.QueryRow(ctx, query,
		entry.ID,
		entry.PayrollID,
		entry.OldStatus,
		entry.NewStatus,
		entry.ChangedBy,
		entry.Notes,
	).Scan(&entry.ChangedAt)

	if err != nil {
		return payroll.StatusLog{}, fmt.Errorf("failed to append payroll status log: %w", err)
	}

	return entry, nil
}

// ListLogs implements payroll.Repository.
func (p *payrollRepository) ListLogs(ctx context.Context, filter payroll.LogFilter, limit int) ([]payroll.StatusLog, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT l.id, l.payroll_id, l.old_status, l.new_status, l.changed_by, l.changed_at, l.notes,
			   e.employee_code, e.first_name || ' ' || e.last_name
		FROM payroll_status_logs l
		JOIN payroll_records p ON p.id = l.payroll_id
		JOIN employees e ON e.id = p.employee_id
		WHERE 1=1
	`
	args := []any{}
	argPos := 1

	if filter.PayrollID != nil {
		query += fmt.Sprintf(" AND l.payroll_id = $%d", argPos)
		args = append(args, *filter.PayrollID)
		argPos++
	}
	if filter.EmployeeCode != nil {
		query += fmt.Sprintf(" AND e.employee_code = $%d", argPos)
		args = append(args, *filter.EmployeeCode)
		argPos++
	}

	query += fmt.Sprintf(" ORDER BY l.changed_at DESC LIMIT $%d", argPos)
	args = append(args, limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll status logs: %w", err)
	}
	defer rows.Close()

	var logs []payroll.StatusLog
	for rows.Next() {
		var entry payroll.StatusLog
		if err := rows.Scan(
			&entry.ID, &entry.PayrollID, &entry.OldStatus, &entry.NewStatus,
			&entry.ChangedBy, &entry.ChangedAt, &entry.Notes,
			&entry.EmployeeCode, &entry.EmployeeName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan payroll status log: %w", err)
		}
		logs = append(logs, entry)
	}

	return logs, rows.Err()
}
