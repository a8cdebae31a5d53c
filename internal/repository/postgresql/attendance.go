package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/staffhub-hq/staffhub-backend-go/internal/domain/attendance"
	"github.com/staffhub-hq/staffhub-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.Repository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	a.id, a.employee_id, a.date, a.check_in, a.check_out,
	a.status, a.working_hours, a.working_hours_text,
	a.created_at, a.updated_at,
	e.first_name || ' ' || e.last_name, e.employee_code, e.department
`

func scanAttendance(row pgx.Row) (attendance.Record, error) {
	var rec attendance.Record
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.Date, &rec.CheckIn, &rec.CheckOut,
		&rec.Status, &rec.WorkingHours, &rec.WorkingHoursText,
		&rec.CreatedAt, &rec.UpdatedAt,
		&rec.EmployeeName, &rec.EmployeeCode, &rec.Department,
	)
	return rec, err
}

// Create implements attendance.Repository. A concurrent insert for the same
// (employee_id, date) hits the unique key and is reported as a duplicate.
func (a *attendanceRepository) Create(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance_records (
			id, employee_id, date, check_in, check_out,
			status, working_hours, working_hours_text
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		rec.ID,
		rec.EmployeeID,
		rec.Date,
		rec.CheckIn,
		rec.CheckOut,
		rec.Status,
		rec.WorkingHours,
		rec.WorkingHoursText,
	).Scan(&rec.CreatedAt, &rec.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return attendance.Record{}, attendance.ErrDuplicateRecord
		}
		return attendance.Record{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return rec, nil
}

// GetByEmployeeAndDate implements attendance.Repository.
func (a *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.employee_id = $1
		  AND a.date = $2
		LIMIT 1
	`

	rec, err := scanAttendance(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Record{}, attendance.ErrRecordNotFound
		}
		return attendance.Record{}, fmt.Errorf("failed to get attendance record: %w", err)
	}

	return rec, nil
}

// GetForUpdate implements attendance.Repository. Must run inside a
// transaction; the lock is released on commit or rollback.
func (a *attendanceRepository) GetForUpdate(ctx context.Context, employeeID string, date time.Time) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, employee_id, date, check_in, check_out,
			   status, working_hours, working_hours_text,
			   created_at, updated_at
		FROM attendance_records
		WHERE employee_id = $1
		  AND date = $2
		FOR UPDATE
	`

	var rec attendance.Record
	err := q.QueryRow(ctx, query, employeeID, date).Scan(
		&rec.ID, &rec.EmployeeID, &rec.Date, &rec.CheckIn, &rec.CheckOut,
		&rec.Status, &rec.WorkingHours, &rec.WorkingHoursText,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Record{}, attendance.ErrRecordNotFound
		}
		return attendance.Record{}, fmt.Errorf("failed to lock attendance record: %w", err)
	}

	return rec, nil
}

// Update implements attendance.Repository.
func (a *attendanceRepository) Update(ctx context.Context, rec attendance.Record) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendance_records
		SET check_in = $2, check_out = $3, status = $4,
			working_hours = $5, working_hours_text = $6, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		rec.ID,
		rec.CheckIn,
		rec.CheckOut,
		rec.Status,
		rec.WorkingHours,
		rec.WorkingHoursText,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrRecordNotFound
	}

	return nil
}

// List implements attendance.Repository.
func (a *attendanceRepository) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records a
		JOIN employees e ON e.id = a.employee_id
		WHERE 1=1
	`
	args := []any{}
	argPos := 1

	if filter.Date != nil {
		query += fmt.Sprintf(" AND a.date = $%d", argPos)
		args = append(args, *filter.Date)
		argPos++
	}
	if filter.Status != nil {
		query += fmt.Sprintf(" AND a.status = $%d", argPos)
		args = append(args, *filter.Status)
		argPos++
	}

	query += " ORDER BY a.date DESC, e.employee_code ASC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		rec, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// ListByMonth implements attendance.Repository.
func (a *attendanceRepository) ListByMonth(ctx context.Context, year int, month time.Month, employeeID *string) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records a
		JOIN employees e ON e.id = a.employee_id
		WHERE EXTRACT(YEAR FROM a.date) = $1
		  AND EXTRACT(MONTH FROM a.date) = $2
	`
	args := []any{year, int(month)}

	if employeeID != nil {
		query += " AND a.employee_id = $3"
		args = append(args, *employeeID)
	}

	query += " ORDER BY a.date ASC, e.employee_code ASC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance by month: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		rec, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// CountByStatus implements attendance.Repository.
func (a *attendanceRepository) CountByStatus(ctx context.Context, date time.Time) (map[attendance.Status]int, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT status, COUNT(*)
		FROM attendance_records
		WHERE date = $1
		GROUP BY status
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to count attendance by status: %w", err)
	}
	defer rows.Close()

	counts := make(map[attendance.Status]int)
	for rows.Next() {
		var status attendance.Status
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan status count: %w", err)
		}
		counts[status] = count
	}

	return counts, rows.Err()
}

// InsertAbsentDefaults implements attendance.Repository. The conflict clause
// makes repeated runs for the same date insert nothing.
func (a *attendanceRepository) InsertAbsentDefaults(ctx context.Context, date time.Time) (int, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance_records (id, employee_id, date, status, working_hours, working_hours_text)
		SELECT gen_random_uuid(), e.id, $1, 'Absent', 0, '0h 0m'
		FROM employees e
		WHERE e.is_active = TRUE
		ON CONFLICT (employee_id, date) DO NOTHING
	`

	tag, err := q.Exec(ctx, query, date)
	if err != nil {
		return 0, fmt.Errorf("failed to insert absent defaults: %w", err)
	}

	return int(tag.RowsAffected()), nil
}

// MarkAbsentees implements attendance.Repository.
func (a *attendanceRepository) MarkAbsentees(ctx context.Context, date time.Time) (int, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendance_records
		SET status = 'Absent', working_hours = 0, working_hours_text = '0h 0m', updated_at = NOW()
		WHERE date = $1
		  AND check_in IS NULL
		  AND status NOT IN ('On Leave', 'Absent')
	`

	tag, err := q.Exec(ctx, query, date)
	if err != nil {
		return 0, fmt.Errorf("failed to mark absentees: %w", err)
	}

	return int(tag.RowsAffected()), nil
}

// SetOnLeave implements attendance.Repository. Creates or overwrites the
// employee's row for the date with an On Leave status.
func (a *attendanceRepository) SetOnLeave(ctx context.Context, employeeID string, date time.Time) error {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance_records (id, employee_id, date, status, working_hours, working_hours_text)
		VALUES (gen_random_uuid(), $1, $2, 'On Leave', 0, '0h 0m')
		ON CONFLICT (employee_id, date)
		DO UPDATE SET status = 'On Leave', check_in = NULL, check_out = NULL,
					  working_hours = 0, working_hours_text = '0h 0m', updated_at = NOW()
	`

	if _, err := q.Exec(ctx, query, employeeID, date); err != nil {
		return fmt.Errorf("failed to set on-leave status: %w", err)
	}

	return nil
}
