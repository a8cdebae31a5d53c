package attendance

import (
	"context"
	"time"
)

// Repository defines data access for attendance records. The storage layer
// enforces the unique (employee_id, date) key: a second conflicting create
// fails with ErrDuplicateRecord instead of silently duplicating.
type Repository interface {
	// Create inserts a new record; ErrDuplicateRecord on a unique-key clash.
	Create(ctx context.Context, rec Record) (Record, error)

	// GetByEmployeeAndDate returns the record or ErrRecordNotFound.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (Record, error)

	// GetForUpdate is GetByEmployeeAndDate with a row lock; must run inside
	// a transaction so concurrent check-ins on the same key serialize.
	GetForUpdate(ctx context.Context, employeeID string, date time.Time) (Record, error)

	// Update rewrites the mutable fields of an existing record.
	Update(ctx context.Context, rec Record) error

	// List returns records for a day with optional status filter.
	List(ctx context.Context, filter ListFilter) ([]Record, error)

	// ListByMonth returns all records in a calendar month, optionally for a
	// single employee, newest date first.
	ListByMonth(ctx context.Context, year int, month time.Month, employeeID *string) ([]Record, error)

	// CountByStatus returns per-status record counts for one day.
	CountByStatus(ctx context.Context, date time.Time) (map[Status]int, error)

	// InsertAbsentDefaults creates Absent records for every active employee
	// lacking one on date, skipping existing rows. Returns rows created.
	InsertAbsentDefaults(ctx context.Context, date time.Time) (int, error)

	// MarkAbsentees forces Absent on records for date that still have no
	// check-in and are not On Leave or already Absent. Returns rows updated.
	MarkAbsentees(ctx context.Context, date time.Time) (int, error)

	// SetOnLeave upserts an On Leave record for the employee and date.
	SetOnLeave(ctx context.Context, employeeID string, date time.Time) error
}
