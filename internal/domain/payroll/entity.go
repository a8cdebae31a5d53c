package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status enum
type Status string

const (
	StatusPending Status = "Pending"
	StatusPaid    Status = "Paid"
)

// Valid reports whether s is a known payroll status.
func (s Status) Valid() bool {
	return s == StatusPending || s == StatusPaid
}

// Record is one employee's payroll for one calendar month.
// (EmployeeID, PayrollMonth, PayrollYear) is unique.
type Record struct {
	ID           string
	EmployeeID   string
	PayrollMonth int
	PayrollYear  int
	BasicSalary  decimal.Decimal
	Allowances   decimal.Decimal
	Deductions   decimal.Decimal
	NetSalary    decimal.Decimal
	Status       Status
	PayDate      time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined fields
	EmployeeName *string
	EmployeeCode *string
	Department   *string
	Designation  *string
}

// Recalculate rewrites NetSalary from the input amounts. Callers invoke it
// before every persist so the stored value can never drift.
func (r *Record) Recalculate() {
	r.NetSalary = r.BasicSalary.Add(r.Allowances).Sub(r.Deductions)
}

// StatusLog is one entry of the append-only status audit trail. Entries are
// created only by accepted status transitions and never mutated.
type StatusLog struct {
	ID        string
	PayrollID string
	OldStatus Status
	NewStatus Status
	ChangedBy *string
	ChangedAt time.Time
	Notes     string

	// Joined fields
	EmployeeCode *string
	EmployeeName *string
}
