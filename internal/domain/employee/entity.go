package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Gender string

const (
	Male   Gender = "Male"
	Female Gender = "Female"
	Other  Gender = "Other"
)

// Employee is a directory entry. The attendance and payroll cores hold a
// reference to it but never mutate it.
type Employee struct {
	ID            string
	EmployeeCode  string
	FirstName     string
	LastName      string
	Gender        Gender
	Email         string
	Phone         string
	Address       *string
	DateOfBirth   *time.Time
	Department    string
	Designation   string
	DateOfJoining time.Time
	BasicSalary   *decimal.Decimal
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// FullName returns the display name used in attendance and payroll views.
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
