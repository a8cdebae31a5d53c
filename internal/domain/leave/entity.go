package leave

import "time"

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

func (s Status) Valid() bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

type Type string

const (
	TypeCasual    Type = "Casual"
	TypeSick      Type = "Sick"
	TypeEarned    Type = "Earned"
	TypeMaternity Type = "Maternity"
	TypePaternity Type = "Paternity"
	TypeUnpaid    Type = "Unpaid"
)

func (t Type) Valid() bool {
	switch t {
	case TypeCasual, TypeSick, TypeEarned, TypeMaternity, TypePaternity, TypeUnpaid:
		return true
	}
	return false
}

// Request is one leave application. Days counts both endpoints, so a
// single-day leave has StartDate == EndDate and Days == 1.
type Request struct {
	ID         string
	EmployeeID string
	LeaveType  Type
	StartDate  time.Time
	EndDate    time.Time
	Days       int
	Reason     string
	Status     Status
	ReviewedBy *string
	ReviewedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined fields
	EmployeeName *string
	EmployeeCode *string
	Department   *string
}

// DayCount returns the inclusive number of days between start and end.
func DayCount(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}
