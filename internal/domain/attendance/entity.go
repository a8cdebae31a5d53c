package attendance

import (
	"time"
)

// Status describes an employee's attendance outcome for a given day.
type Status string

const (
	StatusAbsent  Status = "Absent"
	StatusPresent Status = "Present"
	StatusLate    Status = "Late"
	StatusHalfDay Status = "Half Day"
	StatusWorking Status = "Working"
	StatusOnLeave Status = "On Leave"
)

// Valid reports whether s is one of the known attendance statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusAbsent, StatusPresent, StatusLate, StatusHalfDay, StatusWorking, StatusOnLeave:
		return true
	}
	return false
}

// Record is one employee's attendance for one calendar day.
// (EmployeeID, Date) is unique; CheckOut set implies CheckIn set.
type Record struct {
	ID               string
	EmployeeID       string
	Date             time.Time
	CheckIn          *time.Time
	CheckOut         *time.Time
	Status           Status
	WorkingHours     float64
	WorkingHoursText string
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// Joined fields
	EmployeeName *string
	EmployeeCode *string
	Department   *string
}
