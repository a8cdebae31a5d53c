package asset

import "time"

type Status string

const (
	StatusAvailable   Status = "Available"
	StatusAssigned    Status = "Assigned"
	StatusMaintenance Status = "Maintenance"
	StatusRetired     Status = "Retired"
)

func (s Status) Valid() bool {
	switch s {
	case StatusAvailable, StatusAssigned, StatusMaintenance, StatusRetired:
		return true
	}
	return false
}

// Asset is one piece of company property. AssignedTo and AssignedDate are
// set together on assignment and cleared together on return.
type Asset struct {
	ID           string
	Name         string
	AssetTag     string
	Category     string
	SerialNumber string
	Status       Status
	AssignedTo   *string
	AssignedDate *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined fields
	AssignedName *string
	AssignedCode *string
}
