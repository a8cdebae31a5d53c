package user

import "time"

type Role string

const (
	RoleAdmin Role = "admin"
	RoleHR    Role = "hr"
)

// User is an HR console account. EmployeeCode links the account to an
// employee record when the user is also on staff.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         Role
	EmployeeCode *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
