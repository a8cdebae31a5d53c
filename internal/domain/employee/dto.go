package employee

import (
	"github.com/shopspring/decimal"

	"github.com/staffhub-hq/staffhub-backend-go/internal/pkg/validator"
)

type CreateRequest struct {
	EmployeeCode  string           `json:"employee_id"`
	FirstName     string           `json:"first_name"`
	LastName      string           `json:"last_name"`
	Gender        string           `json:"gender"`
	Email         string           `json:"email"`
	Phone         string           `json:"phone"`
	Address       *string          `json:"address"`
	DateOfBirth   *string          `json:"date_of_birth"`
	Department    string           `json:"department"`
	Designation   string           `json:"designation"`
	DateOfJoining string           `json:"date_of_joining"`
	BasicSalary   *decimal.Decimal `json:"basic_salary"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	} else if !validator.IsValidEmployeeCode(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id must look like EMP001"})
	}
	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "first_name", Message: "first_name is required"})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{Field: "last_name", Message: "last_name is required"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "a valid email is required"})
	}
	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{Field: "department", Message: "department is required"})
	}
	if validator.IsEmpty(r.Designation) {
		errs = append(errs, validator.ValidationError{Field: "designation", Message: "designation is required"})
	}
	if _, ok := validator.IsValidDate(r.DateOfJoining); !ok {
		errs = append(errs, validator.ValidationError{Field: "date_of_joining", Message: "date_of_joining must be in YYYY-MM-DD format"})
	}
	if r.DateOfBirth != nil && *r.DateOfBirth != "" {
		if _, ok := validator.IsValidDate(*r.DateOfBirth); !ok {
			errs = append(errs, validator.ValidationError{Field: "date_of_birth", Message: "date_of_birth must be in YYYY-MM-DD format"})
		}
	}
	switch Gender(r.Gender) {
	case Male, Female, Other:
	default:
		errs = append(errs, validator.ValidationError{Field: "gender", Message: "gender must be Male, Female or Other"})
	}
	if r.BasicSalary != nil && r.BasicSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "basic_salary", Message: "basic_salary must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateRequest struct {
	ID          string           `json:"-"`
	FirstName   *string          `json:"first_name"`
	LastName    *string          `json:"last_name"`
	Email       *string          `json:"email"`
	Phone       *string          `json:"phone"`
	Address     *string          `json:"address"`
	Department  *string          `json:"department"`
	Designation *string          `json:"designation"`
	BasicSalary *decimal.Decimal `json:"basic_salary"`
	IsActive    *bool            `json:"is_active"`
}

func (r *UpdateRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "a valid email is required"})
	}
	if r.BasicSalary != nil && r.BasicSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "basic_salary", Message: "basic_salary must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListFilter struct {
	Department *string
	ActiveOnly bool
	Search     *string
}

type Response struct {
	ID            string           `json:"id"`
	EmployeeCode  string           `json:"employee_id"`
	FirstName     string           `json:"first_name"`
	LastName      string           `json:"last_name"`
	FullName      string           `json:"full_name"`
	Gender        string           `json:"gender"`
	Email         string           `json:"email"`
	Phone         string           `json:"phone"`
	Address       *string          `json:"address,omitempty"`
	DateOfBirth   *string          `json:"date_of_birth,omitempty"`
	Department    string           `json:"department"`
	Designation   string           `json:"designation"`
	DateOfJoining string           `json:"date_of_joining"`
	BasicSalary   *decimal.Decimal `json:"basic_salary,omitempty"`
	IsActive      bool             `json:"is_active"`
}
