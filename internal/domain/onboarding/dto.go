package onboarding

import "github.com/staffhub-hq/staffhub-backend-go/internal/pkg/validator"

type CreateRequest struct {
	EmployeeCode string  `json:"employee_id"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	DueDate      *string `json:"due_date"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "title is required"})
	}
	if r.DueDate != nil {
		if _, ok := validator.IsValidDate(*r.DueDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "due_date", Message: "due_date must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

func (r *UpdateStatusRequest) Validate() error {
	if !TaskStatus(r.Status).Valid() {
		return validator.ValidationErrors{
			{Field: "status", Message: "status must be Pending, In Progress or Completed"},
		}
	}
	return nil
}

type Response struct {
	ID           string  `json:"id"`
	EmployeeCode string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	Title        string  `json:"title"`
	Description  string  `json:"description,omitempty"`
	DueDate      *string `json:"due_date,omitempty"`
	Status       string  `json:"status"`
	CompletedAt  *string `json:"completed_at,omitempty"`
}
