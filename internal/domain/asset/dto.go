package asset

import "github.com/staffhub-hq/staffhub-backend-go/internal/pkg/validator"

type CreateRequest struct {
	Name         string `json:"name"`
	AssetTag     string `json:"asset_tag"`
	Category     string `json:"category"`
	SerialNumber string `json:"serial_number"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if validator.IsEmpty(r.AssetTag) {
		errs = append(errs, validator.ValidationError{Field: "asset_tag", Message: "asset_tag is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AssignRequest struct {
	EmployeeCode string `json:"employee_id"`
}

func (r *AssignRequest) Validate() error {
	if validator.IsEmpty(r.EmployeeCode) {
		return validator.ValidationErrors{
			{Field: "employee_id", Message: "employee_id is required"},
		}
	}
	return nil
}

type ListFilter struct {
	Status   *string
	Category *string
}

type Response struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	AssetTag     string  `json:"asset_tag"`
	Category     string  `json:"category,omitempty"`
	SerialNumber string  `json:"serial_number,omitempty"`
	Status       string  `json:"status"`
	AssignedTo   *string `json:"assigned_to,omitempty"`
	AssignedName *string `json:"assigned_name,omitempty"`
	AssignedDate *string `json:"assigned_date,omitempty"`
}
