package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/staffhub-hq/staffhub-backend-go/internal/pkg/validator"
)

// SetStatusRequest targets a payroll either directly by id or via the
// employee's most recent record.
type SetStatusRequest struct {
	PayrollID    *string `json:"payroll_id"`
	EmployeeCode *string `json:"employee_id"`
	Status       string  `json:"status"`
	Notes        string  `json:"notes"`

	// Actor is filled by the handler from the authenticated session.
	Actor *string `json:"-"`
}

func (r *SetStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status cannot be blank",
		})
	} else if !Status(r.Status).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be Pending or Paid",
		})
	}

	if (r.PayrollID == nil || *r.PayrollID == "") &&
		(r.EmployeeCode == nil || *r.EmployeeCode == "") {
		errs = append(errs, validator.ValidationError{
			Field:   "payroll_id",
			Message: "payroll_id or employee_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SetStatusResponse struct {
	PayrollID    string `json:"payroll_id"`
	EmployeeCode string `json:"employee_id"`
	OldStatus    string `json:"old_status"`
	NewStatus    string `json:"new_status"`
}

type RunResponse struct {
	Month   int    `json:"month"`
	Year    int    `json:"year"`
	Created int    `json:"created"`
	Message string `json:"message"`
}

type RecordResponse struct {
	ID           string          `json:"id"`
	EmployeeID   string          `json:"employee_ref"`
	EmployeeCode string          `json:"employee_id"`
	EmployeeName string          `json:"employee_name"`
	Department   *string         `json:"department,omitempty"`
	Designation  *string         `json:"designation,omitempty"`
	PayrollMonth int             `json:"payroll_month"`
	PayrollYear  int             `json:"payroll_year"`
	BasicSalary  decimal.Decimal `json:"basic_salary"`
	Allowances   decimal.Decimal `json:"allowances"`
	Deductions   decimal.Decimal `json:"deductions"`
	NetSalary    decimal.Decimal `json:"net_salary"`
	Status       string          `json:"status"`
	PayDate      string          `json:"pay_date"`
}

type EmployeePayrollsResponse struct {
	EmployeeCode string           `json:"employee_id"`
	EmployeeName string           `json:"employee_name"`
	Payrolls     []RecordResponse `json:"payrolls"`
}

type ListFilter struct {
	Status *string
	Month  *int
	Year   *int
}

type ListResponse struct {
	Summary  StatsResponse    `json:"summary"`
	Payrolls []RecordResponse `json:"payrolls"`
}

type StatsResponse struct {
	Total   decimal.Decimal `json:"total"`
	Paid    decimal.Decimal `json:"paid"`
	Pending decimal.Decimal `json:"pending"`
}

type LogFilter struct {
	PayrollID    *string
	EmployeeCode *string
}

type LogResponse struct {
	ID           string  `json:"id"`
	PayrollID    string  `json:"payroll_id"`
	EmployeeCode *string `json:"employee_id,omitempty"`
	EmployeeName *string `json:"employee_name,omitempty"`
	OldStatus    string  `json:"old_status"`
	NewStatus    string  `json:"new_status"`
	ChangedBy    *string `json:"changed_by,omitempty"`
	ChangedAt    string  `json:"changed_at"`
	Notes        string  `json:"notes,omitempty"`
}
