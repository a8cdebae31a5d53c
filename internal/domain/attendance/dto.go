package attendance

import (
	"github.com/staffhub-hq/staffhub-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

// CheckInRequest carries the employee reference for a check-in. The
// handler resolves the code from the request body or the caller's session
// before the service ever sees it.
type CheckInRequest struct {
	EmployeeCode string `json:"employee_id"`
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CheckOutRequest struct {
	EmployeeCode string `json:"employee_id"`
}

func (r *CheckOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CheckInResponse struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeCode string `json:"employee_code"`
	EmployeeName string `json:"employee_name"`
	Date         string `json:"date"`
	CheckInTime  string `json:"check_in_time"`
	Status       string `json:"status"`
}

type CheckOutResponse struct {
	EmployeeID       string  `json:"employee_id"`
	EmployeeCode     string  `json:"employee_code"`
	EmployeeName     string  `json:"employee_name"`
	Date             string  `json:"date"`
	CheckInTime      string  `json:"check_in_time"`
	CheckOutTime     string  `json:"check_out_time"`
	WorkingHours     float64 `json:"working_hours"`
	WorkingHoursText string  `json:"working_hours_text"`
	Status           string  `json:"status"`
}

// TodayResponse is the attendance snapshot for one employee today. When no
// record exists yet CheckedIn is false and Status is the placeholder.
type TodayResponse struct {
	EmployeeID       string   `json:"employee_id"`
	EmployeeCode     string   `json:"employee_code"`
	Date             string   `json:"date"`
	CheckedIn        bool     `json:"checked_in"`
	CheckInTime      *string  `json:"check_in_time"`
	CheckOutTime     *string  `json:"check_out_time"`
	WorkingHours     *float64 `json:"working_hours"`
	WorkingHoursText *string  `json:"working_hours_text"`
	Status           string   `json:"status"`
}

// NotCheckedInPlaceholder is the status reported when an employee has no
// attendance record for the requested day.
const NotCheckedInPlaceholder = "Not Checked In"

type RecordResponse struct {
	ID               string   `json:"id"`
	EmployeeID       string   `json:"employee_id"`
	EmployeeCode     string   `json:"employee_code,omitempty"`
	EmployeeName     string   `json:"employee_name,omitempty"`
	Department       *string  `json:"department,omitempty"`
	Date             string   `json:"date"`
	CheckInTime      *string  `json:"check_in_time"`
	CheckOutTime     *string  `json:"check_out_time"`
	WorkingHours     float64  `json:"working_hours"`
	WorkingHoursText string   `json:"working_hours_text"`
	Status           string   `json:"status"`
}

type ReportFilter struct {
	Month        string  // "2006-01"
	EmployeeCode *string
}

func (f *ReportFilter) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(f.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month is required in YYYY-MM format",
		})
	} else if !validator.IsValidMonth(f.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be in YYYY-MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ReportResponse struct {
	Month   string           `json:"month"`
	Summary map[string]int   `json:"summary"`
	Records []RecordResponse `json:"records"`
}

type ListFilter struct {
	Date   *string
	Status *string
}

func (f *ListFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Date != nil && *f.Date != "" {
		if _, ok := validator.IsValidDate(*f.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}
	if f.Status != nil && *f.Status != "" && !Status(*f.Status).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "unknown attendance status",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type GenerateDailyRequest struct {
	Date *string `json:"date"`
}

func (r *GenerateDailyRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Date != nil && *r.Date != "" {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BatchResponse struct {
	Date    string `json:"date"`
	Count   int    `json:"count"`
	Message string `json:"message"`
}

// StatCard is one entry of the per-status daily summary.
type StatCard struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}
