package response

import (
	"errors"
	"net/http"

	"github.com/staffhub-hq/staffhub-backend-go/internal/domain/asset"
	"github.com/staffhub-hq/staffhub-backend-go/internal/domain/attendance"
	"github.com/staffhub-hq/staffhub-backend-go/internal/domain/auth"
	"github.com/staffhub-hq/staffhub-backend-go/internal/domain/employee"
	"github.com/staffhub-hq/staffhub-backend-go/internal/domain/holiday"
	"github.com/staffhub-hq/staffhub-backend-go/internal/domain/leave"
	"github.com/staffhub-hq/staffhub-backend-go/internal/domain/onboarding"
	"github.com/staffhub-hq/staffhub-backend-go/internal/domain/payroll"
	"github.com/staffhub-hq/staffhub-backend-go/internal/domain/recruitment"
	"github.com/staffhub-hq/staffhub-backend-go/internal/domain/user"
	"github.com/staffhub-hq/staffhub-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Protocol rejections carry the record state that caused them.
	var stateErr *attendance.StateError
	if errors.As(err, &stateErr) {
		BadRequest(w, stateErr.Error(), stateErr.Details())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrTokenInvalid):
		Unauthorized(w, "Token is invalid or expired")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered", nil)

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists", nil)
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered", nil)
	case errors.Is(err, employee.ErrNoEmployeeContext):
		BadRequest(w, "No employee linked to this session", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrNotCheckedInYet):
		BadRequest(w, "Not checked in yet", nil)
	case errors.Is(err, attendance.ErrCheckOutBeforeCheckIn):
		BadRequest(w, "Cannot check out before checking in", nil)
	case errors.Is(err, attendance.ErrCheckOutEarlierThanIn):
		BadRequest(w, "Check-out time is earlier than check-in time", nil)
	case errors.Is(err, attendance.ErrAutoAbsentBeforeCutoff):
		BadRequest(w, "Auto-absent can only run after the cutoff time", nil)
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrDuplicateRecord):
		Conflict(w, "Attendance record already exists for this employee and date", nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrRecordNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrAlreadyPaid):
		Conflict(w, "Payroll is already Paid", nil)
	case errors.Is(err, payroll.ErrRecordAlreadyExists):
		Conflict(w, "Payroll record already exists for this period", nil)

	// Leave domain errors
	case errors.Is(err, leave.ErrRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrAlreadyReviewed):
		Conflict(w, "Leave request already reviewed", nil)
	case errors.Is(err, leave.ErrOverlappingLeave):
		Conflict(w, "Overlapping leave request exists", nil)
	case errors.Is(err, leave.ErrEndBeforeStart):
		BadRequest(w, "End date is before start date", nil)

	// Holiday domain errors
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, holiday.ErrHolidayExists):
		Conflict(w, "Holiday already exists on this date", nil)

	// Asset domain errors
	case errors.Is(err, asset.ErrAssetNotFound):
		NotFound(w, "Asset not found")
	case errors.Is(err, asset.ErrAssetTagExists):
		Conflict(w, "Asset tag already exists", nil)
	case errors.Is(err, asset.ErrAlreadyAssigned):
		Conflict(w, "Asset is already assigned", nil)
	case errors.Is(err, asset.ErrNotAssigned):
		BadRequest(w, "Asset is not assigned", nil)
	case errors.Is(err, asset.ErrAssetUnavailable):
		BadRequest(w, "Asset is not available for assignment", nil)

	// Recruitment domain errors
	case errors.Is(err, recruitment.ErrPostingNotFound):
		NotFound(w, "Job posting not found")

	// Onboarding domain errors
	case errors.Is(err, onboarding.ErrTaskNotFound):
		NotFound(w, "Onboarding task not found")
	case errors.Is(err, onboarding.ErrInvalidTransition):
		BadRequest(w, "Invalid task status transition", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
