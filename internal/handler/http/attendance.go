package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"

	"github.com/staffhub-hq/staffhub-backend-go/internal/domain/attendance"
	"github.com/staffhub-hq/staffhub-backend-go/internal/domain/employee"
	"github.com/staffhub-hq/staffhub-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	Today(w http.ResponseWriter, r *http.Request)
	Report(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Stats(w http.ResponseWriter, r *http.Request)
	GenerateDaily(w http.ResponseWriter, r *http.Request)
	AutoAbsent(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.Service
}

func NewAttendanceHandler(attendanceService attendance.Service) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// sessionEmployeeCode pulls the employee_code claim from the caller's
// token, if any. Lets check-in/out bodies omit employee_id for callers
// whose account is linked to an employee.
func sessionEmployeeCode(r *http.Request) string {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return ""
	}
	code, _ := claims["employee_code"].(string)
	return code
}

// CheckIn implements AttendanceHandler.
func (h *attendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	var req attendance.CheckInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if req.EmployeeCode == "" {
		req.EmployeeCode = sessionEmployeeCode(r)
	}
	if req.EmployeeCode == "" {
		response.HandleError(w, employee.ErrNoEmployeeContext)
		return
	}

	result, err := h.attendanceService.CheckIn(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Checked in", result)
}

// CheckOut implements AttendanceHandler.
func (h *attendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	var req attendance.CheckOutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if req.EmployeeCode == "" {
		req.EmployeeCode = sessionEmployeeCode(r)
	}
	if req.EmployeeCode == "" {
		response.HandleError(w, employee.ErrNoEmployeeContext)
		return
	}

	result, err := h.attendanceService.CheckOut(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Checked out", result)
}

// Today implements AttendanceHandler.
func (h *attendanceHandlerImpl) Today(w http.ResponseWriter, r *http.Request) {
	employeeCode := chi.URLParam(r, "employeeID")

	result, err := h.attendanceService.Today(r.Context(), employeeCode)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Report implements AttendanceHandler.
func (h *attendanceHandlerImpl) Report(w http.ResponseWriter, r *http.Request) {
	filter := attendance.ReportFilter{
		Month: r.URL.Query().Get("month"),
	}
	if code := r.URL.Query().Get("employee_id"); code != "" {
		filter.EmployeeCode = &code
	}

	result, err := h.attendanceService.MonthlyReport(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements AttendanceHandler.
func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var filter attendance.ListFilter
	if date := r.URL.Query().Get("date"); date != "" {
		filter.Date = &date
	}
	if status := r.URL.Query().Get("status"); status != "" {
		filter.Status = &status
	}

	result, err := h.attendanceService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Stats implements AttendanceHandler.
func (h *attendanceHandlerImpl) Stats(w http.ResponseWriter, r *http.Request) {
	var date *string
	if d := r.URL.Query().Get("date"); d != "" {
		date = &d
	}

	result, err := h.attendanceService.DailyStats(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GenerateDaily implements AttendanceHandler.
func (h *attendanceHandlerImpl) GenerateDaily(w http.ResponseWriter, r *http.Request) {
	var req attendance.GenerateDailyRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}

	result, err := h.attendanceService.GenerateDaily(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, result.Message, result)
}

// AutoAbsent implements AttendanceHandler.
func (h *attendanceHandlerImpl) AutoAbsent(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.AutoAbsent(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, result.Message, result)
}
