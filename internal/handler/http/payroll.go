package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"

	"github.com/staffhub-hq/staffhub-backend-go/internal/domain/payroll"
	"github.com/staffhub-hq/staffhub-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	Run(w http.ResponseWriter, r *http.Request)
	SetStatus(w http.ResponseWriter, r *http.Request)
	EmployeePayrolls(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Logs(w http.ResponseWriter, r *http.Request)
	Stats(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.Service
}

func NewPayrollHandler(payrollService payroll.Service) PayrollHandler {
	return &payrollHandlerImpl{
		payrollService: payrollService,
	}
}

// Run implements PayrollHandler.
func (h *payrollHandlerImpl) Run(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.Run(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, result.Message, result)
}

// SetStatus implements PayrollHandler.
func (h *payrollHandlerImpl) SetStatus(w http.ResponseWriter, r *http.Request) {
	var req payroll.SetStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// The acting user comes from the session, never the body.
	if _, claims, err := jwtauth.FromContext(r.Context()); err == nil {
		if userID, ok := claims["user_id"].(string); ok && userID != "" {
			req.Actor = &userID
		}
	}

	result, err := h.payrollService.SetStatus(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll status updated", result)
}

// EmployeePayrolls implements PayrollHandler.
func (h *payrollHandlerImpl) EmployeePayrolls(w http.ResponseWriter, r *http.Request) {
	employeeCode := chi.URLParam(r, "employeeID")

	result, err := h.payrollService.EmployeePayrolls(r.Context(), employeeCode)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements PayrollHandler.
func (h *payrollHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var filter payroll.ListFilter
	if status := r.URL.Query().Get("status"); status != "" {
		filter.Status = &status
	}

	result, err := h.payrollService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Logs implements PayrollHandler.
func (h *payrollHandlerImpl) Logs(w http.ResponseWriter, r *http.Request) {
	var filter payroll.LogFilter
	if id := r.URL.Query().Get("payroll_id"); id != "" {
		filter.PayrollID = &id
	}
	if code := r.URL.Query().Get("employee_id"); code != "" {
		filter.EmployeeCode = &code
	}

	result, err := h.payrollService.Logs(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Stats implements PayrollHandler.
func (h *payrollHandlerImpl) Stats(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.Stats(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
