package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/staffhub-hq/staffhub-backend-go/internal/domain/onboarding"
	"github.com/staffhub-hq/staffhub-backend-go/internal/handler/http/response"
)

type OnboardingHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListByEmployee(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type onboardingHandlerImpl struct {
	onboardingService onboarding.Service
}

func NewOnboardingHandler(onboardingService onboarding.Service) OnboardingHandler {
	return &onboardingHandlerImpl{
		onboardingService: onboardingService,
	}
}

// Create implements OnboardingHandler.
func (h *onboardingHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req onboarding.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.onboardingService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Onboarding task created", result)
}

// List implements OnboardingHandler.
func (h *onboardingHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.onboardingService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListByEmployee implements OnboardingHandler.
func (h *onboardingHandlerImpl) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	result, err := h.onboardingService.ListByEmployee(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateStatus implements OnboardingHandler.
func (h *onboardingHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req onboarding.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.onboardingService.UpdateStatus(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Task status updated", result)
}

// Delete implements OnboardingHandler.
func (h *onboardingHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.onboardingService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Onboarding task deleted", nil)
}
