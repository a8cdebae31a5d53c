package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/staffhub-hq/staffhub-backend-go/internal/domain/recruitment"
	"github.com/staffhub-hq/staffhub-backend-go/internal/handler/http/response"
)

type RecruitmentHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Stats(w http.ResponseWriter, r *http.Request)
}

type recruitmentHandlerImpl struct {
	recruitmentService recruitment.Service
}

func NewRecruitmentHandler(recruitmentService recruitment.Service) RecruitmentHandler {
	return &recruitmentHandlerImpl{
		recruitmentService: recruitmentService,
	}
}

// Create implements RecruitmentHandler.
func (h *recruitmentHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req recruitment.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.recruitmentService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Job posting created", result)
}

// Get implements RecruitmentHandler.
func (h *recruitmentHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.recruitmentService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements RecruitmentHandler.
func (h *recruitmentHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var filter recruitment.ListFilter
	if status := r.URL.Query().Get("status"); status != "" {
		filter.Status = &status
	}

	result, err := h.recruitmentService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements RecruitmentHandler.
func (h *recruitmentHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req recruitment.UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.recruitmentService.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Job posting updated", result)
}

// Delete implements RecruitmentHandler.
func (h *recruitmentHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.recruitmentService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Job posting deleted", nil)
}

// Stats implements RecruitmentHandler.
func (h *recruitmentHandlerImpl) Stats(w http.ResponseWriter, r *http.Request) {
	result, err := h.recruitmentService.Stats(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
