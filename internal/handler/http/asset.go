package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/staffhub-hq/staffhub-backend-go/internal/domain/asset"
	"github.com/staffhub-hq/staffhub-backend-go/internal/handler/http/response"
)

type AssetHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Assign(w http.ResponseWriter, r *http.Request)
	Unassign(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type assetHandlerImpl struct {
	assetService asset.Service
}

func NewAssetHandler(assetService asset.Service) AssetHandler {
	return &assetHandlerImpl{
		assetService: assetService,
	}
}

// Create implements AssetHandler.
func (h *assetHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req asset.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.assetService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Asset created", result)
}

// Get implements AssetHandler.
func (h *assetHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.assetService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements AssetHandler.
func (h *assetHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var filter asset.ListFilter
	if status := r.URL.Query().Get("status"); status != "" {
		filter.Status = &status
	}
	if category := r.URL.Query().Get("category"); category != "" {
		filter.Category = &category
	}

	result, err := h.assetService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Assign implements AssetHandler.
func (h *assetHandlerImpl) Assign(w http.ResponseWriter, r *http.Request) {
	var req asset.AssignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.assetService.Assign(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Asset assigned", result)
}

// Unassign implements AssetHandler.
func (h *assetHandlerImpl) Unassign(w http.ResponseWriter, r *http.Request) {
	result, err := h.assetService.Unassign(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Asset returned", result)
}

// Delete implements AssetHandler.
func (h *assetHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.assetService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Asset deleted", nil)
}
