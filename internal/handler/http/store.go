package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shiftnavi/shiftnavi-backend-go/internal/domain/store"
	"github.com/shiftnavi/shiftnavi-backend-go/internal/handler/http/response"
)

type StoreHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type storeHandlerImpl struct {
	storeService store.StoreService
}

func NewStoreHandler(storeService store.StoreService) StoreHandler {
	return &storeHandlerImpl{
		storeService: storeService,
	}
}

// Create implements StoreHandler.
func (h *storeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req store.CreateStoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.storeService.CreateStore(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Store created", result)
}

// Get implements StoreHandler.
func (h *storeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.storeService.GetStore(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements StoreHandler.
func (h *storeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.storeService.ListStores(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements StoreHandler.
func (h *storeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req store.UpdateStoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.storeService.UpdateStore(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Store updated", result)
}

// Delete implements StoreHandler.
func (h *storeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.storeService.DeleteStore(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Store deleted", nil)
}
