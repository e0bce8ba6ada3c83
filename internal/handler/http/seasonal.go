package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shiftnavi/shiftnavi-backend-go/internal/domain/seasonal"
	"github.com/shiftnavi/shiftnavi-backend-go/internal/handler/http/response"
)

type SeasonalHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type seasonalHandlerImpl struct {
	seasonalService seasonal.SeasonalService
}

func NewSeasonalHandler(seasonalService seasonal.SeasonalService) SeasonalHandler {
	return &seasonalHandlerImpl{
		seasonalService: seasonalService,
	}
}

// Create implements SeasonalHandler.
func (h *seasonalHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req seasonal.SaveSeasonalInfoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.seasonalService.CreateSeasonalInfo(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Seasonal info created", result)
}

// Get implements SeasonalHandler.
func (h *seasonalHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.seasonalService.GetSeasonalInfo(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements SeasonalHandler.
func (h *seasonalHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.seasonalService.ListSeasonalInfos(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements SeasonalHandler.
func (h *seasonalHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req seasonal.SaveSeasonalInfoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.seasonalService.UpdateSeasonalInfo(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Seasonal info updated", result)
}

// Delete implements SeasonalHandler.
func (h *seasonalHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.seasonalService.DeleteSeasonalInfo(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Seasonal info deleted", nil)
}
