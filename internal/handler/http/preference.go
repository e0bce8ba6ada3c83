package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shiftnavi/shiftnavi-backend-go/internal/domain/preference"
	"github.com/shiftnavi/shiftnavi-backend-go/internal/handler/http/response"
)

type PreferenceHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	ListByPeriod(w http.ResponseWriter, r *http.Request)
	SubmissionStatus(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type preferenceHandlerImpl struct {
	preferenceService preference.PreferenceService
}

func NewPreferenceHandler(preferenceService preference.PreferenceService) PreferenceHandler {
	return &preferenceHandlerImpl{
		preferenceService: preferenceService,
	}
}

// Submit implements PreferenceHandler.
func (h *preferenceHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	var req preference.SubmitPreferenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.preferenceService.SubmitPreference(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Preference submitted", result)
}

// Get implements PreferenceHandler.
func (h *preferenceHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	year, month := parseYearMonth(r)

	result, err := h.preferenceService.GetPreference(r.Context(), chi.URLParam(r, "employeeID"), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListByPeriod implements PreferenceHandler.
func (h *preferenceHandlerImpl) ListByPeriod(w http.ResponseWriter, r *http.Request) {
	year, month := parseYearMonth(r)

	result, err := h.preferenceService.ListPreferencesByPeriod(r.Context(), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// SubmissionStatus implements PreferenceHandler.
func (h *preferenceHandlerImpl) SubmissionStatus(w http.ResponseWriter, r *http.Request) {
	year, month := parseYearMonth(r)

	result, err := h.preferenceService.GetSubmissionStatus(r.Context(), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Delete implements PreferenceHandler.
func (h *preferenceHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.preferenceService.DeletePreference(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Preference deleted", nil)
}
