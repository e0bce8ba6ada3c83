package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shiftnavi/shiftnavi-backend-go/internal/domain/event"
	"github.com/shiftnavi/shiftnavi-backend-go/internal/handler/http/response"
)

type EventHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type eventHandlerImpl struct {
	eventService event.EventService
}

func NewEventHandler(eventService event.EventService) EventHandler {
	return &eventHandlerImpl{
		eventService: eventService,
	}
}

// Create implements EventHandler.
func (h *eventHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req event.CreateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.eventService.CreateEvent(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Event created", result)
}

// Get implements EventHandler.
func (h *eventHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.eventService.GetEvent(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements EventHandler. With from/to query params only events
// overlapping that range are returned.
func (h *eventHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")

	if from != "" || to != "" {
		result, err := h.eventService.ListEventsInRange(r.Context(), from, to)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		response.Success(w, result)
		return
	}

	result, err := h.eventService.ListEvents(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements EventHandler.
func (h *eventHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req event.UpdateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.eventService.UpdateEvent(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Event updated", result)
}

// Delete implements EventHandler.
func (h *eventHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.eventService.DeleteEvent(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Event deleted", nil)
}
