package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shiftnavi/shiftnavi-backend-go/internal/domain/shift"
	"github.com/shiftnavi/shiftnavi-backend-go/internal/handler/http/response"
)

type ShiftHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	CreateBatch(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Complete(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type shiftHandlerImpl struct {
	shiftService shift.ShiftService
}

func NewShiftHandler(shiftService shift.ShiftService) ShiftHandler {
	return &shiftHandlerImpl{
		shiftService: shiftService,
	}
}

func shiftFilterFromQuery(r *http.Request) shift.ShiftFilter {
	var filter shift.ShiftFilter
	if employeeID := r.URL.Query().Get("employee_id"); employeeID != "" {
		filter.EmployeeID = &employeeID
	}
	if storeID := r.URL.Query().Get("store_id"); storeID != "" {
		filter.StoreID = &storeID
	}
	if status := r.URL.Query().Get("status"); status != "" {
		filter.Status = &status
	}
	return filter
}

// Create implements ShiftHandler.
func (h *shiftHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req shift.CreateShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.shiftService.CreateShift(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Shift created", result)
}

// CreateBatch implements ShiftHandler.
func (h *shiftHandlerImpl) CreateBatch(w http.ResponseWriter, r *http.Request) {
	var req shift.BatchCreateShiftsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.shiftService.CreateShifts(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Shifts created", result)
}

// Get implements ShiftHandler.
func (h *shiftHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.shiftService.GetShift(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements ShiftHandler. With from/to query params it lists an
// arbitrary range; otherwise it falls back to year/month.
func (h *shiftHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := shiftFilterFromQuery(r)

	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	if from != "" || to != "" {
		result, err := h.shiftService.ListShiftsByRange(r.Context(), from, to, filter)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		response.Success(w, result)
		return
	}

	year, month := parseYearMonth(r)
	result, err := h.shiftService.ListShiftsByMonth(r.Context(), year, month, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Complete implements ShiftHandler.
func (h *shiftHandlerImpl) Complete(w http.ResponseWriter, r *http.Request) {
	result, err := h.shiftService.CompleteShift(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift completed", result)
}

// Delete implements ShiftHandler.
func (h *shiftHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.shiftService.DeleteShift(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift deleted", nil)
}
