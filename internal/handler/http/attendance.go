package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/shiftnavi/shiftnavi-backend-go/internal/domain/attendance"
	"github.com/shiftnavi/shiftnavi-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	ClockIn(w http.ResponseWriter, r *http.Request)
	StartBreak(w http.ResponseWriter, r *http.Request)
	EndBreak(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	ListByEmployee(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	EmployeeStats(w http.ResponseWriter, r *http.Request)
	StoreStats(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// parseYearMonth reads year/month query params, defaulting to the current month.
func parseYearMonth(r *http.Request) (int, int) {
	now := time.Now()
	year, month := now.Year(), int(now.Month())

	if v := r.URL.Query().Get("year"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			year = parsed
		}
	}
	if v := r.URL.Query().Get("month"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			month = parsed
		}
	}
	return year, month
}

// ClockIn implements AttendanceHandler.
func (h *attendanceHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	var req attendance.ClockInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.ClockIn(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Clock in successful", result)
}

// StartBreak implements AttendanceHandler.
func (h *attendanceHandlerImpl) StartBreak(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.StartBreak(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Break started", result)
}

// EndBreak implements AttendanceHandler.
func (h *attendanceHandlerImpl) EndBreak(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.EndBreak(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Break ended", result)
}

// ClockOut implements AttendanceHandler.
func (h *attendanceHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.ClockOut(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Clock out successful", result)
}

// Get implements AttendanceHandler.
func (h *attendanceHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.GetAttendance(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListByEmployee implements AttendanceHandler.
func (h *attendanceHandlerImpl) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	year, month := parseYearMonth(r)

	result, err := h.attendanceService.ListByEmployeeMonth(r.Context(), chi.URLParam(r, "employeeID"), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements AttendanceHandler.
func (h *attendanceHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req attendance.UpdateAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.attendanceService.UpdateAttendance(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance updated", result)
}

// Delete implements AttendanceHandler.
func (h *attendanceHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.attendanceService.DeleteAttendance(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance deleted", nil)
}

// EmployeeStats implements AttendanceHandler.
func (h *attendanceHandlerImpl) EmployeeStats(w http.ResponseWriter, r *http.Request) {
	year, month := parseYearMonth(r)

	result, err := h.attendanceService.GetEmployeeMonthlyStats(r.Context(), chi.URLParam(r, "employeeID"), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// StoreStats implements AttendanceHandler.
func (h *attendanceHandlerImpl) StoreStats(w http.ResponseWriter, r *http.Request) {
	year, month := parseYearMonth(r)

	result, err := h.attendanceService.GetStoreMonthlyStats(r.Context(), chi.URLParam(r, "storeID"), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
