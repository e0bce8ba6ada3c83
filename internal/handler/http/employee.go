package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shiftnavi/shiftnavi-backend-go/internal/domain/employee"
	"github.com/shiftnavi/shiftnavi-backend-go/internal/handler/http/response"
)

type EmployeeHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &employeeHandlerImpl{
		employeeService: employeeService,
	}
}

// Create implements EmployeeHandler.
func (h *employeeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.employeeService.CreateEmployee(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee created", result)
}

// Get implements EmployeeHandler.
func (h *employeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.employeeService.GetEmployee(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements EmployeeHandler.
func (h *employeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var filter employee.EmployeeFilter
	if role := r.URL.Query().Get("role"); role != "" {
		filter.Role = &role
	}
	if name := r.URL.Query().Get("name"); name != "" {
		filter.Name = &name
	}

	result, err := h.employeeService.ListEmployees(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements EmployeeHandler.
func (h *employeeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req employee.UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.employeeService.UpdateEmployee(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee updated", result)
}

// Delete implements EmployeeHandler.
func (h *employeeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.employeeService.DeleteEmployee(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee deleted", nil)
}
