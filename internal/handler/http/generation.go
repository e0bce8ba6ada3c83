package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shiftnavi/shiftnavi-backend-go/internal/domain/generation"
	"github.com/shiftnavi/shiftnavi-backend-go/internal/handler/http/response"
)

type GenerationHandler interface {
	Generate(w http.ResponseWriter, r *http.Request)
	BuildPackage(w http.ResponseWriter, r *http.Request)
	CreateConstraint(w http.ResponseWriter, r *http.Request)
	ListConstraints(w http.ResponseWriter, r *http.Request)
	DeleteConstraint(w http.ResponseWriter, r *http.Request)
}

type generationHandlerImpl struct {
	generationService generation.GenerationService
}

func NewGenerationHandler(generationService generation.GenerationService) GenerationHandler {
	return &generationHandlerImpl{
		generationService: generationService,
	}
}

// Generate implements GenerationHandler.
func (h *generationHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	var req generation.GenerateScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.generationService.GenerateSchedule(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Schedule generated", result)
}

// BuildPackage implements GenerationHandler. Dry-run endpoint: returns the
// constraint package without calling the generator.
func (h *generationHandlerImpl) BuildPackage(w http.ResponseWriter, r *http.Request) {
	var req generation.GenerateScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.generationService.BuildPackage(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// CreateConstraint implements GenerationHandler.
func (h *generationHandlerImpl) CreateConstraint(w http.ResponseWriter, r *http.Request) {
	var req generation.CreateConstraintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.generationService.CreateConstraint(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Constraint created", result)
}

// ListConstraints implements GenerationHandler.
func (h *generationHandlerImpl) ListConstraints(w http.ResponseWriter, r *http.Request) {
	result, err := h.generationService.ListConstraints(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DeleteConstraint implements GenerationHandler.
func (h *generationHandlerImpl) DeleteConstraint(w http.ResponseWriter, r *http.Request) {
	if err := h.generationService.DeleteConstraint(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Constraint deleted", nil)
}
