package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/shiftnavi/shiftnavi-backend-go/internal/domain/employee"
	"github.com/shiftnavi/shiftnavi-backend-go/internal/domain/store"
)

type StoreServiceImpl struct {
	store.StoreRepository
}

func NewStoreService(repo store.StoreRepository) store.StoreService {
	return &StoreServiceImpl{StoreRepository: repo}
}

// CreateStore implements store.StoreService.
func (s *StoreServiceImpl) CreateStore(ctx context.Context, req store.CreateStoreRequest) (store.StoreResponse, error) {
	if err := req.Validate(); err != nil {
		return store.StoreResponse{}, err
	}

	created, err := s.StoreRepository.Create(ctx, store.Store{
		Name:         req.Name,
		Address:      req.Address,
		Phone:        req.Phone,
		Requirements: mapRequirementsToEntity(req.Requirements),
	})
	if err != nil {
		return store.StoreResponse{}, fmt.Errorf("failed to create store: %w", err)
	}

	return mapStoreToResponse(created), nil
}

// GetStore implements store.StoreService.
func (s *StoreServiceImpl) GetStore(ctx context.Context, id string) (store.StoreResponse, error) {
	st, err := s.StoreRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrStoreNotFound) {
			return store.StoreResponse{}, store.ErrStoreNotFound
		}
		return store.StoreResponse{}, fmt.Errorf("failed to get store: %w", err)
	}
	return mapStoreToResponse(st), nil
}

// ListStores implements store.StoreService.
func (s *StoreServiceImpl) ListStores(ctx context.Context) ([]store.StoreResponse, error) {
	stores, err := s.StoreRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list stores: %w", err)
	}

	responses := make([]store.StoreResponse, 0, len(stores))
	for _, st := range stores {
		responses = append(responses, mapStoreToResponse(st))
	}
	return responses, nil
}

// UpdateStore implements store.StoreService. Requirements replace the whole
// set when provided, they are never merged entry by entry.
func (s *StoreServiceImpl) UpdateStore(ctx context.Context, req store.UpdateStoreRequest) (store.StoreResponse, error) {
	if err := req.Validate(); err != nil {
		return store.StoreResponse{}, err
	}

	st, err := s.StoreRepository.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, store.ErrStoreNotFound) {
			return store.StoreResponse{}, store.ErrStoreNotFound
		}
		return store.StoreResponse{}, fmt.Errorf("failed to get store: %w", err)
	}

	if req.Name != nil {
		st.Name = *req.Name
	}
	if req.Address != nil {
		st.Address = *req.Address
	}
	if req.Phone != nil {
		st.Phone = *req.Phone
	}
	if req.Requirements != nil {
		st.Requirements = mapRequirementsToEntity(*req.Requirements)
	}

	if err := s.StoreRepository.Update(ctx, st); err != nil {
		return store.StoreResponse{}, fmt.Errorf("failed to update store: %w", err)
	}

	return mapStoreToResponse(st), nil
}

// DeleteStore implements store.StoreService.
func (s *StoreServiceImpl) DeleteStore(ctx context.Context, id string) error {
	if err := s.StoreRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrStoreNotFound) {
			return store.ErrStoreNotFound
		}
		return fmt.Errorf("failed to delete store: %w", err)
	}
	return nil
}

func mapRequirementsToEntity(inputs []store.SkillRequirementInput) []store.SkillRequirement {
	reqs := make([]store.SkillRequirement, 0, len(inputs))
	for _, in := range inputs {
		required := make(map[employee.SkillType]map[employee.SkillLevel]int, len(in.Required))
		for skillType, levels := range in.Required {
			byLevel := make(map[employee.SkillLevel]int, len(levels))
			for level, count := range levels {
				byLevel[employee.SkillLevel(level)] = count
			}
			required[employee.SkillType(skillType)] = byLevel
		}
		reqs = append(reqs, store.SkillRequirement{
			DayCategory: store.DayCategory(in.DayCategory),
			Required:    required,
		})
	}
	return reqs
}

func mapStoreToResponse(st store.Store) store.StoreResponse {
	reqs := make([]store.SkillRequirementInput, 0, len(st.Requirements))
	for _, req := range st.Requirements {
		required := make(map[string]map[string]int, len(req.Required))
		for skillType, levels := range req.Required {
			byLevel := make(map[string]int, len(levels))
			for level, count := range levels {
				byLevel[string(level)] = count
			}
			required[string(skillType)] = byLevel
		}
		reqs = append(reqs, store.SkillRequirementInput{
			DayCategory: string(req.DayCategory),
			Required:    required,
		})
	}

	return store.StoreResponse{
		ID:           st.ID,
		Name:         st.Name,
		Address:      st.Address,
		Phone:        st.Phone,
		Requirements: reqs,
		CreatedAt:    st.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:    st.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
