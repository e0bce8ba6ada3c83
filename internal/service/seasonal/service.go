package seasonal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shiftnavi/shiftnavi-backend-go/internal/domain/seasonal"
)

type SeasonalServiceImpl struct {
	seasonal.SeasonalRepository
}

func NewSeasonalService(repo seasonal.SeasonalRepository) seasonal.SeasonalService {
	return &SeasonalServiceImpl{SeasonalRepository: repo}
}

// CreateSeasonalInfo implements seasonal.SeasonalService.
func (s *SeasonalServiceImpl) CreateSeasonalInfo(ctx context.Context, req seasonal.SaveSeasonalInfoRequest) (seasonal.SeasonalInfoResponse, error) {
	if err := req.Validate(); err != nil {
		return seasonal.SeasonalInfoResponse{}, err
	}

	created, err := s.SeasonalRepository.Create(ctx, seasonal.SeasonalInfo{
		Type:     seasonal.InfoType(req.Type),
		Name:     req.Name,
		Progress: req.Progress,
		Areas:    mapAreasToEntity(req.Areas),
	})
	if err != nil {
		return seasonal.SeasonalInfoResponse{}, fmt.Errorf("failed to create seasonal info: %w", err)
	}

	return MapSeasonalInfoToResponse(created), nil
}

// GetSeasonalInfo implements seasonal.SeasonalService.
func (s *SeasonalServiceImpl) GetSeasonalInfo(ctx context.Context, id string) (seasonal.SeasonalInfoResponse, error) {
	info, err := s.SeasonalRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, seasonal.ErrSeasonalInfoNotFound) {
			return seasonal.SeasonalInfoResponse{}, seasonal.ErrSeasonalInfoNotFound
		}
		return seasonal.SeasonalInfoResponse{}, fmt.Errorf("failed to get seasonal info: %w", err)
	}
	return MapSeasonalInfoToResponse(info), nil
}

// ListSeasonalInfos implements seasonal.SeasonalService.
func (s *SeasonalServiceImpl) ListSeasonalInfos(ctx context.Context) ([]seasonal.SeasonalInfoResponse, error) {
	infos, err := s.SeasonalRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list seasonal infos: %w", err)
	}

	responses := make([]seasonal.SeasonalInfoResponse, 0, len(infos))
	for _, info := range infos {
		responses = append(responses, MapSeasonalInfoToResponse(info))
	}
	return responses, nil
}

// UpdateSeasonalInfo implements seasonal.SeasonalService. Areas replace the
// stored set wholesale.
func (s *SeasonalServiceImpl) UpdateSeasonalInfo(ctx context.Context, req seasonal.SaveSeasonalInfoRequest) (seasonal.SeasonalInfoResponse, error) {
	if err := req.Validate(); err != nil {
		return seasonal.SeasonalInfoResponse{}, err
	}

	info, err := s.SeasonalRepository.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, seasonal.ErrSeasonalInfoNotFound) {
			return seasonal.SeasonalInfoResponse{}, seasonal.ErrSeasonalInfoNotFound
		}
		return seasonal.SeasonalInfoResponse{}, fmt.Errorf("failed to get seasonal info: %w", err)
	}

	info.Type = seasonal.InfoType(req.Type)
	info.Name = req.Name
	info.Progress = req.Progress
	info.Areas = mapAreasToEntity(req.Areas)

	if err := s.SeasonalRepository.Update(ctx, info); err != nil {
		return seasonal.SeasonalInfoResponse{}, fmt.Errorf("failed to update seasonal info: %w", err)
	}

	return MapSeasonalInfoToResponse(info), nil
}

// DeleteSeasonalInfo implements seasonal.SeasonalService.
func (s *SeasonalServiceImpl) DeleteSeasonalInfo(ctx context.Context, id string) error {
	if err := s.SeasonalRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, seasonal.ErrSeasonalInfoNotFound) {
			return seasonal.ErrSeasonalInfoNotFound
		}
		return fmt.Errorf("failed to delete seasonal info: %w", err)
	}
	return nil
}

func mapAreasToEntity(inputs []seasonal.AreaInput) []seasonal.Area {
	areas := make([]seasonal.Area, 0, len(inputs))
	for _, in := range inputs {
		area := seasonal.Area{
			Name:   in.Name,
			Status: in.Status,
		}
		if in.ViewingStart != nil {
			if t, err := time.ParseInLocation("2006-01-02", *in.ViewingStart, time.Local); err == nil {
				area.ViewingStart = &t
			}
		}
		if in.ViewingEnd != nil {
			if t, err := time.ParseInLocation("2006-01-02", *in.ViewingEnd, time.Local); err == nil {
				area.ViewingEnd = &t
			}
		}
		areas = append(areas, area)
	}
	return areas
}

// MapAreaToResponse is shared with the dashboard aggregation.
func MapAreaToResponse(area seasonal.Area) seasonal.AreaResponse {
	resp := seasonal.AreaResponse{
		Name:   area.Name,
		Status: area.Status,
	}
	if area.ViewingStart != nil {
		formatted := area.ViewingStart.Format("2006-01-02")
		resp.ViewingStart = &formatted
	}
	if area.ViewingEnd != nil {
		formatted := area.ViewingEnd.Format("2006-01-02")
		resp.ViewingEnd = &formatted
	}
	return resp
}

func MapSeasonalInfoToResponse(info seasonal.SeasonalInfo) seasonal.SeasonalInfoResponse {
	areas := make([]seasonal.AreaResponse, 0, len(info.Areas))
	for _, area := range info.Areas {
		areas = append(areas, MapAreaToResponse(area))
	}

	return seasonal.SeasonalInfoResponse{
		ID:        info.ID,
		Type:      string(info.Type),
		Name:      info.Name,
		Progress:  info.Progress,
		Areas:     areas,
		UpdatedAt: info.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
