package event

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shiftnavi/shiftnavi-backend-go/internal/domain/event"
	"github.com/shiftnavi/shiftnavi-backend-go/internal/pkg/timeutil"
	"github.com/shiftnavi/shiftnavi-backend-go/internal/pkg/validator"
)

type EventServiceImpl struct {
	event.EventRepository
}

func NewEventService(repo event.EventRepository) event.EventService {
	return &EventServiceImpl{EventRepository: repo}
}

// CreateEvent implements event.EventService.
func (s *EventServiceImpl) CreateEvent(ctx context.Context, req event.CreateEventRequest) (event.EventResponse, error) {
	if err := req.Validate(); err != nil {
		return event.EventResponse{}, err
	}

	start, _ := time.ParseInLocation("2006-01-02", req.StartDate, time.Local)
	end, _ := time.ParseInLocation("2006-01-02", req.EndDate, time.Local)

	created, err := s.EventRepository.Create(ctx, event.Event{
		Name:               req.Name,
		StartDate:          start,
		EndDate:            end,
		StoreIDs:           req.StoreIDs,
		CustomerPrediction: req.CustomerPrediction,
	})
	if err != nil {
		return event.EventResponse{}, fmt.Errorf("failed to create event: %w", err)
	}

	return MapEventToResponse(created), nil
}

// GetEvent implements event.EventService.
func (s *EventServiceImpl) GetEvent(ctx context.Context, id string) (event.EventResponse, error) {
	ev, err := s.EventRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, event.ErrEventNotFound) {
			return event.EventResponse{}, event.ErrEventNotFound
		}
		return event.EventResponse{}, fmt.Errorf("failed to get event: %w", err)
	}
	return MapEventToResponse(ev), nil
}

// ListEvents implements event.EventService.
func (s *EventServiceImpl) ListEvents(ctx context.Context) ([]event.EventResponse, error) {
	events, err := s.EventRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return mapEventsToResponses(events), nil
}

// ListEventsInRange implements event.EventService.
func (s *EventServiceImpl) ListEventsInRange(ctx context.Context, from, to string) ([]event.EventResponse, error) {
	var errs validator.ValidationErrors
	if _, ok := validator.IsValidDate(from); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "from",
			Message: "from must be in YYYY-MM-DD format",
		})
	}
	if _, ok := validator.IsValidDate(to); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "to",
			Message: "to must be in YYYY-MM-DD format",
		})
	}
	if len(errs) > 0 {
		return nil, errs
	}

	start, _ := time.ParseInLocation("2006-01-02", from, time.Local)
	end, _ := time.ParseInLocation("2006-01-02", to, time.Local)
	events, err := s.EventRepository.ListOverlapping(ctx, start, timeutil.EndOfDay(end))
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return mapEventsToResponses(events), nil
}

// UpdateEvent implements event.EventService.
func (s *EventServiceImpl) UpdateEvent(ctx context.Context, req event.UpdateEventRequest) (event.EventResponse, error) {
	if err := req.Validate(); err != nil {
		return event.EventResponse{}, err
	}

	ev, err := s.EventRepository.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, event.ErrEventNotFound) {
			return event.EventResponse{}, event.ErrEventNotFound
		}
		return event.EventResponse{}, fmt.Errorf("failed to get event: %w", err)
	}

	if req.Name != nil {
		ev.Name = *req.Name
	}
	if req.StartDate != nil {
		start, _ := time.ParseInLocation("2006-01-02", *req.StartDate, time.Local)
		ev.StartDate = start
	}
	if req.EndDate != nil {
		end, _ := time.ParseInLocation("2006-01-02", *req.EndDate, time.Local)
		ev.EndDate = end
	}
	if req.StoreIDs != nil {
		ev.StoreIDs = *req.StoreIDs
	}
	if req.CustomerPrediction != nil {
		ev.CustomerPrediction = *req.CustomerPrediction
	}

	if ev.EndDate.Before(ev.StartDate) {
		return event.EventResponse{}, validator.ValidationErrors{{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		}}
	}

	if err := s.EventRepository.Update(ctx, ev); err != nil {
		return event.EventResponse{}, fmt.Errorf("failed to update event: %w", err)
	}

	return MapEventToResponse(ev), nil
}

// DeleteEvent implements event.EventService.
func (s *EventServiceImpl) DeleteEvent(ctx context.Context, id string) error {
	if err := s.EventRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, event.ErrEventNotFound) {
			return event.ErrEventNotFound
		}
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return nil
}

func mapEventsToResponses(events []event.Event) []event.EventResponse {
	responses := make([]event.EventResponse, 0, len(events))
	for _, ev := range events {
		responses = append(responses, MapEventToResponse(ev))
	}
	return responses
}

func MapEventToResponse(ev event.Event) event.EventResponse {
	storeIDs := ev.StoreIDs
	if storeIDs == nil {
		storeIDs = []string{}
	}

	return event.EventResponse{
		ID:                 ev.ID,
		Name:               ev.Name,
		StartDate:          ev.StartDate.Format("2006-01-02"),
		EndDate:            ev.EndDate.Format("2006-01-02"),
		StoreIDs:           storeIDs,
		CustomerPrediction: ev.CustomerPrediction,
		CreatedAt:          ev.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:          ev.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
