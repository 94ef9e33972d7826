package services

import (
	"context"

	"companion/internal/models/db_models"
	"companion/internal/models/request_models"
	"companion/internal/repositories"
	"companion/pkg/utils"

	"github.com/google/uuid"
)

type EventServiceInterface interface {
	AddEvent(ctx context.Context, accountID uuid.UUID, request request_models.EventRequest) (*db_models.Event, error)
	ListEvents(ctx context.Context, accountID uuid.UUID) ([]db_models.Event, error)
	DeleteEvent(ctx context.Context, accountID, eventID uuid.UUID) error
}

type EventService struct {
	eventRepo repositories.EventRepository
}

func NewEventService(eventRepo repositories.EventRepository) EventServiceInterface {
	return &EventService{eventRepo: eventRepo}
}

func (s *EventService) AddEvent(ctx context.Context, accountID uuid.UUID, request request_models.EventRequest) (*db_models.Event, error) {
	event := &db_models.Event{
		AccountID: accountID,
		Title:     request.Title,
		Start:     request.Start,
		End:       request.End,
	}

	if err := s.eventRepo.Insert(ctx, event); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return event, nil
}

func (s *EventService) ListEvents(ctx context.Context, accountID uuid.UUID) ([]db_models.Event, error) {
	events, err := s.eventRepo.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return events, nil
}

func (s *EventService) DeleteEvent(ctx context.Context, accountID, eventID uuid.UUID) error {
	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if event == nil {
		return utils.ErrRecordNotFound
	}
	if event.AccountID != accountID {
		return utils.ErrNotOwner
	}

	if err := s.eventRepo.Delete(ctx, eventID); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}
