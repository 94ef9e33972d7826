package repositories

import (
	"context"
	"errors"

	"companion/internal/models/db_models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EventRepository interface {
	Insert(ctx context.Context, event *db_models.Event) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Event, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.Event, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Insert(ctx context.Context, event *db_models.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *eventRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Event, error) {
	var event db_models.Event
	err := r.db.WithContext(ctx).First(&event, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &event, nil
}

func (r *eventRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.Event, error) {
	var events []db_models.Event
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("start ASC").
		Find(&events).Error
	return events, err
}

func (r *eventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&db_models.Event{}, "id = ?", id).Error
}
