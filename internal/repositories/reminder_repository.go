package repositories

import (
	"context"
	"errors"

	"companion/internal/models/db_models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReminderRepository interface {
	Insert(ctx context.Context, reminder *db_models.Reminder) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Reminder, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.Reminder, error)
	Save(ctx context.Context, reminder *db_models.Reminder) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type reminderRepository struct {
	db *gorm.DB
}

func NewReminderRepository(db *gorm.DB) ReminderRepository {
	return &reminderRepository{db: db}
}

func (r *reminderRepository) Insert(ctx context.Context, reminder *db_models.Reminder) error {
	return r.db.WithContext(ctx).Create(reminder).Error
}

func (r *reminderRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Reminder, error) {
	var reminder db_models.Reminder
	err := r.db.WithContext(ctx).First(&reminder, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &reminder, nil
}

func (r *reminderRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.Reminder, error) {
	var reminders []db_models.Reminder
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&reminders).Error
	return reminders, err
}

func (r *reminderRepository) Save(ctx context.Context, reminder *db_models.Reminder) error {
	return r.db.WithContext(ctx).Save(reminder).Error
}

func (r *reminderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&db_models.Reminder{}, "id = ?", id).Error
}
