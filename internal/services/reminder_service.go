package services

import (
	"context"

	"companion/internal/models/db_models"
	"companion/internal/models/request_models"
	"companion/internal/repositories"
	"companion/pkg/utils"

	"github.com/google/uuid"
)

type ReminderServiceInterface interface {
	AddReminder(ctx context.Context, accountID uuid.UUID, request request_models.ReminderRequest) (*db_models.Reminder, error)
	ListReminders(ctx context.Context, accountID uuid.UUID) ([]db_models.Reminder, error)
	ToggleReminder(ctx context.Context, accountID, reminderID uuid.UUID) (*db_models.Reminder, error)
	DeleteReminder(ctx context.Context, accountID, reminderID uuid.UUID) error
}

type ReminderService struct {
	reminderRepo repositories.ReminderRepository
}

func NewReminderService(reminderRepo repositories.ReminderRepository) ReminderServiceInterface {
	return &ReminderService{reminderRepo: reminderRepo}
}

func (s *ReminderService) AddReminder(ctx context.Context, accountID uuid.UUID, request request_models.ReminderRequest) (*db_models.Reminder, error) {
	reminder := &db_models.Reminder{
		AccountID:    accountID,
		MedicineName: request.MedicineName,
		Dosage:       request.Dosage,
		Time:         request.Time,
	}

	if err := s.reminderRepo.Insert(ctx, reminder); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return reminder, nil
}

func (s *ReminderService) ListReminders(ctx context.Context, accountID uuid.UUID) ([]db_models.Reminder, error) {
	reminders, err := s.reminderRepo.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return reminders, nil
}

func (s *ReminderService) ToggleReminder(ctx context.Context, accountID, reminderID uuid.UUID) (*db_models.Reminder, error) {
	reminder, err := s.reminderRepo.FindByID(ctx, reminderID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if reminder == nil {
		return nil, utils.ErrRecordNotFound
	}
	if reminder.AccountID != accountID {
		return nil, utils.ErrNotOwner
	}

	reminder.IsCompleted = !reminder.IsCompleted
	if err := s.reminderRepo.Save(ctx, reminder); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return reminder, nil
}

func (s *ReminderService) DeleteReminder(ctx context.Context, accountID, reminderID uuid.UUID) error {
	reminder, err := s.reminderRepo.FindByID(ctx, reminderID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if reminder == nil {
		return utils.ErrRecordNotFound
	}
	if reminder.AccountID != accountID {
		return utils.ErrNotOwner
	}

	if err := s.reminderRepo.Delete(ctx, reminderID); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}
