package services

import (
	"context"
	"fmt"

	"companion/internal/models/db_models"
	"companion/internal/repositories"
	"companion/pkg/sms"
	"companion/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	alertBodyTemplate = "Emergency Alert from Elderly Companion: %s has pressed their SOS button. Please contact them immediately."
	loveBodyTemplate  = "A quick message from Elderly Companion: %s is thinking of you!"
)

// AlertResult reports whether the SMS leg actually ran. The alert row is
// written either way; the log is the system of record, not the SMS receipt.
type AlertResult struct {
	Sent bool
}

type AlertServiceInterface interface {
	TriggerAlert(ctx context.Context, accountID uuid.UUID) (AlertResult, error)
	SendLove(ctx context.Context, accountID uuid.UUID) error
	AlertHistory(ctx context.Context, accountID uuid.UUID) ([]db_models.Alert, error)
}

type AlertService struct {
	accountRepo repositories.AccountRepository
	alertRepo   repositories.AlertRepository
	sender      sms.Sender
	logger      *zap.SugaredLogger
}

func NewAlertService(
	accountRepo repositories.AccountRepository,
	alertRepo repositories.AlertRepository,
	sender sms.Sender,
	logger *zap.SugaredLogger,
) AlertServiceInterface {
	return &AlertService{
		accountRepo: accountRepo,
		alertRepo:   alertRepo,
		sender:      sender,
		logger:      logger,
	}
}

func (s *AlertService) TriggerAlert(ctx context.Context, accountID uuid.UUID) (AlertResult, error) {
	account, err := s.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return AlertResult{}, utils.ErrDatabaseError
	}
	if account == nil {
		return AlertResult{}, utils.ErrAccountNotFound
	}

	// The audit row is written before any SMS attempt so every trigger is
	// recorded even when delivery cannot happen.
	alert := &db_models.Alert{
		AccountID: account.ID,
		UserName:  account.Name,
		UserEmail: account.Email,
		Message:   db_models.DefaultAlertMessage,
	}
	if err := s.alertRepo.Insert(ctx, alert); err != nil {
		return AlertResult{}, utils.ErrDatabaseError
	}

	if account.ContactNumber == "" {
		s.logger.Infow("SOS triggered without a contact number", "account", account.ID)
		return AlertResult{Sent: false}, nil
	}

	body := fmt.Sprintf(alertBodyTemplate, account.Name)
	if err := s.sender.SendMessage(account.ContactNumber, body); err != nil {
		s.logger.Errorw("alert SMS failed, alert row kept", "account", account.ID, "error", err)
		return AlertResult{}, utils.ErrNotificationFailed
	}

	return AlertResult{Sent: true}, nil
}

// AlertHistory returns the account's SOS log, newest first.
func (s *AlertService) AlertHistory(ctx context.Context, accountID uuid.UUID) ([]db_models.Alert, error) {
	alerts, err := s.alertRepo.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if alerts == nil {
		alerts = []db_models.Alert{}
	}
	return alerts, nil
}

// SendLove sends the affectionate message only; unlike TriggerAlert it
// persists nothing, since it is not safety-critical.
func (s *AlertService) SendLove(ctx context.Context, accountID uuid.UUID) error {
	account, err := s.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if account == nil {
		return utils.ErrAccountNotFound
	}

	if account.ContactNumber == "" {
		return utils.ErrNoContactNumber
	}

	body := fmt.Sprintf(loveBodyTemplate, account.Name)
	if err := s.sender.SendMessage(account.ContactNumber, body); err != nil {
		s.logger.Errorw("send-love SMS failed", "account", account.ID, "error", err)
		return utils.ErrNotificationFailed
	}

	return nil
}
