package services

import (
	"context"

	"companion/internal/models/db_models"
	"companion/internal/models/request_models"
	"companion/internal/repositories"
	"companion/pkg/utils"

	"github.com/google/uuid"
)

// NotificationService only registers browser push subscriptions.
// Delivery is handled out-of-process; there is no send path here.
type NotificationServiceInterface interface {
	Subscribe(ctx context.Context, accountID uuid.UUID, request request_models.SubscribeRequest) error
}

type NotificationService struct {
	subscriptionRepo repositories.SubscriptionRepository
}

func NewNotificationService(subscriptionRepo repositories.SubscriptionRepository) NotificationServiceInterface {
	return &NotificationService{subscriptionRepo: subscriptionRepo}
}

func (s *NotificationService) Subscribe(ctx context.Context, accountID uuid.UUID, request request_models.SubscribeRequest) error {
	sub := &db_models.PushSubscription{
		AccountID: accountID,
		Endpoint:  request.Endpoint,
		P256dhKey: request.Keys.P256dh,
		AuthKey:   request.Keys.Auth,
	}

	if err := s.subscriptionRepo.Upsert(ctx, sub); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}
