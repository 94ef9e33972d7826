package notification_fx

import (
	"companion/internal/repositories"
	"companion/internal/services"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Provide(
	provideSubscriptionRepo, provideNotificationService)

func provideSubscriptionRepo(db *gorm.DB) repositories.SubscriptionRepository {
	return repositories.NewSubscriptionRepository(db)
}

func provideNotificationService(subscriptionRepo repositories.SubscriptionRepository) services.NotificationServiceInterface {
	return services.NewNotificationService(subscriptionRepo)
}
