package alert_fx

import (
	"os"

	"companion/internal/repositories"
	"companion/internal/services"
	"companion/pkg/sms"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Provide(
	provideAlertRepo, provideSMSSender, provideAlertService)

func provideAlertRepo(db *gorm.DB) repositories.AlertRepository {
	return repositories.NewAlertRepository(db)
}

func provideSMSSender() sms.Sender {
	return sms.NewClient(sms.Config{
		AccountSid: os.Getenv("TWILIO_ACCOUNT_SID"),
		AuthToken:  os.Getenv("TWILIO_AUTH_TOKEN"),
		FromNumber: os.Getenv("TWILIO_PHONE_NUMBER"),
	})
}

func provideAlertService(
	accountRepo repositories.AccountRepository,
	alertRepo repositories.AlertRepository,
	sender sms.Sender,
	logger *zap.SugaredLogger,
) services.AlertServiceInterface {
	return services.NewAlertService(accountRepo, alertRepo, sender, logger)
}
