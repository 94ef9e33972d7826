package account_fx

import (
	"companion/internal/repositories"
	"companion/internal/services"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Provide(
	provideAccountRepo, provideAccountService)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(accountRepo repositories.AccountRepository, logger *zap.SugaredLogger) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, logger)
}
