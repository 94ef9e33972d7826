package services

import (
	"context"

	"companion/internal/models/db_models"
	"companion/internal/models/request_models"
	"companion/internal/repositories"
	"companion/pkg/utils"

	"go.uber.org/zap"
)

type AccountServiceInterface interface {
	Register(ctx context.Context, request request_models.RegisterRequest) (string, error)
	Login(ctx context.Context, request request_models.LoginRequest) (string, error)
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	logger      *zap.SugaredLogger
}

func NewAccountService(accountRepo repositories.AccountRepository, logger *zap.SugaredLogger) AccountServiceInterface {
	return &AccountService{accountRepo: accountRepo, logger: logger}
}

func (a *AccountService) Register(ctx context.Context, request request_models.RegisterRequest) (string, error) {
	existing, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if existing != nil {
		return "", utils.ErrEmailAlreadyExists
	}

	role := db_models.AccountRole(request.Role)
	if role == "" {
		role = db_models.RoleElderly
	}

	// A family account is only an observer of an elderly account, so the
	// link has to resolve before anything is created.
	account := &db_models.Account{
		Name: request.Name,
		Role: role,
	}
	if role == db_models.RoleFamily {
		if request.PrimaryUserEmail == "" {
			return "", utils.ErrPrimaryEmailRequired
		}

		primary, err := a.accountRepo.FindByEmail(ctx, request.PrimaryUserEmail)
		if err != nil {
			return "", utils.ErrDatabaseError
		}
		if primary == nil {
			return "", utils.ErrPrimaryAccountNotFound
		}
		account.PrimaryAccountID = &primary.ID
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return "", utils.ErrDatabaseError
	}

	account.Email = request.Email
	account.PasswordHash = hashedPassword

	if err := a.accountRepo.Insert(ctx, account); err != nil {
		a.logger.Errorw("failed to create account", "email", request.Email, "error", err)
		return "", utils.ErrDatabaseError
	}

	return utils.CreateToken(account.ID, string(account.Role), account.PrimaryAccountID)
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (string, error) {
	account, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return "", utils.ErrDatabaseError
	}

	// Unknown email and wrong password report the same error so callers
	// cannot probe which addresses are registered.
	if account == nil {
		return "", utils.ErrInvalidCredentials
	}
	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return "", utils.ErrInvalidCredentials
	}

	return utils.CreateToken(account.ID, string(account.Role), account.PrimaryAccountID)
}
