package services

import (
	"context"
	"testing"

	"companion/internal/models/request_models"
	"companion/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newAccountService(repo *fakeAccountRepo) AccountServiceInterface {
	return NewAccountService(repo, zap.NewNop().Sugar())
}

func TestRegisterElderlyReturnsValidToken(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := newAccountService(repo)

	token, err := svc.Register(context.Background(), request_models.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@x.com",
		Password: "secret1",
		Role:     "elderly",
	})

	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := utils.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "elderly", claims.Role)
	assert.Empty(t, claims.PrimaryUserID)

	created := repo.byEmail["alice@x.com"]
	require.NotNil(t, created)
	assert.Equal(t, claims.UserID, created.ID.String())
	assert.NotEqual(t, "secret1", created.PasswordHash, "password must be stored hashed")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	existing := elderlyAccount("")
	svc := newAccountService(newFakeAccountRepo(existing))

	_, err := svc.Register(context.Background(), request_models.RegisterRequest{
		Name:     "Other",
		Email:    existing.Email,
		Password: "secret1",
	})

	assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)
}

func TestRegisterFamilyRequiresPrimaryEmail(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := newAccountService(repo)

	_, err := svc.Register(context.Background(), request_models.RegisterRequest{
		Name:     "Bob",
		Email:    "bob@x.com",
		Password: "secret1",
		Role:     "family",
	})

	assert.ErrorIs(t, err, utils.ErrPrimaryEmailRequired)
	assert.Nil(t, repo.byEmail["bob@x.com"], "no account is created on failure")
}

func TestRegisterFamilyWithUnknownPrimary(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := newAccountService(repo)

	_, err := svc.Register(context.Background(), request_models.RegisterRequest{
		Name:             "Bob",
		Email:            "bob@x.com",
		Password:         "secret1",
		Role:             "family",
		PrimaryUserEmail: "missing@x.com",
	})

	assert.ErrorIs(t, err, utils.ErrPrimaryAccountNotFound)
	assert.Nil(t, repo.byEmail["bob@x.com"], "no account is created on failure")
}

func TestRegisterFamilyLinksPrimary(t *testing.T) {
	primary := elderlyAccount("")
	repo := newFakeAccountRepo(primary)
	svc := newAccountService(repo)

	token, err := svc.Register(context.Background(), request_models.RegisterRequest{
		Name:             "Bob",
		Email:            "bob@x.com",
		Password:         "secret1",
		Role:             "family",
		PrimaryUserEmail: primary.Email,
	})

	require.NoError(t, err)

	claims, err := utils.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "family", claims.Role)
	assert.Equal(t, primary.ID.String(), claims.PrimaryUserID)

	created := repo.byEmail["bob@x.com"]
	require.NotNil(t, created)
	require.NotNil(t, created.PrimaryAccountID)
	assert.Equal(t, primary.ID, *created.PrimaryAccountID)
}

func TestLoginRoundTrip(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := newAccountService(repo)

	_, err := svc.Register(context.Background(), request_models.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@x.com",
		Password: "secret1",
	})
	require.NoError(t, err)

	token, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "alice@x.com",
		Password: "secret1",
	})
	require.NoError(t, err)

	claims, err := utils.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, repo.byEmail["alice@x.com"].ID.String(), claims.UserID)
	assert.Equal(t, "elderly", claims.Role)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := newAccountService(repo)

	_, err := svc.Register(context.Background(), request_models.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@x.com",
		Password: "secret1",
	})
	require.NoError(t, err)

	_, unknownEmailErr := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "nobody@x.com",
		Password: "secret1",
	})
	_, wrongPasswordErr := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "alice@x.com",
		Password: "wrong",
	})

	assert.ErrorIs(t, unknownEmailErr, utils.ErrInvalidCredentials)
	assert.ErrorIs(t, wrongPasswordErr, utils.ErrInvalidCredentials)
	assert.Equal(t, unknownEmailErr, wrongPasswordErr, "unknown email and wrong password must be identical")
}
