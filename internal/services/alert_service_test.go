package services

import (
	"context"
	"errors"
	"testing"

	"companion/internal/models/db_models"
	"companion/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeAccountRepo struct {
	byID    map[uuid.UUID]*db_models.Account
	byEmail map[string]*db_models.Account
	findErr error
}

func newFakeAccountRepo(accounts ...*db_models.Account) *fakeAccountRepo {
	repo := &fakeAccountRepo{
		byID:    map[uuid.UUID]*db_models.Account{},
		byEmail: map[string]*db_models.Account{},
	}
	for _, a := range accounts {
		repo.byID[a.ID] = a
		repo.byEmail[a.Email] = a
	}
	return repo
}

func (f *fakeAccountRepo) Insert(ctx context.Context, account *db_models.Account) error {
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	f.byID[account.ID] = account
	f.byEmail[account.Email] = account
	return nil
}

func (f *fakeAccountRepo) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Account, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.byID[id], nil
}

func (f *fakeAccountRepo) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.byEmail[email], nil
}

type fakeAlertRepo struct {
	alerts []*db_models.Alert
}

func (f *fakeAlertRepo) Insert(ctx context.Context, alert *db_models.Alert) error {
	f.alerts = append(f.alerts, alert)
	return nil
}

func (f *fakeAlertRepo) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.Alert, error) {
	var out []db_models.Alert
	for _, a := range f.alerts {
		if a.AccountID == accountID {
			out = append(out, *a)
		}
	}
	return out, nil
}

type fakeSender struct {
	sent []string
	err  error
}

func (f *fakeSender) SendMessage(to, body string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, body)
	return nil
}

func elderlyAccount(contactNumber string) *db_models.Account {
	return &db_models.Account{
		BaseModel:     db_models.BaseModel{ID: uuid.New()},
		Name:          "Alice",
		Email:         "alice@x.com",
		Role:          db_models.RoleElderly,
		ContactNumber: contactNumber,
	}
}

func TestTriggerAlertSendsSMSAndPersists(t *testing.T) {
	account := elderlyAccount("+15550001111")
	alertRepo := &fakeAlertRepo{}
	sender := &fakeSender{}
	svc := NewAlertService(newFakeAccountRepo(account), alertRepo, sender, zap.NewNop().Sugar())

	result, err := svc.TriggerAlert(context.Background(), account.ID)

	require.NoError(t, err)
	assert.True(t, result.Sent)
	require.Len(t, alertRepo.alerts, 1)
	assert.Equal(t, account.ID, alertRepo.alerts[0].AccountID)
	assert.Equal(t, "Alice", alertRepo.alerts[0].UserName)
	assert.Equal(t, "alice@x.com", alertRepo.alerts[0].UserEmail)
	assert.Equal(t, db_models.DefaultAlertMessage, alertRepo.alerts[0].Message)
	require.Len(t, sender.sent, 1)
	assert.Contains(t, sender.sent[0], "Alice")
}

func TestTriggerAlertWithoutContactNumberLogsOnly(t *testing.T) {
	account := elderlyAccount("")
	alertRepo := &fakeAlertRepo{}
	sender := &fakeSender{}
	svc := NewAlertService(newFakeAccountRepo(account), alertRepo, sender, zap.NewNop().Sugar())

	result, err := svc.TriggerAlert(context.Background(), account.ID)

	require.NoError(t, err)
	assert.False(t, result.Sent)
	assert.Len(t, alertRepo.alerts, 1, "alert must be recorded even with no contact number")
	assert.Empty(t, sender.sent, "no external call should be attempted")
}

func TestTriggerAlertKeepsRecordWhenSMSFails(t *testing.T) {
	account := elderlyAccount("+15550001111")
	alertRepo := &fakeAlertRepo{}
	sender := &fakeSender{err: errors.New("twilio down")}
	svc := NewAlertService(newFakeAccountRepo(account), alertRepo, sender, zap.NewNop().Sugar())

	_, err := svc.TriggerAlert(context.Background(), account.ID)

	assert.ErrorIs(t, err, utils.ErrNotificationFailed)
	assert.Len(t, alertRepo.alerts, 1, "alert row stays persisted on SMS failure")
}

func TestTriggerAlertUnknownAccount(t *testing.T) {
	svc := NewAlertService(newFakeAccountRepo(), &fakeAlertRepo{}, &fakeSender{}, zap.NewNop().Sugar())

	_, err := svc.TriggerAlert(context.Background(), uuid.New())

	assert.ErrorIs(t, err, utils.ErrAccountNotFound)
}

func TestAlertHistoryListsOwnAlertsOnly(t *testing.T) {
	account := elderlyAccount("")
	alertRepo := &fakeAlertRepo{}
	svc := NewAlertService(newFakeAccountRepo(account), alertRepo, &fakeSender{}, zap.NewNop().Sugar())

	_, err := svc.TriggerAlert(context.Background(), account.ID)
	require.NoError(t, err)
	alertRepo.alerts = append(alertRepo.alerts, &db_models.Alert{AccountID: uuid.New(), UserName: "Someone Else"})

	alerts, err := svc.AlertHistory(context.Background(), account.ID)

	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, account.ID, alerts[0].AccountID)
}

func TestAlertHistoryEmpty(t *testing.T) {
	account := elderlyAccount("")
	svc := NewAlertService(newFakeAccountRepo(account), &fakeAlertRepo{}, &fakeSender{}, zap.NewNop().Sugar())

	alerts, err := svc.AlertHistory(context.Background(), account.ID)

	require.NoError(t, err)
	assert.NotNil(t, alerts)
	assert.Empty(t, alerts)
}

func TestSendLoveRequiresContactNumber(t *testing.T) {
	account := elderlyAccount("")
	alertRepo := &fakeAlertRepo{}
	svc := NewAlertService(newFakeAccountRepo(account), alertRepo, &fakeSender{}, zap.NewNop().Sugar())

	err := svc.SendLove(context.Background(), account.ID)

	assert.ErrorIs(t, err, utils.ErrNoContactNumber)
	assert.Empty(t, alertRepo.alerts)
}

func TestSendLovePersistsNothing(t *testing.T) {
	account := elderlyAccount("+15550001111")
	alertRepo := &fakeAlertRepo{}
	sender := &fakeSender{}
	svc := NewAlertService(newFakeAccountRepo(account), alertRepo, sender, zap.NewNop().Sugar())

	err := svc.SendLove(context.Background(), account.ID)

	require.NoError(t, err)
	require.Len(t, sender.sent, 1)
	assert.Contains(t, sender.sent[0], "thinking of you")
	assert.Empty(t, alertRepo.alerts, "send-love is intentionally unaudited")
}
