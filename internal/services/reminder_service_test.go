package services

import (
	"context"
	"testing"

	"companion/internal/models/db_models"
	"companion/internal/models/request_models"
	"companion/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReminderRepo struct {
	reminders map[uuid.UUID]*db_models.Reminder
}

func newFakeReminderRepo() *fakeReminderRepo {
	return &fakeReminderRepo{reminders: map[uuid.UUID]*db_models.Reminder{}}
}

func (f *fakeReminderRepo) Insert(ctx context.Context, reminder *db_models.Reminder) error {
	if reminder.ID == uuid.Nil {
		reminder.ID = uuid.New()
	}
	f.reminders[reminder.ID] = reminder
	return nil
}

func (f *fakeReminderRepo) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Reminder, error) {
	return f.reminders[id], nil
}

func (f *fakeReminderRepo) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.Reminder, error) {
	var out []db_models.Reminder
	for _, r := range f.reminders {
		if r.AccountID == accountID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeReminderRepo) Save(ctx context.Context, reminder *db_models.Reminder) error {
	f.reminders[reminder.ID] = reminder
	return nil
}

func (f *fakeReminderRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.reminders, id)
	return nil
}

func TestToggleReminderFlipsCompletion(t *testing.T) {
	repo := newFakeReminderRepo()
	svc := NewReminderService(repo)
	owner := uuid.New()

	created, err := svc.AddReminder(context.Background(), owner, request_models.ReminderRequest{
		MedicineName: "Aspirin",
		Dosage:       "75mg",
		Time:         "09:00 AM",
	})
	require.NoError(t, err)
	assert.False(t, created.IsCompleted)

	toggled, err := svc.ToggleReminder(context.Background(), owner, created.ID)
	require.NoError(t, err)
	assert.True(t, toggled.IsCompleted)

	toggled, err = svc.ToggleReminder(context.Background(), owner, created.ID)
	require.NoError(t, err)
	assert.False(t, toggled.IsCompleted)
}

func TestDeleteReminderEnforcesOwnership(t *testing.T) {
	repo := newFakeReminderRepo()
	svc := NewReminderService(repo)
	owner := uuid.New()
	stranger := uuid.New()

	created, err := svc.AddReminder(context.Background(), owner, request_models.ReminderRequest{
		MedicineName: "Aspirin",
		Time:         "09:00 AM",
	})
	require.NoError(t, err)

	err = svc.DeleteReminder(context.Background(), stranger, created.ID)
	assert.ErrorIs(t, err, utils.ErrNotOwner)
	assert.NotNil(t, repo.reminders[created.ID], "record stays intact on unauthorized delete")

	err = svc.DeleteReminder(context.Background(), owner, created.ID)
	require.NoError(t, err)
	assert.Nil(t, repo.reminders[created.ID])
}

func TestDeleteReminderMissing(t *testing.T) {
	svc := NewReminderService(newFakeReminderRepo())

	err := svc.DeleteReminder(context.Background(), uuid.New(), uuid.New())

	assert.ErrorIs(t, err, utils.ErrRecordNotFound)
}

func TestToggleReminderEnforcesOwnership(t *testing.T) {
	repo := newFakeReminderRepo()
	svc := NewReminderService(repo)
	owner := uuid.New()

	created, err := svc.AddReminder(context.Background(), owner, request_models.ReminderRequest{
		MedicineName: "Aspirin",
		Time:         "09:00 AM",
	})
	require.NoError(t, err)

	_, err = svc.ToggleReminder(context.Background(), uuid.New(), created.ID)
	assert.ErrorIs(t, err, utils.ErrNotOwner)
	assert.False(t, repo.reminders[created.ID].IsCompleted)
}
