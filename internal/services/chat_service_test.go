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

type fakeConversationRepo struct {
	messages  map[uuid.UUID][]db_models.Message
	appendErr error
}

func newFakeConversationRepo() *fakeConversationRepo {
	return &fakeConversationRepo{messages: map[uuid.UUID][]db_models.Message{}}
}

func (f *fakeConversationRepo) AppendPair(ctx context.Context, accountID uuid.UUID, userMsg, botMsg db_models.Message) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.messages[accountID] = append(f.messages[accountID], userMsg, botMsg)
	return nil
}

func (f *fakeConversationRepo) GetMessages(ctx context.Context, accountID uuid.UUID) ([]db_models.Message, error) {
	msgs, ok := f.messages[accountID]
	if !ok {
		return []db_models.Message{}, nil
	}
	return msgs, nil
}

type fakeCompletion struct {
	reply string
	err   error

	prompts []string
}

func (f *fakeCompletion) Complete(ctx context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func TestChatAppendsPairInOrder(t *testing.T) {
	repo := newFakeConversationRepo()
	completion := &fakeCompletion{reply: "Hello Alice, how are you today?"}
	svc := NewChatService(repo, completion, zap.NewNop().Sugar())
	accountID := uuid.New()

	reply, err := svc.Chat(context.Background(), accountID, "hi")

	require.NoError(t, err)
	assert.Equal(t, "Hello Alice, how are you today?", reply)

	msgs := repo.messages[accountID]
	require.Len(t, msgs, 2)
	assert.Equal(t, db_models.SenderUser, msgs[0].Sender)
	assert.Equal(t, "hi", msgs[0].Text)
	assert.Equal(t, db_models.SenderBot, msgs[1].Sender)
	assert.Equal(t, reply, msgs[1].Text)
	assert.False(t, msgs[0].Timestamp.IsZero())
	assert.False(t, msgs[1].Timestamp.Before(msgs[0].Timestamp))
}

func TestChatRejectsEmptyMessage(t *testing.T) {
	repo := newFakeConversationRepo()
	svc := NewChatService(repo, &fakeCompletion{reply: "unused"}, zap.NewNop().Sugar())
	accountID := uuid.New()

	_, err := svc.Chat(context.Background(), accountID, "   ")

	assert.ErrorIs(t, err, utils.ErrEmptyMessage)
	assert.Empty(t, repo.messages[accountID])
}

func TestChatAbsorbsUpstreamFailure(t *testing.T) {
	repo := newFakeConversationRepo()
	completion := &fakeCompletion{err: errors.New("model unavailable")}
	svc := NewChatService(repo, completion, zap.NewNop().Sugar())
	accountID := uuid.New()

	reply, err := svc.Chat(context.Background(), accountID, "hi")

	require.NoError(t, err, "upstream errors never surface to the caller")
	assert.Equal(t, chatApology, reply)
	assert.Empty(t, repo.messages[accountID], "nothing is persisted on failure")
}

func TestChatPromptCarriesPersonaAndMessage(t *testing.T) {
	completion := &fakeCompletion{reply: "ok"}
	svc := NewChatService(newFakeConversationRepo(), completion, zap.NewNop().Sugar())

	_, err := svc.Chat(context.Background(), uuid.New(), "what day is it?")

	require.NoError(t, err)
	require.Len(t, completion.prompts, 1)
	assert.Contains(t, completion.prompts[0], chatPersona)
	assert.Contains(t, completion.prompts[0], "what day is it?")
}

func TestHistoryEmptyWhenNoConversation(t *testing.T) {
	svc := NewChatService(newFakeConversationRepo(), &fakeCompletion{}, zap.NewNop().Sugar())

	msgs, err := svc.History(context.Background(), uuid.New())

	require.NoError(t, err)
	assert.NotNil(t, msgs)
	assert.Empty(t, msgs)
}
