package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"companion/internal/models/db_models"
	"companion/internal/repositories"
	"companion/pkg/ai"
	"companion/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	chatPersona = "You are a kind, patient, and empathetic AI companion for an elderly person. " +
		"Keep your replies warm, simple, and encouraging."

	// Returned verbatim whenever the completion call fails; the upstream
	// error never reaches the client.
	chatApology = "Sorry, my AI brain is taking a nap. Please try again in a moment."
)

type ChatServiceInterface interface {
	Chat(ctx context.Context, accountID uuid.UUID, message string) (string, error)
	History(ctx context.Context, accountID uuid.UUID) ([]db_models.Message, error)
}

type ChatService struct {
	conversationRepo repositories.ConversationRepository
	completion       ai.CompletionClient
	logger           *zap.SugaredLogger
}

func NewChatService(
	conversationRepo repositories.ConversationRepository,
	completion ai.CompletionClient,
	logger *zap.SugaredLogger,
) ChatServiceInterface {
	return &ChatService{
		conversationRepo: conversationRepo,
		completion:       completion,
		logger:           logger,
	}
}

func (s *ChatService) Chat(ctx context.Context, accountID uuid.UUID, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", utils.ErrEmptyMessage
	}

	prompt := fmt.Sprintf("%s\n\nUser: %s", chatPersona, message)

	reply, err := s.completion.Complete(ctx, prompt)
	if err != nil {
		// Failure is fully absorbed: canned apology out, nothing persisted.
		s.logger.Errorw("completion call failed", "account", accountID, "error", err)
		return chatApology, nil
	}

	now := time.Now()
	userMsg := db_models.Message{Sender: db_models.SenderUser, Text: message, Timestamp: now}
	botMsg := db_models.Message{Sender: db_models.SenderBot, Text: reply, Timestamp: time.Now()}

	if err := s.conversationRepo.AppendPair(ctx, accountID, userMsg, botMsg); err != nil {
		s.logger.Errorw("failed to persist chat pair", "account", accountID, "error", err)
		return "", utils.ErrDatabaseError
	}

	return reply, nil
}

func (s *ChatService) History(ctx context.Context, accountID uuid.UUID) ([]db_models.Message, error) {
	messages, err := s.conversationRepo.GetMessages(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return messages, nil
}
