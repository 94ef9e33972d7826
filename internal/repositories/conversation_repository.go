package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"companion/internal/models/db_models"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ConversationRepository interface {
	// AppendPair writes the (user, bot) message pair in one upsert so a
	// reader never sees the user message without its reply.
	AppendPair(ctx context.Context, accountID uuid.UUID, userMsg, botMsg db_models.Message) error
	GetMessages(ctx context.Context, accountID uuid.UUID) ([]db_models.Message, error)
}

type conversationRepository struct {
	db *gorm.DB
}

func NewConversationRepository(db *gorm.DB) ConversationRepository {
	return &conversationRepository{db: db}
}

func (r *conversationRepository) AppendPair(ctx context.Context, accountID uuid.UUID, userMsg, botMsg db_models.Message) error {
	pair, err := json.Marshal([]db_models.Message{userMsg, botMsg})
	if err != nil {
		return err
	}

	conversation := db_models.Conversation{
		AccountID: accountID,
		Messages:  datatypes.JSON(pair),
	}

	// jsonb concat keeps the append atomic; on first chat the insert wins.
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "account_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"messages":   gorm.Expr("conversations.messages || excluded.messages"),
			"updated_at": time.Now().Unix(),
		}),
	}).Create(&conversation).Error
}

func (r *conversationRepository) GetMessages(ctx context.Context, accountID uuid.UUID) ([]db_models.Message, error) {
	var conversation db_models.Conversation
	err := r.db.WithContext(ctx).First(&conversation, "account_id = ?", accountID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []db_models.Message{}, nil
		}
		return nil, err
	}

	messages := []db_models.Message{}
	if len(conversation.Messages) > 0 {
		if err := json.Unmarshal(conversation.Messages, &messages); err != nil {
			return nil, err
		}
	}

	return messages, nil
}
