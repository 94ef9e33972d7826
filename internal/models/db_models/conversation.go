package db_models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	SenderUser = "user"
	SenderBot  = "bot"
)

// Message is one entry in a conversation's jsonb message array.
type Message struct {
	Sender    string    `json:"sender"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// Conversation holds the single append-only chat log an account has with
// the assistant. Messages is a jsonb array so the (user, bot) pair can be
// appended in one atomic concat update.
type Conversation struct {
	BaseModel
	AccountID uuid.UUID      `gorm:"uniqueIndex"`
	Messages  datatypes.JSON `gorm:"type:jsonb;default:'[]'"`

	Account Account `gorm:"foreignKey:AccountID"`
}
