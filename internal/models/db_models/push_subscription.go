package db_models

import "github.com/google/uuid"

// PushSubscription stores one browser push endpoint per account.
// Re-subscribing replaces the previous endpoint/keys.
type PushSubscription struct {
	BaseModel
	AccountID uuid.UUID `gorm:"uniqueIndex"`
	Endpoint  string
	P256dhKey string
	AuthKey   string
}
