package db_models

import "github.com/google/uuid"

const DefaultAlertMessage = "SOS button pressed by user."

// Alert is the immutable audit record of one emergency trigger. Name and
// email are snapshotted so the log stays readable even if the account
// changes later.
type Alert struct {
	BaseModel
	AccountID uuid.UUID `gorm:"index"`
	UserName  string
	UserEmail string
	Message   string

	Account Account `gorm:"foreignKey:AccountID"`
}
