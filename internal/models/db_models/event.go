package db_models

import (
	"time"

	"github.com/google/uuid"
)

type Event struct {
	BaseModel
	AccountID uuid.UUID `gorm:"index"`
	Title     string
	Start     time.Time
	End       time.Time
}
