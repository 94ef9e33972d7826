package db_models

import (
	"time"

	"github.com/google/uuid"
)

// Photo references an uploaded gallery image. ObjectName is the storage
// key, kept so the object can be removed when the row is deleted.
type Photo struct {
	BaseModel
	AccountID  uuid.UUID `gorm:"index"`
	ImageURL   string
	ObjectName string
	Caption    string
	UploadedAt time.Time
}
