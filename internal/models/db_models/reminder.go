package db_models

import "github.com/google/uuid"

// Reminder is a medication reminder. Time is kept as the display string
// the user typed (e.g. "09:00 AM"); nothing schedules off it server-side.
type Reminder struct {
	BaseModel
	AccountID    uuid.UUID `gorm:"index"`
	MedicineName string
	Dosage       string
	Time         string
	IsCompleted  bool `gorm:"default:false"`
}
