package db_models

import "github.com/google/uuid"

type AccountRole string

const (
	RoleElderly AccountRole = "elderly"
	RoleFamily  AccountRole = "family"
)

// Account is either an elderly (primary) user or a family (observer)
// account. A family account must link to exactly one elderly account;
// the check constraint keeps that invariant in the schema, registration
// enforces it at the boundary.
type Account struct {
	BaseModel
	Name             string
	Email            string      `gorm:"uniqueIndex"`
	PasswordHash     string
	Role             AccountRole `gorm:"default:elderly;check:observer_link,(role <> 'family') OR (primary_account_id IS NOT NULL)"`
	PrimaryAccountID *uuid.UUID  `gorm:"index"`
	ContactNumber    string
	VideoCallLink    string `gorm:"default:https://meet.google.com"`
}
