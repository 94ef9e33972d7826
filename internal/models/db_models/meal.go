package db_models

import "github.com/google/uuid"

type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnacks    MealType = "snacks"
)

// Meal is the logged description for one meal slot of one day. Date is
// stored as "YYYY-MM-DD" so day queries are plain string comparisons.
// Logging the same slot again overwrites the description.
type Meal struct {
	BaseModel
	AccountID   uuid.UUID `gorm:"uniqueIndex:idx_meal_slot"`
	Date        string    `gorm:"uniqueIndex:idx_meal_slot"`
	MealType    MealType  `gorm:"uniqueIndex:idx_meal_slot"`
	Description string
}
