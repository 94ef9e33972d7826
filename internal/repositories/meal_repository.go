package repositories

import (
	"context"
	"time"

	"companion/internal/models/db_models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MealRepository interface {
	// Upsert overwrites the description when the (account, date, mealType)
	// slot was already logged.
	Upsert(ctx context.Context, meal *db_models.Meal) error
	ListByDate(ctx context.Context, accountID uuid.UUID, date string) ([]db_models.Meal, error)
	ListBetween(ctx context.Context, accountID uuid.UUID, fromDate, toDate string) ([]db_models.Meal, error)
}

type mealRepository struct {
	db *gorm.DB
}

func NewMealRepository(db *gorm.DB) MealRepository {
	return &mealRepository{db: db}
}

func (r *mealRepository) Upsert(ctx context.Context, meal *db_models.Meal) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "account_id"}, {Name: "date"}, {Name: "meal_type"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"description": meal.Description,
			"updated_at":  time.Now().Unix(),
		}),
	}).Create(meal).Error
}

func (r *mealRepository) ListByDate(ctx context.Context, accountID uuid.UUID, date string) ([]db_models.Meal, error) {
	var meals []db_models.Meal
	err := r.db.WithContext(ctx).
		Where("account_id = ? AND date = ?", accountID, date).
		Find(&meals).Error
	return meals, err
}

func (r *mealRepository) ListBetween(ctx context.Context, accountID uuid.UUID, fromDate, toDate string) ([]db_models.Meal, error) {
	var meals []db_models.Meal
	err := r.db.WithContext(ctx).
		Where("account_id = ? AND date >= ? AND date <= ?", accountID, fromDate, toDate).
		Order("date ASC").
		Find(&meals).Error
	return meals, err
}
