package services

import (
	"context"
	"time"

	"companion/internal/models/db_models"
	"companion/internal/models/request_models"
	"companion/internal/repositories"
	"companion/pkg/utils"

	"github.com/google/uuid"
)

const mealDateLayout = "2006-01-02"

type MealServiceInterface interface {
	LogMeal(ctx context.Context, accountID uuid.UUID, request request_models.MealRequest) (*db_models.Meal, error)
	MealsByDate(ctx context.Context, accountID uuid.UUID, date string) ([]db_models.Meal, error)
	WeeklyMeals(ctx context.Context, accountID uuid.UUID) ([]db_models.Meal, error)
}

type MealService struct {
	mealRepo repositories.MealRepository
}

func NewMealService(mealRepo repositories.MealRepository) MealServiceInterface {
	return &MealService{mealRepo: mealRepo}
}

func (s *MealService) LogMeal(ctx context.Context, accountID uuid.UUID, request request_models.MealRequest) (*db_models.Meal, error) {
	meal := &db_models.Meal{
		AccountID:   accountID,
		Date:        request.Date,
		MealType:    db_models.MealType(request.MealType),
		Description: request.Description,
	}

	if err := s.mealRepo.Upsert(ctx, meal); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return meal, nil
}

func (s *MealService) MealsByDate(ctx context.Context, accountID uuid.UUID, date string) ([]db_models.Meal, error) {
	meals, err := s.mealRepo.ListByDate(ctx, accountID, date)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return meals, nil
}

func (s *MealService) WeeklyMeals(ctx context.Context, accountID uuid.UUID) ([]db_models.Meal, error) {
	today := time.Now()
	from := today.AddDate(0, 0, -7)

	meals, err := s.mealRepo.ListBetween(ctx, accountID,
		from.Format(mealDateLayout), today.Format(mealDateLayout))
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return meals, nil
}
