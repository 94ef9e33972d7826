package care_fx

import (
	"companion/internal/repositories"
	"companion/internal/services"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

// care_fx wires the simple per-entity record keepers: health metrics,
// meals, reminders and calendar events.
var Module = fx.Provide(
	provideHealthRepo, provideHealthService,
	provideMealRepo, provideMealService,
	provideReminderRepo, provideReminderService,
	provideEventRepo, provideEventService,
)

func provideHealthRepo(db *gorm.DB) repositories.HealthRepository {
	return repositories.NewHealthRepository(db)
}

func provideHealthService(healthRepo repositories.HealthRepository) services.HealthServiceInterface {
	return services.NewHealthService(healthRepo)
}

func provideMealRepo(db *gorm.DB) repositories.MealRepository {
	return repositories.NewMealRepository(db)
}

func provideMealService(mealRepo repositories.MealRepository) services.MealServiceInterface {
	return services.NewMealService(mealRepo)
}

func provideReminderRepo(db *gorm.DB) repositories.ReminderRepository {
	return repositories.NewReminderRepository(db)
}

func provideReminderService(reminderRepo repositories.ReminderRepository) services.ReminderServiceInterface {
	return services.NewReminderService(reminderRepo)
}

func provideEventRepo(db *gorm.DB) repositories.EventRepository {
	return repositories.NewEventRepository(db)
}

func provideEventService(eventRepo repositories.EventRepository) services.EventServiceInterface {
	return services.NewEventService(eventRepo)
}
