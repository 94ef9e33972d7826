package controllers_fx

import (
	"companion/internal/api/controllers"

	"go.uber.org/fx"
)

var Module = fx.Provide(
	controllers.NewAccountController,
	controllers.NewAlertController,
	controllers.NewChatController,
	controllers.NewHealthController,
	controllers.NewMealController,
	controllers.NewReminderController,
	controllers.NewEventController,
	controllers.NewPhotoController,
	controllers.NewNotificationController,
	controllers.NewEntertainmentController,
)
