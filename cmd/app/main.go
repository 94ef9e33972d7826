package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"companion/cmd/fx/account_fx"
	"companion/cmd/fx/alert_fx"
	"companion/cmd/fx/care_fx"
	"companion/cmd/fx/chat_fx"
	"companion/cmd/fx/controllers_fx"
	"companion/cmd/fx/db_fx"
	"companion/cmd/fx/entertainment_fx"
	"companion/cmd/fx/logger_fx"
	"companion/cmd/fx/media_fx"
	"companion/cmd/fx/notification_fx"
	"companion/internal/api/controllers"
	"companion/internal/infra"
	"companion/pkg/middleware"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	app := fx.New(
		logger_fx.Module,
		db_fx.Module,
		account_fx.Module,
		alert_fx.Module,
		chat_fx.Module,
		care_fx.Module,
		media_fx.Module,
		notification_fx.Module,
		entertainment_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(RunMigrations),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func RunMigrations(db *gorm.DB) {
	if err := infra.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, db *gorm.DB) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	server := &http.Server{Addr: ":" + port, Handler: engine}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server on :%s", port)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			if err := server.Shutdown(ctx); err != nil {
				return err
			}
			infra.ClosePostgresql(db)
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	alertController *controllers.AlertController,
	chatController *controllers.ChatController,
	healthController *controllers.HealthController,
	mealController *controllers.MealController,
	reminderController *controllers.ReminderController,
	eventController *controllers.EventController,
	photoController *controllers.PhotoController,
	notificationController *controllers.NotificationController,
	entertainmentController *controllers.EntertainmentController,
) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	api := r.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.POST("/register", accountController.Register)
	authGroup.POST("/login", accountController.Login)

	protected := api.Group("")
	protected.Use(middleware.JWTAuthMiddleware())

	protected.POST("/alerts/trigger", alertController.Trigger)
	protected.POST("/alerts/send-love", alertController.SendLove)
	protected.GET("/alerts", alertController.History)

	protected.POST("/ai/chat", chatController.Chat)
	protected.GET("/chat/history", chatController.History)

	protected.POST("/notifications/subscribe", notificationController.Subscribe)

	protected.POST("/health", healthController.AddMetric)
	protected.GET("/health/:metricType", healthController.ListMetrics)

	protected.POST("/meals", mealController.LogMeal)
	protected.GET("/meals/by-date/:date", mealController.MealsByDate)
	protected.GET("/meals/weekly", mealController.WeeklyMeals)

	protected.GET("/reminders", reminderController.ListReminders)
	protected.POST("/reminders", reminderController.AddReminder)
	protected.PUT("/reminders/:id/toggle", reminderController.ToggleReminder)
	protected.DELETE("/reminders/:id", reminderController.DeleteReminder)

	protected.GET("/events", eventController.ListEvents)
	protected.POST("/events", eventController.AddEvent)
	protected.DELETE("/events/:id", eventController.DeleteEvent)

	protected.GET("/photos", photoController.ListPhotos)
	protected.POST("/photos", photoController.UploadPhoto)
	protected.DELETE("/photos/:id", photoController.DeletePhoto)

	protected.GET("/entertainment/search", entertainmentController.Search)

	return r
}
