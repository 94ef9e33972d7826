package entertainment_fx

import (
	"os"

	"companion/internal/services"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Provide(provideEntertainmentService)

func provideEntertainmentService(logger *zap.SugaredLogger) services.EntertainmentServiceInterface {
	return services.NewEntertainmentService(os.Getenv("YOUTUBE_API_KEY"), logger)
}
