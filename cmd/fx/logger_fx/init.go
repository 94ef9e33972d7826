package logger_fx

import (
	"companion/pkg/logger"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Provide(provideLogger)

func provideLogger() *zap.SugaredLogger {
	return logger.NewLogger()
}
