package bootstrap

import (
	"log/slog"

	"lifepass-admin/internal/handler/middleware"
	"lifepass-admin/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewRequestLogger,
		NewLogger,
	),
)

func NewRequestLogger(cfg config.Config) *middleware.Logger {
	return middleware.NewLogger(cfg.Log)
}

// NewLogger shares the request logger's handler so every line carries the same time format.
func NewLogger(l *middleware.Logger) *slog.Logger {
	return l.GetSlogLogger()
}
