package bootstrap

import (
	"lifepass-admin/internal/pkg/clock"
	"lifepass-admin/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		clock.NewRealClock,
	),
)
