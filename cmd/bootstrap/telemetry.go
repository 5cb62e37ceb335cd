package bootstrap

import (
	"context"

	"lifepass-admin/internal/infra/telemetry"
	"lifepass-admin/internal/pkg/config"

	"go.uber.org/fx"
)

var TelemetryModule = fx.Module("telemetry",
	fx.Invoke(StartTracing),
)

func StartTracing(lc fx.Lifecycle, cfg config.Config) error {
	provider, err := telemetry.NewProvider(cfg.Telemetry)
	if err != nil {
		return err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return provider.Shutdown(ctx)
		},
	})
	return nil
}
