package components

import (
	"log/slog"

	"lifepass-admin/internal/infra/skidata"
	"lifepass-admin/internal/pkg/config"
	"lifepass-admin/internal/pkg/jwt"
	"lifepass-admin/internal/usecase/allocation"
	"lifepass-admin/internal/usecase/pricing"
	"lifepass-admin/internal/usecase/queries"

	"go.uber.org/fx"
)

// AuthorityModule binds the SkiData client to the pricing and device-status ports.
var AuthorityModule = fx.Module("authority",
	fx.Provide(
		fx.Annotate(
			NewSkiDataClient,
			fx.As(new(pricing.Client)),
			fx.As(new(allocation.StatusAuthority)),
			fx.As(new(queries.SlotAuthority)),
		),
	),
)

func NewSkiDataClient(cfg config.Config, tokens *jwt.Service, logger *slog.Logger) *skidata.Client {
	return skidata.NewClient(cfg.SkiData, tokens, logger)
}
