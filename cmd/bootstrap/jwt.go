package bootstrap

import (
	"lifepass-admin/internal/pkg/clock"
	"lifepass-admin/internal/pkg/config"
	"lifepass-admin/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

// NewJWTService signs the service tokens presented to the SkiData authorities.
func NewJWTService(cfg config.Config, clk clock.Clock) *jwt.Service {
	sd := cfg.SkiData
	return jwt.NewService(sd.TokenSecret, sd.Issuer, sd.Audience, sd.TokenTTL, clk)
}
