//go:build unit

package bootstrap_test

import (
	"log/slog"
	"testing"

	"lifepass-admin/cmd/bootstrap"
	"lifepass-admin/internal/pkg/config"
	"lifepass-admin/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

func engineProvider() fx.Option {
	return fx.Provide(func() *gin.Engine { return gin.New() })
}

func TestModule_GraphIsComplete(t *testing.T) {
	err := fx.ValidateApp(
		bootstrap.Module,
		engineProvider(),
		fx.Invoke(func(*gin.Engine, config.Config, *slog.Logger, shared.CacheInvalidator) {}),
	)
	require.NoError(t, err)
}

func TestBrokerModule_ProvidesInvalidatorFromCache(t *testing.T) {
	err := fx.ValidateApp(
		bootstrap.ConfigModule,
		bootstrap.LoggerModule,
		bootstrap.CacheModule,
		bootstrap.BrokerModule,
		fx.Invoke(func(shared.CacheInvalidator) {}),
	)
	require.NoError(t, err)
}
