package bootstrap

import (
	"context"
	"log/slog"

	"lifepass-admin/internal/infra/cache"
	"lifepass-admin/internal/pkg/clock"
	"lifepass-admin/internal/pkg/config"

	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewCacheBackend,
		NewCacheService,
	),
)

// NewCacheBackend falls back to process memory when no Redis address is configured.
func NewCacheBackend(lc fx.Lifecycle, cfg config.Config, clk clock.Clock, logger *slog.Logger) cache.Backend {
	if cfg.Redis.Addr == "" {
		logger.Info("cache backend: memory")
		return cache.NewMemoryBackend(clk)
	}

	rdb := cache.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			// unreachable Redis degrades reads; it must not block startup
			if err := rdb.Ping(ctx).Err(); err != nil {
				logger.Warn("redis ping failed", "addr", cfg.Redis.Addr, "error", err.Error())
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return rdb.Close()
		},
	})
	logger.Info("cache backend: redis", "addr", cfg.Redis.Addr)
	return cache.NewRedisBackend(rdb)
}

func NewCacheService(backend cache.Backend, cfg config.Config, logger *slog.Logger) *cache.Service {
	return cache.NewService(backend, cache.Config{TTL: cfg.Cache.TTL, Tags: cfg.Cache.Tags}, logger)
}
