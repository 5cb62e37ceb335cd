package bootstrap

import (
	"context"
	"log/slog"
	"os"

	"lifepass-admin/internal/infra/broker"
	"lifepass-admin/internal/infra/cache"
	"lifepass-admin/internal/pkg/config"
	"lifepass-admin/internal/usecase/shared"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

var BrokerModule = fx.Module("broker",
	fx.Provide(
		NewPublisher,
		fx.Annotate(
			broker.NewNotifier,
			fx.As(new(shared.CacheInvalidator)),
		),
	),
	fx.Invoke(StartConsumer),
)

// instanceOrigin tags published messages so an instance can skip its own.
var instanceOrigin = func() string {
	host, err := os.Hostname()
	if err != nil {
		host = "lifepass-admin"
	}
	return host + "-" + uuid.NewString()[:8]
}()

// NewPublisher returns nil when no brokers are configured; invalidation then stays local.
func NewPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) *broker.Publisher {
	if len(cfg.Kafka.Brokers) == 0 {
		logger.Info("invalidation broadcast disabled")
		return nil
	}
	pub := broker.NewPublisher(cfg.Kafka.Brokers, cfg.Kafka.InvalidationTopic, instanceOrigin, cfg.Kafka.Buffer, logger)
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			pub.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return pub.Close(ctx)
		},
	})
	return pub
}

// StartConsumer subscribes with a per-instance group so every instance sees every message.
func StartConsumer(lc fx.Lifecycle, cfg config.Config, svc *cache.Service, logger *slog.Logger) {
	if len(cfg.Kafka.Brokers) == 0 {
		return
	}
	groupID := cfg.Kafka.GroupID + "-" + instanceOrigin
	consumer := broker.NewConsumer(cfg.Kafka.Brokers, groupID, cfg.Kafka.InvalidationTopic, instanceOrigin, svc, logger)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				if err := consumer.Run(ctx); err != nil {
					logger.Error("invalidation consumer stopped", "error", err.Error())
				}
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}
			return consumer.Close()
		},
	})
}
