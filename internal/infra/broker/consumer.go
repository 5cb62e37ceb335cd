package broker

import (
	"context"
	"log/slog"

	"lifepass-admin/internal/infra/cache"

	"github.com/segmentio/kafka-go"
)

// Consumer applies invalidations published by other instances to the local cache.
type Consumer struct {
	r      *kafka.Reader
	cache  *cache.Service
	origin string
	logger *slog.Logger
}

func NewConsumer(brokers []string, groupID, topic, origin string, svc *cache.Service, logger *slog.Logger) *Consumer {
	return &Consumer{
		r: kafka.NewReader(kafka.ReaderConfig{
			Brokers:  brokers,
			GroupID:  groupID,
			Topic:    topic,
			MinBytes: 1,
			MaxBytes: 1 << 20,
		}),
		cache:  svc,
		origin: origin,
		logger: logger,
	}
}

// Run reads until ctx is done.
func (c *Consumer) Run(ctx context.Context) error {
	for {
		m, err := c.r.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		if err := c.Apply(ctx, m); err != nil {
			c.logger.Warn("skipping invalidation message", "offset", m.Offset, "error", err.Error())
		}
		if err := c.r.CommitMessages(ctx, m); err != nil && ctx.Err() == nil {
			c.logger.Warn("failed to commit invalidation offset", "offset", m.Offset, "error", err.Error())
		}
	}
}

// Apply invalidates the tags carried by m. Messages this instance published
// were already applied locally.
func (c *Consumer) Apply(ctx context.Context, m kafka.Message) error {
	inv, origin, err := decode(m)
	if err != nil {
		return err
	}
	if origin == c.origin {
		return nil
	}
	return c.cache.Invalidate(ctx, inv.Tags...)
}

func (c *Consumer) Close() error {
	return c.r.Close()
}
