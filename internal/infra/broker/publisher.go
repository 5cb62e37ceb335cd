package broker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"
)

// Publisher writes invalidations from a buffered inbox on a background goroutine.
// A full inbox drops the message; the cache TTL bounds the staleness.
type Publisher struct {
	w      *kafka.Writer
	origin string
	inbox  chan kafka.Message
	done   chan struct{}
	logger *slog.Logger
	once   sync.Once
}

func NewPublisher(brokers []string, topic, origin string, buffer int, logger *slog.Logger) *Publisher {
	if buffer <= 0 {
		buffer = 1
	}
	return &Publisher{
		w: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
			BatchTimeout: 50 * time.Millisecond,
		},
		origin: origin,
		inbox:  make(chan kafka.Message, buffer),
		done:   make(chan struct{}),
		logger: logger,
	}
}

func (p *Publisher) Start() {
	go func() {
		defer close(p.done)
		for m := range p.inbox {
			if err := p.w.WriteMessages(context.Background(), m); err != nil {
				p.logger.Warn("failed to publish cache invalidation", "error", err.Error())
			}
		}
	}()
}

// Publish never blocks the caller.
func (p *Publisher) Publish(_ context.Context, inv Invalidation) {
	m, err := encode(p.origin, inv)
	if err != nil {
		p.logger.Warn("dropping cache invalidation", "error", err.Error())
		return
	}
	m.Time = time.Now()
	select {
	case p.inbox <- m:
	default:
		p.logger.Warn("invalidation inbox full, dropping", "tags", inv.Tags)
	}
}

// Close flushes the inbox and closes the writer.
func (p *Publisher) Close(ctx context.Context) error {
	p.once.Do(func() { close(p.inbox) })
	select {
	case <-p.done:
	case <-ctx.Done():
		return ctx.Err()
	}
	return p.w.Close()
}
