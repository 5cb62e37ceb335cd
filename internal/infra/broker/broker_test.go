//go:build unit

package broker

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"lifepass-admin/internal/infra/cache"
	"lifepass-admin/internal/pkg/clock"
	"lifepass-admin/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

type recordingPublisher struct {
	published []Invalidation
}

func (p *recordingPublisher) Publish(_ context.Context, inv Invalidation) {
	p.published = append(p.published, inv)
}

func newCache() *cache.Service {
	clk := clock.NewMockClock(time.Date(2026, 12, 1, 9, 0, 0, 0, time.UTC))
	return cache.NewService(cache.NewMemoryBackend(clk), cache.Config{TTL: time.Hour}, discard)
}

func warm(t *testing.T, svc *cache.Service, key cache.Key) *int {
	t.Helper()
	loads := 0
	_, _, err := cache.ReadThrough(context.Background(), svc, key, 0, func(context.Context) (string, error) {
		loads++
		return "value", nil
	})
	require.NoError(t, err)
	return &loads
}

func reload(t *testing.T, svc *cache.Service, key cache.Key, loads *int) {
	t.Helper()
	_, _, err := cache.ReadThrough(context.Background(), svc, key, 0, func(context.Context) (string, error) {
		*loads++
		return "value", nil
	})
	require.NoError(t, err)
}

func TestNotifier(t *testing.T) {
	ctx := context.Background()
	resortID := uuid.New()
	key := cache.Key{EntityType: cache.TagOrders, ResortID: resortID}

	t.Run("invalidates locally and broadcasts", func(t *testing.T) {
		svc := newCache()
		loads := warm(t, svc, key)
		pub := &recordingPublisher{}
		n := &Notifier{cache: svc, publisher: pub}

		n.Invalidate(ctx, cache.OrderTags(resortID)...)

		reload(t, svc, key, loads)
		assert.Equal(t, 2, *loads)
		require.Len(t, pub.published, 1)
		assert.Equal(t, cache.OrderTags(resortID), pub.published[0].Tags)
	})

	t.Run("without a publisher only the local cache is touched", func(t *testing.T) {
		svc := newCache()
		loads := warm(t, svc, key)
		n := NewNotifier(svc, nil)

		n.Invalidate(ctx, cache.TagOrders)
		n.Invalidate(ctx, cache.TagOrders)

		reload(t, svc, key, loads)
		assert.Equal(t, 2, *loads)
	})

	t.Run("no tags is a no-op", func(t *testing.T) {
		pub := &recordingPublisher{}
		n := &Notifier{cache: newCache(), publisher: pub}
		n.Invalidate(ctx)
		assert.Empty(t, pub.published)
	})
}

func TestConsumerApply(t *testing.T) {
	ctx := context.Background()
	resortID := uuid.New()
	key := cache.Key{EntityType: "products", ResortID: resortID}

	t.Run("message from another instance invalidates", func(t *testing.T) {
		svc := newCache()
		loads := warm(t, svc, key)
		c := &Consumer{cache: svc, origin: "instance-a", logger: discard}

		m, err := encode("instance-b", Invalidation{Tags: []string{cache.ResortTag("products", resortID)}})
		require.NoError(t, err)
		require.NoError(t, c.Apply(ctx, m))

		reload(t, svc, key, loads)
		assert.Equal(t, 2, *loads)
	})

	t.Run("own message is skipped", func(t *testing.T) {
		svc := newCache()
		loads := warm(t, svc, key)
		c := &Consumer{cache: svc, origin: "instance-a", logger: discard}

		m, err := encode("instance-a", Invalidation{Tags: []string{"products"}})
		require.NoError(t, err)
		require.NoError(t, c.Apply(ctx, m))

		reload(t, svc, key, loads)
		assert.Equal(t, 1, *loads)
	})

	t.Run("malformed payload is rejected", func(t *testing.T) {
		c := &Consumer{cache: newCache(), origin: "instance-a", logger: discard}
		err := c.Apply(ctx, kafka.Message{Value: []byte("{tags")})
		require.Error(t, err)
		assert.True(t, errs.Is(err, ErrMalformedMessage))
	})
}

func TestPublisher_DropsWhenInboxFull(t *testing.T) {
	p := NewPublisher([]string{"127.0.0.1:1"}, "cache-invalidation", "instance-a", 1, discard)

	p.Publish(context.Background(), Invalidation{Tags: []string{"a"}})
	p.Publish(context.Background(), Invalidation{Tags: []string{"b"}})

	require.Len(t, p.inbox, 1)
	m := <-p.inbox
	inv, origin, err := decode(m)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, inv.Tags)
	assert.Equal(t, "instance-a", origin)
}
