package broker

import (
	"context"

	"lifepass-admin/internal/infra/cache"
)

type invalidator interface {
	Invalidate(ctx context.Context, tags ...string) error
}

type publisher interface {
	Publish(ctx context.Context, inv Invalidation)
}

// Notifier invalidates the local cache and broadcasts the tags. Failures are logged
// by the cache and publisher; callers never see them.
type Notifier struct {
	cache     invalidator
	publisher publisher
}

// NewNotifier accepts a nil publisher for single-instance deployments.
func NewNotifier(svc *cache.Service, pub *Publisher) *Notifier {
	n := &Notifier{cache: svc}
	if pub != nil {
		n.publisher = pub
	}
	return n
}

func (n *Notifier) Invalidate(ctx context.Context, tags ...string) {
	if len(tags) == 0 {
		return
	}
	_ = n.cache.Invalidate(ctx, tags...)
	if n.publisher != nil {
		n.publisher.Publish(ctx, Invalidation{Tags: tags})
	}
}
