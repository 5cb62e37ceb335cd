package commands

import (
	"context"
	"log/slog"
	"time"

	"lifepass-admin/internal/infra/cache"
	"lifepass-admin/internal/pkg/clock"
	"lifepass-admin/internal/usecase/allocation"
	"lifepass-admin/internal/usecase/shared"

	"github.com/google/uuid"
)

const sweepBatch = 100

// AllocationSweeper releases devices held by orders whose checkout never finished.
type AllocationSweeper interface {
	Sweep(ctx context.Context) (int, error)
}

type allocationSweeperImpl struct {
	uow         shared.UnitOfWork
	allocator   allocation.Allocator
	invalidator shared.CacheInvalidator
	clock       clock.Clock
	ttl         time.Duration
	logger      *slog.Logger
}

func NewAllocationSweeper(
	uow shared.UnitOfWork,
	allocator allocation.Allocator,
	invalidator shared.CacheInvalidator,
	clk clock.Clock,
	ttl time.Duration,
	logger *slog.Logger,
) AllocationSweeper {
	return &allocationSweeperImpl{
		uow:         uow,
		allocator:   allocator,
		invalidator: invalidator,
		clock:       clk,
		ttl:         ttl,
		logger:      logger,
	}
}

// Sweep returns the number of allocations released. One failing order does not stop the batch.
func (s *allocationSweeperImpl) Sweep(ctx context.Context) (int, error) {
	var stale []uuid.UUID
	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ids, err := tx.Allocations().StaleOrders(ctx, tx.DB(), s.clock.Now().Add(-s.ttl), sweepBatch)
		stale = ids
		return err
	})
	if err != nil {
		return 0, err
	}

	released := 0
	for _, id := range stale {
		n, err := s.allocator.Release(ctx, id)
		if err != nil {
			s.logger.Error("sweeper release failed", "order_id", id.String(), "error", err.Error())
			continue
		}
		released += n
	}
	if released > 0 {
		s.invalidator.Invalidate(ctx, cache.TagOrders)
		s.logger.Info("stale allocations released", "orders", len(stale), "allocations", released)
	}
	return released, nil
}
