package commands

import (
	"context"
	"log/slog"
	"time"

	"lifepass-admin/internal/domain/order"
	dompricing "lifepass-admin/internal/domain/pricing"
	"lifepass-admin/internal/infra"
	"lifepass-admin/internal/infra/cache"
	"lifepass-admin/internal/pkg/clock"
	"lifepass-admin/internal/pkg/errs"
	"lifepass-admin/internal/usecase/allocation"
	"lifepass-admin/internal/usecase/pricing"
	"lifepass-admin/internal/usecase/queries"
	"lifepass-admin/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrResortNotFound     = errs.New("resort not found")
	ErrOrderNotFoundWrite = errs.New("order not found")
)

type CheckoutRequest struct {
	ResortID       uuid.UUID
	SalesChannelID *uuid.UUID
	StartDate      time.Time
	EndDate        *time.Time
	Lines          []dompricing.LineRequest
	TestOrder      bool
}

type OrderCommands interface {
	Checkout(ctx context.Context, req CheckoutRequest) (*queries.OrderView, error)
	SetTestOrder(ctx context.Context, orderID uuid.UUID, flag bool) (*queries.OrderView, error)
	ReleaseDevices(ctx context.Context, orderID uuid.UUID) (int, error)
}

type orderUseCaseImpl struct {
	uow         shared.UnitOfWork
	aggregator  pricing.Aggregator
	allocator   allocation.Allocator
	invalidator shared.CacheInvalidator
	clock       clock.Clock
	logger      *slog.Logger
}

func NewOrderUseCase(
	uow shared.UnitOfWork,
	aggregator pricing.Aggregator,
	allocator allocation.Allocator,
	invalidator shared.CacheInvalidator,
	clk clock.Clock,
	logger *slog.Logger,
) OrderCommands {
	return &orderUseCaseImpl{
		uow:         uow,
		aggregator:  aggregator,
		allocator:   allocator,
		invalidator: invalidator,
		clock:       clk,
		logger:      logger,
	}
}

// Checkout prices the order and allocates devices for the lines that priced.
// Line failures never fail the call; they leave the order partially_failed.
func (uc *orderUseCaseImpl) Checkout(ctx context.Context, req CheckoutRequest) (*queries.OrderView, error) {
	dateRange, err := dompricing.NewDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	o, err := order.NewOrder(req.ResortID, req.SalesChannelID, dateRange, req.Lines, req.TestOrder, uc.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	if _, err := uc.uow.CommandReads().ResortByID(ctx, req.ResortID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(errs.Wrapf(ErrResortNotFound, "resort %s", req.ResortID), errs.ErrNotFound)
		}
		return nil, err
	}

	// the order is first written once priced
	price, err := uc.aggregator.Aggregate(ctx, pricing.Input{
		ResortID:       o.ResortID(),
		SalesChannelID: o.SalesChannelID(),
		DateRange:      o.DateRange(),
		Lines:          o.Lines(),
	})
	if err != nil {
		return nil, errs.Wrap(err, "aggregate order price")
	}
	if err := o.MarkPriced(price, uc.clock.Now()); err != nil {
		return nil, err
	}
	if err := uc.persist(ctx, o, true); err != nil {
		return nil, err
	}

	fulfillment, err := uc.allocateDevices(ctx, o)
	if err != nil {
		return nil, err
	}
	if err := uc.resolve(ctx, o, fulfillment); err != nil {
		uc.compensate(ctx, o.ID())
		return nil, err
	}

	uc.logger.Info("order checked out",
		"order_id", o.ID().String(),
		"resort_id", o.ResortID().String(),
		"status", o.Status().String(),
		"failed_lines", len(price.FailedLines()))
	return queries.ToOrderView(o), nil
}

// resolve records the allocation outcome. The caller releases held devices when it fails.
func (uc *orderUseCaseImpl) resolve(ctx context.Context, o *order.Order, fulfillment []order.LineFulfillment) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := o.Resolve(fulfillment, uc.clock.Now()); err != nil {
		return err
	}
	return uc.persist(ctx, o, false)
}

// allocateDevices runs one allocation per priced line that asked for a device.
// A cancelled caller gets everything already held released before returning.
func (uc *orderUseCaseImpl) allocateDevices(ctx context.Context, o *order.Order) ([]order.LineFulfillment, error) {
	var fulfillment []order.LineFulfillment
	for i, line := range o.Lines() {
		if !line.NeedsDevice() || !o.Price().OrderItemPrices[i].Success() {
			continue
		}
		if err := ctx.Err(); err != nil {
			uc.compensate(ctx, o.ID())
			return nil, err
		}

		alloc, err := uc.allocator.Allocate(ctx, allocation.Request{
			ResortID:          o.ResortID(),
			OrderID:           o.ID(),
			LineIndex:         i,
			DeviceCode:        line.Device.Code,
			KioskID:           line.Device.KioskID,
			AllowReallocation: line.Device.AllowReallocation,
		})
		if err != nil {
			if ctx.Err() != nil {
				uc.compensate(ctx, o.ID())
				return nil, ctx.Err()
			}
			uc.logger.Warn("device allocation failed",
				"order_id", o.ID().String(),
				"line", i,
				"error", err.Error())
			fulfillment = append(fulfillment, order.LineFulfillment{LineIndex: i, Error: err.Error()})
			continue
		}
		fulfillment = append(fulfillment, order.LineFulfillment{
			LineIndex:  i,
			KioskID:    alloc.KioskID,
			SlotNumber: alloc.SlotNumber,
			DeviceCode: alloc.DeviceCode,
		})
	}
	return fulfillment, nil
}

func (uc *orderUseCaseImpl) compensate(ctx context.Context, orderID uuid.UUID) {
	n, err := uc.allocator.Release(context.WithoutCancel(ctx), orderID)
	if err != nil {
		uc.logger.Error("compensating release failed", "order_id", orderID.String(), "error", err.Error())
		return
	}
	uc.logger.Info("checkout aborted, allocations released", "order_id", orderID.String(), "released", n)
}

func (uc *orderUseCaseImpl) persist(ctx context.Context, o *order.Order, create bool) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if create {
			return tx.Orders().Create(ctx, tx.DB(), o)
		}
		return tx.Orders().Update(ctx, tx.DB(), o)
	})
	if err != nil {
		return err
	}
	uc.invalidator.Invalidate(ctx, cache.OrderTags(o.ResortID())...)
	return nil
}

func (uc *orderUseCaseImpl) loadOrder(ctx context.Context, tx shared.Tx, orderID uuid.UUID) (*order.Order, error) {
	o, err := tx.Reads().OrderByID(ctx, orderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(errs.Wrapf(ErrOrderNotFoundWrite, "order %s", orderID), errs.ErrNotFound)
		}
		return nil, err
	}
	return o, nil
}

func (uc *orderUseCaseImpl) SetTestOrder(ctx context.Context, orderID uuid.UUID, flag bool) (*queries.OrderView, error) {
	var (
		updated *order.Order
		changed bool
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, err := uc.loadOrder(ctx, tx, orderID)
		if err != nil {
			return err
		}
		updated = o
		changed = o.SetTestOrder(flag, uc.clock.Now())
		if !changed {
			return nil
		}
		return tx.Orders().Update(ctx, tx.DB(), o)
	})
	if err != nil {
		return nil, err
	}
	if changed {
		uc.invalidator.Invalidate(ctx, cache.OrderTags(updated.ResortID())...)
	}
	return queries.ToOrderView(updated), nil
}

// ReleaseDevices is the explicit compensation for an order whose checkout was abandoned.
func (uc *orderUseCaseImpl) ReleaseDevices(ctx context.Context, orderID uuid.UUID) (int, error) {
	o, err := uc.uow.CommandReads().OrderByID(ctx, orderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return 0, errs.Mark(errs.Wrapf(ErrOrderNotFoundWrite, "order %s", orderID), errs.ErrNotFound)
		}
		return 0, err
	}
	n, err := uc.allocator.Release(ctx, orderID)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		uc.invalidator.Invalidate(ctx, cache.OrderTags(o.ResortID())...)
	}
	return n, nil
}
