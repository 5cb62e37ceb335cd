package allocation

import (
	"context"
	"log/slog"

	"lifepass-admin/internal/domain/device"
	"lifepass-admin/internal/infra"
	"lifepass-admin/internal/pkg/clock"
	"lifepass-admin/internal/pkg/errs"
	"lifepass-admin/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var (
	ErrMissingTarget  = errs.New("allocation needs a device code or a kiosk")
	ErrMissingOrder   = errs.New("allocation needs a resort and an order")
	ErrDeviceNotFound = errs.New("device not found")
	ErrKioskNotFound  = errs.New("kiosk not found")
	ErrDeviceOccupied = errs.New("device is occupied")
	ErrDeviceFaulted  = errs.New("device is faulted")
	ErrNoEmptySlot    = errs.New("no empty slot at kiosk")
	ErrStatusLookup   = errs.New("device status authority unavailable")

	errClaimLost = errs.New("claim lost to a concurrent allocation")
)

// StatusAuthority reports live device and slot state. Nothing it returns is persisted.
type StatusAuthority interface {
	DeviceStatus(ctx context.Context, deviceID string) (device.LiveStatus, error)
	KioskSlots(ctx context.Context, resortID, kioskID uuid.UUID) ([]device.KioskSlot, error)
}

type Request struct {
	ResortID   uuid.UUID
	OrderID    uuid.UUID
	LineIndex  int
	DeviceCode string
	KioskID    *uuid.UUID
	// AllowReallocation lets a busy requested device be replaced by a slot at KioskID.
	AllowReallocation bool
}

func (r Request) Validate() error {
	if r.ResortID == uuid.Nil || r.OrderID == uuid.Nil {
		return errs.Mark(ErrMissingOrder, errs.ErrValidation)
	}
	if r.DeviceCode == "" && r.KioskID == nil {
		return errs.Mark(ErrMissingTarget, errs.ErrValidation)
	}
	return nil
}

type Allocator interface {
	Allocate(ctx context.Context, req Request) (*device.Allocation, error)
	// Release frees every allocation the order still holds. Safe to repeat.
	Release(ctx context.Context, orderID uuid.UUID) (int, error)
}

type allocator struct {
	uow       shared.UnitOfWork
	authority StatusAuthority
	clock     clock.Clock
	logger    *slog.Logger
	tracer    trace.Tracer
}

func NewAllocator(uow shared.UnitOfWork, authority StatusAuthority, clk clock.Clock, logger *slog.Logger) Allocator {
	return &allocator{
		uow:       uow,
		authority: authority,
		clock:     clk,
		logger:    logger,
		tracer:    otel.Tracer("lifepass-admin/usecase/allocation"),
	}
}

func (a *allocator) Allocate(ctx context.Context, req Request) (*device.Allocation, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	ctx, span := a.tracer.Start(ctx, "allocation.Allocate", trace.WithAttributes(
		attribute.String("order.id", req.OrderID.String()),
		attribute.Int("line.index", req.LineIndex),
	))
	defer span.End()

	alloc, err := a.allocate(ctx, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.String("device.code", alloc.DeviceCode))
	return alloc, nil
}

func (a *allocator) allocate(ctx context.Context, req Request) (*device.Allocation, error) {
	if req.DeviceCode == "" {
		return a.byKiosk(ctx, req)
	}
	alloc, err := a.byDevice(ctx, req)
	if err == nil {
		return alloc, nil
	}
	if !req.AllowReallocation || req.KioskID == nil || !errs.Is(err, errs.ErrDeviceUnavailable) {
		return nil, err
	}
	a.logger.Info("requested device unavailable, reallocating at kiosk",
		"order_id", req.OrderID.String(),
		"device_code", req.DeviceCode,
		"kiosk_id", req.KioskID.String())
	return a.byKiosk(ctx, req)
}

func (a *allocator) byDevice(ctx context.Context, req Request) (*device.Allocation, error) {
	dev, err := a.uow.CommandReads().DeviceByCode(ctx, device.NormalizeCode(req.DeviceCode))
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(errs.Wrapf(ErrDeviceNotFound, "device %s", req.DeviceCode), errs.ErrNotFound)
		}
		return nil, err
	}

	status, err := a.authority.DeviceStatus(ctx, dev.Serial())
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, ErrStatusLookup.Error()), errs.ErrDeviceUnavailable)
	}
	switch status.SlotStatus() {
	case device.SlotFault:
		return nil, errs.Mark(errs.Wrapf(ErrDeviceFaulted, "device %s", dev.Serial()), errs.ErrDeviceUnavailable)
	case device.SlotOccupied:
		return nil, errs.Mark(errs.Wrapf(ErrDeviceOccupied, "device %s", dev.Serial()), errs.ErrDeviceUnavailable)
	}

	alloc := device.Allocation{
		ID:          uuid.New(),
		OrderID:     req.OrderID,
		LineIndex:   req.LineIndex,
		DeviceCode:  dev.Serial(),
		AllocatedAt: a.clock.Now(),
	}
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ok, err := tx.Allocations().Record(ctx, tx.DB(), alloc)
		if err != nil {
			return err
		}
		if !ok {
			return errClaimLost
		}
		return nil
	})
	if errs.Is(err, errClaimLost) {
		return nil, errs.Mark(errs.Wrapf(ErrDeviceOccupied, "device %s", dev.Serial()), errs.ErrDeviceUnavailable)
	}
	if err != nil {
		return nil, err
	}
	return &alloc, nil
}

// byKiosk claims the lowest numbered empty slot. A slot lost to a concurrent
// claim is skipped in favour of the next one.
func (a *allocator) byKiosk(ctx context.Context, req Request) (*device.Allocation, error) {
	kiosk, err := a.uow.CommandReads().KioskByID(ctx, *req.KioskID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(errs.Wrapf(ErrKioskNotFound, "kiosk %s", req.KioskID), errs.ErrNotFound)
		}
		return nil, err
	}
	if kiosk.ResortID() != req.ResortID {
		return nil, errs.Mark(errs.Wrapf(ErrKioskNotFound, "kiosk %s", req.KioskID), errs.ErrNotFound)
	}

	slots, err := a.authority.KioskSlots(ctx, req.ResortID, kiosk.ID())
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, ErrStatusLookup.Error()), errs.ErrDeviceUnavailable)
	}

	for _, slot := range device.EmptySlots(slots) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		alloc := device.Allocation{
			ID:          uuid.New(),
			OrderID:     req.OrderID,
			LineIndex:   req.LineIndex,
			KioskID:     &slot.KioskID,
			SlotNumber:  &slot.SlotNumber,
			DeviceCode:  slot.DeviceCode,
			AllocatedAt: a.clock.Now(),
		}
		err := a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			ok, err := tx.Allocations().ClaimSlot(ctx, tx.DB(), kiosk.ID(), slot.SlotNumber, req.OrderID, slot.DeviceCode, alloc.AllocatedAt)
			if err != nil {
				return err
			}
			if !ok {
				return errClaimLost
			}
			ok, err = tx.Allocations().Record(ctx, tx.DB(), alloc)
			if err != nil {
				return err
			}
			if !ok {
				return errClaimLost
			}
			return nil
		})
		if err == nil {
			return &alloc, nil
		}
		if !errs.Is(err, errClaimLost) {
			return nil, err
		}
		a.logger.Debug("slot claimed concurrently, trying next",
			"kiosk_id", kiosk.ID().String(),
			"slot", slot.SlotNumber)
	}

	return nil, errs.Mark(errs.Wrapf(ErrNoEmptySlot, "kiosk %s", kiosk.ID()), errs.ErrDeviceUnavailable)
}

func (a *allocator) Release(ctx context.Context, orderID uuid.UUID) (int, error) {
	var released int
	err := a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Allocations().ReleaseByOrder(ctx, tx.DB(), orderID, a.clock.Now())
		if err != nil {
			return err
		}
		released = n
		return nil
	})
	if err != nil {
		return 0, err
	}
	if released > 0 {
		a.logger.Info("released order allocations", "order_id", orderID.String(), "count", released)
	}
	return released, nil
}
