package commands

import (
	"context"

	"lifepass-admin/internal/domain/device"
	"lifepass-admin/internal/infra"
	"lifepass-admin/internal/pkg/clock"
	"lifepass-admin/internal/pkg/errs"
	"lifepass-admin/internal/usecase/shared"
)

var ErrDuplicateDevice = errs.New("device already provisioned")

type ProvisionDeviceRequest struct {
	Serial   string
	ChipID   string
	LuhnCode int
}

type DeviceCommands interface {
	Provision(ctx context.Context, req ProvisionDeviceRequest) (*device.Device, error)
}

type deviceUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewDeviceUseCase(uow shared.UnitOfWork, clk clock.Clock) DeviceCommands {
	return &deviceUseCaseImpl{uow: uow, clock: clk}
}

func (uc *deviceUseCaseImpl) Provision(ctx context.Context, req ProvisionDeviceRequest) (*device.Device, error) {
	d, err := device.NewDevice(req.Serial, req.ChipID, req.LuhnCode, uc.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Devices().Create(ctx, tx.DB(), d)
	})
	if infra.IsKind(err, infra.KindDuplicateKey) {
		return nil, errs.Mark(errs.Wrapf(ErrDuplicateDevice, "serial %s", d.Serial()), errs.ErrConflict)
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}
