package repository

import (
	"context"
	"log/slog"

	"lifepass-admin/internal/domain/device"
	"lifepass-admin/internal/infra/db"
)

type DeviceRepository struct {
	logger *slog.Logger
}

func NewDeviceRepository(logger *slog.Logger) *DeviceRepository {
	return &DeviceRepository{logger: logger}
}

func (r *DeviceRepository) Create(ctx context.Context, tx db.DBTX, d *device.Device) error {
	_, err := execAffected(ctx, tx, r.logger, "failed to create device", psql.
		Insert("devices").
		Columns("id", "serial", "chip_id", "luhn_code", "hex", "created_at", "updated_at").
		Values(d.ID(), d.Serial(), d.ChipID(), d.LuhnCode(), d.Hex(), d.CreatedAt(), d.UpdatedAt()))
	return err
}
