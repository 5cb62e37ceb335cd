package readstore

import (
	"context"
	"log/slog"

	"lifepass-admin/internal/domain/device"
	"lifepass-admin/internal/infra"
	"lifepass-admin/internal/infra/db"
	"lifepass-admin/internal/usecase/queries"

	sq "github.com/Masterminds/squirrel"
)

type DeviceReadStore struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewDeviceReadStore(dbtx db.DBTX, logger *slog.Logger) *DeviceReadStore {
	return &DeviceReadStore{db: dbtx, logger: logger}
}

// FindByCode matches the serial, the chip id or the printed code (chip id plus check digit).
func (r *DeviceReadStore) FindByCode(ctx context.Context, code string) (*queries.DeviceView, error) {
	b := psql.Select("id", "serial", "chip_id", "luhn_code", "hex", "created_at", "updated_at").
		From("devices").
		Where(sq.Or{
			sq.Eq{"serial": code},
			sq.Eq{"chip_id": code},
			sq.Expr("chip_id || luhn_code::text = ?", code),
		}).
		Limit(1)
	row, err := one(ctx, r.db, r.logger, "device query", b)
	if err != nil {
		return nil, err
	}
	var v queries.DeviceView
	if err := row.Scan(&v.ID, &v.Serial, &v.ChipID, &v.LuhnCode, &v.Hex, &v.CreatedAt, &v.UpdatedAt); err != nil {
		return nil, infra.WrapPgErr(r.logger, "failed to find device by code", err)
	}
	return &v, nil
}

func (r *DeviceReadStore) DeviceByCode(ctx context.Context, code string) (*device.Device, error) {
	v, err := r.FindByCode(ctx, device.NormalizeCode(code))
	if err != nil {
		return nil, err
	}
	return device.ReconstructDevice(v.ID, v.Serial, v.ChipID, v.LuhnCode, v.Hex, v.CreatedAt, v.UpdatedAt), nil
}
