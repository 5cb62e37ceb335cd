package readstore

import (
	"context"
	"log/slog"

	"lifepass-admin/internal/domain/device"
	"lifepass-admin/internal/infra"
	"lifepass-admin/internal/infra/db"
	"lifepass-admin/internal/usecase/queries"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var kioskColumns = []string{"id", "resort_id", "name", "type", "content_block_ids", "location", "slot_count", "created_at", "updated_at"}

func scanKiosk(row pgx.Row) (queries.KioskView, error) {
	var (
		v        queries.KioskView
		location []byte
	)
	if err := row.Scan(&v.ID, &v.ResortID, &v.Name, &v.Type, &v.ContentBlockIDs, &location, &v.SlotCount, &v.CreatedAt, &v.UpdatedAt); err != nil {
		return v, err
	}
	return v, unmarshalAll([]jsonField{{location, &v.Location}})
}

type KioskReadStore struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewKioskReadStore(dbtx db.DBTX, logger *slog.Logger) *KioskReadStore {
	return &KioskReadStore{db: dbtx, logger: logger}
}

func (r *KioskReadStore) FindKiosk(ctx context.Context, id uuid.UUID) (*queries.KioskView, error) {
	row, err := one(ctx, r.db, r.logger, "kiosk query", psql.Select(kioskColumns...).From("kiosks").Where(sq.Eq{"id": id}))
	if err != nil {
		return nil, err
	}
	v, err := scanKiosk(row)
	if err != nil {
		return nil, infra.WrapPgErr(r.logger, "failed to get kiosk by id", err)
	}
	return &v, nil
}

func (r *KioskReadStore) KiosksByResort(ctx context.Context, resortID uuid.UUID) ([]queries.KioskView, error) {
	return list(ctx, r.db, r.logger, "kiosks", byResort("kiosks", kioskColumns, resortID), scanKiosk)
}

func (r *KioskReadStore) HeldSlots(ctx context.Context, kioskID uuid.UUID) ([]int, error) {
	b := psql.Select("slot_number").From("order_allocations").
		Where(sq.Eq{"kiosk_id": kioskID, "released_at": nil}).
		Where(sq.NotEq{"slot_number": nil}).
		OrderBy("slot_number")
	return list(ctx, r.db, r.logger, "held slots", b, func(row pgx.Row) (int, error) {
		var n int
		err := row.Scan(&n)
		return n, err
	})
}

func (r *KioskReadStore) KioskByID(ctx context.Context, id uuid.UUID) (*device.Kiosk, error) {
	v, err := r.FindKiosk(ctx, id)
	if err != nil {
		return nil, err
	}
	return device.ReconstructKiosk(v.ID, v.ResortID, v.Name, v.Type, v.ContentBlockIDs, v.Location, v.SlotCount, v.CreatedAt, v.UpdatedAt), nil
}
