package repository

import (
	"context"
	"log/slog"
	"time"

	"lifepass-admin/internal/domain/device"
	"lifepass-admin/internal/domain/order"
	"lifepass-admin/internal/infra"
	"lifepass-admin/internal/infra/db"
	"lifepass-admin/internal/pkg/pgconv"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type AllocationRepository struct {
	logger *slog.Logger
}

func NewAllocationRepository(logger *slog.Logger) *AllocationRepository {
	return &AllocationRepository{logger: logger}
}

// ClaimSlot is the exclusivity point for kiosk allocations: only one transaction can
// move a slot from empty to occupied. Slots the authority reports beyond the seeded
// rows are inserted on first claim.
func (r *AllocationRepository) ClaimSlot(ctx context.Context, tx db.DBTX, kioskID uuid.UUID, slotNumber int, orderID uuid.UUID, deviceCode string, now time.Time) (bool, error) {
	n, err := execAffected(ctx, tx, r.logger, "failed to claim kiosk slot", psql.
		Insert("kiosk_slots").
		Columns("kiosk_id", "slot_number", "status", "order_id", "device_code", "updated_at").
		Values(kioskID, slotNumber, device.SlotOccupied.String(), orderID, deviceCode, now).
		Suffix(`ON CONFLICT (kiosk_id, slot_number) DO UPDATE
			SET status = EXCLUDED.status, order_id = EXCLUDED.order_id,
			    device_code = EXCLUDED.device_code, updated_at = EXCLUDED.updated_at
			WHERE kiosk_slots.status = ?`, device.SlotEmpty.String()))
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (r *AllocationRepository) Record(ctx context.Context, tx db.DBTX, a device.Allocation) (bool, error) {
	n, err := execAffected(ctx, tx, r.logger, "failed to record allocation", psql.
		Insert("order_allocations").
		Columns("id", "order_id", "line_index", "kiosk_id", "slot_number", "device_code", "allocated_at").
		Values(a.ID, a.OrderID, a.LineIndex, pgconv.UUIDPtrToPgtype(a.KioskID), pgconv.IntPtrToPgtype(a.SlotNumber), a.DeviceCode, a.AllocatedAt).
		Suffix("ON CONFLICT DO NOTHING"))
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

// ReleaseByOrder frees the order's slots and stamps its allocations released.
// Rows already released are left alone, so a repeat reports zero.
func (r *AllocationRepository) ReleaseByOrder(ctx context.Context, tx db.DBTX, orderID uuid.UUID, now time.Time) (int, error) {
	_, err := execAffected(ctx, tx, r.logger, "failed to free kiosk slots", psql.
		Update("kiosk_slots").
		Set("status", device.SlotEmpty.String()).
		Set("order_id", nil).
		Set("updated_at", now).
		Where(sq.Eq{"order_id": orderID, "status": device.SlotOccupied.String()}))
	if err != nil {
		return 0, err
	}
	n, err := execAffected(ctx, tx, r.logger, "failed to release allocations", psql.
		Update("order_allocations").
		Set("released_at", now).
		Where(sq.Eq{"order_id": orderID, "released_at": nil}))
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

func (r *AllocationRepository) ActiveByOrder(ctx context.Context, tx db.DBTX, orderID uuid.UUID) ([]device.Allocation, error) {
	query, args, err := psql.
		Select("id", "order_id", "line_index", "kiosk_id", "slot_number", "device_code", "allocated_at").
		From("order_allocations").
		Where(sq.Eq{"order_id": orderID, "released_at": nil}).
		OrderBy("line_index").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "build active allocations query", err)
	}
	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapPgErr(r.logger, "failed to list active allocations", err)
	}
	defer rows.Close()

	var out []device.Allocation
	for rows.Next() {
		var (
			a       device.Allocation
			kioskID pgtype.UUID
			slot    pgtype.Int4
		)
		if err := rows.Scan(&a.ID, &a.OrderID, &a.LineIndex, &kioskID, &slot, &a.DeviceCode, &a.AllocatedAt); err != nil {
			return nil, infra.WrapPgErr(r.logger, "failed to scan allocation", err)
		}
		a.KioskID = pgconv.UUIDPtrFromPgtype(kioskID)
		a.SlotNumber = pgconv.IntPtrFromPgtype(slot)
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapPgErr(r.logger, "failed to iterate allocations", err)
	}
	return out, nil
}

func (r *AllocationRepository) StaleOrders(ctx context.Context, tx db.DBTX, before time.Time, limit int) ([]uuid.UUID, error) {
	query, args, err := psql.
		Select("DISTINCT a.order_id").
		From("order_allocations a").
		Join("orders o ON o.id = a.order_id").
		Where(sq.Eq{"a.released_at": nil, "o.status": order.StatusPriced.String()}).
		Where(sq.Lt{"a.allocated_at": before}).
		Limit(uint64(max(limit, 1))). // #nosec G115 -- bounded above zero
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "build stale orders query", err)
	}
	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapPgErr(r.logger, "failed to list stale orders", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapPgErr(r.logger, "failed to scan stale order", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapPgErr(r.logger, "failed to iterate stale orders", err)
	}
	return ids, nil
}
