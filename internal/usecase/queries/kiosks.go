package queries

import (
	"context"
	"time"

	"lifepass-admin/internal/domain/catalog"
	"lifepass-admin/internal/domain/device"
	"lifepass-admin/internal/infra"
	"lifepass-admin/internal/infra/cache"
	"lifepass-admin/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrKioskNotFound = errs.New("kiosk not found")

type KioskView struct {
	ID              uuid.UUID       `json:"id"`
	ResortID        uuid.UUID       `json:"resort_id"`
	Name            string          `json:"name"`
	Type            string          `json:"type"`
	ContentBlockIDs []uuid.UUID     `json:"content_block_ids"`
	Location        device.Location `json:"location"`
	SlotCount       int             `json:"slot_count"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type KioskSlotView struct {
	KioskID     uuid.UUID         `json:"kiosk_id"`
	SlotNumber  int               `json:"slot_number"`
	Location    string            `json:"location"`
	Status      device.SlotStatus `json:"status"`
	LastUpdated time.Time         `json:"last_updated"`
	DeviceCode  string            `json:"device_code,omitempty"`
}

// SlotAuthority is the read half of the device-status authority.
type SlotAuthority interface {
	DeviceStatus(ctx context.Context, deviceID string) (device.LiveStatus, error)
	KioskSlots(ctx context.Context, resortID, kioskID uuid.UUID) ([]device.KioskSlot, error)
}

type KioskReadStore interface {
	FindKiosk(ctx context.Context, id uuid.UUID) (*KioskView, error)
	KiosksByResort(ctx context.Context, resortID uuid.UUID) ([]KioskView, error)
	// HeldSlots lists slot numbers that an unreleased allocation still holds.
	HeldSlots(ctx context.Context, kioskID uuid.UUID) ([]int, error)
}

type KioskQueries interface {
	List(ctx context.Context, resortID uuid.UUID) CatalogList[KioskView]
	Slots(ctx context.Context, resortID, kioskID uuid.UUID) ([]KioskSlotView, error)
}

type kioskQueriesImpl struct {
	store     KioskReadStore
	authority SlotAuthority
	cache     *cache.Service
}

func NewKioskQueries(store KioskReadStore, authority SlotAuthority, cacheSvc *cache.Service) KioskQueries {
	return &kioskQueriesImpl{store: store, authority: authority, cache: cacheSvc}
}

func (q *kioskQueriesImpl) List(ctx context.Context, resortID uuid.UUID) CatalogList[KioskView] {
	return fetchList(ctx, q.cache, catalog.EntityKiosks, resortID, q.store.KiosksByResort)
}

// Slots is a live search. Slots still held by a local allocation report occupied even
// when the authority has not caught up yet.
func (q *kioskQueriesImpl) Slots(ctx context.Context, resortID, kioskID uuid.UUID) ([]KioskSlotView, error) {
	kiosk, err := q.store.FindKiosk(ctx, kioskID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(errs.Wrapf(ErrKioskNotFound, "kiosk %s", kioskID), errs.ErrNotFound)
		}
		return nil, errs.Wrap(err, "find kiosk")
	}
	if kiosk.ResortID != resortID {
		return nil, errs.Mark(errs.Wrapf(ErrKioskNotFound, "kiosk %s", kioskID), errs.ErrNotFound)
	}

	slots, err := q.authority.KioskSlots(ctx, resortID, kioskID)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "kiosk slot search"), errs.ErrDeviceUnavailable)
	}
	held, err := q.store.HeldSlots(ctx, kioskID)
	if err != nil {
		return nil, errs.Wrap(err, "held slots")
	}
	heldSet := make(map[int]struct{}, len(held))
	for _, n := range held {
		heldSet[n] = struct{}{}
	}

	views := make([]KioskSlotView, 0, len(slots))
	for _, s := range slots {
		status := s.Status
		if _, ok := heldSet[s.SlotNumber]; ok && status == device.SlotEmpty {
			status = device.SlotOccupied
		}
		views = append(views, KioskSlotView{
			KioskID:     s.KioskID,
			SlotNumber:  s.SlotNumber,
			Location:    s.Location,
			Status:      status,
			LastUpdated: s.LastUpdated,
			DeviceCode:  s.DeviceCode,
		})
	}
	return views, nil
}
