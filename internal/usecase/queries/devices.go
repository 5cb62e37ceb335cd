package queries

import (
	"context"
	"log/slog"
	"time"

	"lifepass-admin/internal/domain/device"
	"lifepass-admin/internal/infra"
	"lifepass-admin/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrDeviceNotFound = errs.New("device not found")

type DeviceView struct {
	ID        uuid.UUID `json:"id"`
	Serial    string    `json:"serial"`
	ChipID    string    `json:"chip_id"`
	LuhnCode  int       `json:"luhn_code"`
	Hex       string    `json:"hex"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type LiveStatusView struct {
	Connected bool              `json:"connected"`
	Battery   int               `json:"battery"`
	Allocated bool              `json:"allocated"`
	Status    device.SlotStatus `json:"status"`
}

type DeviceWithStatus struct {
	DeviceView
	// Live is nil when the status authority could not be reached.
	Live *LiveStatusView `json:"live,omitempty"`
}

type DeviceReadStore interface {
	// FindByCode matches serial, chip id or printed code.
	FindByCode(ctx context.Context, code string) (*DeviceView, error)
}

type DeviceQueries interface {
	Lookup(ctx context.Context, code string) (*DeviceWithStatus, error)
}

type deviceQueriesImpl struct {
	store     DeviceReadStore
	authority SlotAuthority
	logger    *slog.Logger
}

func NewDeviceQueries(store DeviceReadStore, authority SlotAuthority, logger *slog.Logger) DeviceQueries {
	return &deviceQueriesImpl{store: store, authority: authority, logger: logger}
}

func (q *deviceQueriesImpl) Lookup(ctx context.Context, code string) (*DeviceWithStatus, error) {
	view, err := q.store.FindByCode(ctx, device.NormalizeCode(code))
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(errs.Wrapf(ErrDeviceNotFound, "device %s", code), errs.ErrNotFound)
		}
		return nil, errs.Wrap(err, "find device")
	}

	out := &DeviceWithStatus{DeviceView: *view}
	live, err := q.authority.DeviceStatus(ctx, view.Serial)
	if err != nil {
		q.logger.Warn("device status unavailable", "serial", view.Serial, "error", err.Error())
		return out, nil
	}
	out.Live = &LiveStatusView{
		Connected: live.Connected,
		Battery:   live.Battery,
		Allocated: live.Allocated,
		Status:    live.SlotStatus(),
	}
	return out, nil
}
