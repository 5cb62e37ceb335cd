package skidata

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"lifepass-admin/internal/domain/device"
	"lifepass-admin/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
)

// DeviceStatus reports the live state of one device. An unknown device is
// marked ErrNotFound; anything else that goes wrong is ErrDeviceUnavailable.
func (c *Client) DeviceStatus(ctx context.Context, deviceID string) (device.LiveStatus, error) {
	path := "/devices/" + url.PathEscape(deviceID) + "/status"
	resp, err := c.do(ctx, http.MethodGet, path, scopeDevices, nil)
	if err != nil {
		return device.LiveStatus{}, errs.Mark(err, errs.ErrDeviceUnavailable)
	}
	switch resp.status {
	case http.StatusOK:
	case http.StatusNotFound:
		return device.LiveStatus{}, errs.Mark(errs.Newf("%s: unknown device", path), errs.ErrNotFound)
	default:
		return device.LiveStatus{}, errs.Mark(unexpected(resp, path), errs.ErrDeviceUnavailable)
	}
	if !gjson.ValidBytes(resp.body) {
		return device.LiveStatus{}, errs.Mark(malformed(path, "invalid json"), errs.ErrDeviceUnavailable)
	}

	doc := gjson.ParseBytes(resp.body)
	connected := doc.Get("connected")
	if !connected.IsBool() {
		return device.LiveStatus{}, errs.Mark(malformed(path, "connected flag missing"), errs.ErrDeviceUnavailable)
	}
	code := doc.Get("deviceId").String()
	if code == "" {
		code = deviceID
	}
	return device.LiveStatus{
		DeviceCode: code,
		Connected:  connected.Bool(),
		Battery:    int(doc.Get("battery").Int()),
		Allocated:  doc.Get("allocated").Bool(),
	}, nil
}

// KioskSlots lists the live slots of a kiosk. Entries with an unknown status are
// reported as faulted so they are never handed out.
func (c *Client) KioskSlots(ctx context.Context, resortID, kioskID uuid.UUID) ([]device.KioskSlot, error) {
	path := "/resorts/" + url.PathEscape(resortID.String()) + "/kiosks/" + url.PathEscape(kioskID.String()) + "/slots"
	resp, err := c.do(ctx, http.MethodGet, path, scopeDevices, nil)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDeviceUnavailable)
	}
	switch resp.status {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, errs.Mark(errs.Newf("%s: unknown kiosk", path), errs.ErrNotFound)
	default:
		return nil, errs.Mark(unexpected(resp, path), errs.ErrDeviceUnavailable)
	}

	doc := gjson.ParseBytes(resp.body)
	if !gjson.ValidBytes(resp.body) || !doc.IsArray() {
		return nil, errs.Mark(malformed(path, "expected a slot array"), errs.ErrDeviceUnavailable)
	}

	slots := make([]device.KioskSlot, 0, len(doc.Array()))
	for _, s := range doc.Array() {
		number := int(s.Get("slotNumber").Int())
		if number <= 0 {
			c.logger.Warn("skipping kiosk slot without a number", "kiosk_id", kioskID.String())
			continue
		}
		status, err := device.NewSlotStatus(s.Get("status").String())
		if err != nil {
			status = device.SlotFault
		}
		var updated time.Time
		if ts := s.Get("lastUpdated").String(); ts != "" {
			if parsed, perr := time.Parse(time.RFC3339, ts); perr == nil {
				updated = parsed
			}
		}
		slots = append(slots, device.KioskSlot{
			KioskID:     kioskID,
			SlotNumber:  number,
			Location:    s.Get("location").String(),
			Status:      status,
			LastUpdated: updated,
			DeviceCode:  s.Get("deviceId").String(),
		})
	}
	return slots, nil
}
