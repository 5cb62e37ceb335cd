package response

import (
	"strconv"

	"lifepass-admin/internal/domain/device"
	"lifepass-admin/internal/usecase/queries"
)

type LiveStatusResponse struct {
	Connected bool   `json:"connected"`
	Battery   int    `json:"battery"`
	Allocated bool   `json:"allocated"`
	Status    string `json:"status"`
}

type DeviceResponse struct {
	ID          string              `json:"id"`
	Serial      string              `json:"serial"`
	ChipID      string              `json:"chip_id"`
	LuhnCode    int                 `json:"luhn_code"`
	PrintedCode string              `json:"printed_code"`
	Hex         string              `json:"hex"`
	Live        *LiveStatusResponse `json:"live,omitempty"`
	CreatedAt   int64               `json:"created_at"`
	UpdatedAt   int64               `json:"updated_at"`
}

func FromDevice(d *device.Device) *DeviceResponse {
	return &DeviceResponse{
		ID:          d.ID().String(),
		Serial:      d.Serial(),
		ChipID:      d.ChipID(),
		LuhnCode:    d.LuhnCode(),
		PrintedCode: d.PrintedCode(),
		Hex:         d.Hex(),
		CreatedAt:   d.CreatedAt().Unix(),
		UpdatedAt:   d.UpdatedAt().Unix(),
	}
}

func FromDeviceWithStatus(v *queries.DeviceWithStatus) *DeviceResponse {
	res := &DeviceResponse{
		ID:          v.ID.String(),
		Serial:      v.Serial,
		ChipID:      v.ChipID,
		LuhnCode:    v.LuhnCode,
		PrintedCode: v.ChipID + strconv.Itoa(v.LuhnCode),
		Hex:         v.Hex,
		CreatedAt:   v.CreatedAt.Unix(),
		UpdatedAt:   v.UpdatedAt.Unix(),
	}
	if v.Live != nil {
		res.Live = &LiveStatusResponse{
			Connected: v.Live.Connected,
			Battery:   v.Live.Battery,
			Allocated: v.Live.Allocated,
			Status:    v.Live.Status.String(),
		}
	}
	return res
}
