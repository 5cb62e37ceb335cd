package request

import "lifepass-admin/internal/usecase/commands"

type ProvisionDeviceRequest struct {
	Serial   string `json:"serial" binding:"required,max=64"`
	ChipID   string `json:"chip_id" binding:"required,numeric,max=32"`
	LuhnCode *int   `json:"luhn_code" binding:"required,min=0,max=9"`
}

func (r *ProvisionDeviceRequest) ToCommand() commands.ProvisionDeviceRequest {
	return commands.ProvisionDeviceRequest{Serial: r.Serial, ChipID: r.ChipID, LuhnCode: *r.LuhnCode}
}

type InvalidateCacheRequest struct {
	Tags []string `json:"tags" binding:"required,min=1,dive,required"`
}
