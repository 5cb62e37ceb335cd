package request

import (
	"time"

	"lifepass-admin/internal/domain/pricing"
	"lifepass-admin/internal/handler/validation"
	"lifepass-admin/internal/usecase/commands"

	"github.com/google/uuid"
)

type DeviceRequest struct {
	Code              string     `json:"code" binding:"omitempty,max=64"`
	KioskID           *uuid.UUID `json:"kiosk_id"`
	AllowReallocation bool       `json:"allow_reallocation"`
}

type OrderLineRequest struct {
	ProductID          uuid.UUID      `json:"product_id" binding:"required"`
	ConsumerCategoryID uuid.UUID      `json:"consumer_category_id" binding:"required"`
	Age                *int           `json:"age" binding:"omitempty,min=0,max=130"`
	WithInsurance      bool           `json:"with_insurance"`
	Device             *DeviceRequest `json:"device"`
}

type CheckoutRequest struct {
	SalesChannelID *uuid.UUID         `json:"sales_channel_id"`
	StartDate      string             `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate        *string            `json:"end_date" binding:"omitempty,datetime=2006-01-02,daterange=StartDate"`
	Lines          []OrderLineRequest `json:"lines" binding:"required,min=1,dive"`
	TestOrder      bool               `json:"test_order"`
}

// ToCommand assumes the request passed binding, so the dates parse.
func (r *CheckoutRequest) ToCommand(resortID uuid.UUID) commands.CheckoutRequest {
	start, _ := time.Parse(validation.DateLayout, r.StartDate)
	var end *time.Time
	if r.EndDate != nil {
		t, _ := time.Parse(validation.DateLayout, *r.EndDate)
		end = &t
	}

	lines := make([]pricing.LineRequest, len(r.Lines))
	for i, l := range r.Lines {
		lines[i] = pricing.LineRequest{
			ProductID:          l.ProductID,
			ConsumerCategoryID: l.ConsumerCategoryID,
			Age:                l.Age,
			WithInsurance:      l.WithInsurance,
		}
		if l.Device != nil {
			lines[i].Device = &pricing.DeviceRequest{
				Code:              l.Device.Code,
				KioskID:           l.Device.KioskID,
				AllowReallocation: l.Device.AllowReallocation,
			}
		}
	}

	return commands.CheckoutRequest{
		ResortID:       resortID,
		SalesChannelID: r.SalesChannelID,
		StartDate:      start,
		EndDate:        end,
		Lines:          lines,
		TestOrder:      r.TestOrder,
	}
}

type SetTestOrderRequest struct {
	TestOrder *bool `json:"test_order" binding:"required"`
}

type ListOrdersQuery struct {
	Status string `form:"status" binding:"omitempty,oneof=draft priced fulfilled partially_failed"`
	Test   *bool  `form:"test"`
	Limit  *int   `form:"limit" binding:"omitempty,min=1,max=200"`
	After  string `form:"after"`
}
