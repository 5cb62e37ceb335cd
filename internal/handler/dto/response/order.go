package response

import (
	"lifepass-admin/internal/domain/order"
	"lifepass-admin/internal/domain/pricing"
	"lifepass-admin/internal/usecase/queries"
)

// OrderResponse keeps lines, price and fulfillment in their persisted shape.
type OrderResponse struct {
	ID             string                  `json:"id"`
	ResortID       string                  `json:"resort_id"`
	SalesChannelID *string                 `json:"sales_channel_id,omitempty"`
	StartDate      string                  `json:"start_date"`
	EndDate        *string                 `json:"end_date,omitempty"`
	Lines          []pricing.LineRequest   `json:"lines"`
	Price          *pricing.OrderPrice     `json:"price,omitempty"`
	Fulfillment    []order.LineFulfillment `json:"fulfillment"`
	Status         string                  `json:"status"`
	TestOrder      bool                    `json:"test_order"`
	CreatedAt      int64                   `json:"created_at"`
	UpdatedAt      int64                   `json:"updated_at"`
}

const dateLayout = "2006-01-02"

func FromOrderView(v *queries.OrderView) *OrderResponse {
	res := &OrderResponse{
		ID:          v.ID.String(),
		ResortID:    v.ResortID.String(),
		StartDate:   v.StartDate.Format(dateLayout),
		Lines:       v.Lines,
		Price:       v.Price,
		Fulfillment: v.Fulfillment,
		Status:      v.Status.String(),
		TestOrder:   v.TestOrder,
		CreatedAt:   v.CreatedAt.Unix(),
		UpdatedAt:   v.UpdatedAt.Unix(),
	}
	if v.SalesChannelID != nil {
		id := v.SalesChannelID.String()
		res.SalesChannelID = &id
	}
	if v.EndDate != nil {
		end := v.EndDate.Format(dateLayout)
		res.EndDate = &end
	}
	if res.Fulfillment == nil {
		res.Fulfillment = []order.LineFulfillment{}
	}
	return res
}

type OrderListResponse struct {
	Items      []*OrderResponse `json:"items"`
	NextCursor string           `json:"next_cursor,omitempty"`
}

func FromOrderPage(p *queries.OrderPage) *OrderListResponse {
	items := make([]*OrderResponse, len(p.Items))
	for i := range p.Items {
		items[i] = FromOrderView(&p.Items[i])
	}
	return &OrderListResponse{Items: items, NextCursor: p.NextCursor}
}

type ReleaseResponse struct {
	OrderID  string `json:"order_id"`
	Released int    `json:"released"`
}
