//go:build unit || e2e

package builder

import (
	"time"

	"lifepass-admin/internal/domain/order"
	"lifepass-admin/internal/domain/pricing"
	reqdto "lifepass-admin/internal/handler/dto/request"
	"lifepass-admin/internal/usecase/queries"

	"github.com/google/uuid"
)

type CheckoutBuilder struct {
	ResortID       uuid.UUID
	SalesChannelID *uuid.UUID
	StartDate      string
	EndDate        *string
	Lines          []reqdto.OrderLineRequest
	TestOrder      bool
}

func NewCheckoutBuilder() *CheckoutBuilder {
	return &CheckoutBuilder{
		ResortID:  uuid.New(),
		StartDate: "2026-12-24",
		Lines: []reqdto.OrderLineRequest{
			{ProductID: uuid.New(), ConsumerCategoryID: uuid.New()},
		},
	}
}

func (b *CheckoutBuilder) With(mutate func(*CheckoutBuilder)) *CheckoutBuilder {
	mutate(b)
	return b
}

func (b *CheckoutBuilder) BuildDTO() reqdto.CheckoutRequest {
	lines := make([]reqdto.OrderLineRequest, len(b.Lines))
	copy(lines, b.Lines)
	return reqdto.CheckoutRequest{
		SalesChannelID: b.SalesChannelID,
		StartDate:      b.StartDate,
		EndDate:        b.EndDate,
		Lines:          lines,
		TestOrder:      b.TestOrder,
	}
}

// BuildView renders the order the checkout would produce, with every line priced and no devices.
func (b *CheckoutBuilder) BuildView(status order.Status) *queries.OrderView {
	start, _ := time.Parse("2006-01-02", b.StartDate)
	now := time.Now().UTC().Truncate(time.Second)
	lines := make([]pricing.LineRequest, len(b.Lines))
	for i, l := range b.Lines {
		lines[i] = pricing.LineRequest{
			ProductID:          l.ProductID,
			ConsumerCategoryID: l.ConsumerCategoryID,
			Age:                l.Age,
			WithInsurance:      l.WithInsurance,
		}
	}
	return &queries.OrderView{
		ID:             uuid.New(),
		ResortID:       b.ResortID,
		SalesChannelID: b.SalesChannelID,
		StartDate:      start,
		Lines:          lines,
		Status:         status,
		TestOrder:      b.TestOrder,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// Fluent builder methods
func (b *CheckoutBuilder) WithLines(lines ...reqdto.OrderLineRequest) *CheckoutBuilder {
	b.Lines = lines
	return b
}

func (b *CheckoutBuilder) WithDates(start string, end *string) *CheckoutBuilder {
	b.StartDate = start
	b.EndDate = end
	return b
}

func (b *CheckoutBuilder) WithSalesChannel(id uuid.UUID) *CheckoutBuilder {
	b.SalesChannelID = &id
	return b
}

func (b *CheckoutBuilder) AsTestOrder() *CheckoutBuilder {
	b.TestOrder = true
	return b
}

// DeviceLine is a line that asks for a specific device.
func DeviceLine(productID, consumerCategoryID uuid.UUID, code string) reqdto.OrderLineRequest {
	return reqdto.OrderLineRequest{
		ProductID:          productID,
		ConsumerCategoryID: consumerCategoryID,
		Device:             &reqdto.DeviceRequest{Code: code},
	}
}
