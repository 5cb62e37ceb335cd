//go:build unit || e2e

package builder

import (
	reqdto "lifepass-admin/internal/handler/dto/request"

	"github.com/shopspring/decimal"
)

type ProductBuilder struct {
	Title      map[string]string
	ExternalID string
	Active     *bool
}

func NewProductBuilder() *ProductBuilder {
	return &ProductBuilder{
		Title:      map[string]string{"de": "Tageskarte", "en": "Day pass"},
		ExternalID: "SKI-DAY-1",
	}
}

func (b *ProductBuilder) BuildDTO() reqdto.ProductRequest {
	return reqdto.ProductRequest{
		Active: b.Active,
		Title:  b.Title,
		Authority: reqdto.ProductAuthorityRequest{
			ExternalID: b.ExternalID,
			Name:       "Day pass",
			TicketType: "day",
		},
	}
}

func (b *ProductBuilder) Inactive() *ProductBuilder {
	active := false
	b.Active = &active
	return b
}

type ConsumerCategoryBuilder struct {
	Title     map[string]string
	AgeMin    *int
	AgeMax    *int
	Rental    decimal.Decimal
	Insurance decimal.Decimal
}

func NewConsumerCategoryBuilder() *ConsumerCategoryBuilder {
	minAge, maxAge := 18, 64
	return &ConsumerCategoryBuilder{
		Title:     map[string]string{"de": "Erwachsene", "en": "Adult"},
		AgeMin:    &minAge,
		AgeMax:    &maxAge,
		Rental:    decimal.RequireFromString("5.00"),
		Insurance: decimal.RequireFromString("4.50"),
	}
}

func (b *ConsumerCategoryBuilder) BuildDTO() reqdto.ConsumerCategoryRequest {
	return reqdto.ConsumerCategoryRequest{
		Title:                b.Title,
		AgeMin:               b.AgeMin,
		AgeMax:               b.AgeMax,
		RentalPricePerDay:    b.Rental,
		InsurancePricePerDay: b.Insurance,
	}
}

func (b *ConsumerCategoryBuilder) WithAges(minAge, maxAge int) *ConsumerCategoryBuilder {
	b.AgeMin, b.AgeMax = &minAge, &maxAge
	return b
}

func NewSalesChannelDTO(name, channelType string) reqdto.SalesChannelRequest {
	price := decimal.RequireFromString("5.00")
	return reqdto.SalesChannelRequest{
		Name:          name,
		Type:          channelType,
		LifepassPrice: &price,
	}
}

func NewKioskDTO(name string, slots int) reqdto.KioskRequest {
	return reqdto.KioskRequest{
		Name:      name,
		Type:      "lifepass",
		Location:  reqdto.LocationRequest{Latitude: 46.8, Longitude: 9.8, Label: "Valley station"},
		SlotCount: slots,
	}
}
