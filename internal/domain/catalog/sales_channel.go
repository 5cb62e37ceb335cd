package catalog

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SalesChannel struct {
	id                        uuid.UUID
	resortID                  uuid.UUID
	name                      string
	channelType               ChannelType
	activeProductIDs          []uuid.UUID
	activeConsumerCategoryIDs []uuid.UUID
	lifepassPrice             *decimal.Decimal
	insurancePrice            *decimal.Decimal
	depotTicket               bool
	createdAt                 time.Time
	updatedAt                 time.Time
}

type SalesChannelParams struct {
	ResortID                  uuid.UUID
	Name                      string
	Type                      string
	ActiveProductIDs          []uuid.UUID
	ActiveConsumerCategoryIDs []uuid.UUID
	LifepassPrice             *decimal.Decimal
	InsurancePrice            *decimal.Decimal
	DepotTicket               bool
}

func NewSalesChannel(p SalesChannelParams, now time.Time) (*SalesChannel, error) {
	if p.ResortID == uuid.Nil {
		return nil, ErrMissingResort
	}
	if strings.TrimSpace(p.Name) == "" {
		return nil, ErrMissingName
	}
	t, err := NewChannelType(p.Type)
	if err != nil {
		return nil, err
	}
	for _, price := range []*decimal.Decimal{p.LifepassPrice, p.InsurancePrice} {
		if price != nil && price.IsNegative() {
			return nil, ErrNegativePrice
		}
	}
	return &SalesChannel{
		id:                        uuid.New(),
		resortID:                  p.ResortID,
		name:                      strings.TrimSpace(p.Name),
		channelType:               t,
		activeProductIDs:          slices.Clone(p.ActiveProductIDs),
		activeConsumerCategoryIDs: slices.Clone(p.ActiveConsumerCategoryIDs),
		lifepassPrice:             p.LifepassPrice,
		insurancePrice:            p.InsurancePrice,
		depotTicket:               p.DepotTicket,
		createdAt:                 now,
		updatedAt:                 now,
	}, nil
}

func ReconstructSalesChannel(
	id, resortID uuid.UUID,
	name string,
	channelType ChannelType,
	activeProductIDs, activeConsumerCategoryIDs []uuid.UUID,
	lifepassPrice, insurancePrice *decimal.Decimal,
	depotTicket bool,
	createdAt, updatedAt time.Time,
) *SalesChannel {
	return &SalesChannel{
		id:                        id,
		resortID:                  resortID,
		name:                      name,
		channelType:               channelType,
		activeProductIDs:          activeProductIDs,
		activeConsumerCategoryIDs: activeConsumerCategoryIDs,
		lifepassPrice:             lifepassPrice,
		insurancePrice:            insurancePrice,
		depotTicket:               depotTicket,
		createdAt:                 createdAt,
		updatedAt:                 updatedAt,
	}
}

func (s *SalesChannel) OffersProduct(id uuid.UUID) bool {
	return slices.Contains(s.activeProductIDs, id)
}

func (s *SalesChannel) OffersConsumerCategory(id uuid.UUID) bool {
	return slices.Contains(s.activeConsumerCategoryIDs, id)
}

func (s *SalesChannel) ID() uuid.UUID                 { return s.id }
func (s *SalesChannel) ResortID() uuid.UUID           { return s.resortID }
func (s *SalesChannel) Name() string                  { return s.name }
func (s *SalesChannel) Type() ChannelType             { return s.channelType }
func (s *SalesChannel) ActiveProductIDs() []uuid.UUID { return slices.Clone(s.activeProductIDs) }
func (s *SalesChannel) ActiveConsumerCategoryIDs() []uuid.UUID {
	return slices.Clone(s.activeConsumerCategoryIDs)
}
func (s *SalesChannel) LifepassPrice() *decimal.Decimal  { return s.lifepassPrice }
func (s *SalesChannel) InsurancePrice() *decimal.Decimal { return s.insurancePrice }
func (s *SalesChannel) DepotTicket() bool                { return s.depotTicket }
func (s *SalesChannel) CreatedAt() time.Time             { return s.createdAt }
func (s *SalesChannel) UpdatedAt() time.Time             { return s.updatedAt }
