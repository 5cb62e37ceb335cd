package request

import (
	"lifepass-admin/internal/domain/catalog"
	"lifepass-admin/internal/pkg/patch"
	"lifepass-admin/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProductAuthorityRequest struct {
	ExternalID   string `json:"external_id" binding:"required,max=128"`
	Name         string `json:"name" binding:"max=256"`
	TicketType   string `json:"ticket_type"`
	Transferable bool   `json:"transferable"`
}

type ProductRequest struct {
	Active             *bool                   `json:"active"`
	Title              map[string]string       `json:"title" binding:"required,min=1"`
	Description        map[string]string       `json:"description"`
	Authority          ProductAuthorityRequest `json:"authority"`
	ValidityCategoryID *uuid.UUID              `json:"validity_category_id"`
}

func (r *ProductRequest) ToParams(resortID uuid.UUID) catalog.ProductParams {
	authority := catalog.ProductAuthority{
		ExternalID:   r.Authority.ExternalID,
		Name:         r.Authority.Name,
		TicketType:   r.Authority.TicketType,
		Transferable: r.Authority.Transferable,
	}
	return catalog.ProductParams{
		ResortID:           resortID,
		Active:             patch.Coalesce(r.Active, true),
		Title:              r.Title,
		Description:        r.Description,
		Authority:          authority,
		ValidityCategoryID: r.ValidityCategoryID,
	}
}

type ConsumerCategoryRequest struct {
	Title                map[string]string `json:"title" binding:"required,min=1"`
	Description          map[string]string `json:"description"`
	AgeMin               *int              `json:"age_min" binding:"omitempty,min=0"`
	AgeMax               *int              `json:"age_max" binding:"omitempty,min=0"`
	RentalPricePerDay    decimal.Decimal   `json:"rental_price_per_day"`
	InsurancePricePerDay decimal.Decimal   `json:"insurance_price_per_day"`
}

// ToParams leaves resort scoping to the caller; updates keep the stored resort.
func (r *ConsumerCategoryRequest) ToParams(resortID uuid.UUID) catalog.ConsumerCategoryParams {
	return catalog.ConsumerCategoryParams{
		ResortID:             resortID,
		Title:                r.Title,
		Description:          r.Description,
		AgeMin:               r.AgeMin,
		AgeMax:               r.AgeMax,
		RentalPricePerDay:    r.RentalPricePerDay,
		InsurancePricePerDay: r.InsurancePricePerDay,
	}
}

type ValidityCategoryRequest struct {
	UnitLabel map[string]string `json:"unit_label"`
	Value     int               `json:"value" binding:"required,min=1"`
	Unit      string            `json:"unit" binding:"required"`
	Variable  bool              `json:"variable"`
}

func (r *ValidityCategoryRequest) ToCommand(resortID uuid.UUID) commands.ValidityCategoryRequest {
	return commands.ValidityCategoryRequest{
		ResortID:  resortID,
		UnitLabel: r.UnitLabel,
		Value:     r.Value,
		Unit:      r.Unit,
		Variable:  r.Variable,
	}
}

type SalesChannelRequest struct {
	Name                      string           `json:"name" binding:"required,max=256"`
	Type                      string           `json:"type" binding:"required,channeltype"`
	ActiveProductIDs          []uuid.UUID      `json:"active_product_ids"`
	ActiveConsumerCategoryIDs []uuid.UUID      `json:"active_consumer_category_ids"`
	LifepassPrice             *decimal.Decimal `json:"lifepass_price"`
	InsurancePrice            *decimal.Decimal `json:"insurance_price"`
	DepotTicket               bool             `json:"depot_ticket"`
}

func (r *SalesChannelRequest) ToParams(resortID uuid.UUID) catalog.SalesChannelParams {
	return catalog.SalesChannelParams{
		ResortID:                  resortID,
		Name:                      r.Name,
		Type:                      r.Type,
		ActiveProductIDs:          r.ActiveProductIDs,
		ActiveConsumerCategoryIDs: r.ActiveConsumerCategoryIDs,
		LifepassPrice:             r.LifepassPrice,
		InsurancePrice:            r.InsurancePrice,
		DepotTicket:               r.DepotTicket,
	}
}

type LocationRequest struct {
	Latitude  float64 `json:"latitude" binding:"min=-90,max=90"`
	Longitude float64 `json:"longitude" binding:"min=-180,max=180"`
	Label     string  `json:"label"`
}

type KioskRequest struct {
	Name            string          `json:"name" binding:"required,max=256"`
	Type            string          `json:"type"`
	ContentBlockIDs []uuid.UUID     `json:"content_block_ids"`
	Location        LocationRequest `json:"location"`
	SlotCount       int             `json:"slot_count" binding:"required,min=1,max=500"`
}

func (r *KioskRequest) ToCommand(resortID uuid.UUID) commands.KioskRequest {
	return commands.KioskRequest{
		ResortID:        resortID,
		Name:            r.Name,
		Type:            r.Type,
		ContentBlockIDs: r.ContentBlockIDs,
		Latitude:        r.Location.Latitude,
		Longitude:       r.Location.Longitude,
		LocationLabel:   r.Location.Label,
		SlotCount:       r.SlotCount,
	}
}
