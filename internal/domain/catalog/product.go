package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ProductAuthority is the validated subset of the ticketing authority's product payload.
type ProductAuthority struct {
	ExternalID   string `json:"externalId"`
	Name         string `json:"name"`
	TicketType   string `json:"ticketType,omitempty"`
	Transferable bool   `json:"transferable"`
}

func (a ProductAuthority) Validate() error {
	if strings.TrimSpace(a.ExternalID) == "" {
		return ErrMissingExternalID
	}
	return nil
}

type Product struct {
	id                 uuid.UUID
	resortID           uuid.UUID
	active             bool
	title              LocalizedText
	description        LocalizedText
	authority          ProductAuthority
	validityCategoryID *uuid.UUID
	createdAt          time.Time
	updatedAt          time.Time
}

type ProductParams struct {
	ResortID           uuid.UUID
	Active             bool
	Title              map[string]string
	Description        map[string]string
	Authority          ProductAuthority
	ValidityCategoryID *uuid.UUID
}

func NewProduct(p ProductParams, now time.Time) (*Product, error) {
	prod := &Product{id: uuid.New(), createdAt: now}
	if err := prod.apply(p, now); err != nil {
		return nil, err
	}
	return prod, nil
}

// Update replaces every mutable field. The resort cannot change.
func (p *Product) Update(params ProductParams, now time.Time) error {
	params.ResortID = p.resortID
	return p.apply(params, now)
}

func (p *Product) apply(params ProductParams, now time.Time) error {
	if params.ResortID == uuid.Nil {
		return ErrMissingResort
	}
	title, err := NewLocalizedText(params.Title)
	if err != nil {
		return err
	}
	desc, err := NewLocalizedText(params.Description)
	if err != nil {
		return err
	}
	if err := params.Authority.Validate(); err != nil {
		return err
	}
	p.resortID = params.ResortID
	p.active = params.Active
	p.title = title
	p.description = desc
	p.authority = params.Authority
	p.validityCategoryID = params.ValidityCategoryID
	p.updatedAt = now
	return nil
}

func ReconstructProduct(
	id, resortID uuid.UUID,
	active bool,
	title, description LocalizedText,
	authority ProductAuthority,
	validityCategoryID *uuid.UUID,
	createdAt, updatedAt time.Time,
) *Product {
	return &Product{
		id:                 id,
		resortID:           resortID,
		active:             active,
		title:              title,
		description:        description,
		authority:          authority,
		validityCategoryID: validityCategoryID,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}
}

func (p *Product) ID() uuid.UUID                  { return p.id }
func (p *Product) ResortID() uuid.UUID            { return p.resortID }
func (p *Product) Active() bool                   { return p.active }
func (p *Product) Title() LocalizedText           { return p.title }
func (p *Product) Description() LocalizedText     { return p.description }
func (p *Product) Authority() ProductAuthority    { return p.authority }
func (p *Product) ValidityCategoryID() *uuid.UUID { return p.validityCategoryID }
func (p *Product) CreatedAt() time.Time           { return p.createdAt }
func (p *Product) UpdatedAt() time.Time           { return p.updatedAt }
