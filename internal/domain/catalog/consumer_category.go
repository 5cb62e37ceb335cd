package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AgeRange bounds are inclusive and independently optional.
type AgeRange struct {
	Min *int
	Max *int
}

func NewAgeRange(minAge, maxAge *int) (AgeRange, error) {
	if (minAge != nil && *minAge < 0) || (maxAge != nil && *maxAge < 0) {
		return AgeRange{}, ErrNegativeAge
	}
	if minAge != nil && maxAge != nil && *minAge > *maxAge {
		return AgeRange{}, ErrInvalidAgeRange
	}
	return AgeRange{Min: minAge, Max: maxAge}, nil
}

func (r AgeRange) Contains(age int) bool {
	if r.Min != nil && age < *r.Min {
		return false
	}
	if r.Max != nil && age > *r.Max {
		return false
	}
	return true
}

type ConsumerCategory struct {
	id                   uuid.UUID
	resortID             uuid.UUID
	title                LocalizedText
	description          LocalizedText
	ages                 AgeRange
	rentalPricePerDay    decimal.Decimal
	insurancePricePerDay decimal.Decimal
	createdAt            time.Time
	updatedAt            time.Time
}

type ConsumerCategoryParams struct {
	ResortID             uuid.UUID
	Title                map[string]string
	Description          map[string]string
	AgeMin               *int
	AgeMax               *int
	RentalPricePerDay    decimal.Decimal
	InsurancePricePerDay decimal.Decimal
}

func NewConsumerCategory(p ConsumerCategoryParams, now time.Time) (*ConsumerCategory, error) {
	c := &ConsumerCategory{id: uuid.New(), createdAt: now}
	if err := c.apply(p, now); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *ConsumerCategory) Update(p ConsumerCategoryParams, now time.Time) error {
	p.ResortID = c.resortID
	return c.apply(p, now)
}

func (c *ConsumerCategory) apply(p ConsumerCategoryParams, now time.Time) error {
	if p.ResortID == uuid.Nil {
		return ErrMissingResort
	}
	title, err := NewLocalizedText(p.Title)
	if err != nil {
		return err
	}
	desc, err := NewLocalizedText(p.Description)
	if err != nil {
		return err
	}
	ages, err := NewAgeRange(p.AgeMin, p.AgeMax)
	if err != nil {
		return err
	}
	if p.RentalPricePerDay.IsNegative() || p.InsurancePricePerDay.IsNegative() {
		return ErrNegativePrice
	}
	c.resortID = p.ResortID
	c.title = title
	c.description = desc
	c.ages = ages
	c.rentalPricePerDay = p.RentalPricePerDay
	c.insurancePricePerDay = p.InsurancePricePerDay
	c.updatedAt = now
	return nil
}

func ReconstructConsumerCategory(
	id, resortID uuid.UUID,
	title, description LocalizedText,
	ages AgeRange,
	rentalPricePerDay, insurancePricePerDay decimal.Decimal,
	createdAt, updatedAt time.Time,
) *ConsumerCategory {
	return &ConsumerCategory{
		id:                   id,
		resortID:             resortID,
		title:                title,
		description:          description,
		ages:                 ages,
		rentalPricePerDay:    rentalPricePerDay,
		insurancePricePerDay: insurancePricePerDay,
		createdAt:            createdAt,
		updatedAt:            updatedAt,
	}
}

func (c *ConsumerCategory) ID() uuid.UUID                         { return c.id }
func (c *ConsumerCategory) ResortID() uuid.UUID                   { return c.resortID }
func (c *ConsumerCategory) Title() LocalizedText                  { return c.title }
func (c *ConsumerCategory) Description() LocalizedText            { return c.description }
func (c *ConsumerCategory) Ages() AgeRange                        { return c.ages }
func (c *ConsumerCategory) RentalPricePerDay() decimal.Decimal    { return c.rentalPricePerDay }
func (c *ConsumerCategory) InsurancePricePerDay() decimal.Decimal { return c.insurancePricePerDay }
func (c *ConsumerCategory) CreatedAt() time.Time                  { return c.createdAt }
func (c *ConsumerCategory) UpdatedAt() time.Time                  { return c.updatedAt }
