package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type ValidityUnit string

const (
	UnitDay    ValidityUnit = "day"
	UnitHour   ValidityUnit = "hour"
	UnitSeason ValidityUnit = "season"
)

func NewValidityUnit(s string) (ValidityUnit, error) {
	u := ValidityUnit(strings.ToLower(strings.TrimSpace(s)))
	switch u {
	case UnitDay, UnitHour, UnitSeason:
		return u, nil
	default:
		return "", ErrInvalidValidityUnit
	}
}

// ValidityRule is the validated form of the authority's validity payload.
// A variable rule lets the customer choose the value at checkout.
type ValidityRule struct {
	Value    int          `json:"value"`
	Unit     ValidityUnit `json:"unit"`
	Variable bool         `json:"variable"`
}

func NewValidityRule(value int, unit string, variable bool) (ValidityRule, error) {
	u, err := NewValidityUnit(unit)
	if err != nil {
		return ValidityRule{}, err
	}
	if value <= 0 {
		return ValidityRule{}, ErrInvalidValidityValue
	}
	return ValidityRule{Value: value, Unit: u, Variable: variable}, nil
}

type ValidityCategory struct {
	id        uuid.UUID
	resortID  uuid.UUID
	unitLabel LocalizedText
	rule      ValidityRule
	createdAt time.Time
	updatedAt time.Time
}

func NewValidityCategory(resortID uuid.UUID, unitLabel map[string]string, rule ValidityRule, now time.Time) (*ValidityCategory, error) {
	if resortID == uuid.Nil {
		return nil, ErrMissingResort
	}
	label, err := NewLocalizedText(unitLabel)
	if err != nil {
		return nil, err
	}
	return &ValidityCategory{
		id:        uuid.New(),
		resortID:  resortID,
		unitLabel: label,
		rule:      rule,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructValidityCategory(id, resortID uuid.UUID, unitLabel LocalizedText, rule ValidityRule, createdAt, updatedAt time.Time) *ValidityCategory {
	return &ValidityCategory{
		id:        id,
		resortID:  resortID,
		unitLabel: unitLabel,
		rule:      rule,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (v *ValidityCategory) ID() uuid.UUID            { return v.id }
func (v *ValidityCategory) ResortID() uuid.UUID      { return v.resortID }
func (v *ValidityCategory) UnitLabel() LocalizedText { return v.unitLabel }
func (v *ValidityCategory) Rule() ValidityRule       { return v.rule }
func (v *ValidityCategory) CreatedAt() time.Time     { return v.createdAt }
func (v *ValidityCategory) UpdatedAt() time.Time     { return v.updatedAt }
