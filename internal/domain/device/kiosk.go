package device

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Location is the validated form of a kiosk's location payload.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Label     string  `json:"label,omitempty"`
}

func NewLocation(lat, lng float64, label string) (Location, error) {
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return Location{}, ErrInvalidLocation
	}
	return Location{Latitude: lat, Longitude: lng, Label: strings.TrimSpace(label)}, nil
}

type Kiosk struct {
	id              uuid.UUID
	resortID        uuid.UUID
	name            string
	kioskType       string
	contentBlockIDs []uuid.UUID
	location        Location
	slotCount       int
	createdAt       time.Time
	updatedAt       time.Time
}

func NewKiosk(resortID uuid.UUID, name, kioskType string, contentBlockIDs []uuid.UUID, location Location, slotCount int, now time.Time) (*Kiosk, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrMissingKioskName
	}
	if slotCount <= 0 {
		return nil, ErrInvalidSlot
	}
	return &Kiosk{
		id:              uuid.New(),
		resortID:        resortID,
		name:            strings.TrimSpace(name),
		kioskType:       kioskType,
		contentBlockIDs: slices.Clone(contentBlockIDs),
		location:        location,
		slotCount:       slotCount,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

func ReconstructKiosk(id, resortID uuid.UUID, name, kioskType string, contentBlockIDs []uuid.UUID, location Location, slotCount int, createdAt, updatedAt time.Time) *Kiosk {
	return &Kiosk{
		id:              id,
		resortID:        resortID,
		name:            name,
		kioskType:       kioskType,
		contentBlockIDs: contentBlockIDs,
		location:        location,
		slotCount:       slotCount,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

func (k *Kiosk) ID() uuid.UUID                { return k.id }
func (k *Kiosk) ResortID() uuid.UUID          { return k.resortID }
func (k *Kiosk) Name() string                 { return k.name }
func (k *Kiosk) Type() string                 { return k.kioskType }
func (k *Kiosk) ContentBlockIDs() []uuid.UUID { return slices.Clone(k.contentBlockIDs) }
func (k *Kiosk) Location() Location           { return k.location }
func (k *Kiosk) SlotCount() int               { return k.slotCount }
func (k *Kiosk) CreatedAt() time.Time         { return k.createdAt }
func (k *Kiosk) UpdatedAt() time.Time         { return k.updatedAt }
