package device

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

type SlotStatus string

const (
	SlotOccupied SlotStatus = "occupied"
	SlotEmpty    SlotStatus = "empty"
	SlotFault    SlotStatus = "fault"
)

func NewSlotStatus(s string) (SlotStatus, error) {
	st := SlotStatus(strings.ToLower(strings.TrimSpace(s)))
	switch st {
	case SlotOccupied, SlotEmpty, SlotFault:
		return st, nil
	default:
		return "", ErrInvalidStatus
	}
}

func (s SlotStatus) String() string {
	return string(s)
}

// LiveStatus is what the device-status authority reports for one device.
type LiveStatus struct {
	DeviceCode string
	Connected  bool
	Battery    int
	Allocated  bool
}

// SlotStatus folds the live flags into a slot state: a disconnected device is
// faulted, an allocated one is occupied.
func (s LiveStatus) SlotStatus() SlotStatus {
	switch {
	case !s.Connected:
		return SlotFault
	case s.Allocated:
		return SlotOccupied
	default:
		return SlotEmpty
	}
}

// KioskSlot is a LifePass kiosk location: a device-to-slot mapping computed on
// demand from the device-status authority and never persisted.
type KioskSlot struct {
	KioskID     uuid.UUID
	SlotNumber  int
	Location    string
	Status      SlotStatus
	LastUpdated time.Time
	DeviceCode  string
}

// EmptySlots returns the empty slots ordered by ascending slot number.
func EmptySlots(slots []KioskSlot) []KioskSlot {
	var out []KioskSlot
	for _, s := range slots {
		if s.Status == SlotEmpty {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].SlotNumber < out[j].SlotNumber })
	return out
}

// Allocation records a device or kiosk slot held for one order line.
// Kiosk and slot are empty when a known device was claimed directly.
type Allocation struct {
	ID          uuid.UUID
	OrderID     uuid.UUID
	LineIndex   int
	KioskID     *uuid.UUID
	SlotNumber  *int
	DeviceCode  string
	AllocatedAt time.Time
	ReleasedAt  *time.Time
}

func (a Allocation) Active() bool {
	return a.ReleasedAt == nil
}
