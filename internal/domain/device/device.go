package device

import (
	"math/big"
	"strconv"
	"strings"
	"time"

	"lifepass-admin/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrMissingSerial    = errs.New("device serial is required")
	ErrInvalidChipID    = errs.New("chip id must be a decimal number")
	ErrInvalidLuhnCode  = errs.New("luhn check code does not match chip id")
	ErrInvalidSlot      = errs.New("slot number must be positive")
	ErrInvalidStatus    = errs.New("slot status must be occupied, empty or fault")
	ErrInvalidLocation  = errs.New("kiosk location is out of range")
	ErrMissingKioskName = errs.New("kiosk name is required")
)

// Device is a provisioned lifepass. Only timestamps change after provisioning.
type Device struct {
	id        uuid.UUID
	serial    string
	chipID    string
	luhnCode  int
	hex       string
	createdAt time.Time
	updatedAt time.Time
}

func NewDevice(serial, chipID string, luhnCode int, now time.Time) (*Device, error) {
	serial = strings.ToUpper(strings.TrimSpace(serial))
	if serial == "" {
		return nil, ErrMissingSerial
	}
	chipID = strings.TrimSpace(chipID)
	hex, ok := chipHex(chipID)
	if !ok {
		return nil, ErrInvalidChipID
	}
	want, _ := LuhnCheckDigit(chipID)
	if want != luhnCode {
		return nil, errs.Wrapf(ErrInvalidLuhnCode, "expected %d", want)
	}
	return &Device{
		id:        uuid.New(),
		serial:    serial,
		chipID:    chipID,
		luhnCode:  luhnCode,
		hex:       hex,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructDevice(id uuid.UUID, serial, chipID string, luhnCode int, hex string, createdAt, updatedAt time.Time) *Device {
	return &Device{
		id:        id,
		serial:    serial,
		chipID:    chipID,
		luhnCode:  luhnCode,
		hex:       hex,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// PrintedCode is the chip id followed by its check digit, as printed on the card.
func (d *Device) PrintedCode() string {
	return d.chipID + strconv.Itoa(d.luhnCode)
}

func (d *Device) ID() uuid.UUID        { return d.id }
func (d *Device) Serial() string       { return d.serial }
func (d *Device) ChipID() string       { return d.chipID }
func (d *Device) LuhnCode() int        { return d.luhnCode }
func (d *Device) Hex() string          { return d.hex }
func (d *Device) CreatedAt() time.Time { return d.createdAt }
func (d *Device) UpdatedAt() time.Time { return d.updatedAt }

func chipHex(chipID string) (string, bool) {
	if chipID == "" {
		return "", false
	}
	for _, c := range chipID {
		if c < '0' || c > '9' {
			return "", false
		}
	}
	n, ok := new(big.Int).SetString(chipID, 10)
	if !ok {
		return "", false
	}
	return strings.ToUpper(n.Text(16)), true
}

// NormalizeCode prepares a scanned or typed device code for lookup.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
