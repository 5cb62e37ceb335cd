package order

import (
	"slices"
	"time"

	"lifepass-admin/internal/domain/pricing"
	"lifepass-admin/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrMissingResort        = errs.New("resort is required")
	ErrNoLines              = errs.New("order needs at least one line")
	ErrMissingLineReference = errs.New("line needs a product and a consumer category")
	ErrInvalidTransition    = errs.New("invalid order status transition")
	ErrPriceMismatch        = errs.New("price does not cover the order lines")
	ErrNegativeAge          = errs.New("age cannot be negative")
	ErrEmptyDeviceRequest   = errs.New("device request needs a device code or a kiosk")
)

// LineFulfillment is the device allocation outcome of one line.
type LineFulfillment struct {
	LineIndex  int        `json:"lineIndex"`
	KioskID    *uuid.UUID `json:"kioskId,omitempty"`
	SlotNumber *int       `json:"slotNumber,omitempty"`
	DeviceCode string     `json:"deviceCode,omitempty"`
	Error      string     `json:"error,omitempty"`
}

func (f LineFulfillment) Failed() bool {
	return f.Error != ""
}

type Order struct {
	id             uuid.UUID
	resortID       uuid.UUID
	salesChannelID *uuid.UUID
	dateRange      pricing.DateRange
	lines          []pricing.LineRequest
	price          *pricing.OrderPrice
	fulfillment    []LineFulfillment
	status         Status
	testOrder      bool
	createdAt      time.Time
	updatedAt      time.Time
}

func NewOrder(resortID uuid.UUID, salesChannelID *uuid.UUID, dateRange pricing.DateRange, lines []pricing.LineRequest, testOrder bool, now time.Time) (*Order, error) {
	if err := ValidateLines(resortID, lines); err != nil {
		return nil, err
	}
	return &Order{
		id:             uuid.New(),
		resortID:       resortID,
		salesChannelID: salesChannelID,
		dateRange:      dateRange,
		lines:          slices.Clone(lines),
		status:         StatusDraft,
		testOrder:      testOrder,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

// ValidateLines checks the shape of a checkout request before anything is priced.
func ValidateLines(resortID uuid.UUID, lines []pricing.LineRequest) error {
	if resortID == uuid.Nil {
		return ErrMissingResort
	}
	if len(lines) == 0 {
		return ErrNoLines
	}
	for i, l := range lines {
		if l.ProductID == uuid.Nil || l.ConsumerCategoryID == uuid.Nil {
			return errs.Wrapf(ErrMissingLineReference, "line %d", i)
		}
		if l.Age != nil && *l.Age < 0 {
			return errs.Wrapf(ErrNegativeAge, "line %d", i)
		}
		if l.Device != nil && l.Device.Code == "" && l.Device.KioskID == nil {
			return errs.Wrapf(ErrEmptyDeviceRequest, "line %d", i)
		}
	}
	return nil
}

func ReconstructOrder(
	id, resortID uuid.UUID,
	salesChannelID *uuid.UUID,
	dateRange pricing.DateRange,
	lines []pricing.LineRequest,
	price *pricing.OrderPrice,
	fulfillment []LineFulfillment,
	status Status,
	testOrder bool,
	createdAt, updatedAt time.Time,
) *Order {
	return &Order{
		id:             id,
		resortID:       resortID,
		salesChannelID: salesChannelID,
		dateRange:      dateRange,
		lines:          lines,
		price:          price,
		fulfillment:    fulfillment,
		status:         status,
		testOrder:      testOrder,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// MarkPriced records the aggregation result. An all-failed result is still priced.
func (o *Order) MarkPriced(price *pricing.OrderPrice, now time.Time) error {
	if !CanTransition(o.status, StatusPriced) {
		return errs.Wrapf(ErrInvalidTransition, "%s -> %s", o.status, StatusPriced)
	}
	if price == nil || len(price.OrderItemPrices) != len(o.lines) {
		return ErrPriceMismatch
	}
	o.price = price
	o.status = StatusPriced
	o.updatedAt = now
	return nil
}

// Resolve settles a priced order: fulfilled only when every line priced and every
// line that asked for a device got one.
func (o *Order) Resolve(fulfillment []LineFulfillment, now time.Time) error {
	if o.status != StatusPriced || o.price == nil {
		return errs.Wrapf(ErrInvalidTransition, "resolve from %s", o.status)
	}
	target := StatusFulfilled
	if !o.price.AllSucceeded() {
		target = StatusPartiallyFailed
	}
	allocated := make(map[int]bool, len(fulfillment))
	for _, f := range fulfillment {
		if f.Failed() {
			target = StatusPartiallyFailed
			continue
		}
		allocated[f.LineIndex] = true
	}
	for i, l := range o.lines {
		if l.NeedsDevice() && !allocated[i] {
			target = StatusPartiallyFailed
		}
	}
	o.fulfillment = slices.Clone(fulfillment)
	o.status = target
	o.updatedAt = now
	return nil
}

// SetTestOrder is allowed in every state and never touches the price.
func (o *Order) SetTestOrder(flag bool, now time.Time) bool {
	if o.testOrder == flag {
		return false
	}
	o.testOrder = flag
	o.updatedAt = now
	return true
}

func (o *Order) ID() uuid.UUID                  { return o.id }
func (o *Order) ResortID() uuid.UUID            { return o.resortID }
func (o *Order) SalesChannelID() *uuid.UUID     { return o.salesChannelID }
func (o *Order) DateRange() pricing.DateRange   { return o.dateRange }
func (o *Order) Lines() []pricing.LineRequest   { return slices.Clone(o.lines) }
func (o *Order) Price() *pricing.OrderPrice     { return o.price }
func (o *Order) Fulfillment() []LineFulfillment { return slices.Clone(o.fulfillment) }
func (o *Order) Status() Status                 { return o.status }
func (o *Order) TestOrder() bool                { return o.testOrder }
func (o *Order) CreatedAt() time.Time           { return o.createdAt }
func (o *Order) UpdatedAt() time.Time           { return o.updatedAt }
