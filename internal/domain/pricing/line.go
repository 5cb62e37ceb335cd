package pricing

import (
	"encoding/json"

	"lifepass-admin/internal/pkg/errs"

	"github.com/google/uuid"
)

type ErrorKind string

const (
	KindPricingUnavailable ErrorKind = "pricing_unavailable"
	KindLineIneligible     ErrorKind = "line_ineligible"
)

// DeviceRequest asks for a lifepass device for the line: either a known device
// code or any free slot at a kiosk. AllowReallocation lets a requested device that
// turns out busy be substituted by a kiosk slot.
type DeviceRequest struct {
	Code              string     `json:"code,omitempty"`
	KioskID           *uuid.UUID `json:"kioskId,omitempty"`
	AllowReallocation bool       `json:"allowReallocation,omitempty"`
}

type LineRequest struct {
	ProductID          uuid.UUID      `json:"productId"`
	ConsumerCategoryID uuid.UUID      `json:"consumerCategoryId"`
	Age                *int           `json:"age,omitempty"`
	WithInsurance      bool           `json:"withInsurance"`
	Device             *DeviceRequest `json:"device,omitempty"`
}

func (l LineRequest) NeedsDevice() bool {
	return l.Device != nil
}

// LinePrice holds the priced components of one line. Insurance and rental are absent when not requested.
type LinePrice struct {
	ProductPrice        CalculatedPrice  `json:"productPrice"`
	InsurancePrice      *CalculatedPrice `json:"insurancePrice,omitempty"`
	LifepassRentalPrice *CalculatedPrice `json:"lifepassRentalPrice,omitempty"`
}

func (p LinePrice) Components() []CalculatedPrice {
	out := []CalculatedPrice{p.ProductPrice}
	if p.InsurancePrice != nil {
		out = append(out, *p.InsurancePrice)
	}
	if p.LifepassRentalPrice != nil {
		out = append(out, *p.LifepassRentalPrice)
	}
	return out
}

type PricingError struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

func (e *PricingError) Error() string {
	return string(e.Kind) + ": " + e.Message
}

func (e *PricingError) Unwrap() error {
	switch e.Kind {
	case KindPricingUnavailable:
		return errs.ErrPricingUnavailable
	case KindLineIneligible:
		return errs.ErrLineIneligible
	default:
		return nil
	}
}

func Unavailable(msg string) *PricingError {
	return &PricingError{Kind: KindPricingUnavailable, Message: msg}
}

func Ineligible(msg string) *PricingError {
	return &PricingError{Kind: KindLineIneligible, Message: msg}
}

// LineResult is the outcome of pricing one requested line. Exactly one of price or err is set.
type LineResult struct {
	request LineRequest
	price   *LinePrice
	err     *PricingError
}

func Priced(req LineRequest, price LinePrice) LineResult {
	return LineResult{request: req, price: &price}
}

func Failed(req LineRequest, err *PricingError) LineResult {
	return LineResult{request: req, err: err}
}

func (r LineResult) Request() LineRequest { return r.request }
func (r LineResult) Success() bool        { return r.price != nil }

func (r LineResult) Price() (LinePrice, bool) {
	if r.price == nil {
		return LinePrice{}, false
	}
	return *r.price, true
}

func (r LineResult) Err() *PricingError { return r.err }

type lineResultJSON struct {
	ProductID          uuid.UUID     `json:"productId"`
	ConsumerCategoryID uuid.UUID     `json:"consumerCategoryId"`
	Request            LineRequest   `json:"request"`
	Success            bool          `json:"success"`
	Price              *LinePrice    `json:"price,omitempty"`
	Error              *PricingError `json:"error,omitempty"`
}

func (r LineResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(lineResultJSON{
		ProductID:          r.request.ProductID,
		ConsumerCategoryID: r.request.ConsumerCategoryID,
		Request:            r.request,
		Success:            r.Success(),
		Price:              r.price,
		Error:              r.err,
	})
}

func (r *LineResult) UnmarshalJSON(data []byte) error {
	var raw lineResultJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	r.request = raw.Request
	r.price = nil
	r.err = nil
	if raw.Success && raw.Price != nil {
		r.price = raw.Price
		return nil
	}
	r.err = raw.Error
	if r.err == nil {
		r.err = Unavailable("line failed without a recorded reason")
	}
	return nil
}
