package pricing

import (
	"lifepass-admin/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var ErrInvalidTaxRate = errs.New("tax rate must be between 0 and 1")

// TaxRule describes the tax applied to prices computed locally (insurance, lifepass rental).
type TaxRule struct {
	Name      string
	ShortName string
	Rate      decimal.Decimal
	SortOrder int
}

func NewTaxRule(name, shortName, rate string, sortOrder int) (TaxRule, error) {
	r, err := decimal.NewFromString(rate)
	if err != nil {
		return TaxRule{}, errs.Mark(errs.Wrap(err, "parse tax rate"), ErrInvalidTaxRate)
	}
	if r.IsNegative() || r.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return TaxRule{}, ErrInvalidTaxRate
	}
	return TaxRule{Name: name, ShortName: shortName, Rate: r, SortOrder: sortOrder}, nil
}

// FromGross splits a tax-inclusive amount into net and tax. Net is rounded to cents
// and the tax absorbs the remainder so the gross stays exact.
func (r TaxRule) FromGross(gross decimal.Decimal, currency string) CalculatedPrice {
	net := gross.Div(decimal.NewFromInt(1).Add(r.Rate)).Round(2)
	tax := gross.Sub(net)
	return CalculatedPrice{
		AmountNet:   net,
		AmountGross: gross,
		Currency:    currency,
		TaxDetails: []TaxDetail{{
			Name:      r.Name,
			Rate:      r.Rate,
			Amount:    tax,
			ShortName: r.ShortName,
			SortOrder: r.SortOrder,
		}},
		Success: true,
	}
}
