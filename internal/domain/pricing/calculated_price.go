package pricing

import (
	"sort"

	"lifepass-admin/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	ErrGrossMismatch   = errs.New("gross amount does not equal net amount plus taxes")
	ErrMissingCurrency = errs.New("currency is required")
	ErrNegativeAmount  = errs.New("amount cannot be negative")
)

type TaxDetail struct {
	Name      string          `json:"taxName"`
	Rate      decimal.Decimal `json:"taxRate"`
	Amount    decimal.Decimal `json:"taxAmount"`
	ShortName string          `json:"taxShortName"`
	SortOrder int             `json:"sortOrder"`
}

type PriceItem struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

type CalculatedPrice struct {
	AmountNet   decimal.Decimal `json:"amountNet"`
	AmountGross decimal.Decimal `json:"amountGross"`
	Currency    string          `json:"currency"`
	TaxDetails  []TaxDetail     `json:"taxDetails"`
	Items       []PriceItem     `json:"items,omitempty"`
	Success     bool            `json:"success"`
	// Reason the authority gave for a business-level rejection
	Message string `json:"message,omitempty"`
}

func (p CalculatedPrice) TaxTotal() decimal.Decimal {
	total := decimal.Zero
	for _, t := range p.TaxDetails {
		total = total.Add(t.Amount)
	}
	return total
}

// Validate checks a successful price at the boundary. Rejected prices carry no amounts worth checking.
func (p CalculatedPrice) Validate() error {
	if !p.Success {
		return nil
	}
	if p.Currency == "" {
		return ErrMissingCurrency
	}
	if p.AmountNet.IsNegative() || p.AmountGross.IsNegative() {
		return ErrNegativeAmount
	}
	if !p.AmountGross.Equal(p.AmountNet.Add(p.TaxTotal())) {
		return errs.Wrapf(ErrGrossMismatch, "gross=%s net=%s taxes=%s",
			p.AmountGross.String(), p.AmountNet.String(), p.TaxTotal().String())
	}
	return nil
}

// Zero returns an empty successful price in the given currency.
func Zero(currency string) CalculatedPrice {
	return CalculatedPrice{
		AmountNet:   decimal.Zero,
		AmountGross: decimal.Zero,
		Currency:    currency,
		TaxDetails:  []TaxDetail{},
		Success:     true,
	}
}

// Sum adds prices of the same currency and merges their tax lines.
func Sum(currency string, prices ...CalculatedPrice) CalculatedPrice {
	out := Zero(currency)
	var taxes []TaxDetail
	for _, p := range prices {
		out.AmountNet = out.AmountNet.Add(p.AmountNet)
		out.AmountGross = out.AmountGross.Add(p.AmountGross)
		taxes = append(taxes, p.TaxDetails...)
	}
	out.TaxDetails = MergeTaxDetails(taxes)
	return out
}

// MergeTaxDetails merges lines sharing a short name: amounts are summed and the
// lowest sort order seen is kept. The result is ordered by sort order.
func MergeTaxDetails(details []TaxDetail) []TaxDetail {
	merged := make([]TaxDetail, 0, len(details))
	index := make(map[string]int, len(details))
	for _, d := range details {
		i, ok := index[d.ShortName]
		if !ok {
			index[d.ShortName] = len(merged)
			merged = append(merged, d)
			continue
		}
		m := &merged[i]
		m.Amount = m.Amount.Add(d.Amount)
		if d.SortOrder < m.SortOrder {
			m.SortOrder = d.SortOrder
			m.Name = d.Name
			m.Rate = d.Rate
		}
	}
	sort.SliceStable(merged, func(a, b int) bool {
		if merged[a].SortOrder != merged[b].SortOrder {
			return merged[a].SortOrder < merged[b].SortOrder
		}
		return merged[a].ShortName < merged[b].ShortName
	})
	return merged
}
