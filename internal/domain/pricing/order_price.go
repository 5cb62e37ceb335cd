package pricing

// OrderPrice is the aggregated pricing result of an order. Lines keep the caller's order.
type OrderPrice struct {
	OrderItemPrices []LineResult    `json:"orderItemPrices"`
	CumulatedPrice  CalculatedPrice `json:"cumulatedPrice"`
	DaysValidity    int             `json:"daysValidity"`
}

// NewOrderPrice builds the cumulated price from the successful lines only.
// The given slice is copied so callers may keep using theirs.
func NewOrderPrice(currency string, daysValidity int, lines []LineResult) *OrderPrice {
	items := make([]LineResult, len(lines))
	copy(items, lines)

	var components []CalculatedPrice
	for _, l := range items {
		if p, ok := l.Price(); ok {
			components = append(components, p.Components()...)
		}
	}

	return &OrderPrice{
		OrderItemPrices: items,
		CumulatedPrice:  Sum(currency, components...),
		DaysValidity:    daysValidity,
	}
}

func (p *OrderPrice) FailedLines() []int {
	var failed []int
	for i, l := range p.OrderItemPrices {
		if !l.Success() {
			failed = append(failed, i)
		}
	}
	return failed
}

func (p *OrderPrice) AllSucceeded() bool {
	return len(p.FailedLines()) == 0
}
