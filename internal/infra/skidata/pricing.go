package skidata

import (
	"context"
	"net/http"
	"net/url"

	dompricing "lifepass-admin/internal/domain/pricing"
	"lifepass-admin/internal/pkg/errs"
	"lifepass-admin/internal/usecase/pricing"

	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"
)

const dateLayout = "2006-01-02"

type priceRequest struct {
	ProductID          string `json:"productId"`
	ConsumerCategoryID string `json:"consumerCategoryId"`
	Date               string `json:"date"`
}

// Price asks the authority for one (product, consumer category, date) price.
// 4xx answers other than auth failures are business rejections.
func (c *Client) Price(ctx context.Context, req pricing.PriceRequest) (*dompricing.CalculatedPrice, error) {
	path := "/resorts/" + url.PathEscape(req.ResortID.String()) + "/prices"
	resp, err := c.do(ctx, http.MethodPost, path, scopePricing, priceRequest{
		ProductID:          req.ProductID.String(),
		ConsumerCategoryID: req.ConsumerCategoryID.String(),
		Date:               req.Date.Format(dateLayout),
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrPricingUnavailable)
	}

	switch resp.status {
	case http.StatusOK, http.StatusCreated:
	case http.StatusBadRequest, http.StatusNotFound, http.StatusConflict, http.StatusUnprocessableEntity:
		return rejection(resp.body, resp.status), nil
	default:
		return nil, errs.Mark(unexpected(resp, path), errs.ErrPricingUnavailable)
	}

	price, err := parsePrice(resp.body, path)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrPricingUnavailable)
	}
	return price, nil
}

func rejection(body []byte, status int) *dompricing.CalculatedPrice {
	msg := http.StatusText(status)
	if gjson.ValidBytes(body) {
		if m := gjson.GetBytes(body, "message"); m.Exists() && m.String() != "" {
			msg = m.String()
		}
	}
	return &dompricing.CalculatedPrice{Success: false, Message: msg}
}

func parsePrice(body []byte, path string) (*dompricing.CalculatedPrice, error) {
	if !gjson.ValidBytes(body) {
		return nil, malformed(path, "invalid json")
	}
	doc := gjson.ParseBytes(body)

	success := doc.Get("success")
	if success.Exists() && !success.Bool() {
		return &dompricing.CalculatedPrice{Success: false, Message: doc.Get("message").String()}, nil
	}

	net, err := decimalField(doc, "amountNet")
	if err != nil {
		return nil, malformed(path, err.Error())
	}
	gross, err := decimalField(doc, "amountGross")
	if err != nil {
		return nil, malformed(path, err.Error())
	}
	price := &dompricing.CalculatedPrice{
		AmountNet:   net,
		AmountGross: gross,
		Currency:    doc.Get("currency").String(),
		TaxDetails:  []dompricing.TaxDetail{},
		Success:     true,
	}

	var parseErr error
	doc.Get("taxDetails").ForEach(func(_, t gjson.Result) bool {
		rate, err := decimalField(t, "taxRate")
		if err != nil {
			parseErr = err
			return false
		}
		amount, err := decimalField(t, "taxAmount")
		if err != nil {
			parseErr = err
			return false
		}
		price.TaxDetails = append(price.TaxDetails, dompricing.TaxDetail{
			Name:      t.Get("taxName").String(),
			Rate:      rate,
			Amount:    amount,
			ShortName: t.Get("taxShortName").String(),
			SortOrder: int(t.Get("sortOrder").Int()),
		})
		return true
	})
	doc.Get("items").ForEach(func(_, it gjson.Result) bool {
		amount, err := decimalField(it, "amount")
		if err != nil {
			parseErr = err
			return false
		}
		price.Items = append(price.Items, dompricing.PriceItem{
			Description: it.Get("description").String(),
			Amount:      amount,
		})
		return true
	})
	if parseErr != nil {
		return nil, malformed(path, parseErr.Error())
	}

	if err := price.Validate(); err != nil {
		return nil, errs.Mark(errs.Wrap(err, path), ErrMalformedPayload)
	}
	return price, nil
}

// decimalField reads a money field given either as a JSON number or a string,
// keeping the literal digits.
func decimalField(doc gjson.Result, name string) (decimal.Decimal, error) {
	r := doc.Get(name)
	switch r.Type {
	case gjson.Number:
		return decimal.NewFromString(r.Raw)
	case gjson.String:
		return decimal.NewFromString(r.Str)
	default:
		return decimal.Zero, errs.Newf("%s is missing or not a number", name)
	}
}
