package pricing

import (
	"context"
	"time"

	dompricing "lifepass-admin/internal/domain/pricing"

	"github.com/google/uuid"
)

type PriceRequest struct {
	ResortID           uuid.UUID
	ProductID          uuid.UUID
	ConsumerCategoryID uuid.UUID
	Date               time.Time
}

// Client prices a single (product, consumer category, date) triple.
// A business rejection comes back as a price with Success=false and a nil error.
// Errors are transport failures and are marked errs.ErrPricingUnavailable.
type Client interface {
	Price(ctx context.Context, req PriceRequest) (*dompricing.CalculatedPrice, error)
}
