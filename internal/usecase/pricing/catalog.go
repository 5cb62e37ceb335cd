package pricing

import (
	"context"

	"lifepass-admin/internal/domain/catalog"

	"github.com/google/uuid"
)

// CatalogSnapshot is the resort catalog the aggregator checks eligibility against.
// Degraded means the catalog could not be read, so missing entries are not proof of absence.
type CatalogSnapshot struct {
	Products           map[uuid.UUID]*catalog.Product
	ConsumerCategories map[uuid.UUID]*catalog.ConsumerCategory
	SalesChannels      map[uuid.UUID]*catalog.SalesChannel
	Degraded           bool
}

type CatalogSource interface {
	Snapshot(ctx context.Context, resortID uuid.UUID) (*CatalogSnapshot, error)
}
