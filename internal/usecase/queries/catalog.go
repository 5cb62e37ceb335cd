package queries

import (
	"context"
	"time"

	"lifepass-admin/internal/domain/catalog"
	"lifepass-admin/internal/infra/cache"
	"lifepass-admin/internal/usecase/pricing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProductView struct {
	ID                 uuid.UUID                `json:"id"`
	ResortID           uuid.UUID                `json:"resort_id"`
	Active             bool                     `json:"active"`
	Title              map[string]string        `json:"title"`
	Description        map[string]string        `json:"description"`
	Authority          catalog.ProductAuthority `json:"authority"`
	ValidityCategoryID *uuid.UUID               `json:"validity_category_id,omitempty"`
	CreatedAt          time.Time                `json:"created_at"`
	UpdatedAt          time.Time                `json:"updated_at"`
}

type ConsumerCategoryView struct {
	ID                   uuid.UUID         `json:"id"`
	ResortID             uuid.UUID         `json:"resort_id"`
	Title                map[string]string `json:"title"`
	Description          map[string]string `json:"description"`
	AgeMin               *int              `json:"age_min,omitempty"`
	AgeMax               *int              `json:"age_max,omitempty"`
	RentalPricePerDay    decimal.Decimal   `json:"rental_price_per_day"`
	InsurancePricePerDay decimal.Decimal   `json:"insurance_price_per_day"`
	CreatedAt            time.Time         `json:"created_at"`
	UpdatedAt            time.Time         `json:"updated_at"`
}

type ValidityCategoryView struct {
	ID        uuid.UUID            `json:"id"`
	ResortID  uuid.UUID            `json:"resort_id"`
	UnitLabel map[string]string    `json:"unit_label"`
	Validity  catalog.ValidityRule `json:"validity"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
}

type SalesChannelView struct {
	ID                        uuid.UUID        `json:"id"`
	ResortID                  uuid.UUID        `json:"resort_id"`
	Name                      string           `json:"name"`
	Type                      string           `json:"type"`
	ActiveProductIDs          []uuid.UUID      `json:"active_product_ids"`
	ActiveConsumerCategoryIDs []uuid.UUID      `json:"active_consumer_category_ids"`
	LifepassPrice             *decimal.Decimal `json:"lifepass_price,omitempty"`
	InsurancePrice            *decimal.Decimal `json:"insurance_price,omitempty"`
	DepotTicket               bool             `json:"depot_ticket"`
	CreatedAt                 time.Time        `json:"created_at"`
	UpdatedAt                 time.Time        `json:"updated_at"`
}

// CatalogList is a cached catalog read. Degraded means the store was unreachable and
// Items is empty for that reason, not because the resort has no entries.
type CatalogList[T any] struct {
	Items    []T
	Degraded bool
}

type CatalogReadStore interface {
	ProductsByResort(ctx context.Context, resortID uuid.UUID) ([]ProductView, error)
	ConsumerCategoriesByResort(ctx context.Context, resortID uuid.UUID) ([]ConsumerCategoryView, error)
	ValidityCategoriesByResort(ctx context.Context, resortID uuid.UUID) ([]ValidityCategoryView, error)
	SalesChannelsByResort(ctx context.Context, resortID uuid.UUID) ([]SalesChannelView, error)
}

type CatalogQueries interface {
	Products(ctx context.Context, resortID uuid.UUID) CatalogList[ProductView]
	ConsumerCategories(ctx context.Context, resortID uuid.UUID) CatalogList[ConsumerCategoryView]
	ValidityCategories(ctx context.Context, resortID uuid.UUID) CatalogList[ValidityCategoryView]
	SalesChannels(ctx context.Context, resortID uuid.UUID) CatalogList[SalesChannelView]
}

type catalogQueriesImpl struct {
	store CatalogReadStore
	cache *cache.Service
}

func NewCatalogQueries(store CatalogReadStore, cacheSvc *cache.Service) CatalogQueries {
	return &catalogQueriesImpl{store: store, cache: cacheSvc}
}

func fetchList[T any](ctx context.Context, svc *cache.Service, entity catalog.EntityType, resortID uuid.UUID, load func(context.Context, uuid.UUID) ([]T, error)) CatalogList[T] {
	key := cache.Key{EntityType: entity.String(), ResortID: resortID}
	res := cache.Fetch(ctx, svc, key, func(ctx context.Context) ([]T, error) {
		items, err := load(ctx, resortID)
		if items == nil && err == nil {
			items = []T{}
		}
		return items, err
	})
	return CatalogList[T]{Items: res.Value, Degraded: res.Degraded}
}

func (q *catalogQueriesImpl) Products(ctx context.Context, resortID uuid.UUID) CatalogList[ProductView] {
	return fetchList(ctx, q.cache, catalog.EntityProducts, resortID, q.store.ProductsByResort)
}

func (q *catalogQueriesImpl) ConsumerCategories(ctx context.Context, resortID uuid.UUID) CatalogList[ConsumerCategoryView] {
	return fetchList(ctx, q.cache, catalog.EntityConsumerCategories, resortID, q.store.ConsumerCategoriesByResort)
}

func (q *catalogQueriesImpl) ValidityCategories(ctx context.Context, resortID uuid.UUID) CatalogList[ValidityCategoryView] {
	return fetchList(ctx, q.cache, catalog.EntityValidityCategories, resortID, q.store.ValidityCategoriesByResort)
}

func (q *catalogQueriesImpl) SalesChannels(ctx context.Context, resortID uuid.UUID) CatalogList[SalesChannelView] {
	return fetchList(ctx, q.cache, catalog.EntitySalesChannels, resortID, q.store.SalesChannelsByResort)
}

type catalogSource struct {
	q CatalogQueries
}

// NewCatalogSource serves the pricing aggregator from the cached catalog.
func NewCatalogSource(q CatalogQueries) pricing.CatalogSource {
	return &catalogSource{q: q}
}

func (s *catalogSource) Snapshot(ctx context.Context, resortID uuid.UUID) (*pricing.CatalogSnapshot, error) {
	products := s.q.Products(ctx, resortID)
	categories := s.q.ConsumerCategories(ctx, resortID)
	channels := s.q.SalesChannels(ctx, resortID)

	snap := &pricing.CatalogSnapshot{
		Products:           make(map[uuid.UUID]*catalog.Product, len(products.Items)),
		ConsumerCategories: make(map[uuid.UUID]*catalog.ConsumerCategory, len(categories.Items)),
		SalesChannels:      make(map[uuid.UUID]*catalog.SalesChannel, len(channels.Items)),
		Degraded:           products.Degraded || categories.Degraded || channels.Degraded,
	}
	for _, p := range products.Items {
		snap.Products[p.ID] = catalog.ReconstructProduct(p.ID, p.ResortID, p.Active, p.Title, p.Description, p.Authority, p.ValidityCategoryID, p.CreatedAt, p.UpdatedAt)
	}
	for _, c := range categories.Items {
		snap.ConsumerCategories[c.ID] = catalog.ReconstructConsumerCategory(
			c.ID, c.ResortID, c.Title, c.Description,
			catalog.AgeRange{Min: c.AgeMin, Max: c.AgeMax},
			c.RentalPricePerDay, c.InsurancePricePerDay,
			c.CreatedAt, c.UpdatedAt,
		)
	}
	for _, ch := range channels.Items {
		snap.SalesChannels[ch.ID] = catalog.ReconstructSalesChannel(
			ch.ID, ch.ResortID, ch.Name, catalog.ChannelType(ch.Type),
			ch.ActiveProductIDs, ch.ActiveConsumerCategoryIDs,
			ch.LifepassPrice, ch.InsurancePrice, ch.DepotTicket,
			ch.CreatedAt, ch.UpdatedAt,
		)
	}
	return snap, nil
}
