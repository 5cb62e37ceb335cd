package queries

import (
	"context"
	"fmt"
	"time"

	"lifepass-admin/internal/domain/order"
	"lifepass-admin/internal/domain/pricing"
	"lifepass-admin/internal/infra"
	"lifepass-admin/internal/infra/cache"
	"lifepass-admin/internal/pkg/errs"

	"github.com/google/uuid"
)

// OrdersTTL is shorter than the catalog TTL: order lists go stale with every checkout
// that misses an invalidation broadcast.
const OrdersTTL = 5 * time.Minute

var ErrOrderNotFound = errs.New("order not found")

type OrderView struct {
	ID             uuid.UUID               `json:"id"`
	ResortID       uuid.UUID               `json:"resort_id"`
	SalesChannelID *uuid.UUID              `json:"sales_channel_id,omitempty"`
	StartDate      time.Time               `json:"start_date"`
	EndDate        *time.Time              `json:"end_date,omitempty"`
	Lines          []pricing.LineRequest   `json:"lines"`
	Price          *pricing.OrderPrice     `json:"price,omitempty"`
	Fulfillment    []order.LineFulfillment `json:"fulfillment,omitempty"`
	Status         order.Status            `json:"status"`
	TestOrder      bool                    `json:"test_order"`
	CreatedAt      time.Time               `json:"created_at"`
	UpdatedAt      time.Time               `json:"updated_at"`
}

type OrderFilters struct {
	Status    *order.Status
	TestOrder *bool
}

func (f OrderFilters) variant() string {
	status, test := "any", "any"
	if f.Status != nil {
		status = f.Status.String()
	}
	if f.TestOrder != nil {
		test = fmt.Sprintf("%t", *f.TestOrder)
	}
	return "status=" + status + ",test=" + test
}

// OrderKeyset pages newest first; After is the (created_at, id) of the last row seen.
type OrderKeyset struct {
	After *KeysetPosition
	Limit int
}

type KeysetPosition struct {
	CreatedAt time.Time
	ID        uuid.UUID
}

type OrderPage struct {
	Items      []OrderView `json:"items"`
	NextCursor string      `json:"next_cursor,omitempty"`
}

type OrderReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*OrderView, error)
	// ListByResort returns up to Limit+1 rows so the caller can tell whether a next page exists.
	ListByResort(ctx context.Context, resortID uuid.UUID, filters OrderFilters, keyset OrderKeyset) ([]OrderView, error)
}

type OrderQueries interface {
	Get(ctx context.Context, id uuid.UUID) (*OrderView, error)
	List(ctx context.Context, resortID uuid.UUID, filters OrderFilters, cursor string, limit int) (*OrderPage, error)
}

type orderQueriesImpl struct {
	store OrderReadStore
	cache *cache.Service
}

func NewOrderQueries(store OrderReadStore, cacheSvc *cache.Service) OrderQueries {
	return &orderQueriesImpl{store: store, cache: cacheSvc}
}

func (q *orderQueriesImpl) Get(ctx context.Context, id uuid.UUID) (*OrderView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(errs.Wrapf(ErrOrderNotFound, "order %s", id), errs.ErrNotFound)
		}
		return nil, errs.Wrap(err, "find order")
	}
	return view, nil
}

func (q *orderQueriesImpl) List(ctx context.Context, resortID uuid.UUID, filters OrderFilters, cursor string, limit int) (*OrderPage, error) {
	keyset := OrderKeyset{Limit: ValidateLimit(limit)}
	if cursor != "" {
		ts, id, err := DecodeAfterCursor(cursor)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrValidation)
		}
		keyset.After = &KeysetPosition{CreatedAt: ts, ID: id}
	}

	key := cache.Key{
		EntityType: cache.TagOrders,
		ResortID:   resortID,
		Variant:    fmt.Sprintf("%s,after=%s,limit=%d", filters.variant(), cursor, keyset.Limit),
	}
	page, _, err := cache.ReadThrough(ctx, q.cache, key, OrdersTTL, func(ctx context.Context) (*OrderPage, error) {
		rows, err := q.store.ListByResort(ctx, resortID, filters, keyset)
		if err != nil {
			return nil, err
		}
		return buildOrderPage(rows, keyset.Limit), nil
	})
	if err != nil {
		return nil, errs.Wrap(err, "list orders")
	}
	return page, nil
}

func buildOrderPage(rows []OrderView, limit int) *OrderPage {
	page := &OrderPage{Items: rows}
	if len(rows) > limit {
		page.Items = rows[:limit]
		last := page.Items[limit-1]
		page.NextCursor = EncodeAfterCursor(last.CreatedAt, last.ID)
	}
	if page.Items == nil {
		page.Items = []OrderView{}
	}
	return page
}

// ToOrderView renders a write-side order the same way the read store does.
func ToOrderView(o *order.Order) *OrderView {
	dr := o.DateRange()
	return &OrderView{
		ID:             o.ID(),
		ResortID:       o.ResortID(),
		SalesChannelID: o.SalesChannelID(),
		StartDate:      dr.Start(),
		EndDate:        dr.End(),
		Lines:          o.Lines(),
		Price:          o.Price(),
		Fulfillment:    o.Fulfillment(),
		Status:         o.Status(),
		TestOrder:      o.TestOrder(),
		CreatedAt:      o.CreatedAt(),
		UpdatedAt:      o.UpdatedAt(),
	}
}
