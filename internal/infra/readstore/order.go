package readstore

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"lifepass-admin/internal/domain/order"
	"lifepass-admin/internal/domain/pricing"
	"lifepass-admin/internal/infra"
	"lifepass-admin/internal/infra/db"
	"lifepass-admin/internal/pkg/pgconv"
	"lifepass-admin/internal/usecase/queries"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var orderColumns = []string{
	"id", "resort_id", "sales_channel_id", "start_date", "end_date", "lines", "price",
	"fulfillment", "status", "test_order", "created_at", "updated_at",
}

type orderRow struct {
	ID             uuid.UUID
	ResortID       uuid.UUID
	SalesChannelID pgtype.UUID
	StartDate      time.Time
	EndDate        pgtype.Date
	Lines          []byte
	Price          []byte
	Fulfillment    []byte
	Status         string
	TestOrder      bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func scanOrder(row pgx.Row) (*orderRow, error) {
	var r orderRow
	err := row.Scan(&r.ID, &r.ResortID, &r.SalesChannelID, &r.StartDate, &r.EndDate, &r.Lines, &r.Price,
		&r.Fulfillment, &r.Status, &r.TestOrder, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

type decodedOrder struct {
	lines       []pricing.LineRequest
	price       *pricing.OrderPrice
	fulfillment []order.LineFulfillment
}

func (r *orderRow) decode() (decodedOrder, error) {
	var d decodedOrder
	if err := json.Unmarshal(r.Lines, &d.lines); err != nil {
		return d, err
	}
	if len(r.Price) > 0 {
		d.price = &pricing.OrderPrice{}
		if err := json.Unmarshal(r.Price, d.price); err != nil {
			return d, err
		}
	}
	if len(r.Fulfillment) > 0 {
		if err := json.Unmarshal(r.Fulfillment, &d.fulfillment); err != nil {
			return d, err
		}
	}
	return d, nil
}

func (r *orderRow) toView() (*queries.OrderView, error) {
	d, err := r.decode()
	if err != nil {
		return nil, err
	}
	return &queries.OrderView{
		ID:             r.ID,
		ResortID:       r.ResortID,
		SalesChannelID: pgconv.UUIDPtrFromPgtype(r.SalesChannelID),
		StartDate:      r.StartDate,
		EndDate:        pgconv.DatePtrFromPgtype(r.EndDate),
		Lines:          d.lines,
		Price:          d.price,
		Fulfillment:    d.fulfillment,
		Status:         order.Status(r.Status),
		TestOrder:      r.TestOrder,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}, nil
}

func (r *orderRow) toDomain() (*order.Order, error) {
	d, err := r.decode()
	if err != nil {
		return nil, err
	}
	dr, err := pricing.NewDateRange(r.StartDate, pgconv.DatePtrFromPgtype(r.EndDate))
	if err != nil {
		return nil, err
	}
	return order.ReconstructOrder(r.ID, r.ResortID, pgconv.UUIDPtrFromPgtype(r.SalesChannelID), dr,
		d.lines, d.price, d.fulfillment, order.Status(r.Status), r.TestOrder, r.CreatedAt, r.UpdatedAt), nil
}

type OrderReadStore struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewOrderReadStore(dbtx db.DBTX, logger *slog.Logger) *OrderReadStore {
	return &OrderReadStore{db: dbtx, logger: logger}
}

func (r *OrderReadStore) findRow(ctx context.Context, id uuid.UUID) (*orderRow, error) {
	query, args, err := psql.Select(orderColumns...).From("orders").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "build order query", err)
	}
	row, err := scanOrder(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, infra.WrapPgErr(r.logger, "failed to get order by id", err)
	}
	return row, nil
}

func (r *OrderReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.OrderView, error) {
	row, err := r.findRow(ctx, id)
	if err != nil {
		return nil, err
	}
	view, err := row.toView()
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to decode order", err)
	}
	return view, nil
}

// FindAggregate loads the write-side order.
func (r *OrderReadStore) FindAggregate(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	row, err := r.findRow(ctx, id)
	if err != nil {
		return nil, err
	}
	o, err := row.toDomain()
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to decode order", err)
	}
	return o, nil
}

func (r *OrderReadStore) ListByResort(ctx context.Context, resortID uuid.UUID, filters queries.OrderFilters, keyset queries.OrderKeyset) ([]queries.OrderView, error) {
	b := psql.Select(orderColumns...).From("orders").Where(sq.Eq{"resort_id": resortID})
	if filters.Status != nil {
		b = b.Where(sq.Eq{"status": filters.Status.String()})
	}
	if filters.TestOrder != nil {
		b = b.Where(sq.Eq{"test_order": *filters.TestOrder})
	}
	if keyset.After != nil {
		b = b.Where(sq.Expr("(created_at, id) < (?, ?)", keyset.After.CreatedAt, keyset.After.ID))
	}
	// one extra row tells the caller a next page exists
	b = b.OrderBy("created_at DESC", "id DESC").Limit(uint64(keyset.Limit) + 1) // #nosec G115 -- limit is validated positive

	query, args, err := b.ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "build order list query", err)
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapPgErr(r.logger, "failed to list orders", err)
	}
	defer rows.Close()

	views := make([]queries.OrderView, 0, keyset.Limit+1)
	for rows.Next() {
		row, err := scanOrder(rows)
		if err != nil {
			return nil, infra.WrapPgErr(r.logger, "failed to scan order", err)
		}
		view, err := row.toView()
		if err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to decode order", err)
		}
		views = append(views, *view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapPgErr(r.logger, "failed to iterate orders", err)
	}
	return views, nil
}
