package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"lifepass-admin/internal/domain/order"
	"lifepass-admin/internal/infra"
	"lifepass-admin/internal/infra/db"
	"lifepass-admin/internal/pkg/pgconv"

	sq "github.com/Masterminds/squirrel"
)

type OrderRepository struct {
	logger *slog.Logger
}

func NewOrderRepository(logger *slog.Logger) *OrderRepository {
	return &OrderRepository{logger: logger}
}

type orderPayload struct {
	lines       []byte
	price       []byte
	fulfillment []byte
}

func encodeOrder(o *order.Order) (orderPayload, error) {
	lines, err := json.Marshal(o.Lines())
	if err != nil {
		return orderPayload{}, err
	}
	var price []byte
	if o.Price() != nil {
		if price, err = json.Marshal(o.Price()); err != nil {
			return orderPayload{}, err
		}
	}
	fulfillment := o.Fulfillment()
	if fulfillment == nil {
		fulfillment = []order.LineFulfillment{}
	}
	ful, err := json.Marshal(fulfillment)
	if err != nil {
		return orderPayload{}, err
	}
	return orderPayload{lines: lines, price: price, fulfillment: ful}, nil
}

func (r *OrderRepository) Create(ctx context.Context, tx db.DBTX, o *order.Order) error {
	p, err := encodeOrder(o)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to encode order", err)
	}
	dr := o.DateRange()
	_, err = execAffected(ctx, tx, r.logger, "failed to create order", psql.
		Insert("orders").
		Columns("id", "resort_id", "sales_channel_id", "start_date", "end_date", "lines", "price",
			"fulfillment", "status", "test_order", "created_at", "updated_at").
		Values(o.ID(), o.ResortID(), pgconv.UUIDPtrToPgtype(o.SalesChannelID()), dr.Start(), pgconv.DatePtrToPgtype(dr.End()),
			p.lines, p.price, p.fulfillment, o.Status().String(), o.TestOrder(), o.CreatedAt(), o.UpdatedAt()))
	return err
}

// Update writes the mutable state. Lines and the date range never change after creation.
func (r *OrderRepository) Update(ctx context.Context, tx db.DBTX, o *order.Order) error {
	p, err := encodeOrder(o)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to encode order", err)
	}
	n, err := execAffected(ctx, tx, r.logger, "failed to update order", psql.
		Update("orders").
		Set("price", p.price).
		Set("fulfillment", p.fulfillment).
		Set("status", o.Status().String()).
		Set("test_order", o.TestOrder()).
		Set("updated_at", o.UpdatedAt()).
		Where(sq.Eq{"id": o.ID()}))
	if err != nil {
		return err
	}
	if n == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "order not found", nil)
	}
	return nil
}
