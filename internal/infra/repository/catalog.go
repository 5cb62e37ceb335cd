package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"lifepass-admin/internal/domain/catalog"
	"lifepass-admin/internal/domain/device"
	"lifepass-admin/internal/infra"
	"lifepass-admin/internal/infra/db"
	"lifepass-admin/internal/pkg/pgconv"

	sq "github.com/Masterminds/squirrel"
)

type CatalogRepository struct {
	logger *slog.Logger
}

func NewCatalogRepository(logger *slog.Logger) *CatalogRepository {
	return &CatalogRepository{logger: logger}
}

func (r *CatalogRepository) marshal(msg string, values ...any) ([][]byte, error) {
	out := make([][]byte, len(values))
	for i, v := range values {
		b, err := json.Marshal(v)
		if err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, msg, err)
		}
		out[i] = b
	}
	return out, nil
}

func (r *CatalogRepository) CreateProduct(ctx context.Context, tx db.DBTX, p *catalog.Product) error {
	js, err := r.marshal("failed to encode product", p.Title(), p.Description(), p.Authority())
	if err != nil {
		return err
	}
	_, err = execAffected(ctx, tx, r.logger, "failed to create product", psql.
		Insert("products").
		Columns("id", "resort_id", "active", "title", "description", "authority", "validity_category_id", "created_at", "updated_at").
		Values(p.ID(), p.ResortID(), p.Active(), js[0], js[1], js[2], pgconv.UUIDPtrToPgtype(p.ValidityCategoryID()), p.CreatedAt(), p.UpdatedAt()))
	return err
}

func (r *CatalogRepository) UpdateProduct(ctx context.Context, tx db.DBTX, p *catalog.Product) error {
	js, err := r.marshal("failed to encode product", p.Title(), p.Description(), p.Authority())
	if err != nil {
		return err
	}
	n, err := execAffected(ctx, tx, r.logger, "failed to update product", psql.
		Update("products").
		Set("active", p.Active()).
		Set("title", js[0]).
		Set("description", js[1]).
		Set("authority", js[2]).
		Set("validity_category_id", pgconv.UUIDPtrToPgtype(p.ValidityCategoryID())).
		Set("updated_at", p.UpdatedAt()).
		Where(sq.Eq{"id": p.ID()}))
	if err != nil {
		return err
	}
	if n == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "product not found", nil)
	}
	return nil
}

func (r *CatalogRepository) CreateConsumerCategory(ctx context.Context, tx db.DBTX, c *catalog.ConsumerCategory) error {
	js, err := r.marshal("failed to encode consumer category", c.Title(), c.Description())
	if err != nil {
		return err
	}
	ages := c.Ages()
	_, err = execAffected(ctx, tx, r.logger, "failed to create consumer category", psql.
		Insert("consumer_categories").
		Columns("id", "resort_id", "title", "description", "age_min", "age_max",
			"rental_price_per_day", "insurance_price_per_day", "created_at", "updated_at").
		Values(c.ID(), c.ResortID(), js[0], js[1], pgconv.IntPtrToPgtype(ages.Min), pgconv.IntPtrToPgtype(ages.Max),
			pgconv.DecimalToText(c.RentalPricePerDay()), pgconv.DecimalToText(c.InsurancePricePerDay()), c.CreatedAt(), c.UpdatedAt()))
	return err
}

func (r *CatalogRepository) UpdateConsumerCategory(ctx context.Context, tx db.DBTX, c *catalog.ConsumerCategory) error {
	js, err := r.marshal("failed to encode consumer category", c.Title(), c.Description())
	if err != nil {
		return err
	}
	ages := c.Ages()
	n, err := execAffected(ctx, tx, r.logger, "failed to update consumer category", psql.
		Update("consumer_categories").
		Set("title", js[0]).
		Set("description", js[1]).
		Set("age_min", pgconv.IntPtrToPgtype(ages.Min)).
		Set("age_max", pgconv.IntPtrToPgtype(ages.Max)).
		Set("rental_price_per_day", pgconv.DecimalToText(c.RentalPricePerDay())).
		Set("insurance_price_per_day", pgconv.DecimalToText(c.InsurancePricePerDay())).
		Set("updated_at", c.UpdatedAt()).
		Where(sq.Eq{"id": c.ID()}))
	if err != nil {
		return err
	}
	if n == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "consumer category not found", nil)
	}
	return nil
}

func (r *CatalogRepository) CreateValidityCategory(ctx context.Context, tx db.DBTX, v *catalog.ValidityCategory) error {
	js, err := r.marshal("failed to encode validity category", v.UnitLabel(), v.Rule())
	if err != nil {
		return err
	}
	_, err = execAffected(ctx, tx, r.logger, "failed to create validity category", psql.
		Insert("validity_categories").
		Columns("id", "resort_id", "unit_label", "validity", "created_at", "updated_at").
		Values(v.ID(), v.ResortID(), js[0], js[1], v.CreatedAt(), v.UpdatedAt()))
	return err
}

func (r *CatalogRepository) CreateSalesChannel(ctx context.Context, tx db.DBTX, s *catalog.SalesChannel) error {
	_, err := execAffected(ctx, tx, r.logger, "failed to create sales channel", psql.
		Insert("sales_channels").
		Columns("id", "resort_id", "name", "type", "active_product_ids", "active_consumer_category_ids",
			"lifepass_price", "insurance_price", "depot_ticket", "created_at", "updated_at").
		Values(s.ID(), s.ResortID(), s.Name(), s.Type().String(), nonNilIDs(s.ActiveProductIDs()), nonNilIDs(s.ActiveConsumerCategoryIDs()),
			pgconv.DecimalPtrToText(s.LifepassPrice()), pgconv.DecimalPtrToText(s.InsurancePrice()), s.DepotTicket(), s.CreatedAt(), s.UpdatedAt()))
	return err
}

func (r *CatalogRepository) CreateKiosk(ctx context.Context, tx db.DBTX, k *device.Kiosk) error {
	js, err := r.marshal("failed to encode kiosk location", k.Location())
	if err != nil {
		return err
	}
	_, err = execAffected(ctx, tx, r.logger, "failed to create kiosk", psql.
		Insert("kiosks").
		Columns("id", "resort_id", "name", "type", "content_block_ids", "location", "slot_count", "created_at", "updated_at").
		Values(k.ID(), k.ResortID(), k.Name(), k.Type(), nonNilIDs(k.ContentBlockIDs()), js[0], k.SlotCount(), k.CreatedAt(), k.UpdatedAt()))
	if err != nil {
		return err
	}

	slots := psql.Insert("kiosk_slots").Columns("kiosk_id", "slot_number", "status", "updated_at")
	for n := 1; n <= k.SlotCount(); n++ {
		slots = slots.Values(k.ID(), n, device.SlotEmpty.String(), k.CreatedAt())
	}
	_, err = execAffected(ctx, tx, r.logger, "failed to seed kiosk slots", slots)
	return err
}
