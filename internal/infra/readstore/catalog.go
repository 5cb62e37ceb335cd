package readstore

import (
	"context"
	"encoding/json"
	"log/slog"

	"lifepass-admin/internal/domain/catalog"
	"lifepass-admin/internal/infra"
	"lifepass-admin/internal/infra/db"
	"lifepass-admin/internal/pkg/pgconv"
	"lifepass-admin/internal/usecase/queries"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type CatalogReadStore struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewCatalogReadStore(dbtx db.DBTX, logger *slog.Logger) *CatalogReadStore {
	return &CatalogReadStore{db: dbtx, logger: logger}
}

// list runs a resort-scoped select and scans each row with scan.
func list[T any](ctx context.Context, dbtx db.DBTX, logger *slog.Logger, msg string, b sq.SelectBuilder, scan func(pgx.Row) (T, error)) ([]T, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr(logger, infra.KindDBFailure, "build "+msg, err)
	}
	rows, err := dbtx.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapPgErr(logger, "failed to list "+msg, err)
	}
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, infra.WrapPgErr(logger, "failed to scan "+msg, err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapPgErr(logger, "failed to iterate "+msg, err)
	}
	return out, nil
}

var productColumns = []string{"id", "resort_id", "active", "title", "description", "authority", "validity_category_id", "created_at", "updated_at"}

func scanProduct(row pgx.Row) (queries.ProductView, error) {
	var (
		v                      queries.ProductView
		title, desc, authority []byte
		validityCategoryID     pgtype.UUID
	)
	if err := row.Scan(&v.ID, &v.ResortID, &v.Active, &title, &desc, &authority, &validityCategoryID, &v.CreatedAt, &v.UpdatedAt); err != nil {
		return v, err
	}
	if err := unmarshalAll([]jsonField{{title, &v.Title}, {desc, &v.Description}, {authority, &v.Authority}}); err != nil {
		return v, err
	}
	v.ValidityCategoryID = pgconv.UUIDPtrFromPgtype(validityCategoryID)
	return v, nil
}

var consumerCategoryColumns = []string{
	"id", "resort_id", "title", "description", "age_min", "age_max",
	"rental_price_per_day::text", "insurance_price_per_day::text", "created_at", "updated_at",
}

func scanConsumerCategory(row pgx.Row) (queries.ConsumerCategoryView, error) {
	var (
		v                 queries.ConsumerCategoryView
		title, desc       []byte
		ageMin, ageMax    pgtype.Int4
		rental, insurance string
	)
	if err := row.Scan(&v.ID, &v.ResortID, &title, &desc, &ageMin, &ageMax, &rental, &insurance, &v.CreatedAt, &v.UpdatedAt); err != nil {
		return v, err
	}
	if err := unmarshalAll([]jsonField{{title, &v.Title}, {desc, &v.Description}}); err != nil {
		return v, err
	}
	v.AgeMin = pgconv.IntPtrFromPgtype(ageMin)
	v.AgeMax = pgconv.IntPtrFromPgtype(ageMax)
	var err error
	if v.RentalPricePerDay, err = pgconv.DecimalFromText(rental); err != nil {
		return v, err
	}
	if v.InsurancePricePerDay, err = pgconv.DecimalFromText(insurance); err != nil {
		return v, err
	}
	return v, nil
}

func scanValidityCategory(row pgx.Row) (queries.ValidityCategoryView, error) {
	var (
		v               queries.ValidityCategoryView
		label, validity []byte
	)
	if err := row.Scan(&v.ID, &v.ResortID, &label, &validity, &v.CreatedAt, &v.UpdatedAt); err != nil {
		return v, err
	}
	return v, unmarshalAll([]jsonField{{label, &v.UnitLabel}, {validity, &v.Validity}})
}

var salesChannelColumns = []string{
	"id", "resort_id", "name", "type", "active_product_ids", "active_consumer_category_ids",
	"lifepass_price::text", "insurance_price::text", "depot_ticket", "created_at", "updated_at",
}

func scanSalesChannel(row pgx.Row) (queries.SalesChannelView, error) {
	var (
		v                        queries.SalesChannelView
		lifepassPrice, insurance *string
	)
	if err := row.Scan(&v.ID, &v.ResortID, &v.Name, &v.Type, &v.ActiveProductIDs, &v.ActiveConsumerCategoryIDs,
		&lifepassPrice, &insurance, &v.DepotTicket, &v.CreatedAt, &v.UpdatedAt); err != nil {
		return v, err
	}
	var err error
	if v.LifepassPrice, err = pgconv.DecimalPtrFromText(lifepassPrice); err != nil {
		return v, err
	}
	if v.InsurancePrice, err = pgconv.DecimalPtrFromText(insurance); err != nil {
		return v, err
	}
	return v, nil
}

type jsonField struct {
	raw []byte
	dst any
}

// unmarshalAll decodes jsonb columns, skipping NULLs.
func unmarshalAll(pairs []jsonField) error {
	for _, p := range pairs {
		if len(p.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(p.raw, p.dst); err != nil {
			return err
		}
	}
	return nil
}

func byResort(table string, columns []string, resortID uuid.UUID) sq.SelectBuilder {
	return psql.Select(columns...).From(table).Where(sq.Eq{"resort_id": resortID}).OrderBy("created_at", "id")
}

func (r *CatalogReadStore) ProductsByResort(ctx context.Context, resortID uuid.UUID) ([]queries.ProductView, error) {
	return list(ctx, r.db, r.logger, "products", byResort("products", productColumns, resortID), scanProduct)
}

func (r *CatalogReadStore) ConsumerCategoriesByResort(ctx context.Context, resortID uuid.UUID) ([]queries.ConsumerCategoryView, error) {
	return list(ctx, r.db, r.logger, "consumer categories", byResort("consumer_categories", consumerCategoryColumns, resortID), scanConsumerCategory)
}

func (r *CatalogReadStore) ValidityCategoriesByResort(ctx context.Context, resortID uuid.UUID) ([]queries.ValidityCategoryView, error) {
	cols := []string{"id", "resort_id", "unit_label", "validity", "created_at", "updated_at"}
	return list(ctx, r.db, r.logger, "validity categories", byResort("validity_categories", cols, resortID), scanValidityCategory)
}

func (r *CatalogReadStore) SalesChannelsByResort(ctx context.Context, resortID uuid.UUID) ([]queries.SalesChannelView, error) {
	return list(ctx, r.db, r.logger, "sales channels", byResort("sales_channels", salesChannelColumns, resortID), scanSalesChannel)
}

func one(ctx context.Context, dbtx db.DBTX, logger *slog.Logger, msg string, b sq.SelectBuilder) (pgx.Row, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr(logger, infra.KindDBFailure, "build "+msg, err)
	}
	return dbtx.QueryRow(ctx, query, args...), nil
}

func (r *CatalogReadStore) ProductByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	row, err := one(ctx, r.db, r.logger, "product query", psql.Select(productColumns...).From("products").Where(sq.Eq{"id": id}))
	if err != nil {
		return nil, err
	}
	v, err := scanProduct(row)
	if err != nil {
		return nil, infra.WrapPgErr(r.logger, "failed to get product by id", err)
	}
	return catalog.ReconstructProduct(v.ID, v.ResortID, v.Active, v.Title, v.Description, v.Authority, v.ValidityCategoryID, v.CreatedAt, v.UpdatedAt), nil
}

func (r *CatalogReadStore) ConsumerCategoryByID(ctx context.Context, id uuid.UUID) (*catalog.ConsumerCategory, error) {
	row, err := one(ctx, r.db, r.logger, "consumer category query", psql.Select(consumerCategoryColumns...).From("consumer_categories").Where(sq.Eq{"id": id}))
	if err != nil {
		return nil, err
	}
	v, err := scanConsumerCategory(row)
	if err != nil {
		return nil, infra.WrapPgErr(r.logger, "failed to get consumer category by id", err)
	}
	return catalog.ReconstructConsumerCategory(v.ID, v.ResortID, v.Title, v.Description,
		catalog.AgeRange{Min: v.AgeMin, Max: v.AgeMax}, v.RentalPricePerDay, v.InsurancePricePerDay, v.CreatedAt, v.UpdatedAt), nil
}
