package readstore

import (
	"context"
	"log/slog"

	"lifepass-admin/internal/infra"
	"lifepass-admin/internal/infra/db"
	"lifepass-admin/internal/usecase/shared"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

type ResortReadStore struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewResortReadStore(dbtx db.DBTX, logger *slog.Logger) *ResortReadStore {
	return &ResortReadStore{db: dbtx, logger: logger}
}

func (r *ResortReadStore) ResortByID(ctx context.Context, id uuid.UUID) (*shared.ResortSnapshot, error) {
	row, err := one(ctx, r.db, r.logger, "resort query", psql.Select("id", "name").From("resorts").Where(sq.Eq{"id": id}))
	if err != nil {
		return nil, err
	}
	var s shared.ResortSnapshot
	if err := row.Scan(&s.ID, &s.Name); err != nil {
		return nil, infra.WrapPgErr(r.logger, "failed to get resort by id", err)
	}
	return &s, nil
}
