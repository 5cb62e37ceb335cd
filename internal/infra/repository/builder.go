package repository

import (
	"context"
	"log/slog"

	"lifepass-admin/internal/infra"
	"lifepass-admin/internal/infra/db"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// execAffected runs a built statement and reports the affected row count.
func execAffected(ctx context.Context, tx db.DBTX, logger *slog.Logger, msg string, b sq.Sqlizer) (int64, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return 0, infra.WrapRepoErr(logger, infra.KindDBFailure, "build "+msg, err)
	}
	tag, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return 0, infra.WrapPgErr(logger, msg, err)
	}
	return tag.RowsAffected(), nil
}

// uuid[] columns are NOT NULL, so absent lists are stored empty.
func nonNilIDs(ids []uuid.UUID) []uuid.UUID {
	if ids == nil {
		return []uuid.UUID{}
	}
	return ids
}
