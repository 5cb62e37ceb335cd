package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"lifepass-admin/internal/domain/catalog"
	"lifepass-admin/internal/domain/device"
	"lifepass-admin/internal/domain/order"
	"lifepass-admin/internal/infra/db"
	"lifepass-admin/internal/infra/readstore"
	"lifepass-admin/internal/infra/repository"
	"lifepass-admin/internal/pkg/errs"
	"lifepass-admin/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool   *pgxpool.Pool
	logger *slog.Logger

	orders      *repository.OrderRepository
	allocations *repository.AllocationRepository
	catalog     *repository.CatalogRepository
	devices     *repository.DeviceRepository
}

func NewPostgresUoW(pool *pgxpool.Pool, logger *slog.Logger) shared.UnitOfWork {
	return &PostgresUoW{
		pool:        pool,
		logger:      logger,
		orders:      repository.NewOrderRepository(logger),
		allocations: repository.NewAllocationRepository(logger),
		catalog:     repository.NewCatalogRepository(logger),
		devices:     repository.NewDeviceRepository(logger),
	}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Read-only transaction for consistent multi-table snapshots
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error {
	return u.runReadOnlyTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly}, fn)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error {
	return fn(ctx, u.pool)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return newCommandReads(u.pool, u.logger)
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{dbtx: pgxTx, uow: u}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		// rollback must outlive a cancelled request
		if rollbackErr := pgxTx.Rollback(context.WithoutCancel(ctx)); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				u.logger.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				u.logger.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		u.logger.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func (u *PostgresUoW) runReadOnlyTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, db db.DBTX) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(context.WithoutCancel(ctx)); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				u.logger.Warn("failed to rollback read-only transaction", "error", rollbackErr.Error())
			}
		}
	}()

	if err := fn(ctx, pgxTx); err != nil {
		return err
	}

	return pgxTx.Commit(ctx)
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx db.DBTX
	uow  *PostgresUoW

	commandReads shared.CommandReads
}

func (t *pgTx) DB() db.DBTX                              { return t.dbtx }
func (t *pgTx) Orders() shared.OrderRepository           { return t.uow.orders }
func (t *pgTx) Allocations() shared.AllocationRepository { return t.uow.allocations }
func (t *pgTx) Catalog() shared.CatalogRepository        { return t.uow.catalog }
func (t *pgTx) Devices() shared.DeviceRepository         { return t.uow.devices }

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = newCommandReads(t.dbtx, t.uow.logger)
	}
	return t.commandReads
}

// commandReads resolves write-side aggregates against one connection or transaction.
type commandReads struct {
	resorts *readstore.ResortReadStore
	orders  *readstore.OrderReadStore
	catalog *readstore.CatalogReadStore
	devices *readstore.DeviceReadStore
	kiosks  *readstore.KioskReadStore
}

func newCommandReads(dbtx db.DBTX, logger *slog.Logger) *commandReads {
	return &commandReads{
		resorts: readstore.NewResortReadStore(dbtx, logger),
		orders:  readstore.NewOrderReadStore(dbtx, logger),
		catalog: readstore.NewCatalogReadStore(dbtx, logger),
		devices: readstore.NewDeviceReadStore(dbtx, logger),
		kiosks:  readstore.NewKioskReadStore(dbtx, logger),
	}
}

func (r *commandReads) ResortByID(ctx context.Context, id uuid.UUID) (*shared.ResortSnapshot, error) {
	return r.resorts.ResortByID(ctx, id)
}

func (r *commandReads) OrderByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	return r.orders.FindAggregate(ctx, id)
}

func (r *commandReads) ProductByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	return r.catalog.ProductByID(ctx, id)
}

func (r *commandReads) ConsumerCategoryByID(ctx context.Context, id uuid.UUID) (*catalog.ConsumerCategory, error) {
	return r.catalog.ConsumerCategoryByID(ctx, id)
}

func (r *commandReads) DeviceByCode(ctx context.Context, code string) (*device.Device, error) {
	return r.devices.DeviceByCode(ctx, code)
}

func (r *commandReads) KioskByID(ctx context.Context, id uuid.UUID) (*device.Kiosk, error) {
	return r.kiosks.KioskByID(ctx, id)
}
