//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

const DefaultResortName = "Test Resort"

// ResortID returns the id of the named resort, creating it when missing.
func ResortID(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	ctx := context.Background()
	id := uuid.New()
	tag, err := db.Exec(ctx, "INSERT INTO resorts (id, name) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING", id, name)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		require.NoError(t, db.QueryRow(ctx, "SELECT id FROM resorts WHERE name = $1", name).Scan(&id))
	}
	return id
}

// CreateTestDevice inserts a device without going through provisioning checks.
func CreateTestDevice(t *testing.T, db DBLike, serial, chipID string, luhnCode int) uuid.UUID {
	t.Helper()

	id := uuid.New()
	now := time.Now().UTC()
	_, err := db.Exec(context.Background(),
		"INSERT INTO devices (id, serial, chip_id, luhn_code, hex, created_at, updated_at) VALUES ($1, $2, $3, $4, '', $5, $5)",
		id, serial, chipID, luhnCode, now)
	require.NoError(t, err)
	return id
}

// HeldAllocations counts the unreleased allocations of an order.
func HeldAllocations(t *testing.T, db DBLike, orderID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM order_allocations WHERE order_id = $1 AND released_at IS NULL", orderID).Scan(&n)
	require.NoError(t, err)
	return n
}

// HeldByDevice counts the unreleased allocations of one device across all orders.
func HeldByDevice(t *testing.T, db DBLike, deviceCode string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM order_allocations WHERE device_code = $1 AND released_at IS NULL", deviceCode).Scan(&n)
	require.NoError(t, err)
	return n
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	_, err := pool.Exec(context.Background(),
		"INSERT INTO resorts (id, name) VALUES (gen_random_uuid(), $1) ON CONFLICT (name) DO NOTHING", DefaultResortName)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
