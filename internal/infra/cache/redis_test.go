//go:build unit

package cache_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"lifepass-admin/internal/infra/cache"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisBackend(t *testing.T) {
	ctx := context.Background()

	t.Run("get miss", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectGet("k").RedisNil()

		_, ok, err := cache.NewRedisBackend(rdb).Get(ctx, "k")

		require.NoError(t, err)
		assert.False(t, ok)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("set indexes tags", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		value := []byte(`["a"]`)
		mock.ExpectSet("k", value, time.Hour).SetVal("OK")
		mock.ExpectSAdd("lifepass:tag:products", "k").SetVal(1)
		mock.ExpectExpire("lifepass:tag:products", time.Hour).SetVal(true)

		err := cache.NewRedisBackend(rdb).Set(ctx, "k", value, time.Hour, []string{"products"})

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("invalidate deletes members and the tag", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectSMembers("lifepass:tag:orders").SetVal([]string{"k1", "k2"})
		mock.ExpectDel("k1", "k2", "lifepass:tag:orders").SetVal(3)
		mock.ExpectIncr("lifepass:gen:orders").SetVal(1)
		mock.ExpectSMembers("lifepass:tag:orders").SetVal([]string{})
		mock.ExpectDel("lifepass:tag:orders").SetVal(0)
		mock.ExpectIncr("lifepass:gen:orders").SetVal(2)

		backend := cache.NewRedisBackend(rdb)
		require.NoError(t, backend.InvalidateTags(ctx, "orders"))
		require.NoError(t, backend.InvalidateTags(ctx, "orders"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("generation sums tag counters", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectMGet("lifepass:gen:orders", "lifepass:gen:products").SetVal([]interface{}{"3", nil})

		gen, err := cache.NewRedisBackend(rdb).Generation(ctx, []string{"orders", "products"})

		require.NoError(t, err)
		assert.Equal(t, int64(3), gen)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("generation surfaces errors", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectMGet("lifepass:gen:orders").SetErr(errors.New("connection refused"))

		_, err := cache.NewRedisBackend(rdb).Generation(ctx, []string{"orders"})

		require.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
