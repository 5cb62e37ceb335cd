package cache

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisBackend shares the cache between instances. Each tag is a set of entry keys.
type RedisBackend struct {
	rdb redis.Cmdable
}

func NewRedisBackend(rdb redis.Cmdable) *RedisBackend {
	return &RedisBackend{rdb: rdb}
}

func tagKey(tag string) string {
	return tagPrefix + tag
}

func genKey(tag string) string {
	return genPrefix + tag
}

func (r *RedisBackend) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := r.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

func (r *RedisBackend) Set(ctx context.Context, key string, value []byte, ttl time.Duration, tags []string) error {
	_, err := r.rdb.Pipelined(ctx, func(p redis.Pipeliner) error {
		p.Set(ctx, key, value, ttl)
		for _, t := range tags {
			p.SAdd(ctx, tagKey(t), key)
			p.Expire(ctx, tagKey(t), ttl)
		}
		return nil
	})
	return err
}

func (r *RedisBackend) InvalidateTags(ctx context.Context, tags ...string) error {
	for _, t := range tags {
		tk := tagKey(t)
		keys, err := r.rdb.SMembers(ctx, tk).Result()
		if err != nil {
			return err
		}
		if err := r.rdb.Del(ctx, append(keys, tk)...).Err(); err != nil {
			return err
		}
		if err := r.rdb.Incr(ctx, genKey(t)).Err(); err != nil {
			return err
		}
	}
	return nil
}

func (r *RedisBackend) Generation(ctx context.Context, tags []string) (int64, error) {
	if len(tags) == 0 {
		return 0, nil
	}
	keys := make([]string, len(tags))
	for i, t := range tags {
		keys[i] = genKey(t)
	}
	vals, err := r.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		return 0, err
	}
	var sum int64
	for _, v := range vals {
		s, ok := v.(string)
		if !ok {
			continue
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, err
		}
		sum += n
	}
	return sum, nil
}

func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
	})
}
