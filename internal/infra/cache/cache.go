package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"slices"
	"strings"
	"time"

	"lifepass-admin/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	TagOrders = "orders"
	keyPrefix = "lifepass:cache:"
	tagPrefix = "lifepass:tag:"
	genPrefix = "lifepass:gen:"
)

var ErrBackendUnavailable = errs.New("cache backend unavailable")

// Backend stores opaque entries and the tag index used for invalidation.
// Every InvalidateTags call bumps the generation of each tag it names.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration, tags []string) error
	InvalidateTags(ctx context.Context, tags ...string) error
	// Generation sums the generations of tags; it only ever grows.
	Generation(ctx context.Context, tags []string) (int64, error)
}

type Config struct {
	TTL time.Duration
	// Tags are attached to every entry on top of the key's own tags.
	Tags []string
}

// Key scopes an entry to a resort. Variant separates parameterised reads such as list filters.
type Key struct {
	EntityType string
	ResortID   uuid.UUID
	Variant    string
}

func (k Key) String() string {
	var b strings.Builder
	b.WriteString(keyPrefix)
	b.WriteString(k.EntityType)
	b.WriteByte(':')
	b.WriteString(k.ResortID.String())
	if k.Variant != "" {
		b.WriteByte(':')
		b.WriteString(k.Variant)
	}
	return b.String()
}

func (k Key) Tags() []string {
	return []string{k.EntityType, ResortTag(k.EntityType, k.ResortID)}
}

func ResortTag(entityType string, resortID uuid.UUID) string {
	return entityType + ":" + resortID.String()
}

// OrderTags are invalidated on every persisted order change.
func OrderTags(resortID uuid.UUID) []string {
	return []string{TagOrders, ResortTag(TagOrders, resortID)}
}

type Service struct {
	backend Backend
	cfg     Config
	logger  *slog.Logger
}

func NewService(backend Backend, cfg Config, logger *slog.Logger) *Service {
	return &Service{backend: backend, cfg: cfg, logger: logger}
}

func (s *Service) TTL() time.Duration {
	return s.cfg.TTL
}

func (s *Service) tagsFor(key Key) []string {
	tags := append(key.Tags(), s.cfg.Tags...)
	slices.Sort(tags)
	return slices.Compact(tags)
}

// Invalidate drops every entry carrying any of the tags. Repeating it is a no-op.
func (s *Service) Invalidate(ctx context.Context, tags ...string) error {
	if len(tags) == 0 {
		return nil
	}
	if err := s.backend.InvalidateTags(ctx, tags...); err != nil {
		s.logger.Warn("cache invalidation failed", "tags", tags, "error", err.Error())
		return errs.Mark(err, ErrBackendUnavailable)
	}
	s.logger.Debug("cache invalidated", "tags", tags)
	return nil
}

// Result is what a degrading read hands back. Degraded means the value is empty
// because the store could not be read, not because nothing exists.
type Result[T any] struct {
	Value    T
	Hit      bool
	Degraded bool
}

// ReadThrough returns the cached value for key or loads and stores it.
// Backend failures bypass the cache; loader failures are returned.
func ReadThrough[T any](ctx context.Context, s *Service, key Key, ttl time.Duration, load func(ctx context.Context) (T, error)) (T, bool, error) {
	var zero T
	if ttl <= 0 {
		ttl = s.cfg.TTL
	}
	k := key.String()

	raw, ok, err := s.backend.Get(ctx, k)
	switch {
	case err != nil:
		s.logger.Warn("cache read failed, bypassing", "key", k, "error", err.Error())
		v, lerr := load(ctx)
		return v, false, lerr
	case ok:
		var v T
		if derr := json.Unmarshal(raw, &v); derr == nil {
			return v, true, nil
		}
		s.logger.Warn("dropping undecodable cache entry", "key", k)
	}

	tags := s.tagsFor(key)
	gen, genErr := s.backend.Generation(ctx, tags)

	v, err := load(ctx)
	if err != nil {
		return zero, false, err
	}
	if genErr != nil {
		s.logger.Warn("cache generation unreadable, not storing", "key", k, "error", genErr.Error())
		return v, false, nil
	}
	// skip the write if any tag was invalidated while loading
	if cur, err := s.backend.Generation(ctx, tags); err != nil || cur != gen {
		s.logger.Debug("cache entry invalidated during load, not storing", "key", k)
		return v, false, nil
	}

	payload, err := json.Marshal(v)
	if err != nil {
		return v, false, nil
	}
	if err := s.backend.Set(ctx, k, payload, ttl, tags); err != nil {
		s.logger.Warn("cache write failed", "key", k, "error", err.Error())
	}
	return v, false, nil
}

// Fetch is ReadThrough that never fails the caller: a loader failure yields an
// empty Degraded result.
func Fetch[T any](ctx context.Context, s *Service, key Key, load func(ctx context.Context) (T, error)) Result[T] {
	v, hit, err := ReadThrough(ctx, s, key, 0, load)
	if err != nil {
		s.logger.Warn("catalog store unavailable, serving empty result", "key", key.String(), "error", err.Error())
		return Result[T]{Degraded: true}
	}
	return Result[T]{Value: v, Hit: hit}
}
