package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/dentalflow/clinic-system/internal/core/ports"
)

const defaultCacheTTL = 5 * time.Minute

// CachedStore decorates an EntityStore with a Redis read-through cache for
// single-document reads. Writes go through to the inner store and refresh
// the cache; deletes invalidate it. Index operations are never cached.
//
// A Redis outage degrades to the inner store: cache errors are logged and
// otherwise ignored so persistence stays authoritative.
type CachedStore struct {
	inner  ports.EntityStore
	client *redis.Client
	ttl    time.Duration
	log    zerolog.Logger
}

func NewCachedStore(inner ports.EntityStore, client *redis.Client, ttl time.Duration, log zerolog.Logger) *CachedStore {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &CachedStore{inner: inner, client: client, ttl: ttl, log: log}
}

func cacheKey(kind, id string) string { return "entity:" + kind + "/" + id }

func (s *CachedStore) Get(ctx context.Context, kind, id string) (json.RawMessage, error) {
	raw, err := s.client.Get(ctx, cacheKey(kind, id)).Bytes()
	if err == nil {
		return raw, nil
	}
	if !errors.Is(err, redis.Nil) {
		s.log.Warn().Err(err).Str("kind", kind).Str("id", id).Msg("cache read failed")
	}

	doc, err := s.inner.Get(ctx, kind, id)
	if err != nil {
		return nil, err
	}
	s.fill(ctx, kind, id, doc)
	return doc, nil
}

func (s *CachedStore) Put(ctx context.Context, kind, id string, doc json.RawMessage) error {
	if err := s.inner.Put(ctx, kind, id, doc); err != nil {
		return err
	}
	s.fill(ctx, kind, id, doc)
	return nil
}

func (s *CachedStore) Delete(ctx context.Context, kind, id string) (bool, error) {
	existed, err := s.inner.Delete(ctx, kind, id)
	if err != nil {
		return false, err
	}
	if err := s.client.Del(ctx, cacheKey(kind, id)).Err(); err != nil {
		s.log.Warn().Err(err).Str("kind", kind).Str("id", id).Msg("cache invalidation failed")
	}
	return existed, nil
}

func (s *CachedStore) ListIDs(ctx context.Context, kind string) ([]string, error) {
	return s.inner.ListIDs(ctx, kind)
}

func (s *CachedStore) AddToIndex(ctx context.Context, kind, id string) error {
	return s.inner.AddToIndex(ctx, kind, id)
}

func (s *CachedStore) RemoveFromIndex(ctx context.Context, kind, id string) error {
	return s.inner.RemoveFromIndex(ctx, kind, id)
}

func (s *CachedStore) fill(ctx context.Context, kind, id string, doc json.RawMessage) {
	if err := s.client.Set(ctx, cacheKey(kind, id), []byte(doc), s.ttl).Err(); err != nil {
		s.log.Warn().Err(err).Str("kind", kind).Str("id", id).Msg("cache fill failed")
	}
}
