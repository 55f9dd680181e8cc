package cache

import (
	"context"
	"time"

	"quill/internal/observability"

	"github.com/redis/go-redis/v9"
)

// PageCache holds fully rendered response bodies for a short TTL.
//
// It serves the cached bytes for every request inside the TTL window even when
// the underlying data has changed; staleness up to the TTL is accepted.
// Expiry is the only automatic invalidation, Clear is the explicit one.
type PageCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewPageCache returns a PageCache writing through the given client.
// A nil client disables caching; Get then always misses and Store is a no-op.
func NewPageCache(rdb *redis.Client, ttl time.Duration) *PageCache {
	return &PageCache{rdb: rdb, ttl: ttl}
}

// Get returns the cached body for key. An unreachable Redis reports a miss;
// the page is never unavailable because the cache is.
func (p *PageCache) Get(ctx context.Context, key string) ([]byte, bool) {
	if p.rdb == nil || p.ttl <= 0 {
		return nil, false
	}

	body, err := p.rdb.Get(ctx, key).Bytes()
	if err != nil {
		observability.PageCacheMisses.WithLabelValues(key).Inc()
		return nil, false
	}

	observability.PageCacheHits.WithLabelValues(key).Inc()
	return body, true
}

// Store caches the body under key for the TTL. Write failures are swallowed.
func (p *PageCache) Store(ctx context.Context, key string, body []byte) {
	if p.rdb == nil || p.ttl <= 0 {
		return
	}
	p.rdb.Set(ctx, key, body, p.ttl)
}

// Clear drops every cached page. It scans for the page key prefix so unrelated
// keys sharing the Redis database survive.
func (p *PageCache) Clear(ctx context.Context) error {
	if p.rdb == nil {
		return nil
	}

	iter := p.rdb.Scan(ctx, 0, "page:*", 0).Iterator()
	for iter.Next(ctx) {
		if err := p.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}
