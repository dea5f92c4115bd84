package cachemanager

import (
	"context"
	"time"
)

// ReadThroughCache wraps a CacheManager with a loader function. Misses call
// the loader and store its result; shouldSkipCache bypasses the cache
// entirely (used when a caller needs guaranteed-fresh reads).
type ReadThroughCache[K ~string, V any, I any] struct {
	cache           CacheManager[K, V]
	load            func(ctx context.Context, input I) (V, error)
	shouldSkipCache bool
}

func NewReadThroughCache[K ~string, V any, I any](
	cache CacheManager[K, V],
	load func(ctx context.Context, input I) (V, error),
	shouldSkipCache bool,
) *ReadThroughCache[K, V, I] {
	return &ReadThroughCache[K, V, I]{
		cache:           cache,
		load:            load,
		shouldSkipCache: shouldSkipCache,
	}
}

// Get returns the cached value for key, loading and caching it on a miss.
// Loader errors are never cached.
func (r *ReadThroughCache[K, V, I]) Get(ctx context.Context, key K, input I, ttl time.Duration) (V, error) {
	if r.shouldSkipCache {
		return r.load(ctx, input)
	}

	if value, ok := r.cache.Get(ctx, key); ok {
		return value, nil
	}

	value, err := r.load(ctx, input)
	if err != nil {
		return value, err
	}

	r.cache.Set(ctx, key, value, ttl)
	return value, nil
}
