package cache

import (
	"context"
	"encoding/json"
	"time"
)

// GetJSON fetches the value at key and unmarshals it into dest.
// Returns false when the key is absent or Redis is unavailable.
func GetJSON(ctx context.Context, key string, dest interface{}) bool {
	if client == nil {
		return false
	}

	data, err := client.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}

	return json.Unmarshal(data, dest) == nil
}

// SetJSON marshals value and stores it at key with the given TTL.
// Failures are swallowed; the cache is an optimization, not a dependency.
func SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	if client == nil {
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		return
	}

	client.Set(ctx, key, data, ttl)
}

// Aside implements the cache-aside pattern: return the cached value at key if
// present, otherwise call load, cache its result, and return it.
func Aside[T any](ctx context.Context, key string, ttl time.Duration, load func() (T, error)) (T, error) {
	var cached T
	if GetJSON(ctx, key, &cached) {
		return cached, nil
	}

	value, err := load()
	if err != nil {
		return value, err
	}

	SetJSON(ctx, key, value, ttl)
	return value, nil
}
