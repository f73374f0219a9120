// ABOUTME: Cache interface for calculation results
// ABOUTME: Implemented by the memory, redis and sqlite backends

// Package interfaces defines the contracts between the duration core, its
// service layer and the infrastructure that backs them.
package interfaces

import (
	"context"
	"time"
)

// Cache stores serialized calculation results keyed by content hash.
// Implementations live under infrastructure/cache (memory, redis, sqlite).
//
// Example usage:
//
//	key := "durations:" + hash
//	if data, err := cache.Get(ctx, key); err == nil {
//		// decode cached ParseOutput
//	}
//	err := cache.Set(ctx, key, encoded, time.Hour)
type Cache interface {
	// Get returns the cached bytes for key, or an error on a miss.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key. A ttl of 0 means no expiration.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
