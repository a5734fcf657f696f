package shared

import (
	"context"
	"time"
)

// IdempotencyStore remembers client-supplied idempotency keys so a retried
// create request is not applied twice
type IdempotencyStore interface {
	// MarkProcessed marks a key as used with a TTL.
	// Returns true if the key was newly marked, false if it was already used.
	MarkProcessed(ctx context.Context, key string, ttl time.Duration) (bool, error)

	// IsProcessed checks if a key has already been used
	IsProcessed(ctx context.Context, key string) (bool, error)

	// Forget releases a key so the request can be retried after a failure
	Forget(ctx context.Context, key string) error

	// Close closes the store and releases resources
	Close() error
}

// IdempotencyConfig holds configuration for idempotency handling
type IdempotencyConfig struct {
	TTL     time.Duration
	Enabled bool
}

// DefaultIdempotencyConfig returns the default idempotency configuration
func DefaultIdempotencyConfig() IdempotencyConfig {
	return IdempotencyConfig{
		TTL:     24 * time.Hour,
		Enabled: true,
	}
}
