// Package session provides the session-scoped key-value store that backs
// cart and customer-contact persistence. Entries live only as long as the
// browsing session: the Redis implementation attaches a TTL that is
// refreshed on every write.
package session

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a key has no value in the store
var ErrNotFound = errors.New("session key not found")

// Store defines the interface for session-scoped persistence
type Store interface {
	// Get returns the value stored under key, or ErrNotFound
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, refreshing the session lifetime
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key; deleting an absent key is not an error
	Delete(ctx context.Context, key string) error

	// Health checks if the store is reachable
	Health(ctx context.Context) error

	// Close releases the store's resources
	Close() error
}
