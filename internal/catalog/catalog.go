// Package catalog provides read-only access to the golf-item collection.
// The cart never writes here; products flow one way, catalog to cart.
package catalog

import (
	"context"

	"github.com/parworldgolf/storefront-backend/internal/models"
)

// Repository defines the interface for fetching catalog documents
type Repository interface {
	// FetchAll returns every item in the collection with field defaults
	// applied
	FetchAll(ctx context.Context) ([]models.ProductRecord, error)

	// Health checks if the backing store is reachable
	Health(ctx context.Context) error
}
