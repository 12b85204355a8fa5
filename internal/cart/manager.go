package cart

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/parworldgolf/storefront-backend/internal/models"
	"github.com/parworldgolf/storefront-backend/internal/session"
)

// CartKeyNamespace is the fixed namespace under which carts are persisted
const CartKeyNamespace = "parworld_golf_cart"

// CartKey returns the session-store key for a session's cart
func CartKey(sessionID string) string {
	return fmt.Sprintf("%s:%s", CartKeyNamespace, sessionID)
}

// Manager hands out the live cart store for each session, constructing it
// from persisted state on first use so observers keep firing for the whole
// lifetime of the session.
type Manager struct {
	mu      sync.Mutex
	stores  map[string]*Store
	persist session.Store
	logger  *slog.Logger
}

// NewManager creates a cart manager backed by the given session store
func NewManager(persist session.Store, logger *slog.Logger) *Manager {
	return &Manager{
		stores:  make(map[string]*Store),
		persist: persist,
		logger:  logger,
	}
}

// Get returns the cart store for a session, creating and loading it if this
// is the first time the session touches its cart. A cached store whose
// persisted key has lapsed is discarded first, so an expired session starts
// with an empty cart instead of stale in-memory state.
func (m *Manager) Get(ctx context.Context, sessionID string) *Store {
	m.mu.Lock()
	defer m.mu.Unlock()

	if store, ok := m.stores[sessionID]; ok {
		if !store.lapsed(ctx) {
			return store
		}
		delete(m.stores, sessionID)
	}

	store := NewStore(ctx, m.persist, CartKey(sessionID), m.logger)

	logger := m.logger
	store.Subscribe(func(items []models.CartLineItem) {
		logger.Debug("cart updated",
			slog.String("session_id", sessionID),
			slog.Int("total_items", TotalItems(items)),
			slog.Float64("total_price", TotalPrice(items)),
		)
	})

	m.stores[sessionID] = store
	return store
}
