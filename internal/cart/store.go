// Package cart implements the session cart: an ordered, deduplicated list of
// line items persisted to the session store, with change notification for
// anything that needs to re-render when the cart mutates.
package cart

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/parworldgolf/storefront-backend/internal/models"
	"github.com/parworldgolf/storefront-backend/internal/session"
)

// Observer receives the post-mutation snapshot after every cart change.
// Observers run with the store's internal lock held and must not call back
// into the store.
type Observer func(items []models.CartLineItem)

// Store is the authoritative cart for one session.
//
// The store is the single owner of its line-item list; the rest of the system
// only ever sees snapshots. Every mutation runs as one uninterrupted
// mutate → persist → notify step, so observers always see final state, never
// an intermediate one. Persistence is best-effort: a failed write is logged
// and the session continues on in-memory state.
type Store struct {
	mu      sync.Mutex
	items   []models.CartLineItem
	persist session.Store
	key     string
	logger  *slog.Logger
	subs    map[int]Observer
	nextSub int
}

// NewStore creates a cart store bound to the given session key and loads any
// previously persisted state. Corrupt stored data is treated as an empty
// cart and the offending key is cleared.
func NewStore(ctx context.Context, persist session.Store, key string, logger *slog.Logger) *Store {
	s := &Store{
		persist: persist,
		key:     key,
		logger:  logger,
		subs:    make(map[int]Observer),
	}
	s.load(ctx)
	return s
}

func (s *Store) load(ctx context.Context) {
	data, err := s.persist.Get(ctx, s.key)
	if err != nil {
		if err != session.ErrNotFound {
			s.logger.Error("failed to load cart, starting empty",
				slog.String("key", s.key),
				slog.String("error", err.Error()),
			)
		}
		return
	}

	var items []models.CartLineItem
	if err := json.Unmarshal(data, &items); err != nil {
		// Malformed stored data: recover by clearing the corrupt key
		s.logger.Error("corrupt cart data, clearing key",
			slog.String("key", s.key),
			slog.String("error", err.Error()),
		)
		if delErr := s.persist.Delete(ctx, s.key); delErr != nil {
			s.logger.Error("failed to clear corrupt cart key",
				slog.String("key", s.key),
				slog.String("error", delErr.Error()),
			)
		}
		return
	}

	// A line item with quantity < 1 must not exist in the store
	for _, item := range items {
		if item.ID != "" && item.Quantity >= 1 {
			s.items = append(s.items, item)
		}
	}
}

// Add inserts a product into the cart, or increments its quantity when a
// line item with the same id already exists. Only quantity changes on a
// repeat add: name, price, brand, condition and image keep the values
// captured on first add.
func (s *Store) Add(ctx context.Context, product models.Product) error {
	if err := product.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == product.ID {
			s.items[i].Quantity++
			s.commit(ctx)
			return nil
		}
	}

	s.items = append(s.items, models.CartLineItem{
		ID:        product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Brand:     product.Brand,
		Condition: product.Condition,
		ImageURL:  product.ImageURL,
		Quantity:  1,
	})
	s.commit(ctx)
	return nil
}

// Remove deletes the line item with the given id. Removing an absent id is
// a no-op.
func (s *Store) Remove(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.commit(ctx)
			return
		}
	}
}

// SetQuantity overwrites the quantity of an existing line item. A quantity
// of zero or less removes the item. Setting quantity on an id that is not in
// the cart is a no-op; it never creates a phantom line item.
func (s *Store) SetQuantity(ctx context.Context, id string, quantity int) {
	if quantity <= 0 {
		s.Remove(ctx, id)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Quantity = quantity
			s.commit(ctx)
			return
		}
	}
}

// Clear empties the cart unconditionally
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	if err := s.persist.Delete(ctx, s.key); err != nil {
		s.logger.Error("failed to clear persisted cart",
			slog.String("key", s.key),
			slog.String("error", err.Error()),
		)
	}
	s.notify()
}

// Snapshot returns a copy of the current line items in insertion order.
// Callers must not treat it as live state; it does not change when the
// cart mutates.
func (s *Store) Snapshot() []models.CartLineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// lapsed reports whether the persisted key behind a non-empty store has
// expired. The session store's TTL defines the session lifetime; once the
// key is gone the in-memory state no longer belongs to a live session.
func (s *Store) lapsed(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.items) == 0 {
		return false
	}

	_, err := s.persist.Get(ctx, s.key)
	return err == session.ErrNotFound
}

// Subscription is a handle for cancelling an observer registration
type Subscription struct {
	store *Store
	id    int
}

// Cancel unregisters the observer; safe to call more than once
func (sub *Subscription) Cancel() {
	sub.store.mu.Lock()
	defer sub.store.mu.Unlock()
	delete(sub.store.subs, sub.id)
}

// Subscribe registers an observer that is invoked with the new snapshot
// after every successful mutation. Ordering between observers is
// unspecified. The observer is called while the store's lock is held, so
// it must not invoke any Store method; a callback that needs to mutate the
// cart has to do so from another goroutine after returning.
func (s *Store) Subscribe(fn Observer) *Subscription {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return &Subscription{store: s, id: id}
}

// commit persists the current state and notifies observers. Must be called
// with the mutex held so the whole mutation is one atomic unit.
func (s *Store) commit(ctx context.Context) {
	data, err := json.Marshal(s.items)
	if err != nil {
		s.logger.Error("failed to serialize cart",
			slog.String("key", s.key),
			slog.String("error", err.Error()),
		)
	} else if err := s.persist.Set(ctx, s.key, data); err != nil {
		// Persistence failures never block the mutation
		s.logger.Error("failed to persist cart, continuing in memory",
			slog.String("key", s.key),
			slog.String("error", err.Error()),
		)
	}

	s.notify()
}

func (s *Store) notify() {
	snapshot := s.snapshotLocked()
	for _, fn := range s.subs {
		fn(snapshot)
	}
}

func (s *Store) snapshotLocked() []models.CartLineItem {
	out := make([]models.CartLineItem, len(s.items))
	copy(out, s.items)
	return out
}
