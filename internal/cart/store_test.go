package cart

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	"github.com/parworldgolf/storefront-backend/internal/models"
	"github.com/parworldgolf/storefront-backend/internal/session"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newTestStore(t *testing.T) (*Store, *session.MemoryStore) {
	t.Helper()
	persist := session.NewMemoryStore()
	store := NewStore(context.Background(), persist, CartKey("test-session"), testLogger())
	return store, persist
}

func driver() models.Product {
	return models.Product{
		ID:    "a",
		Name:  "Driver",
		Price: 45000,
		Brand: "Titleist",
	}
}

func TestStore_AddIncrementsQuantity(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := store.Add(ctx, driver()); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}

	snapshot := store.Snapshot()
	if len(snapshot) != 1 {
		t.Fatalf("expected 1 line item, got %d", len(snapshot))
	}
	if snapshot[0].Quantity != 3 {
		t.Errorf("expected quantity 3, got %d", snapshot[0].Quantity)
	}
}

func TestStore_RepeatAddKeepsFirstSnapshot(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	if err := store.Add(ctx, driver()); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	// Same id with different details, as if the catalog changed mid-session
	changed := models.Product{ID: "a", Name: "Driver v2", Price: 50000, Brand: "Callaway"}
	if err := store.Add(ctx, changed); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	item := store.Snapshot()[0]
	if item.Quantity != 2 {
		t.Errorf("expected quantity 2, got %d", item.Quantity)
	}
	if item.Name != "Driver" || item.Price != 45000 || item.Brand != "Titleist" {
		t.Errorf("first-add fields were overwritten: %+v", item)
	}
}

func TestStore_AddPreservesInsertionOrder(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	products := []models.Product{
		{ID: "a", Name: "Driver", Price: 45000},
		{ID: "b", Name: "Putter", Price: 12000},
		{ID: "c", Name: "Golf Balls", Price: 2500},
	}
	for _, p := range products {
		if err := store.Add(ctx, p); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}

	// Re-adding an existing item must not move it
	if err := store.Add(ctx, products[0]); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	snapshot := store.Snapshot()
	wantOrder := []string{"a", "b", "c"}
	for i, want := range wantOrder {
		if snapshot[i].ID != want {
			t.Errorf("position %d: expected %s, got %s", i, want, snapshot[i].ID)
		}
	}
}

func TestStore_AddValidation(t *testing.T) {
	tests := []struct {
		name    string
		product models.Product
	}{
		{name: "missing id", product: models.Product{Name: "Driver", Price: 100}},
		{name: "missing name", product: models.Product{ID: "a", Price: 100}},
		{name: "negative price", product: models.Product{ID: "a", Name: "Driver", Price: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, _ := newTestStore(t)

			err := store.Add(context.Background(), tt.product)
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if len(store.Snapshot()) != 0 {
				t.Error("invalid product must not enter the cart")
			}
		})
	}
}

func TestStore_SetQuantityZeroEqualsRemove(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(ctx context.Context, s *Store)
	}{
		{
			name:   "remove",
			mutate: func(ctx context.Context, s *Store) { s.Remove(ctx, "a") },
		},
		{
			name:   "set quantity zero",
			mutate: func(ctx context.Context, s *Store) { s.SetQuantity(ctx, "a", 0) },
		},
		{
			name:   "set negative quantity",
			mutate: func(ctx context.Context, s *Store) { s.SetQuantity(ctx, "a", -2) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, _ := newTestStore(t)
			ctx := context.Background()

			if err := store.Add(ctx, driver()); err != nil {
				t.Fatalf("Add failed: %v", err)
			}

			tt.mutate(ctx, store)

			for _, item := range store.Snapshot() {
				if item.ID == "a" {
					t.Error("item a should be absent from snapshot")
				}
			}
		})
	}
}

func TestStore_SetQuantityOverwrites(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	if err := store.Add(ctx, driver()); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	store.SetQuantity(ctx, "a", 5)

	if got := store.Snapshot()[0].Quantity; got != 5 {
		t.Errorf("expected quantity 5, got %d", got)
	}
}

func TestStore_SetQuantityMissingIDIsNoop(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	store.SetQuantity(ctx, "ghost", 4)

	if len(store.Snapshot()) != 0 {
		t.Error("setting quantity on an unknown id must not create a line item")
	}
}

func TestStore_RemoveMissingIDIsNoop(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	if err := store.Add(ctx, driver()); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	store.Remove(ctx, "ghost")

	if len(store.Snapshot()) != 1 {
		t.Error("removing an unknown id must leave the cart untouched")
	}
}

func TestStore_Clear(t *testing.T) {
	store, persist := newTestStore(t)
	ctx := context.Background()

	if err := store.Add(ctx, driver()); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	store.Clear(ctx)

	if len(store.Snapshot()) != 0 {
		t.Error("expected empty snapshot after clear")
	}
	if _, err := persist.Get(ctx, CartKey("test-session")); err != session.ErrNotFound {
		t.Errorf("expected persisted cart to be deleted, got %v", err)
	}
}

func TestStore_SnapshotIsACopy(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	if err := store.Add(ctx, driver()); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	snapshot := store.Snapshot()
	snapshot[0].Quantity = 99
	snapshot[0].Name = "mutated"

	item := store.Snapshot()[0]
	if item.Quantity != 1 || item.Name != "Driver" {
		t.Error("mutating a snapshot must not affect the store")
	}
}

func TestStore_ReloadFromPersistence(t *testing.T) {
	persist := session.NewMemoryStore()
	key := CartKey("reload-session")
	ctx := context.Background()

	store := NewStore(ctx, persist, key, testLogger())
	if err := store.Add(ctx, driver()); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := store.Add(ctx, models.Product{ID: "b", Name: "Putter", Price: 12000}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	store.SetQuantity(ctx, "a", 2)

	before := store.Snapshot()

	// Simulate a page reload: fresh store over the same persisted key
	reloaded := NewStore(ctx, persist, key, testLogger())
	after := reloaded.Snapshot()

	if len(after) != len(before) {
		t.Fatalf("expected %d items after reload, got %d", len(before), len(after))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("item %d differs after reload: %+v vs %+v", i, before[i], after[i])
		}
	}
}

func TestStore_CorruptDataStartsEmptyAndClearsKey(t *testing.T) {
	persist := session.NewMemoryStore()
	key := CartKey("corrupt-session")
	ctx := context.Background()

	if err := persist.Set(ctx, key, []byte(`{"not": "a cart"`)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	store := NewStore(ctx, persist, key, testLogger())

	if len(store.Snapshot()) != 0 {
		t.Error("corrupt data must yield an empty cart, not an error")
	}
	if _, err := persist.Get(ctx, key); err != session.ErrNotFound {
		t.Errorf("expected corrupt key to be cleared, got %v", err)
	}
}

func TestStore_LoadDropsNonPositiveQuantities(t *testing.T) {
	persist := session.NewMemoryStore()
	key := CartKey("stale-session")
	ctx := context.Background()

	stored := `[{"id":"a","name":"Driver","price":45000,"quantity":2},{"id":"b","name":"Putter","price":12000,"quantity":0}]`
	if err := persist.Set(ctx, key, []byte(stored)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	store := NewStore(ctx, persist, key, testLogger())

	snapshot := store.Snapshot()
	if len(snapshot) != 1 || snapshot[0].ID != "a" {
		t.Errorf("expected only item a to survive load, got %+v", snapshot)
	}
}

func TestStore_PersistFailureDoesNotBlockMutation(t *testing.T) {
	persist := session.NewMemoryStore()
	persist.FailSets = true
	ctx := context.Background()

	store := NewStore(ctx, persist, CartKey("failing-session"), testLogger())

	if err := store.Add(ctx, driver()); err != nil {
		t.Fatalf("Add must not surface persistence failures, got %v", err)
	}
	if len(store.Snapshot()) != 1 {
		t.Error("in-memory state must advance even when persistence fails")
	}
}

func TestStore_ObserversSeeFinalState(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	var calls int
	var last []models.CartLineItem
	sub := store.Subscribe(func(items []models.CartLineItem) {
		calls++
		last = items
	})

	if err := store.Add(ctx, driver()); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	store.SetQuantity(ctx, "a", 4)

	if calls != 2 {
		t.Errorf("expected 2 notifications, got %d", calls)
	}
	if len(last) != 1 || last[0].Quantity != 4 {
		t.Errorf("observer must see post-mutation state, got %+v", last)
	}

	sub.Cancel()
	store.Remove(ctx, "a")

	if calls != 2 {
		t.Errorf("cancelled observer must not be notified, got %d calls", calls)
	}
}

func TestManager_ReturnsSameStorePerSession(t *testing.T) {
	manager := NewManager(session.NewMemoryStore(), testLogger())
	ctx := context.Background()

	a := manager.Get(ctx, "s1")
	b := manager.Get(ctx, "s1")
	c := manager.Get(ctx, "s2")

	if a != b {
		t.Error("expected the same store for the same session")
	}
	if a == c {
		t.Error("expected distinct stores for distinct sessions")
	}
}

func TestManager_LapsedSessionStartsEmpty(t *testing.T) {
	mr := miniredis.RunT(t)
	persist, err := session.NewRedisStore(session.RedisConfig{
		URL: "redis://" + mr.Addr(),
		TTL: time.Minute,
	}, testLogger())
	if err != nil {
		t.Fatalf("NewRedisStore failed: %v", err)
	}
	defer persist.Close()

	manager := NewManager(persist, testLogger())
	ctx := context.Background()

	if err := manager.Get(ctx, "s1").Add(ctx, driver()); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	// The session TTL elapses and the persisted cart key expires with it
	mr.FastForward(2 * time.Minute)

	if got := len(manager.Get(ctx, "s1").Snapshot()); got != 0 {
		t.Errorf("lapsed session must start with an empty cart, got %d items", got)
	}
}

func TestManager_LiveSessionKeepsItsStore(t *testing.T) {
	persist := session.NewMemoryStore()
	manager := NewManager(persist, testLogger())
	ctx := context.Background()

	store := manager.Get(ctx, "s1")
	if err := store.Add(ctx, driver()); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if manager.Get(ctx, "s1") != store {
		t.Error("a session with a live persisted cart must keep its store")
	}
}

func TestManager_SessionsAreIsolated(t *testing.T) {
	manager := NewManager(session.NewMemoryStore(), testLogger())
	ctx := context.Background()

	if err := manager.Get(ctx, "s1").Add(ctx, driver()); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if len(manager.Get(ctx, "s2").Snapshot()) != 0 {
		t.Error("one session's cart must not leak into another")
	}
}
