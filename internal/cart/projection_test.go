package cart

import (
	"context"
	"testing"

	"github.com/parworldgolf/storefront-backend/internal/models"
)

// Totals must track every mutation in a scripted sequence, recomputed from
// the snapshot rather than cached.
func TestProjection_TracksMutations(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	steps := []struct {
		name       string
		mutate     func()
		wantItems  int
		wantPrice  float64
	}{
		{
			name:      "add driver",
			mutate:    func() { store.Add(ctx, models.Product{ID: "a", Name: "Driver", Price: 45000}) },
			wantItems: 1,
			wantPrice: 45000,
		},
		{
			name:      "add driver again",
			mutate:    func() { store.Add(ctx, models.Product{ID: "a", Name: "Driver", Price: 45000}) },
			wantItems: 2,
			wantPrice: 90000,
		},
		{
			name:      "add putter",
			mutate:    func() { store.Add(ctx, models.Product{ID: "b", Name: "Putter", Price: 12000}) },
			wantItems: 3,
			wantPrice: 102000,
		},
		{
			name:      "bump putter quantity",
			mutate:    func() { store.SetQuantity(ctx, "b", 3) },
			wantItems: 5,
			wantPrice: 126000,
		},
		{
			name:      "remove driver",
			mutate:    func() { store.Remove(ctx, "a") },
			wantItems: 3,
			wantPrice: 36000,
		},
		{
			name:      "clear",
			mutate:    func() { store.Clear(ctx) },
			wantItems: 0,
			wantPrice: 0,
		},
	}

	for _, step := range steps {
		step.mutate()

		snapshot := store.Snapshot()
		if got := TotalItems(snapshot); got != step.wantItems {
			t.Errorf("%s: TotalItems = %d, want %d", step.name, got, step.wantItems)
		}
		if got := TotalPrice(snapshot); got != step.wantPrice {
			t.Errorf("%s: TotalPrice = %v, want %v", step.name, got, step.wantPrice)
		}
	}
}

func TestProjection_EmptySnapshot(t *testing.T) {
	if TotalItems(nil) != 0 {
		t.Error("TotalItems(nil) must be 0")
	}
	if TotalPrice(nil) != 0 {
		t.Error("TotalPrice(nil) must be 0")
	}
}
