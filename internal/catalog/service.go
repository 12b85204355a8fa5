package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/parworldgolf/storefront-backend/internal/models"
)

// Service serves catalog reads from a short-lived in-process cache of the
// full collection, refreshed on expiry. singleflight collapses concurrent
// refreshes so a cache miss costs one round trip no matter how many
// requests arrive together.
type Service struct {
	repo   Repository
	sfg    singleflight.Group
	logger *slog.Logger

	mu        sync.Mutex
	cached    []models.ProductRecord
	fetchedAt time.Time
	ttl       time.Duration
}

// NewService creates a catalog service over the given repository
func NewService(repo Repository, ttl time.Duration, logger *slog.Logger) *Service {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &Service{
		repo:   repo,
		ttl:    ttl,
		logger: logger,
	}
}

// FetchAll returns every catalog item
func (s *Service) FetchAll(ctx context.Context) ([]models.ProductRecord, error) {
	s.mu.Lock()
	if s.cached != nil && time.Since(s.fetchedAt) < s.ttl {
		items := s.cached
		s.mu.Unlock()
		return items, nil
	}
	s.mu.Unlock()

	v, err, _ := s.sfg.Do("catalog", func() (interface{}, error) {
		items, err := s.repo.FetchAll(ctx)
		if err != nil {
			return nil, err
		}

		s.mu.Lock()
		s.cached = items
		s.fetchedAt = time.Now()
		s.mu.Unlock()

		s.logger.Debug("catalog cache refreshed", slog.Int("items", len(items)))
		return items, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]models.ProductRecord), nil
}

// FetchVisible returns the visible items matching the filter, preserving
// catalog order. Search matches name, brand or description
// case-insensitively; category matches exactly, ignoring case and
// surrounding whitespace.
func (s *Service) FetchVisible(ctx context.Context, filter models.ProductFilter) ([]models.ProductRecord, error) {
	items, err := s.FetchAll(ctx)
	if err != nil {
		return nil, err
	}

	visible := make([]models.ProductRecord, 0, len(items))
	for _, item := range items {
		if item.IsVisible && matches(item, filter) {
			visible = append(visible, item)
		}
	}

	return visible, nil
}

// FetchFeatured returns up to limit visible items for the landing page.
// When no item is visible it falls back to the first items of the whole
// collection, so a freshly seeded store still renders something.
func (s *Service) FetchFeatured(ctx context.Context, limit int) ([]models.ProductRecord, error) {
	if limit <= 0 {
		limit = 3
	}

	items, err := s.FetchAll(ctx)
	if err != nil {
		return nil, err
	}

	featured := make([]models.ProductRecord, 0, limit)
	for _, item := range items {
		if item.IsVisible {
			featured = append(featured, item)
			if len(featured) == limit {
				return featured, nil
			}
		}
	}

	if len(featured) > 0 {
		return featured, nil
	}

	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

// FetchByID returns a single item by id
func (s *Service) FetchByID(ctx context.Context, id string) (*models.ProductRecord, error) {
	items, err := s.FetchAll(ctx)
	if err != nil {
		return nil, err
	}

	for i := range items {
		if items[i].ID == id {
			item := items[i]
			return &item, nil
		}
	}

	return nil, models.ErrNotFoundWithMsg(fmt.Sprintf("product %s not found", id))
}

// Categories returns the distinct categories across visible items
func (s *Service) Categories(ctx context.Context) ([]string, error) {
	items, err := s.FetchVisible(ctx, models.ProductFilter{})
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	categories := []string{}
	for _, item := range items {
		c := strings.TrimSpace(item.Category)
		if c == "" || seen[strings.ToLower(c)] {
			continue
		}
		seen[strings.ToLower(c)] = true
		categories = append(categories, c)
	}

	return categories, nil
}

// Health checks the backing repository
func (s *Service) Health(ctx context.Context) error {
	return s.repo.Health(ctx)
}

func matches(item models.ProductRecord, filter models.ProductFilter) bool {
	if filter.Category != "" {
		got := strings.ToLower(strings.TrimSpace(item.Category))
		want := strings.ToLower(strings.TrimSpace(filter.Category))
		if got != want {
			return false
		}
	}

	if filter.Search != "" {
		term := strings.ToLower(filter.Search)
		if !strings.Contains(strings.ToLower(item.Name), term) &&
			!strings.Contains(strings.ToLower(item.Brand), term) &&
			!strings.Contains(strings.ToLower(item.Description), term) {
			return false
		}
	}

	return true
}
