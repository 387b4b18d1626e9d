// Package catalog owns the product collection: loading or synthesizing it,
// lookups, category listings and the query engine that turns a filter/sort
// specification into an ordered result set.
package catalog

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/smartshoper/smartshoper/pkg/kvstore"
)

// storageKey is the durable blob holding the product collection.
const storageKey = "smartshoper_products"

// DefaultSize is the number of products synthesized when no catalog has
// been persisted yet.
const DefaultSize = 500

// Service owns the product collection. The collection is read-only after
// Init; every accessor works on the in-memory copy.
type Service struct {
	store  kvstore.Store
	logger *slog.Logger
	size   int
	seed   uint64

	mu       sync.RWMutex
	products []Product
}

// NewService creates a catalog over the given store. size products are
// synthesized when nothing usable is persisted; seed fixes the generator.
func NewService(store kvstore.Store, logger *slog.Logger, size int, seed uint64) *Service {
	if size <= 0 {
		size = DefaultSize
	}
	return &Service{
		store:  store,
		logger: logger.With("component", "catalog"),
		size:   size,
		seed:   seed,
	}
}

// Init loads the persisted catalog, or synthesizes and persists a fresh one
// when the stored blob is absent or unusable. Initialization never fails:
// a catalog that cannot be persisted still serves from memory.
func (s *Service) Init(ctx context.Context) {
	var products []Product
	if kvstore.Load(ctx, s.store, kvstore.Durable, storageKey, &products) && usable(products) {
		s.mu.Lock()
		s.products = products
		s.mu.Unlock()
		s.logger.Info("Catalog loaded from storage", "products", len(products))
		return
	}

	products = generate(s.size, s.seed)
	s.mu.Lock()
	s.products = products
	s.mu.Unlock()

	if err := kvstore.Save(ctx, s.store, kvstore.Durable, storageKey, products); err != nil {
		s.logger.Warn("Failed to persist generated catalog, serving from memory", "error", err)
	}
	s.logger.Info("Catalog generated", "products", len(products))
}

// usable reports whether a loaded collection satisfies the product
// invariants. A blob that decodes but violates them is treated the same as
// a corrupt one: regenerated.
func usable(products []Product) bool {
	if len(products) == 0 {
		return false
	}
	for i := range products {
		if err := products[i].validate(); err != nil {
			return false
		}
	}
	return true
}

// Product retrieves a product by its ID.
// Returns ErrProductNotFound if no product exists with the given ID.
func (s *Service) Product(id string) (*Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.products {
		if s.products[i].ID == id {
			p := s.products[i]
			return &p, nil
		}
	}
	return nil, ErrProductNotFound
}

// Categories returns the browsing taxonomy in display order with live
// product counts.
func (s *Service) Categories() []Category {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[string]int, len(categories))
	for i := range s.products {
		counts[s.products[i].Category]++
	}

	list := make([]Category, len(categories))
	copy(list, categories)
	for i := range list {
		list[i].Count = counts[list[i].ID]
	}
	return list
}

// Category returns a single category with its live count.
// Returns ErrCategoryNotFound if the ID names no category.
func (s *Service) Category(id string) (*Category, error) {
	for _, c := range s.Categories() {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, ErrCategoryNotFound
}

// ProductsByCategory returns the products in a category, in catalog order.
func (s *Service) ProductsByCategory(id string) []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]Product, 0)
	for i := range s.products {
		if s.products[i].Category == id {
			list = append(list, s.products[i])
		}
	}
	return list
}

// Featured returns the top limit products ranked by rating times review
// count, descending. Ties keep catalog order.
func (s *Service) Featured(limit int) []Product {
	list := s.Snapshot()
	slices.SortStableFunc(list, func(a, b Product) int {
		return cmpFloat(b.Rating*float64(b.ReviewCount), a.Rating*float64(a.ReviewCount))
	})
	return clip(list, limit)
}

// TodaysDeals returns the top limit products ranked by ascending best price.
// Ties keep catalog order.
func (s *Service) TodaysDeals(limit int) []Product {
	list := s.Snapshot()
	slices.SortStableFunc(list, func(a, b Product) int {
		return cmpFloat(a.BestPrice(), b.BestPrice())
	})
	return clip(list, limit)
}

// Snapshot returns a copy of the product collection in catalog order.
func (s *Service) Snapshot() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]Product, len(s.products))
	copy(list, s.products)
	return list
}

func clip(list []Product, limit int) []Product {
	if limit > 0 && limit < len(list) {
		return list[:limit]
	}
	return list
}
