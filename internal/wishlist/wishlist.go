// Package wishlist maintains the set of products a shopper has saved.
// Membership is unique; retrieval order is insertion order. Every mutation
// persists the whole set before it becomes visible to callers.
package wishlist

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/smartshoper/smartshoper/pkg/kvstore"
)

// storageKey is the durable blob holding the saved product IDs.
const storageKey = "smartshoper_wishlist"

// Service is an insertion-ordered set of product IDs backed by the
// key-value store.
type Service struct {
	store  kvstore.Store
	logger *slog.Logger

	mu  sync.RWMutex
	ids []string
}

// NewService creates a wishlist, loading any persisted set. A blob that
// cannot be decoded degrades to an empty wishlist.
func NewService(ctx context.Context, store kvstore.Store, logger *slog.Logger) *Service {
	s := &Service{
		store:  store,
		logger: logger.With("component", "wishlist"),
	}
	var ids []string
	if kvstore.Load(ctx, store, kvstore.Durable, storageKey, &ids) {
		s.ids = ids
	}
	return s
}

// Add puts a product on the wishlist. Reports true if it was newly added,
// false if it was already present. Adding twice is a no-op.
func (s *Service) Add(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if slices.Contains(s.ids, id) {
		return false, nil
	}
	next := append(slices.Clone(s.ids), id)
	if err := s.persist(ctx, next); err != nil {
		return false, err
	}
	s.ids = next
	return true, nil
}

// Remove takes a product off the wishlist. Reports true if it was removed,
// false if it was absent.
func (s *Service) Remove(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := slices.Index(s.ids, id)
	if index < 0 {
		return false, nil
	}
	next := slices.Delete(slices.Clone(s.ids), index, index+1)
	if err := s.persist(ctx, next); err != nil {
		return false, err
	}
	s.ids = next
	return true, nil
}

// Toggle flips a product's membership and reports the resulting state:
// true when the product was added, false when it was removed.
func (s *Service) Toggle(ctx context.Context, id string) (bool, error) {
	if s.Contains(id) {
		if _, err := s.Remove(ctx, id); err != nil {
			return true, err
		}
		return false, nil
	}
	if _, err := s.Add(ctx, id); err != nil {
		return false, err
	}
	return true, nil
}

// Contains reports whether a product is on the wishlist.
func (s *Service) Contains(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Contains(s.ids, id)
}

// List returns the saved product IDs in insertion order.
func (s *Service) List() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.ids)
}

// Count returns the number of saved products.
func (s *Service) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.ids)
}

// persist writes the candidate set before it is committed, so a failed
// write leaves the observable state untouched. Caller holds the lock.
func (s *Service) persist(ctx context.Context, ids []string) error {
	return kvstore.Save(ctx, s.store, kvstore.Durable, storageKey, ids)
}
