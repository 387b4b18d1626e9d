// Package search fronts the catalog query engine with free-text search,
// typeahead suggestions and a persisted history of recent queries.
package search

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/smartshoper/smartshoper/internal/catalog"
	"github.com/smartshoper/smartshoper/pkg/kvstore"
)

// storageKey is the durable blob holding recent queries.
const storageKey = "smartshoper_searchHistory"

const (
	maxHistory     = 10
	maxSuggestions = 5
)

// Catalog is the slice of the catalog service the search service consumes.
type Catalog interface {
	Snapshot() []catalog.Product
}

// Service answers free-text queries over the catalog and remembers what
// was asked.
type Service struct {
	catalog Catalog
	store   kvstore.Store
	logger  *slog.Logger

	mu      sync.RWMutex
	history []string
}

// NewService creates a search service, loading any persisted history.
// A blob that cannot be decoded degrades to an empty history.
func NewService(ctx context.Context, cat Catalog, store kvstore.Store, logger *slog.Logger) *Service {
	s := &Service{
		catalog: cat,
		store:   store,
		logger:  logger.With("component", "search"),
	}
	var history []string
	if kvstore.Load(ctx, store, kvstore.Durable, storageKey, &history) {
		s.history = history
	}
	return s
}

// Search runs the query pipeline over the current catalog snapshot.
func (s *Service) Search(query string, f catalog.Filter, key catalog.SortKey) []catalog.Product {
	return catalog.Query(s.catalog.Snapshot(), query, f, key)
}

// Suggestions returns up to 5 distinct titles and brands starting with the
// query, case-insensitively. An empty query yields no suggestions.
func (s *Service) Suggestions(query string) []string {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []string{}
	}

	suggestions := make([]string, 0, maxSuggestions)
	seen := make(map[string]struct{})
	add := func(candidate string) bool {
		if !strings.HasPrefix(strings.ToLower(candidate), q) {
			return false
		}
		if _, dup := seen[candidate]; dup {
			return false
		}
		seen[candidate] = struct{}{}
		suggestions = append(suggestions, candidate)
		return len(suggestions) == maxSuggestions
	}

	for _, p := range s.catalog.Snapshot() {
		if add(p.Title) || add(p.Brand) {
			break
		}
	}
	return suggestions
}

// Remember records a query as the most recent history entry. Repeats move
// to the front; the history keeps at most 10 distinct queries.
func (s *Service) Remember(ctx context.Context, query string) error {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]string, 0, maxHistory)
	next = append(next, query)
	for _, q := range s.history {
		if q != query && len(next) < maxHistory {
			next = append(next, q)
		}
	}
	if err := kvstore.Save(ctx, s.store, kvstore.Durable, storageKey, next); err != nil {
		return err
	}
	s.history = next
	return nil
}

// History returns recent queries, most recent first.
func (s *Service) History() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.history)
}
