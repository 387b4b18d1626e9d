package catalog

import (
	"math"
	"slices"
	"strings"
)

// SortKey selects the ordering of a query result.
type SortKey string

const (
	// SortRelevance preserves catalog order among matches.
	SortRelevance  SortKey = "relevance"
	SortPriceAsc   SortKey = "price_asc"
	SortPriceDesc  SortKey = "price_desc"
	SortRatingDesc SortKey = "rating_desc"
)

// ParseSortKey maps a string onto a SortKey. Anything unknown behaves as
// relevance.
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortPriceAsc, SortPriceDesc, SortRatingDesc:
		return SortKey(s)
	default:
		return SortRelevance
	}
}

// Filter is the conjunctive constraint set applied during querying.
// Empty string fields mean "no constraint"; price bounds are inclusive.
// Use NewFilter for an unconstrained filter: the zero value caps the best
// price at 0.
type Filter struct {
	Category  string
	Brand     string
	MinPrice  float64
	MaxPrice  float64
	MinRating float64
}

// NewFilter returns a filter that matches every product.
func NewFilter() Filter {
	return Filter{MaxPrice: math.Inf(1)}
}

// Query runs the three-stage pipeline over a catalog snapshot: a
// case-insensitive substring match on title, brand and description (skipped
// for an empty query), the conjunctive filter, and a stable sort by key.
// An unsatisfiable price range yields an empty result, not an error.
func Query(products []Product, query string, f Filter, key SortKey) []Product {
	if f.MinPrice > f.MaxPrice {
		return []Product{}
	}

	q := strings.ToLower(strings.TrimSpace(query))
	result := make([]Product, 0)
	for i := range products {
		p := &products[i]
		if q != "" && !textMatch(p, q) {
			continue
		}
		if !f.matches(p) {
			continue
		}
		result = append(result, *p)
	}

	switch key {
	case SortPriceAsc:
		slices.SortStableFunc(result, func(a, b Product) int {
			return cmpFloat(a.BestPrice(), b.BestPrice())
		})
	case SortPriceDesc:
		slices.SortStableFunc(result, func(a, b Product) int {
			return cmpFloat(b.BestPrice(), a.BestPrice())
		})
	case SortRatingDesc:
		slices.SortStableFunc(result, func(a, b Product) int {
			return cmpFloat(b.Rating, a.Rating)
		})
	}
	return result
}

func textMatch(p *Product, q string) bool {
	return strings.Contains(strings.ToLower(p.Title), q) ||
		strings.Contains(strings.ToLower(p.Brand), q) ||
		strings.Contains(strings.ToLower(p.Description), q)
}

func (f Filter) matches(p *Product) bool {
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.Brand != "" && !strings.EqualFold(p.Brand, f.Brand) {
		return false
	}
	best := p.BestPrice()
	if best < f.MinPrice || best > f.MaxPrice {
		return false
	}
	return p.Rating >= f.MinRating
}

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
