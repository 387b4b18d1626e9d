package catalog

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/smartshoper/smartshoper/pkg/kvstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func initialized(t *testing.T, store kvstore.Store, size int, seed uint64) *Service {
	t.Helper()
	s := NewService(store, testLogger(), size, seed)
	s.Init(context.Background())
	return s
}

func Test_Init_GeneratesValidProducts(t *testing.T) {
	// given
	s := initialized(t, kvstore.NewMemory(), 50, 1)

	// then
	products := s.Snapshot()
	require.Len(t, products, 50)
	for _, p := range products {
		require.NoError(t, p.validate())

		assert.GreaterOrEqual(t, len(p.Prices), 2)
		assert.LessOrEqual(t, len(p.Prices), 4)
		sources := make(map[string]struct{})
		for _, quote := range p.Prices {
			sources[quote.Source] = struct{}{}
		}
		assert.Len(t, sources, len(p.Prices), "quote sources must be distinct")

		require.Len(t, p.PriceHistory, 30)
		for i := 1; i < len(p.PriceHistory); i++ {
			assert.False(t, p.PriceHistory[i].Date.Before(p.PriceHistory[i-1].Date),
				"price history must be chronological")
		}
	}
}

func Test_Init_QuotesWithinTwentyPercentOfEachOther(t *testing.T) {
	s := initialized(t, kvstore.NewMemory(), 50, 1)

	for _, p := range s.Snapshot() {
		// All quotes derive from one base price with a ±20% factor, so the
		// widest possible spread is 0.8x to 1.2x of that base.
		low, high := p.Prices[0].Price, p.Prices[0].Price
		for _, quote := range p.Prices {
			low = min(low, quote.Price)
			high = max(high, quote.Price)
		}
		assert.LessOrEqual(t, high/low, 1.2/0.8+1e-9)
	}
}

func Test_Init_PersistsAndReloads(t *testing.T) {
	// given
	store := kvstore.NewMemory()
	first := initialized(t, store, 20, 7)

	// when: a second service over the same store must load, not regenerate
	second := initialized(t, store, 20, 99)

	// then
	firstIDs := ids(first.Snapshot())
	secondIDs := ids(second.Snapshot())
	assert.Equal(t, firstIDs, secondIDs)
}

func Test_Init_RegeneratesOnCorruptBlob(t *testing.T) {
	// given
	store := kvstore.NewMemory()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, kvstore.Durable, "smartshoper_products", "{corrupt"))

	// when
	s := initialized(t, store, 10, 1)

	// then
	assert.Len(t, s.Snapshot(), 10)
}

func Test_Init_RegeneratesOnInvalidProducts(t *testing.T) {
	// given: a decodable blob that violates the product invariants
	store := kvstore.NewMemory()
	ctx := context.Background()
	bad := []Product{{ID: "p1", Title: "No quotes", Prices: nil}}
	require.NoError(t, kvstore.Save(ctx, store, kvstore.Durable, "smartshoper_products", bad))

	// when
	s := initialized(t, store, 10, 1)

	// then
	products := s.Snapshot()
	assert.Len(t, products, 10)
	for _, p := range products {
		assert.NotEmpty(t, p.Prices)
	}
}

func Test_Product_NotFound(t *testing.T) {
	s := initialized(t, kvstore.NewMemory(), 5, 1)

	_, err := s.Product("no-such-id")

	assert.ErrorIs(t, err, ErrProductNotFound)
}

func Test_Product_FoundByID(t *testing.T) {
	s := initialized(t, kvstore.NewMemory(), 5, 1)
	want := s.Snapshot()[2]

	found, err := s.Product(want.ID)

	require.NoError(t, err)
	assert.Equal(t, want.Title, found.Title)
}

func Test_Categories_LiveCounts(t *testing.T) {
	// given
	s := initialized(t, kvstore.NewMemory(), 100, 1)

	// when
	list := s.Categories()

	// then: fixed taxonomy in display order, counts summing to the catalog
	require.Len(t, list, 6)
	assert.Equal(t, "electronics", list[0].ID)
	assert.Equal(t, "toys-games", list[5].ID)
	total := 0
	for _, c := range list {
		total += c.Count
	}
	assert.Equal(t, 100, total)
}

func Test_Category_NotFound(t *testing.T) {
	s := initialized(t, kvstore.NewMemory(), 5, 1)

	_, err := s.Category("groceries")

	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func Test_ProductsByCategory(t *testing.T) {
	s := initialized(t, kvstore.NewMemory(), 100, 1)

	for _, c := range s.Categories() {
		products := s.ProductsByCategory(c.ID)
		assert.Len(t, products, c.Count)
		for _, p := range products {
			assert.Equal(t, c.ID, p.Category)
		}
	}
}

func Test_Featured_RankedByRatingTimesReviews(t *testing.T) {
	// given
	s := initialized(t, kvstore.NewMemory(), 50, 1)

	// when
	featured := s.Featured(8)

	// then
	require.Len(t, featured, 8)
	for i := 1; i < len(featured); i++ {
		prev := featured[i-1].Rating * float64(featured[i-1].ReviewCount)
		curr := featured[i].Rating * float64(featured[i].ReviewCount)
		assert.GreaterOrEqual(t, prev, curr)
	}
}

func Test_TodaysDeals_RankedByBestPrice(t *testing.T) {
	s := initialized(t, kvstore.NewMemory(), 50, 1)

	deals := s.TodaysDeals(6)

	require.Len(t, deals, 6)
	for i := 1; i < len(deals); i++ {
		assert.LessOrEqual(t, deals[i-1].BestPrice(), deals[i].BestPrice())
	}
}

func Test_BestPrice_IsMinimumQuote(t *testing.T) {
	p := Product{
		ID:    "p1",
		Title: "Widget",
		Prices: []PriceQuote{
			{Source: "Amazon", Price: 10},
			{Source: "Target", Price: 15},
		},
		CreatedAt: time.Now(),
	}

	assert.Equal(t, 10.0, p.BestPrice())
}

func ids(products []Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}
