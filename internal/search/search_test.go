package search

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/smartshoper/smartshoper/internal/catalog"
	"github.com/smartshoper/smartshoper/pkg/kvstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockCatalog serves a fixed snapshot.
type mockCatalog struct {
	products []catalog.Product
}

func (m *mockCatalog) Snapshot() []catalog.Product {
	return m.products
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func product(title, brand string, price float64) catalog.Product {
	return catalog.Product{
		ID:     title,
		Title:  title,
		Brand:  brand,
		Prices: []catalog.PriceQuote{{Source: "Retailer", Price: price, URL: "#"}},
	}
}

func newSearch(store kvstore.Store, products ...catalog.Product) *Service {
	return NewService(context.Background(), &mockCatalog{products: products}, store, testLogger())
}

func Test_Search_DelegatesToQueryEngine(t *testing.T) {
	// given
	s := newSearch(kvstore.NewMemory(),
		product("Laptop Pro", "Acme", 999),
		product("Desk", "Oakworks", 150),
	)

	// when
	found := s.Search("lap", catalog.NewFilter(), catalog.SortRelevance)

	// then
	require.Len(t, found, 1)
	assert.Equal(t, "Laptop Pro", found[0].Title)
}

func Test_Suggestions(t *testing.T) {
	s := newSearch(kvstore.NewMemory(),
		product("Laptop Pro", "Lapland Goods", 999),
		product("Laptop Air", "Acme", 899),
		product("Desk", "Oakworks", 150),
	)

	testCases := []struct {
		name     string
		query    string
		expected []string
	}{
		{name: "prefix on titles and brands", query: "lap", expected: []string{"Laptop Pro", "Lapland Goods", "Laptop Air"}},
		{name: "case-insensitive", query: "LAPTOP", expected: []string{"Laptop Pro", "Laptop Air"}},
		{name: "substring in the middle does not count", query: "pro", expected: []string{}},
		{name: "empty query yields nothing", query: "", expected: []string{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, s.Suggestions(tc.query))
		})
	}
}

func Test_Suggestions_CappedAtFive(t *testing.T) {
	products := make([]catalog.Product, 0, 10)
	for i := range 10 {
		products = append(products, product(fmt.Sprintf("Laptop %d", i), "Acme", 100))
	}
	s := newSearch(kvstore.NewMemory(), products...)

	assert.Len(t, s.Suggestions("laptop"), 5)
}

func Test_Suggestions_Distinct(t *testing.T) {
	s := newSearch(kvstore.NewMemory(),
		product("Laptop", "Laptop", 100),
		product("Laptop", "Acme", 100),
	)

	assert.Equal(t, []string{"Laptop"}, s.Suggestions("lap"))
}

func Test_Remember_MostRecentFirst(t *testing.T) {
	s := newSearch(kvstore.NewMemory())
	ctx := context.Background()

	require.NoError(t, s.Remember(ctx, "laptop"))
	require.NoError(t, s.Remember(ctx, "desk"))
	require.NoError(t, s.Remember(ctx, "phone"))

	assert.Equal(t, []string{"phone", "desk", "laptop"}, s.History())
}

func Test_Remember_RepeatMovesToFront(t *testing.T) {
	s := newSearch(kvstore.NewMemory())
	ctx := context.Background()

	require.NoError(t, s.Remember(ctx, "laptop"))
	require.NoError(t, s.Remember(ctx, "desk"))
	require.NoError(t, s.Remember(ctx, "laptop"))

	assert.Equal(t, []string{"laptop", "desk"}, s.History())
}

func Test_Remember_CappedAtTen(t *testing.T) {
	s := newSearch(kvstore.NewMemory())
	ctx := context.Background()

	for i := range 15 {
		require.NoError(t, s.Remember(ctx, fmt.Sprintf("query-%d", i)))
	}

	history := s.History()
	require.Len(t, history, 10)
	assert.Equal(t, "query-14", history[0])
	assert.Equal(t, "query-5", history[9])
}

func Test_Remember_IgnoresBlankQueries(t *testing.T) {
	s := newSearch(kvstore.NewMemory())
	ctx := context.Background()

	require.NoError(t, s.Remember(ctx, "   "))

	assert.Empty(t, s.History())
}

func Test_History_SurvivesRestart(t *testing.T) {
	// given
	store := kvstore.NewMemory()
	ctx := context.Background()
	first := newSearch(store)
	require.NoError(t, first.Remember(ctx, "laptop"))
	require.NoError(t, first.Remember(ctx, "desk"))

	// when
	second := newSearch(store)

	// then
	assert.Equal(t, []string{"desk", "laptop"}, second.History())
}
