package wishlist

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/smartshoper/smartshoper/pkg/kvstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newWishlist(store kvstore.Store) *Service {
	return NewService(context.Background(), store, testLogger())
}

func Test_Add_ReportsNewMembership(t *testing.T) {
	s := newWishlist(kvstore.NewMemory())
	ctx := context.Background()

	added, err := s.Add(ctx, "a")
	require.NoError(t, err)
	assert.True(t, added)

	// adding again is a no-op
	added, err = s.Add(ctx, "a")
	require.NoError(t, err)
	assert.False(t, added)
	assert.Equal(t, 1, s.Count())
}

func Test_Remove_ReportsMembership(t *testing.T) {
	s := newWishlist(kvstore.NewMemory())
	ctx := context.Background()
	_, err := s.Add(ctx, "a")
	require.NoError(t, err)

	removed, err := s.Remove(ctx, "a")
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = s.Remove(ctx, "a")
	require.NoError(t, err)
	assert.False(t, removed)
}

func Test_Toggle_IsItsOwnInverse(t *testing.T) {
	testCases := []struct {
		name    string
		initial []string
		id      string
	}{
		{name: "starts absent", initial: nil, id: "a"},
		{name: "starts present", initial: []string{"a"}, id: "a"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			s := newWishlist(kvstore.NewMemory())
			ctx := context.Background()
			for _, id := range tc.initial {
				_, err := s.Add(ctx, id)
				require.NoError(t, err)
			}
			before := s.Contains(tc.id)

			// when: toggled twice
			first, err := s.Toggle(ctx, tc.id)
			require.NoError(t, err)
			second, err := s.Toggle(ctx, tc.id)
			require.NoError(t, err)

			// then: membership is back where it started
			assert.Equal(t, !before, first)
			assert.Equal(t, before, second)
			assert.Equal(t, before, s.Contains(tc.id))
		})
	}
}

func Test_List_PreservesInsertionOrder(t *testing.T) {
	s := newWishlist(kvstore.NewMemory())
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		_, err := s.Add(ctx, id)
		require.NoError(t, err)
	}

	assert.Equal(t, []string{"a", "b", "c"}, s.List())
	assert.Equal(t, 3, s.Count())
}

func Test_RoundTrip_AcrossServices(t *testing.T) {
	// given: a persisted wishlist
	store := kvstore.NewMemory()
	ctx := context.Background()
	first := newWishlist(store)
	for _, id := range []string{"a", "b", "c"} {
		_, err := first.Add(ctx, id)
		require.NoError(t, err)
	}

	// when: a fresh service loads from the same store
	second := newWishlist(store)

	// then: same set, same insertion order
	assert.Equal(t, []string{"a", "b", "c"}, second.List())
	assert.True(t, second.Contains("b"))
}

func Test_CorruptBlobDegradesToEmpty(t *testing.T) {
	store := kvstore.NewMemory()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, kvstore.Durable, "smartshoper_wishlist", "{corrupt"))

	s := newWishlist(store)

	assert.Equal(t, 0, s.Count())
	assert.Empty(t, s.List())
}
