package kvstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Memory_ScopesAreIsolated(t *testing.T) {
	// given
	store := NewMemory()
	ctx := context.Background()

	// when
	require.NoError(t, store.Set(ctx, Durable, "key", "durable-value"))
	require.NoError(t, store.Set(ctx, Session, "key", "session-value"))

	// then
	durable, err := store.Get(ctx, Durable, "key")
	require.NoError(t, err)
	assert.Equal(t, "durable-value", durable)

	session, err := store.Get(ctx, Session, "key")
	require.NoError(t, err)
	assert.Equal(t, "session-value", session)
}

func Test_Memory_GetMissingKey(t *testing.T) {
	store := NewMemory()

	_, err := store.Get(context.Background(), Durable, "missing")

	assert.ErrorIs(t, err, ErrNotFound)
}

func Test_Memory_RemoveIsIdempotent(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, Durable, "key", "value"))

	require.NoError(t, store.Remove(ctx, Durable, "key"))
	require.NoError(t, store.Remove(ctx, Durable, "key"))

	_, err := store.Get(ctx, Durable, "key")
	assert.ErrorIs(t, err, ErrNotFound)
}

func Test_SaveLoad_RoundTrip(t *testing.T) {
	// given
	store := NewMemory()
	ctx := context.Background()
	saved := []string{"a", "b", "c"}

	// when
	require.NoError(t, Save(ctx, store, Durable, "list", saved))
	var loaded []string
	ok := Load(ctx, store, Durable, "list", &loaded)

	// then
	require.True(t, ok)
	assert.Equal(t, saved, loaded)
}

func Test_Load_DegradesToAbsent(t *testing.T) {
	testCases := []struct {
		name  string
		setup func(t *testing.T, store Store)
	}{
		{
			name:  "missing key",
			setup: func(t *testing.T, store Store) {},
		},
		{
			name: "undecodable payload",
			setup: func(t *testing.T, store Store) {
				require.NoError(t, store.Set(context.Background(), Durable, "list", "{not json"))
			},
		},
		{
			name: "payload of the wrong shape",
			setup: func(t *testing.T, store Store) {
				require.NoError(t, store.Set(context.Background(), Durable, "list", `{"an":"object"}`))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			store := NewMemory()
			tc.setup(t, store)
			// when
			var loaded []string
			ok := Load(context.Background(), store, Durable, "list", &loaded)
			// then
			assert.False(t, ok)
		})
	}
}

func Test_Scope_String(t *testing.T) {
	assert.Equal(t, "durable", Durable.String())
	assert.Equal(t, "session", Session.String())
}
