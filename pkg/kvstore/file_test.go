package kvstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_File_DurableSurvivesReopen(t *testing.T) {
	// given
	path := filepath.Join(t.TempDir(), "store.json")
	ctx := context.Background()

	store, err := NewFile(path)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, Durable, "key", "value"))

	// when: a new store over the same file simulates a restart
	reopened, err := NewFile(path)
	require.NoError(t, err)

	// then
	value, err := reopened.Get(ctx, Durable, "key")
	require.NoError(t, err)
	assert.Equal(t, "value", value)
}

func Test_File_SessionClearedOnReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	ctx := context.Background()

	store, err := NewFile(path)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, Session, "key", "value"))

	reopened, err := NewFile(path)
	require.NoError(t, err)

	_, err = reopened.Get(ctx, Session, "key")
	assert.ErrorIs(t, err, ErrNotFound)
}

func Test_File_CorruptFileDegradesToEmpty(t *testing.T) {
	// given a file that is not valid JSON
	path := filepath.Join(t.TempDir(), "store.json")
	require.NoError(t, os.WriteFile(path, []byte("{corrupt"), 0o644))

	// when
	store, err := NewFile(path)

	// then: opening succeeds with an empty durable scope
	require.NoError(t, err)
	_, err = store.Get(context.Background(), Durable, "key")
	assert.ErrorIs(t, err, ErrNotFound)
}

func Test_File_RemovePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	ctx := context.Background()

	store, err := NewFile(path)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, Durable, "key", "value"))
	require.NoError(t, store.Remove(ctx, Durable, "key"))

	reopened, err := NewFile(path)
	require.NoError(t, err)
	_, err = reopened.Get(ctx, Durable, "key")
	assert.ErrorIs(t, err, ErrNotFound)
}
