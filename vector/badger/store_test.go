package badger

import (
	"context"
	"testing"

	"github.com/poiesic/vectis/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewMemoryStore()
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreAddGet(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	v := vector.Vector{0.1, -0.5, 2.25}
	require.NoError(t, store.Add(ctx, "obj-1", v))

	got, found, err := store.Get(ctx, "obj-1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, v, got)
}

func TestStoreGetAbsent(t *testing.T) {
	store := newTestStore(t)

	got, found, err := store.Get(context.Background(), "missing")
	require.NoError(t, err, "an absent identifier is not an error")
	assert.False(t, found)
	assert.Nil(t, got)
}

func TestStoreAddReplaces(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Add(ctx, "obj-1", vector.Vector{1}))
	require.NoError(t, store.Add(ctx, "obj-1", vector.Vector{2, 3}))

	got, found, err := store.Get(ctx, "obj-1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, vector.Vector{2, 3}, got)
}

func TestStoreRemove(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Add(ctx, "obj-1", vector.Vector{1}))
	require.NoError(t, store.Remove(ctx, "obj-1"))

	_, found, err := store.Get(ctx, "obj-1")
	require.NoError(t, err)
	assert.False(t, found)

	// Removing an absent identifier is a no-op.
	require.NoError(t, store.Remove(ctx, "never-stored"))
}

func TestStoreForEach(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	want := map[string]vector.Vector{
		"a": {1, 2},
		"b": {3},
		"c": {4, 5, 6},
	}
	for id, v := range want {
		require.NoError(t, store.Add(ctx, id, v))
	}

	got := make(map[string]vector.Vector)
	err := store.ForEach(ctx, func(id string, v vector.Vector) error {
		got[id] = v
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestStoreRoundTripsEmptyVector(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Add(ctx, "empty", vector.Vector{}))
	got, found, err := store.Get(ctx, "empty")
	require.NoError(t, err)
	require.True(t, found)
	assert.Empty(t, got)
}
