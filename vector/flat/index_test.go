package flat

import (
	"context"
	"testing"

	"github.com/poiesic/vectis/vector"
	badgerstore "github.com/poiesic/vectis/vector/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// plainStore implements vector.Store without the Iterable extension.
type plainStore struct{}

func (plainStore) Add(context.Context, string, vector.Vector) error { return nil }
func (plainStore) Get(context.Context, string) (vector.Vector, bool, error) {
	return nil, false, nil
}
func (plainStore) Remove(context.Context, string) error { return nil }
func (plainStore) Close() error                         { return nil }

func newBuiltIndex(t *testing.T, contents map[string]vector.Vector) *Index {
	t.Helper()
	store, err := badgerstore.NewMemoryStore()
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	ctx := context.Background()
	for id, v := range contents {
		require.NoError(t, store.Add(ctx, id, v))
	}

	ix := New()
	require.NoError(t, ix.Build(ctx, store))
	return ix
}

func TestIndexQueryOrdersBySimilarity(t *testing.T) {
	ix := newBuiltIndex(t, map[string]vector.Vector{
		"east":  {1, 0},
		"north": {0, 1},
		"both":  {1, 1},
	})
	require.Equal(t, 3, ix.Len())

	got, err := ix.Query(context.Background(), vector.Vector{1, 0}, 3)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "east", got[0])
	assert.Equal(t, "both", got[1])
	assert.Equal(t, "north", got[2])
}

func TestIndexQueryTopK(t *testing.T) {
	ix := newBuiltIndex(t, map[string]vector.Vector{
		"a": {1, 0},
		"b": {0.9, 0.1},
		"c": {0, 1},
	})

	got, err := ix.Query(context.Background(), vector.Vector{1, 0}, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got)

	got, err = ix.Query(context.Background(), vector.Vector{1, 0}, 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestIndexEmpty(t *testing.T) {
	ix := newBuiltIndex(t, nil)
	got, err := ix.Query(context.Background(), vector.Vector{1}, 5)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestIndexRebuildReplacesSnapshot(t *testing.T) {
	store, err := badgerstore.NewMemoryStore()
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	ctx := context.Background()

	require.NoError(t, store.Add(ctx, "old", vector.Vector{1}))
	ix := New()
	require.NoError(t, ix.Build(ctx, store))
	require.Equal(t, 1, ix.Len())

	require.NoError(t, store.Remove(ctx, "old"))
	require.NoError(t, store.Add(ctx, "new", vector.Vector{1}))
	require.NoError(t, ix.Build(ctx, store))

	got, err := ix.Query(ctx, vector.Vector{1}, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"new"}, got)
}

func TestIndexBuildRequiresIterable(t *testing.T) {
	err := New().Build(context.Background(), plainStore{})
	assert.ErrorIs(t, err, ErrNotIterable)
}
