package flat

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/poiesic/vectis/vector"
)

// ErrNotIterable indicates a Build over a store that cannot enumerate
// its contents.
var ErrNotIterable = errors.New("store does not support iteration")

// Index is an exhaustive cosine-similarity index: Build snapshots the
// store's contents and Query scans the snapshot. It trades query cost
// for zero build structure, which suits small and medium nets.
type Index struct {
	mu      sync.RWMutex
	ids     []string
	vectors map[string]vector.Vector
}

var _ vector.Index = (*Index)(nil)

// New creates an empty index.
func New() *Index {
	return &Index{vectors: make(map[string]vector.Vector)}
}

// Build snapshots the store. The store must implement vector.Iterable.
func (ix *Index) Build(ctx context.Context, store vector.Store) error {
	iterable, ok := store.(vector.Iterable)
	if !ok {
		return ErrNotIterable
	}

	ids := make([]string, 0)
	vectors := make(map[string]vector.Vector)
	err := iterable.ForEach(ctx, func(id string, v vector.Vector) error {
		ids = append(ids, id)
		vectors[id] = v
		return nil
	})
	if err != nil {
		return err
	}
	// Deterministic scan order regardless of backend iteration order.
	slices.Sort(ids)

	ix.mu.Lock()
	ix.ids = ids
	ix.vectors = vectors
	ix.mu.Unlock()
	return nil
}

// Len returns the number of indexed vectors.
func (ix *Index) Len() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return len(ix.ids)
}

type scored struct {
	id    string
	score float32
}

// Query returns up to topK identifiers ordered by decreasing cosine
// similarity to the probe. An empty index yields an empty result.
func (ix *Index) Query(ctx context.Context, probe vector.Vector, topK int) ([]string, error) {
	if topK <= 0 {
		return nil, nil
	}

	ix.mu.RLock()
	defer ix.mu.RUnlock()

	results := make([]scored, 0, len(ix.ids))
	for _, id := range ix.ids {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		results = append(results, scored{id: id, score: probe.Cosine(ix.vectors[id])})
	}

	slices.SortStableFunc(results, func(a, b scored) int {
		if a.score > b.score {
			return -1
		}
		if a.score < b.score {
			return 1
		}
		return 0
	})

	if len(results) > topK {
		results = results[:topK]
	}
	ids := make([]string, len(results))
	for i, r := range results {
		ids[i] = r.id
	}
	return ids, nil
}
