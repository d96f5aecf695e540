package vector

import (
	"context"

	"github.com/poiesic/vectis/core"
)

// Store persists vectors by object identifier.
// Implementations own their durability, retry, and timeout behavior.
type Store interface {
	// Add stores a vector under the given identifier, replacing any
	// previous value.
	Add(ctx context.Context, id string, v Vector) error

	// Get retrieves the vector for an identifier. An absent
	// identifier is reported by the bool, never by an error.
	Get(ctx context.Context, id string) (Vector, bool, error)

	// Remove deletes the vector for an identifier. Removing an
	// absent identifier is a no-op.
	Remove(ctx context.Context, id string) error

	// Close releases backend resources.
	Close() error
}

// Iterable is an optional Store extension for backends that can
// enumerate their contents; index builds depend on it.
type Iterable interface {
	// ForEach invokes fn for every stored (id, vector) pair.
	// Iteration stops at the first error, which is returned.
	ForEach(ctx context.Context, fn func(id string, v Vector) error) error
}

// Index answers nearest-neighbor queries over a store's contents.
type Index interface {
	// Build (re)constructs the index from the store.
	Build(ctx context.Context, store Store) error

	// Query returns up to topK stored identifiers ordered by
	// decreasing similarity to the probe.
	Query(ctx context.Context, probe Vector, topK int) ([]string, error)
}

// Vectorizer turns a hierarchy object into a numeric vector.
type Vectorizer interface {
	Vectorize(ctx context.Context, obj core.Object) (Vector, error)
}
