package hunt

import (
	"reflect"

	"github.com/poiesic/vectis/core"
)

// Context describes what a search is looking for and carries a match
// once found. The match keys are optional; an empty key imposes no
// constraint. It holds intent and bookkeeping only, no traversal
// logic.
type Context struct {
	// Node is the matched candidate, set by Hunter.Hunt.
	Node core.Object

	// Optional match keys. Zero values impose no constraint.
	ID           string
	Data         any
	Hash         string
	SemanticHash string

	// Predicate, if set, must also accept the candidate.
	Predicate func(core.Object) bool

	// Score accumulates scorer contributions via Bump.
	Score float64

	// Path is the traversal path accumulated up to the candidate.
	Path []core.Object

	// Metadata carries caller enrichments.
	Metadata map[string]any
}

// Matches reports whether obj satisfies every supplied key and the
// predicate, conjunctively. There is no disjunction and no fuzzy
// scoring here.
func (c *Context) Matches(obj core.Object) bool {
	if obj == nil {
		return false
	}
	if c.ID != "" && obj.ID() != c.ID {
		return false
	}
	if c.Hash != "" && obj.Hash() != c.Hash {
		return false
	}
	if c.SemanticHash != "" && obj.SemanticHash() != c.SemanticHash {
		return false
	}
	if c.Data != nil {
		// Payloads are arbitrary and may hold uncomparable types
		// (slices, maps), so deep equality rather than ==.
		if data, ok := objectData(obj); !ok || !reflect.DeepEqual(data, c.Data) {
			return false
		}
	}
	if c.Predicate != nil && !c.Predicate(obj) {
		return false
	}
	return true
}

// Enrich merges key/value pairs into the context metadata and returns
// the context for chaining.
func (c *Context) Enrich(kv map[string]any) *Context {
	if c.Metadata == nil {
		c.Metadata = make(map[string]any, len(kv))
	}
	for k, v := range kv {
		c.Metadata[k] = v
	}
	return c
}

// Bump adds value to the context score and returns the context for
// chaining.
func (c *Context) Bump(value float64) *Context {
	c.Score += value
	return c
}

// objectData extracts the payload of data-bearing variants. Container
// variants without payload data report false.
func objectData(obj core.Object) (any, bool) {
	switch v := obj.(type) {
	case *core.Leaf:
		return v.Data, true
	case *core.Branch:
		return v.Data, true
	case *core.Tree:
		return v.Data, true
	case *core.Node:
		return v.Data, true
	case *core.Layer:
		return v.Name, true
	case *core.Matrix:
		return v.Name, true
	default:
		return nil, false
	}
}
