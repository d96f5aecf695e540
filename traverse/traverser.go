package traverse

import (
	"iter"

	"github.com/poiesic/vectis/core"
)

// Resolver maps an object to zero or more related objects.
type Resolver func(core.Object) []core.Object

// ParentResolver maps an object to its single predecessor, or nil.
type ParentResolver func(core.Object) core.Object

// Traverser is a breadth-first walker configured with up to three
// relation resolvers. A traverser with no resolvers visits only the
// start object.
type Traverser struct {
	children Resolver
	parent   ParentResolver
	cross    Resolver
}

// Option configures a Traverser.
type Option func(*Traverser)

// WithChildren sets the forward resolver.
func WithChildren(r Resolver) Option {
	return func(t *Traverser) { t.children = r }
}

// WithParent sets the reverse resolver.
func WithParent(r ParentResolver) Option {
	return func(t *Traverser) { t.parent = r }
}

// WithCross sets the cross-link resolver for relations outside the
// containment tree.
func WithCross(r Resolver) Option {
	return func(t *Traverser) { t.cross = r }
}

// New creates a traverser from the given options.
func New(opts ...Option) *Traverser {
	t := &Traverser{}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Children is the default forward resolver: structural child edges.
func Children(obj core.Object) []core.Object {
	return obj.Children()
}

// Parent is the default reverse resolver: the structural parent edge.
func Parent(obj core.Object) core.Object {
	return obj.Parent()
}

// step pairs a queued object with the path accumulated on the way to
// it during this traversal.
type step struct {
	obj  core.Object
	path []core.Object
}

// Traverse walks breadth-first from start, lazily yielding each
// reachable object exactly once together with its accumulated path:
// the ancestors as encountered during this traversal, which may
// diverge from the structural parent chain when parent or cross-link
// resolvers are configured.
//
// The visited set is keyed by object identifier, so cycles terminate.
// The sequence is not restartable mid-iteration; call Traverse again
// for an independent walk.
func (t *Traverser) Traverse(start core.Object) iter.Seq2[core.Object, []core.Object] {
	return func(yield func(core.Object, []core.Object) bool) {
		if start == nil {
			return
		}
		visited := make(map[string]struct{})
		queue := []step{{obj: start}}

		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]

			if _, seen := visited[cur.obj.ID()]; seen {
				continue
			}
			visited[cur.obj.ID()] = struct{}{}

			if !yield(cur.obj, cur.path) {
				return
			}

			next := make([]core.Object, len(cur.path)+1)
			copy(next, cur.path)
			next[len(cur.path)] = cur.obj

			if t.children != nil {
				for _, child := range t.children(cur.obj) {
					if child != nil {
						queue = append(queue, step{obj: child, path: next})
					}
				}
			}
			if t.parent != nil {
				if parent := t.parent(cur.obj); parent != nil {
					queue = append(queue, step{obj: parent, path: next})
				}
			}
			if t.cross != nil {
				for _, link := range t.cross(cur.obj) {
					if link != nil {
						queue = append(queue, step{obj: link, path: next})
					}
				}
			}
		}
	}
}
