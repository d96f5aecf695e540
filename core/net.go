package core

import "iter"

// Net groups nodes and owns an auxiliary id→object index that is
// independent of the tree edges. The index is caller-maintained via
// Register and Unregister; composition does not synchronize it, with
// the single convenience exception of AddNode.
type Net struct {
	object
	index map[string]Object
}

// NewNet creates a detached net with an empty index.
func NewNet(annotations map[string]any) *Net {
	return &Net{object: newObject(annotations), index: make(map[string]Object)}
}

func (n *Net) Kind() Kind              { return KindNet }
func (n *Net) AllowedChildren() []Kind { return []Kind{KindNode} }

func (n *Net) Hash() string { return structuralHash(n, "") }

// SemanticHash of a net digests its ordered child identifiers:
// membership is a net's only content, and unlike the structural hash
// it is invariant under reparenting.
func (n *Net) SemanticHash() string { return semanticHash(childIDs(n)) }

func (n *Net) clone() Object {
	dup := &Net{index: make(map[string]Object)}
	dup.object.cloneInto(dup, &n.object)
	return dup
}

// Register adds obj to the auxiliary index under its identifier.
func (n *Net) Register(obj Object) {
	n.index[obj.ID()] = obj
}

// Unregister removes obj from the auxiliary index. Unknown objects
// are a no-op.
func (n *Net) Unregister(obj Object) {
	delete(n.index, obj.ID())
}

// Get looks an object up in the auxiliary index. An absent identifier
// is reported by the bool, never by an error.
func (n *Net) Get(id string) (Object, bool) {
	obj, ok := n.index[id]
	return obj, ok
}

// AddNode creates a node, composes it into the net, and registers it
// in the auxiliary index.
func (n *Net) AddNode(data any) (*Node, error) {
	node := NewNode(data, nil)
	if _, err := Compose(n, node); err != nil {
		return nil, err
	}
	n.Register(node)
	return node, nil
}

// WalkNodes yields each node followed by its trees.
func (n *Net) WalkNodes() iter.Seq[Object] {
	return func(yield func(Object) bool) {
		for _, child := range n.children {
			node, ok := child.(*Node)
			if !ok {
				continue
			}
			if !yield(node) {
				return
			}
			for tree := range node.WalkTrees() {
				if !yield(tree) {
					return
				}
			}
		}
	}
}

// WalkAll yields every object under the net in breadth-first order.
func (n *Net) WalkAll() iter.Seq[Object] {
	return func(yield func(Object) bool) {
		queue := n.Children()
		for len(queue) > 0 {
			obj := queue[0]
			queue = queue[1:]
			if !yield(obj) {
				return
			}
			queue = append(queue, obj.Children()...)
		}
	}
}

// Find returns the first object under the net satisfying predicate,
// in breadth-first order. Absence is reported by the bool.
func (n *Net) Find(predicate func(Object) bool) (Object, bool) {
	for obj := range n.WalkAll() {
		if predicate(obj) {
			return obj, true
		}
	}
	return nil, false
}
