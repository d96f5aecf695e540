package core

import "iter"

// Leaf is the terminal level of a hierarchy: it carries payload data
// and accepts no children.
type Leaf struct {
	object
	Data any
}

// NewLeaf creates a detached leaf. The annotation map may be nil.
func NewLeaf(data any, annotations map[string]any) *Leaf {
	return &Leaf{object: newObject(annotations), Data: data}
}

func (l *Leaf) Kind() Kind              { return KindLeaf }
func (l *Leaf) AllowedChildren() []Kind { return nil }

func (l *Leaf) Hash() string         { return structuralHash(l, contentString(l.Data)) }
func (l *Leaf) SemanticHash() string { return semanticHash(contentString(l.Data)) }

func (l *Leaf) clone() Object {
	dup := &Leaf{Data: l.Data}
	dup.object.cloneInto(dup, &l.object)
	return dup
}

// Branch groups leaves.
type Branch struct {
	object
	Data any
}

// NewBranch creates a detached branch. The annotation map may be nil.
func NewBranch(data any, annotations map[string]any) *Branch {
	return &Branch{object: newObject(annotations), Data: data}
}

func (b *Branch) Kind() Kind              { return KindBranch }
func (b *Branch) AllowedChildren() []Kind { return []Kind{KindLeaf} }

func (b *Branch) Hash() string { return structuralHash(b, contentString(b.Data)) }

// SemanticHash folds in the branch's own identifier: a branch's data
// is a label, not distinguishing content on its own.
func (b *Branch) SemanticHash() string {
	return semanticHash(contentString(b.Data) + "|" + b.id)
}

func (b *Branch) clone() Object {
	dup := &Branch{Data: b.Data}
	dup.object.cloneInto(dup, &b.object)
	return dup
}

// AddLeaf creates a leaf from data and composes it into the branch.
func (b *Branch) AddLeaf(data any, annotations map[string]any) (*Leaf, error) {
	leaf := NewLeaf(data, annotations)
	if _, err := Compose(b, leaf); err != nil {
		return nil, err
	}
	return leaf, nil
}

// Leaves returns the branch's leaves in insertion order.
func (b *Branch) Leaves() []*Leaf {
	leaves := make([]*Leaf, 0, len(b.children))
	for _, child := range b.children {
		if leaf, ok := child.(*Leaf); ok {
			leaves = append(leaves, leaf)
		}
	}
	return leaves
}

// WalkLeaves yields the branch's leaves lazily.
func (b *Branch) WalkLeaves() iter.Seq[*Leaf] {
	return func(yield func(*Leaf) bool) {
		for _, child := range b.children {
			if leaf, ok := child.(*Leaf); ok {
				if !yield(leaf) {
					return
				}
			}
		}
	}
}
