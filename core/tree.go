package core

import "iter"

// Tree groups branches.
type Tree struct {
	object
	Data any
}

// NewTree creates a detached tree. The annotation map may be nil.
func NewTree(data any, annotations map[string]any) *Tree {
	return &Tree{object: newObject(annotations), Data: data}
}

func (t *Tree) Kind() Kind              { return KindTree }
func (t *Tree) AllowedChildren() []Kind { return []Kind{KindBranch} }

func (t *Tree) Hash() string         { return structuralHash(t, contentString(t.Data)) }
func (t *Tree) SemanticHash() string { return semanticHash(contentString(t.Data)) }

func (t *Tree) clone() Object {
	dup := &Tree{Data: t.Data}
	dup.object.cloneInto(dup, &t.object)
	return dup
}

// AddBranch creates a branch and composes it into the tree. Passing
// Inherit as the policy gives the branch a structural copy of the
// tree's own policy; nil leaves the branch unbounded.
func (t *Tree) AddBranch(data any, retention *RetentionPolicy) (*Branch, error) {
	branch := NewBranch(data, nil)
	branch.SetRetention(resolveRetention(t, retention))
	if _, err := Compose(t, branch); err != nil {
		return nil, err
	}
	return branch, nil
}

// Branches returns the tree's branches in insertion order.
func (t *Tree) Branches() []*Branch {
	branches := make([]*Branch, 0, len(t.children))
	for _, child := range t.children {
		if branch, ok := child.(*Branch); ok {
			branches = append(branches, branch)
		}
	}
	return branches
}

// WalkBranches yields the tree's branches lazily.
func (t *Tree) WalkBranches() iter.Seq[*Branch] {
	return func(yield func(*Branch) bool) {
		for _, branch := range t.Branches() {
			if !yield(branch) {
				return
			}
		}
	}
}

// WalkLeaves yields every leaf under the tree.
func (t *Tree) WalkLeaves() iter.Seq[*Leaf] {
	return func(yield func(*Leaf) bool) {
		for branch := range t.WalkBranches() {
			for leaf := range branch.WalkLeaves() {
				if !yield(leaf) {
					return
				}
			}
		}
	}
}

// Walk yields each branch followed by its leaves.
func (t *Tree) Walk() iter.Seq[Object] {
	return func(yield func(Object) bool) {
		for _, child := range t.children {
			if !yield(child) {
				return
			}
			if branch, ok := child.(*Branch); ok {
				for leaf := range branch.WalkLeaves() {
					if !yield(leaf) {
						return
					}
				}
			}
		}
	}
}

// Node groups trees.
type Node struct {
	object
	Data any
}

// NewNode creates a detached node. The annotation map may be nil.
func NewNode(data any, annotations map[string]any) *Node {
	return &Node{object: newObject(annotations), Data: data}
}

func (n *Node) Kind() Kind              { return KindNode }
func (n *Node) AllowedChildren() []Kind { return []Kind{KindTree} }

func (n *Node) Hash() string         { return structuralHash(n, contentString(n.Data)) }
func (n *Node) SemanticHash() string { return semanticHash(contentString(n.Data)) }

func (n *Node) clone() Object {
	dup := &Node{Data: n.Data}
	dup.object.cloneInto(dup, &n.object)
	return dup
}

// AddTree creates a tree and composes it into the node. Retention
// semantics match Tree.AddBranch.
func (n *Node) AddTree(data any, retention *RetentionPolicy) (*Tree, error) {
	tree := NewTree(data, nil)
	tree.SetRetention(resolveRetention(n, retention))
	if _, err := Compose(n, tree); err != nil {
		return nil, err
	}
	return tree, nil
}

// Trees returns the node's trees in insertion order.
func (n *Node) Trees() []*Tree {
	trees := make([]*Tree, 0, len(n.children))
	for _, child := range n.children {
		if tree, ok := child.(*Tree); ok {
			trees = append(trees, tree)
		}
	}
	return trees
}

// WalkTrees yields the node's trees lazily.
func (n *Node) WalkTrees() iter.Seq[*Tree] {
	return func(yield func(*Tree) bool) {
		for _, tree := range n.Trees() {
			if !yield(tree) {
				return
			}
		}
	}
}

// WalkBranches yields every branch under the node.
func (n *Node) WalkBranches() iter.Seq[*Branch] {
	return func(yield func(*Branch) bool) {
		for tree := range n.WalkTrees() {
			for branch := range tree.WalkBranches() {
				if !yield(branch) {
					return
				}
			}
		}
	}
}

// resolveRetention maps the Inherit sentinel to a structural copy of
// the parent's policy.
func resolveRetention(parent Object, retention *RetentionPolicy) *RetentionPolicy {
	if retention == Inherit {
		return parent.Retention().Clone()
	}
	return retention
}
