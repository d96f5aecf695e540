package core

import (
	"fmt"
	"slices"
)

// Compose attaches child to container.
//
// It fails with a TypeContractError if the child's kind is outside the
// container's allowed-child set. If an existing child is value-equal
// (structural-hash equal) to the incoming one, the insert deduplicates
// to a no-op and the child is returned unchanged. Otherwise the child
// is appended and its parent back-reference set, and the container's
// retention policy, if any, is applied immediately. A policy in
// NotifyAbort mode unwinds the insert: the container is restored to
// its pre-insert state and the RetentionAbortedError is returned.
func Compose(container, child Object) (Object, error) {
	if child == nil {
		return nil, ErrNilChild
	}
	if !slices.Contains(container.AllowedChildren(), child.Kind()) {
		return nil, &TypeContractError{Container: container.Kind(), Child: child.Kind()}
	}

	hash := child.Hash()
	for _, existing := range container.Children() {
		if existing.Hash() == hash {
			return child, nil
		}
	}

	before := container.Children()
	priorParent := child.Parent()
	container.appendChild(child)
	child.setParent(container)

	if policy := container.Retention(); policy != nil {
		if err := policy.Apply(container); err != nil {
			container.setChildren(before)
			child.setParent(priorParent)
			return nil, err
		}
	}
	return child, nil
}

// Decompose detaches child from container: the parent back-reference
// is cleared and the child removed from the sequence. Detaching a
// non-member is a tolerant no-op, so Decompose is idempotent. The
// child is always returned.
func Decompose(container, child Object) Object {
	if child == nil {
		return nil
	}
	if child.Parent() == container {
		child.setParent(nil)
		container.removeChild(child)
	}
	return child
}

// Clone returns n independent deep copies of obj. Every copy (and
// every object below it) gets a fresh identifier, a structurally
// copied retention policy, and no parent.
func Clone(obj Object, n int) ([]Object, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrCloneCount, n)
	}
	copies := make([]Object, n)
	for i := range copies {
		copies[i] = obj.clone()
	}
	return copies, nil
}

// Partition splits obj's direct children into parts contiguous,
// size-balanced groups, preserving insertion order. The children
// remain attached; the groups are views for the caller.
func Partition(obj Object, parts int) ([][]Object, error) {
	if parts <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrPartitionCount, parts)
	}
	children := obj.Children()
	groups := make([][]Object, 0, parts)

	size := len(children) / parts
	rem := len(children) % parts
	idx := 0
	for i := 0; i < parts; i++ {
		n := size
		if i < rem {
			n++
		}
		groups = append(groups, children[idx:idx+n])
		idx += n
	}
	return groups, nil
}

// WithScope runs fn inside obj's lifecycle: OnLoad before, OnUnload
// after. The unload hook fires on every exit path, including panics
// and error returns, so resources bound through it cannot leak.
func WithScope(obj Object, fn func(Object) error) error {
	obj.OnLoad()
	defer obj.OnUnload()
	return fn(obj)
}

// Path returns the chain of objects from the root down to obj,
// inclusive, following structural parent edges.
func Path(obj Object) []Object {
	var reversed []Object
	for cur := obj; cur != nil; cur = cur.Parent() {
		reversed = append(reversed, cur)
	}
	slices.Reverse(reversed)
	return reversed
}

// Root returns the outermost ancestor of obj (obj itself if detached).
func Root(obj Object) Object {
	cur := obj
	for cur.Parent() != nil {
		cur = cur.Parent()
	}
	return cur
}

// Depth returns obj's distance from its root: 0 for a root.
func Depth(obj Object) int {
	return len(Path(obj)) - 1
}

// Less orders objects by depth: a precedes b when a sits closer to
// its root. Objects at equal depth are unordered unless Equal.
func Less(a, b Object) bool {
	return Depth(a) < Depth(b)
}

// Equal reports value equality: equality of structural hash, not
// object identity.
func Equal(a, b Object) bool {
	return a.Hash() == b.Hash()
}
