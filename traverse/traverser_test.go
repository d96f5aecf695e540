package traverse

import (
	"testing"

	"github.com/poiesic/vectis/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(t *Traverser, start core.Object) ([]core.Object, [][]core.Object) {
	var objs []core.Object
	var paths [][]core.Object
	for obj, path := range t.Traverse(start) {
		objs = append(objs, obj)
		paths = append(paths, path)
	}
	return objs, paths
}

func buildTree(t *testing.T) (*core.Tree, *core.Branch, *core.Branch, *core.Leaf, *core.Leaf) {
	t.Helper()
	tree := core.NewTree("root", nil)
	one, err := tree.AddBranch("one", nil)
	require.NoError(t, err)
	two, err := tree.AddBranch("two", nil)
	require.NoError(t, err)
	a, err := one.AddLeaf("a", nil)
	require.NoError(t, err)
	b, err := two.AddLeaf("b", nil)
	require.NoError(t, err)
	return tree, one, two, a, b
}

func TestTraverseForwardLevelOrder(t *testing.T) {
	tree, one, two, a, b := buildTree(t)

	walker := New(WithChildren(Children))
	objs, paths := collect(walker, tree)

	require.Len(t, objs, 5)
	assert.Same(t, core.Object(tree), objs[0])
	assert.Same(t, core.Object(one), objs[1])
	assert.Same(t, core.Object(two), objs[2])
	assert.Same(t, core.Object(a), objs[3])
	assert.Same(t, core.Object(b), objs[4])

	assert.Empty(t, paths[0])
	assert.Equal(t, []core.Object{tree}, paths[1])
	assert.Equal(t, []core.Object{tree, one}, paths[3])
}

func TestTraverseReverse(t *testing.T) {
	_, one, _, a, _ := buildTree(t)

	walker := New(WithParent(Parent))
	objs, paths := collect(walker, a)

	require.Len(t, objs, 3)
	assert.Same(t, core.Object(a), objs[0])
	assert.Same(t, core.Object(one), objs[1])
	assert.Equal(t, core.KindTree, objs[2].Kind())

	// The accumulated path follows the traversal, not the structural
	// parent chain: walking upward, the leaf is the root's "ancestor".
	assert.Equal(t, []core.Object{a, one}, paths[2])
}

func TestTraverseCycleTerminates(t *testing.T) {
	a := core.NewLeaf("a", nil)
	b := core.NewLeaf("b", nil)
	links := map[string][]core.Object{
		a.ID(): {b},
		b.ID(): {a},
	}

	walker := New(WithCross(func(obj core.Object) []core.Object {
		return links[obj.ID()]
	}))

	objs, _ := collect(walker, a)
	require.Len(t, objs, 2, "each node of a 2-cycle is visited exactly once")
	assert.Same(t, core.Object(a), objs[0])
	assert.Same(t, core.Object(b), objs[1])
}

func TestTraverseSelfLoop(t *testing.T) {
	a := core.NewLeaf("a", nil)
	walker := New(WithCross(func(core.Object) []core.Object {
		return []core.Object{a}
	}))

	objs, _ := collect(walker, a)
	assert.Len(t, objs, 1)
}

func TestTraverseNoResolvers(t *testing.T) {
	leaf := core.NewLeaf("only", nil)
	objs, paths := collect(New(), leaf)
	require.Len(t, objs, 1)
	assert.Same(t, core.Object(leaf), objs[0])
	assert.Empty(t, paths[0])
}

func TestTraverseNilStart(t *testing.T) {
	objs, _ := collect(New(WithChildren(Children)), nil)
	assert.Empty(t, objs)
}

func TestTraverseCombinedResolvers(t *testing.T) {
	tree, one, _, a, _ := buildTree(t)
	extra := core.NewLeaf("extra", nil)

	walker := New(
		WithChildren(Children),
		WithParent(Parent),
		WithCross(func(obj core.Object) []core.Object {
			if obj == core.Object(a) {
				return []core.Object{extra}
			}
			return nil
		}),
	)

	objs, _ := collect(walker, one)
	ids := make(map[string]bool, len(objs))
	for _, obj := range objs {
		assert.False(t, ids[obj.ID()], "revisit of %s", obj.ID())
		ids[obj.ID()] = true
	}
	// Reaches the subtree, the ancestors and their descendants, and
	// the cross-linked stray.
	assert.True(t, ids[tree.ID()])
	assert.True(t, ids[a.ID()])
	assert.True(t, ids[extra.ID()])
	assert.Len(t, objs, 6)
}

func TestTraverseLazy(t *testing.T) {
	tree, _, _, _, _ := buildTree(t)

	count := 0
	for range New(WithChildren(Children)).Traverse(tree) {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(t, 2, count, "ceasing to consume the sequence is a safe cancellation")
}
