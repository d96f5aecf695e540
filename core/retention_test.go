package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fill composes count leaves with integer payloads 0..count-1.
func fill(t *testing.T, branch *Branch, count int) []*Leaf {
	t.Helper()
	leaves := make([]*Leaf, count)
	for i := 0; i < count; i++ {
		leaf, err := branch.AddLeaf(i, nil)
		require.NoError(t, err)
		leaves[i] = leaf
	}
	return leaves
}

func payloads(objs []Object) []any {
	out := make([]any, len(objs))
	for i, o := range objs {
		out[i] = o.(*Leaf).Data
	}
	return out
}

func TestRetentionEvictFront(t *testing.T) {
	branch := NewBranch("b", nil)
	fill(t, branch, 4)
	branch.SetRetention(&RetentionPolicy{
		MaxSize:     3,
		Evict:       EvictFront,
		Disposition: DispositionRetain,
	})

	_, err := branch.AddLeaf(4, nil)
	require.NoError(t, err)

	// Front eviction trims the trailing, most recently appended
	// children: the 3 oldest survive.
	assert.Equal(t, []any{0, 1, 2}, payloads(branch.Children()))

	retained := branch.Retention().Retained()
	assert.Equal(t, []any{3, 4}, payloads(retained))
	for _, victim := range retained {
		assert.Nil(t, victim.Parent())
	}
}

func TestRetentionEvictBack(t *testing.T) {
	branch := NewBranch("b", nil)
	fill(t, branch, 4)
	branch.SetRetention(&RetentionPolicy{
		MaxSize:     3,
		Evict:       EvictBack,
		Disposition: DispositionRetain,
	})

	_, err := branch.AddLeaf(4, nil)
	require.NoError(t, err)

	// Back eviction trims the leading, oldest children: the 3 newest
	// survive.
	assert.Equal(t, []any{2, 3, 4}, payloads(branch.Children()))
	assert.Equal(t, []any{0, 1}, payloads(branch.Retention().Retained()))
}

func TestRetentionAbortUnwindsInsert(t *testing.T) {
	branch := NewBranch("b", nil)
	fill(t, branch, 4)
	branch.SetRetention(&RetentionPolicy{
		MaxSize: 3,
		Evict:   EvictFront,
		Notify:  NotifyAbort,
	})

	leaf := NewLeaf(4, nil)
	_, err := Compose(branch, leaf)

	var aborted *RetentionAbortedError
	require.ErrorAs(t, err, &aborted)
	assert.Equal(t, 2, aborted.Victims)

	// The insert is unwound: the container holds exactly its
	// pre-insert children and the candidate stays detached.
	assert.Equal(t, []any{0, 1, 2, 3}, payloads(branch.Children()))
	assert.Nil(t, leaf.Parent())
	assert.Empty(t, branch.Retention().Retained())
}

func TestRetentionCallback(t *testing.T) {
	var notified []Object
	branch := NewBranch("b", nil)
	fill(t, branch, 3)
	branch.SetRetention(&RetentionPolicy{
		MaxSize:     3,
		Evict:       EvictBack,
		Disposition: DispositionDiscard,
		Notify:      NotifyCallback,
		Callback:    func(victims []Object) { notified = victims },
	})

	_, err := branch.AddLeaf(3, nil)
	require.NoError(t, err)

	require.Len(t, notified, 1)
	assert.Equal(t, []any{0}, payloads(notified))
	// Discard disposition keeps no victims.
	assert.Empty(t, branch.Retention().Retained())
}

func TestRetentionApplyIdempotent(t *testing.T) {
	branch := NewBranch("b", nil)
	fill(t, branch, 2)
	policy := &RetentionPolicy{MaxSize: 3, Evict: EvictBack}
	branch.SetRetention(policy)

	require.NoError(t, policy.Apply(branch))
	require.NoError(t, policy.Apply(branch))
	assert.Len(t, branch.Children(), 2)
}

func TestRetentionRetainedAccumulates(t *testing.T) {
	branch := NewBranch("b", nil)
	fill(t, branch, 3)
	branch.SetRetention(&RetentionPolicy{
		MaxSize:     3,
		Evict:       EvictBack,
		Disposition: DispositionRetain,
	})

	_, err := branch.AddLeaf(3, nil)
	require.NoError(t, err)
	_, err = branch.AddLeaf(4, nil)
	require.NoError(t, err)

	// The retained list is never auto-cleared.
	assert.Equal(t, []any{0, 1}, payloads(branch.Retention().Retained()))
}

func TestRetentionClone(t *testing.T) {
	var called bool
	policy := &RetentionPolicy{
		MaxSize:     5,
		Evict:       EvictFront,
		Disposition: DispositionRetain,
		Notify:      NotifyCallback,
		Callback:    func([]Object) { called = true },
		retained:    []Object{NewLeaf("old", nil)},
	}

	dup := policy.Clone()
	assert.Equal(t, policy.MaxSize, dup.MaxSize)
	assert.Equal(t, policy.Evict, dup.Evict)
	assert.Equal(t, policy.Disposition, dup.Disposition)
	assert.Equal(t, policy.Notify, dup.Notify)
	assert.Empty(t, dup.Retained(), "structural copy must not inherit victims")

	dup.Callback(nil)
	assert.True(t, called)

	var nilPolicy *RetentionPolicy
	assert.Nil(t, nilPolicy.Clone())
}

func TestRetentionInheritance(t *testing.T) {
	tree := NewTree("t", nil)
	tree.SetRetention(&RetentionPolicy{MaxSize: 2, Evict: EvictBack})

	inherited, err := tree.AddBranch("kept", Inherit)
	require.NoError(t, err)
	require.NotNil(t, inherited.Retention())
	assert.Equal(t, 2, inherited.Retention().MaxSize)
	assert.NotSame(t, tree.Retention(), inherited.Retention())

	plain, err := tree.AddBranch("bare", nil)
	require.NoError(t, err)
	assert.Nil(t, plain.Retention())

	custom := &RetentionPolicy{MaxSize: 9, Evict: EvictFront}
	owned, err := NewNode("n", nil).AddTree("data", custom)
	require.NoError(t, err)
	assert.Same(t, custom, owned.Retention())
}

func TestRetentionAbortDirectApply(t *testing.T) {
	branch := NewBranch("b", nil)
	fill(t, branch, 5)
	policy := &RetentionPolicy{MaxSize: 3, Evict: EvictFront, Notify: NotifyAbort}

	err := policy.Apply(branch)
	var aborted *RetentionAbortedError
	require.True(t, errors.As(err, &aborted))
	assert.Equal(t, 2, aborted.Victims)
	// Abort mode never mutates the container.
	assert.Len(t, branch.Children(), 5)
}
