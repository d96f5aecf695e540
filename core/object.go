package core

import (
	"maps"
	"slices"
)

// Kind identifies the concrete containment level of an Object.
type Kind int

const (
	KindLeaf Kind = iota + 1
	KindBranch
	KindTree
	KindNode
	KindNet
	KindLayer
	KindMatrix
)

func (k Kind) String() string {
	switch k {
	case KindLeaf:
		return "Leaf"
	case KindBranch:
		return "Branch"
	case KindTree:
		return "Tree"
	case KindNode:
		return "Node"
	case KindNet:
		return "Net"
	case KindLayer:
		return "Layer"
	case KindMatrix:
		return "Matrix"
	default:
		return "Unknown"
	}
}

// Object is the common surface of every node in a hierarchy.
//
// Parent back-references and child membership are established and
// broken only by Compose and Decompose; the invariant
// child.Parent() == container holds exactly when the child is a
// member of the container's child sequence.
type Object interface {
	// ID returns the process-unique identifier.
	ID() string

	// Kind returns the concrete containment level.
	Kind() Kind

	// Parent returns the containing object, or nil for a root.
	Parent() Object

	// Annotations returns the caller-owned metadata bag. It is
	// distinct from the child sequence and never interpreted by
	// this package.
	Annotations() map[string]any

	// Children returns the direct children in insertion order.
	Children() []Object

	// AllowedChildren returns the kinds this object accepts as
	// children. Empty for terminal objects.
	AllowedChildren() []Kind

	// Retention returns the attached retention policy, or nil.
	Retention() *RetentionPolicy

	// SetRetention attaches (or detaches, with nil) a policy.
	SetRetention(*RetentionPolicy)

	// Hash is the structural hash: a digest of content, ordered
	// child identifiers, and parent identifier. It changes whenever
	// content, membership, or attachment point changes.
	Hash() string

	// SemanticHash is the content-only hash, stable across
	// reattachment and membership changes.
	SemanticHash() string

	// OnLoad and OnUnload are the scoped-lifecycle hooks.
	OnLoad()
	OnUnload()

	setParent(Object)
	setChildren([]Object)
	appendChild(Object)
	removeChild(Object)
	clone() Object
}

// object carries the state shared by every variant. Variants embed it
// and implement Kind, AllowedChildren, hashing, and cloning.
type object struct {
	id          string
	parent      Object
	annotations map[string]any
	children    []Object
	retention   *RetentionPolicy
}

func newObject(annotations map[string]any) object {
	if annotations == nil {
		annotations = make(map[string]any)
	}
	return object{id: GenerateID(), annotations: annotations}
}

func (o *object) ID() string                  { return o.id }
func (o *object) Parent() Object              { return o.parent }
func (o *object) Annotations() map[string]any { return o.annotations }
func (o *object) Children() []Object          { return slices.Clone(o.children) }
func (o *object) Retention() *RetentionPolicy { return o.retention }

func (o *object) SetRetention(p *RetentionPolicy) { o.retention = p }

func (o *object) OnLoad()   {}
func (o *object) OnUnload() {}

func (o *object) setParent(p Object)       { o.parent = p }
func (o *object) setChildren(cs []Object)  { o.children = cs }
func (o *object) appendChild(child Object) { o.children = append(o.children, child) }

func (o *object) removeChild(child Object) {
	o.children = slices.DeleteFunc(o.children, func(c Object) bool {
		return c == child
	})
}

// cloneInto resets identity-bearing state on a copied base: fresh id,
// no parent, copied annotations, structurally copied policy, and
// per-child deep clones reattached to the given owner.
func (o *object) cloneInto(owner Object, src *object) {
	o.id = GenerateID()
	o.parent = nil
	o.annotations = maps.Clone(src.annotations)
	if o.annotations == nil {
		o.annotations = make(map[string]any)
	}
	if src.retention != nil {
		o.retention = src.retention.Clone()
	}
	o.children = make([]Object, 0, len(src.children))
	for _, child := range src.children {
		dup := child.clone()
		dup.setParent(owner)
		o.children = append(o.children, dup)
	}
}

func parentID(o Object) string {
	if p := o.Parent(); p != nil {
		return p.ID()
	}
	return ""
}
