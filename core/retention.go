package core

import "slices"

// EvictSide selects which end of the child sequence overflow is
// trimmed from.
type EvictSide int

const (
	// EvictFront removes the trailing (most recently appended)
	// overflow, keeping the oldest children.
	EvictFront EvictSide = iota + 1

	// EvictBack removes the leading (oldest) overflow, keeping the
	// most recently appended children.
	EvictBack
)

// Disposition controls what happens to evicted children.
type Disposition int

const (
	// DispositionRetain appends victims to the policy's retained
	// list for later inspection. The list is never auto-cleared.
	DispositionRetain Disposition = iota + 1

	// DispositionDiscard drops victims.
	DispositionDiscard
)

// NotifyMode controls how an eviction is reported.
type NotifyMode int

const (
	// NotifySilent evicts with no observable notification.
	NotifySilent NotifyMode = iota

	// NotifyAbort refuses the eviction: Apply mutates nothing and
	// returns a RetentionAbortedError carrying the victim count, and
	// the insert that triggered it is unwound.
	NotifyAbort

	// NotifyCallback invokes the policy callback with the victim
	// list after eviction.
	NotifyCallback
)

// RetentionPolicy bounds a container's child count. It belongs to
// exactly one container; use Clone to inherit a structural copy into
// a descendant container.
type RetentionPolicy struct {
	MaxSize     int
	Evict       EvictSide
	Disposition Disposition
	Notify      NotifyMode
	Callback    func(victims []Object)

	retained []Object
}

// Clone returns a structural copy of the policy configuration with an
// empty retained list. This is the copy handed to child containers
// created with Inherit.
func (p *RetentionPolicy) Clone() *RetentionPolicy {
	if p == nil {
		return nil
	}
	return &RetentionPolicy{
		MaxSize:     p.MaxSize,
		Evict:       p.Evict,
		Disposition: p.Disposition,
		Notify:      p.Notify,
		Callback:    p.Callback,
	}
}

// Retained returns the victims accumulated under DispositionRetain.
func (p *RetentionPolicy) Retained() []Object {
	return slices.Clone(p.retained)
}

// Apply enforces the bound on the container's children. It is a no-op
// on a compliant container, so repeated application is idempotent.
//
// Under NotifyAbort, Apply mutates nothing and returns a
// RetentionAbortedError; the caller (Compose) rolls the triggering
// insert back.
func (p *RetentionPolicy) Apply(container Object) error {
	children := container.Children()
	overflow := len(children) - p.MaxSize
	if overflow <= 0 {
		return nil
	}

	var victims, survivors []Object
	switch p.Evict {
	case EvictFront:
		victims = children[len(children)-overflow:]
		survivors = children[:len(children)-overflow]
	default:
		victims = children[:overflow]
		survivors = children[overflow:]
	}

	if p.Notify == NotifyAbort {
		return &RetentionAbortedError{Victims: len(victims)}
	}

	if p.Disposition == DispositionRetain {
		p.retained = append(p.retained, victims...)
	}

	for _, victim := range victims {
		victim.setParent(nil)
	}
	container.setChildren(survivors)

	if p.Notify == NotifyCallback && p.Callback != nil {
		p.Callback(victims)
	}
	return nil
}

// Inherit is a sentinel policy value: container constructors that
// accept a retention policy treat it as "structurally copy the
// parent's policy onto the new child".
var Inherit = &RetentionPolicy{}
