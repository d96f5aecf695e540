package core

import (
	"sync"

	"github.com/google/uuid"
)

// Registry issues process-unique string identifiers. It is safe for
// concurrent use; every call returns a string no prior call on the
// same registry has returned.
type Registry struct {
	mu     sync.Mutex
	issued map[string]struct{}
}

// NewRegistry creates an empty identifier registry.
func NewRegistry() *Registry {
	return &Registry{issued: make(map[string]struct{})}
}

// Generate draws candidates until one is not already registered, then
// registers and returns it. The loop is iterative so an adversarial
// collision burst cannot exhaust the stack.
func (r *Registry) Generate() string {
	for {
		candidate := uuid.NewString()

		r.mu.Lock()
		if _, taken := r.issued[candidate]; !taken {
			r.issued[candidate] = struct{}{}
			r.mu.Unlock()
			return candidate
		}
		r.mu.Unlock()
	}
}

// Len returns the number of identifiers issued so far.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.issued)
}

var defaultRegistry = NewRegistry()

// GenerateID issues an identifier from the process-wide registry.
// All objects created by this package draw from it.
func GenerateID() string {
	return defaultRegistry.Generate()
}
