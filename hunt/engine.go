package hunt

import (
	"iter"

	"github.com/poiesic/vectis/core"
	"github.com/poiesic/vectis/traverse"
)

// Engine drives one traverser and an ordered list of hunters.
type Engine struct {
	traverser *traverse.Traverser
	hunters   []*Hunter
}

// NewEngine creates an engine around the required traverser.
func NewEngine(traverser *traverse.Traverser, hunters ...*Hunter) (*Engine, error) {
	if traverser == nil {
		return nil, ErrTraverserRequired
	}
	return &Engine{traverser: traverser, hunters: hunters}, nil
}

// AddHunter appends a hunter; hunters run in registration order.
func (e *Engine) AddHunter(h *Hunter) {
	if h != nil {
		e.hunters = append(e.hunters, h)
	}
}

// Run traverses from start and lazily yields every match context any
// hunter produces, hunters in registration order per visited object.
// Each call performs an independent traversal; the sequence is not
// restartable mid-iteration.
func (e *Engine) Run(start core.Object) iter.Seq[*Context] {
	return func(yield func(*Context) bool) {
		for node, path := range e.traverser.Traverse(start) {
			for _, hunter := range e.hunters {
				if ctx := hunter.Hunt(node, path); ctx != nil {
					if !yield(ctx) {
						return
					}
				}
			}
		}
	}
}
