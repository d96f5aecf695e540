package hunt

import "github.com/poiesic/vectis/core"

// Hunter pairs a required predicate with an optional scorer and an
// optional match-observed callback.
type Hunter struct {
	predicate func(core.Object) bool
	scorer    func(core.Object) float64
	onMatch   func(*Context)
}

// HunterOption configures a Hunter.
type HunterOption func(*Hunter)

// WithScorer sets the scorer whose value is added to each match
// context's score. Without a scorer the score contribution is zero.
func WithScorer(scorer func(core.Object) float64) HunterOption {
	return func(h *Hunter) { h.scorer = scorer }
}

// WithOnMatch sets a callback observed for every match.
func WithOnMatch(onMatch func(*Context)) HunterOption {
	return func(h *Hunter) { h.onMatch = onMatch }
}

// NewHunter creates a hunter around the required predicate.
func NewHunter(predicate func(core.Object) bool, opts ...HunterOption) (*Hunter, error) {
	if predicate == nil {
		return nil, ErrPredicateRequired
	}
	h := &Hunter{predicate: predicate}
	for _, opt := range opts {
		opt(h)
	}
	return h, nil
}

// Hunt evaluates node against the predicate. It returns nil on
// rejection; otherwise it builds a match context, bumps it by the
// scorer's value, invokes the match callback if present, and returns
// the context.
func (h *Hunter) Hunt(node core.Object, path []core.Object) *Context {
	if !h.predicate(node) {
		return nil
	}

	ctx := &Context{Node: node, Path: path}
	if h.scorer != nil {
		ctx.Bump(h.scorer(node))
	}
	if h.onMatch != nil {
		h.onMatch(ctx)
	}
	return ctx
}
