package hunt

import "errors"

var (
	// ErrPredicateRequired indicates a hunter built without a predicate.
	ErrPredicateRequired = errors.New("hunter predicate is required")

	// ErrTraverserRequired indicates an engine built without a traverser.
	ErrTraverserRequired = errors.New("engine traverser is required")
)
