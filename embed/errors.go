package embed

import "errors"

// ErrNilObject indicates a Vectorize call with no object.
var ErrNilObject = errors.New("cannot vectorize a nil object")

// ErrEmptyEmbedding indicates the embedding service returned no vector.
var ErrEmptyEmbedding = errors.New("embedding service returned an empty result")
