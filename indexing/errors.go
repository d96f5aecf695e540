package indexing

import "errors"

var (
	// ErrStoreRequired indicates a Pipeline was created without a vector store.
	ErrStoreRequired = errors.New("vector store is required")

	// ErrVectorizerRequired indicates a Pipeline was created without a vectorizer.
	ErrVectorizerRequired = errors.New("vectorizer is required")
)
