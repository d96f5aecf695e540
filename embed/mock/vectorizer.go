// Package mock provides a deterministic vector.Vectorizer test double.
package mock

import (
	"context"
	"hash/fnv"

	"github.com/poiesic/vectis/core"
	"github.com/poiesic/vectis/embed"
	"github.com/poiesic/vectis/vector"
)

// DefaultDimensions is the vector width produced by the default
// deterministic behavior.
const DefaultDimensions = 384

// Vectorizer is a test double for vector.Vectorizer.
// It allows custom behavior injection via function fields.
type Vectorizer struct {
	// VectorizeFunc is called by Vectorize if set.
	// If nil, uses default deterministic behavior.
	VectorizeFunc func(ctx context.Context, obj core.Object) (vector.Vector, error)

	// Dimensions overrides the default vector width when positive.
	Dimensions int

	callCount int
}

var _ vector.Vectorizer = (*Vectorizer)(nil)

// NewVectorizer creates a mock vectorizer with default deterministic behavior.
func NewVectorizer() *Vectorizer {
	return &Vectorizer{}
}

// Vectorize generates a deterministic vector from the object's rendered text.
// The same object content always produces the same vector.
func (m *Vectorizer) Vectorize(ctx context.Context, obj core.Object) (vector.Vector, error) {
	m.callCount++

	if m.VectorizeFunc != nil {
		return m.VectorizeFunc(ctx, obj)
	}
	if obj == nil {
		return nil, embed.ErrNilObject
	}

	dim := m.Dimensions
	if dim <= 0 {
		dim = DefaultDimensions
	}
	return deterministicVector(embed.Render(obj), dim), nil
}

// CallCount returns the number of Vectorize calls made.
func (m *Vectorizer) CallCount() int {
	return m.callCount
}

// Reset clears the call count and any injected behavior.
func (m *Vectorizer) Reset() {
	m.callCount = 0
	m.VectorizeFunc = nil
}

// deterministicVector creates a reproducible vector from text: an FNV
// hash seeds a linear congruential generator.
func deterministicVector(text string, dim int) vector.Vector {
	h := fnv.New32a()
	h.Write([]byte(text))
	seed := h.Sum32()

	v := make(vector.Vector, dim)
	for i := 0; i < dim; i++ {
		seed = seed*1664525 + 1013904223 // LCG constants
		v[i] = float32(seed%1000) / 1000.0
	}

	var sumSquares float32
	for _, x := range v {
		sumSquares += x * x
	}
	if sumSquares > 0 {
		norm := float32(1.0) / sumSquares
		for i := range v {
			v[i] *= norm
		}
	}
	return v
}
