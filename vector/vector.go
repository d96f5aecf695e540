package vector

import "math"

// Vector is a dense numeric embedding.
type Vector []float32

// Dot returns the dot product over the overlapping dimensions.
func (v Vector) Dot(other Vector) float32 {
	n := len(v)
	if len(other) < n {
		n = len(other)
	}
	var sum float32
	for i := 0; i < n; i++ {
		sum += v[i] * other[i]
	}
	return sum
}

// Norm returns the Euclidean norm.
func (v Vector) Norm() float32 {
	return float32(math.Sqrt(float64(v.Dot(v))))
}

// Cosine returns the cosine similarity, or 0 when either vector has
// zero norm.
func (v Vector) Cosine(other Vector) float32 {
	denom := v.Norm() * other.Norm()
	if denom == 0 {
		return 0
	}
	return v.Dot(other) / denom
}

// Add returns the element-wise sum over the overlapping dimensions.
func (v Vector) Add(other Vector) Vector {
	n := len(v)
	if len(other) < n {
		n = len(other)
	}
	out := make(Vector, n)
	for i := 0; i < n; i++ {
		out[i] = v[i] + other[i]
	}
	return out
}

// Scale returns the vector multiplied by scalar.
func (v Vector) Scale(scalar float32) Vector {
	out := make(Vector, len(v))
	for i, x := range v {
		out[i] = x * scalar
	}
	return out
}
