package lawcheck

import (
	"math/rand"
	"unsafe"

	"github.com/npillmayer/alga/structure"
)

// Sampler produces sample values of T.
type Sampler[T any] interface {
	Sample(r *rand.Rand) T
}

// SamplerFunc adapts a function to a Sampler.
type SamplerFunc[T any] func(r *rand.Rand) T

// Sample calls f(r).
func (f SamplerFunc[T]) Sample(r *rand.Rand) T { return f(r) }

// IntegerSampler samples an integer type. One in four samples is an edge
// value (0, 1, -1, min, max); the others are uniform over the type's range.
type IntegerSampler[T structure.Integer] struct{}

// Sample returns the next sample.
func (IntegerSampler[T]) Sample(r *rand.Rand) T {
	if r.Intn(4) == 0 {
		edges := integerEdges[T]()
		return edges[r.Intn(len(edges))]
	}
	return T(r.Uint64())
}

func integerEdges[T structure.Integer]() []T {
	var zero T
	if ^zero < 0 { // signed
		bits := unsafe.Sizeof(zero) * 8
		maxValue := T(uint64(1)<<(bits-1) - 1)
		return []T{0, 1, ^zero, maxValue, ^maxValue}
	}
	return []T{0, 1, ^zero}
}

// FloatSampler samples a float type uniformly from [Min, Max). One in four
// samples is an edge value (0, 1, Min).
type FloatSampler[T structure.Float] struct {
	Min, Max float64
}

// Sample returns the next sample.
func (s FloatSampler[T]) Sample(r *rand.Rand) T {
	if r.Intn(4) == 0 {
		edges := []T{0, 1, T(s.Min)}
		return edges[r.Intn(len(edges))]
	}
	return T(s.Min + r.Float64()*(s.Max-s.Min))
}
