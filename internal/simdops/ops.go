// Package simdops wraps the SIMD kernels used by the motion engine.
// The persistence and scratch buffers are float32, so only the f32
// operations are exposed. A scalar implementation with identical
// semantics is provided so the engine can be exercised and benchmarked
// without SIMD.
package simdops

import (
	"github.com/tphakala/simd/f32"
)

// Ops provides the vectorizable buffer operations used in hot paths.
// Function pointers allow swapping the SIMD and scalar implementations
// without branching per call site.
type Ops struct {
	// Scale multiplies each element by scalar s: dst[i] = a[i] * s.
	// dst and a may alias.
	Scale func(dst, a []float32, s float32)

	// Sum returns the sum of all elements.
	Sum func(a []float32) float32
}

var (
	acceleratedOps = Ops{
		Scale: f32.Scale,
		Sum:   f32.Sum,
	}
	scalarOps = Ops{
		Scale: scaleScalar,
		Sum:   sumScalar,
	}
)

// Accelerated returns the SIMD-backed operations.
func Accelerated() *Ops {
	return &acceleratedOps
}

// Scalar returns the pure Go operations.
func Scalar() *Ops {
	return &scalarOps
}

// For returns the operations matching the requested acceleration mode.
func For(simd bool) *Ops {
	if simd {
		return &acceleratedOps
	}
	return &scalarOps
}

func scaleScalar(dst, a []float32, s float32) {
	for i, v := range a {
		dst[i] = v * s
	}
}

func sumScalar(a []float32) float32 {
	var total float32
	for _, v := range a {
		total += v
	}
	return total
}
