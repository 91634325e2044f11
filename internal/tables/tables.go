package tables

import (
	"math"
)

const (
	// Radial sensitivity falls off linearly with normalized distance and
	// is floored so edge pixels are never fully insensitive.
	sensitivityFalloff = 0.9
	sensitivityFloor   = 0.1
)

// Tables holds the per-pixel lookup tables, parallel slices indexed by
// y*width+x. They are computed once per geometry and never mutated.
type Tables struct {
	// NormalizedDistance is distance from center divided by MaxRadius:
	// 0 at the center, 1 at the corners (slightly above 1 is possible
	// for off-center pixel sampling positions).
	NormalizedDistance []float32

	// RadialSensitivity is the center-weighted motion sensitivity mask,
	// max(sensitivityFloor, 1 - NormalizedDistance*sensitivityFalloff).
	RadialSensitivity []float32

	// PolarAngle and PolarDistance are the polar coordinates of each
	// pixel relative to the center. PolarDistanceSq caches the squared
	// distance so hot warp paths can run tier checks without a sqrt.
	PolarAngle      []float32
	PolarDistance   []float32
	PolarDistanceSq []float32
}

// BuildTables computes all lookup tables for the given geometry.
func BuildTables(geo *Geometry) *Tables {
	n := geo.PixelCount()
	t := &Tables{
		NormalizedDistance: make([]float32, n),
		RadialSensitivity:  make([]float32, n),
		PolarAngle:         make([]float32, n),
		PolarDistance:      make([]float32, n),
		PolarDistanceSq:    make([]float32, n),
	}

	for y := range geo.Height {
		dy := float32(y) - geo.CenterY
		dySq := dy * dy
		row := y * geo.Width

		for x := range geo.Width {
			i := row + x
			dx := float32(x) - geo.CenterX
			distSq := dx*dx + dySq
			dist := float32(math.Sqrt(float64(distSq)))

			normalized := dist * geo.InvMaxRadius
			sensitivity := 1 - normalized*sensitivityFalloff
			if sensitivity < sensitivityFloor {
				sensitivity = sensitivityFloor
			}

			t.NormalizedDistance[i] = normalized
			t.RadialSensitivity[i] = sensitivity
			t.PolarAngle[i] = float32(math.Atan2(float64(dy), float64(dx)))
			t.PolarDistance[i] = dist
			t.PolarDistanceSq[i] = distSq
		}
	}

	return t
}
