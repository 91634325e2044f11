// Package tables precomputes the per-pixel geometry used by the motion
// persistence kernel: radial distances, the center-weighted sensitivity
// mask and the polar representation consumed by the warp transforms.
package tables

import (
	"fmt"
	"math"
)

const (
	// Quality tier radii as fractions of the maximum radius.
	// Pixels inside the high quality radius get full-fidelity warp math,
	// pixels inside the medium radius get slightly cheapened math and the
	// remainder gets the coarsest approximation.
	highQualityRadiusFraction   = 0.3
	mediumQualityRadiusFraction = 0.7
)

// Geometry describes a frame's center point and radial extents.
// It is immutable once constructed.
type Geometry struct {
	// Width and Height are the frame dimensions in pixels.
	Width  int
	Height int

	// CenterX and CenterY are the frame center in pixel coordinates.
	CenterX float32
	CenterY float32

	// MaxRadius is the distance from the center to a frame corner.
	// InvMaxRadius is its reciprocal, cached for distance normalization.
	MaxRadius    float32
	InvMaxRadius float32

	// HighQualityRadius and MediumQualityRadius are the quality tier
	// boundaries derived from MaxRadius.
	HighQualityRadius   float32
	MediumQualityRadius float32
}

// NewGeometry derives the center point and radial extents for a frame.
// Non-positive dimensions are rejected: MaxRadius would be zero and
// InvMaxRadius undefined.
func NewGeometry(width, height int) (*Geometry, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid frame dimensions %dx%d", width, height)
	}

	centerX := float32(width) / 2
	centerY := float32(height) / 2
	maxRadius := float32(math.Sqrt(float64(centerX*centerX + centerY*centerY)))

	return &Geometry{
		Width:               width,
		Height:              height,
		CenterX:             centerX,
		CenterY:             centerY,
		MaxRadius:           maxRadius,
		InvMaxRadius:        1 / maxRadius,
		HighQualityRadius:   maxRadius * highQualityRadiusFraction,
		MediumQualityRadius: maxRadius * mediumQualityRadiusFraction,
	}, nil
}

// PixelCount returns the number of pixels in the frame.
func (g *Geometry) PixelCount() int {
	return g.Width * g.Height
}
