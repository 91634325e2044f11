package engine

import (
	"math"

	"github.com/tphakala/go-motion-persist/internal/mathutil"
)

// warpDirection pans the persistence trail by a fixed displacement of
// speed pixels along angle.
//
// Policy: at speeds of one pixel or less the warp is an exact copy.
// An earlier revision interpolated sub-pixel pans bilinearly, which
// slowly smeared the trail even for a nominally static scene; the hard
// cutoff keeps low-speed trails bit-stable.
func (e *Engine) warpDirection(angle, speed float32) {
	if speed <= directionIdentityMaxSpeed {
		copy(e.temp, e.persistence)
		return
	}

	sin, cos := math.Sincos(float64(angle))
	dx := mathutil.RoundToInt(float32(cos) * speed)
	dy := mathutil.RoundToInt(float32(sin) * speed)

	width := e.geo.Width
	height := e.geo.Height

	// Destination x range with an in-bounds source, precomputed once
	// since the displacement is uniform.
	xStart := max(0, dx)
	xEnd := min(width, width+dx)
	if xStart >= xEnd {
		return
	}

	for y := range height {
		srcY := y - dy
		if srcY < 0 || srcY >= height {
			continue // whole row revealed, stays zero
		}
		dstRow := y * width
		srcRow := srcY * width
		copy(e.temp[dstRow+xStart:dstRow+xEnd], e.persistence[srcRow+xStart-dx:srcRow+xEnd-dx])
	}
}
