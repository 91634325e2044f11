package engine

import (
	"math"

	"github.com/tphakala/go-motion-persist/internal/mathutil"
)

// warpSpiral moves the persistence trail outward while rotating it,
// working in the precomputed polar representation. The rotation term is
// attenuated by quality tier; in the outermost tier it is dropped
// entirely when negligible, since a sub-centiradian rotation moves
// distant pixels by less than the rounding error of the gather.
func (e *Engine) warpSpiral(speed, rotationSpeed float32) {
	stillRadial := speed >= -spiralMinSpeed && speed <= spiralMinSpeed
	stillRotation := rotationSpeed >= -spiralMinRotation && rotationSpeed <= spiralMinRotation
	if stillRadial && stillRotation {
		copy(e.temp, e.persistence)
		return
	}

	width := e.geo.Width
	height := e.geo.Height
	deadZone := speed + spiralDeadZoneMargin

	mediumRotation := rotationSpeed * spiralMediumRotationScale
	lowRotation := rotationSpeed * spiralLowRotationScale
	if stillRotation {
		lowRotation = 0
	}

	for i := range e.persistence {
		dist := e.lut.PolarDistance[i]
		if dist <= deadZone {
			e.temp[i] = e.persistence[i]
			continue
		}

		rotation := rotationSpeed
		switch {
		case dist < e.geo.HighQualityRadius:
		case dist < e.geo.MediumQualityRadius:
			rotation = mediumRotation
		default:
			rotation = lowRotation
		}

		newDist := dist - speed
		newAngle := float64(e.lut.PolarAngle[i] - rotation)
		sin, cos := math.Sincos(newAngle)

		srcX := mathutil.RoundToInt(e.geo.CenterX + newDist*float32(cos))
		srcY := mathutil.RoundToInt(e.geo.CenterY + newDist*float32(sin))
		if srcX >= 0 && srcX < width && srcY >= 0 && srcY < height {
			e.temp[i] = e.persistence[srcY*width+srcX]
		}
	}
}
