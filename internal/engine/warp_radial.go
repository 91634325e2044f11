package engine

import (
	"github.com/tphakala/go-motion-persist/internal/mathutil"
)

// warpRadial expands (positive speed) or contracts (negative speed) the
// persistence trail around the frame center. Pixels within the dead
// zone near the origin copy unchanged; the unit direction there is too
// unstable to warp. The effective speed is attenuated for pixels in the
// outer quality tiers.
func (e *Engine) warpRadial(speed float32) {
	if speed >= -radialMinSpeed && speed <= radialMinSpeed {
		copy(e.temp, e.persistence)
		return
	}

	width := e.geo.Width
	height := e.geo.Height
	deadZone := speed + radialDeadZoneMargin

	mediumSpeed := speed * radialMediumSpeedScale
	lowSpeed := float32(mathutil.RoundToInt(speed * radialLowSpeedScale))

	for y := range height {
		dy := float32(y) - e.geo.CenterY
		row := y * width

		for x := range width {
			i := row + x
			dist := e.lut.PolarDistance[i]
			if dist <= deadZone {
				e.temp[i] = e.persistence[i]
				continue
			}

			effective := speed
			switch {
			case dist < e.geo.HighQualityRadius:
			case dist < e.geo.MediumQualityRadius:
				effective = mediumSpeed
			default:
				effective = lowSpeed
			}

			inv := 1 / dist
			dx := float32(x) - e.geo.CenterX
			srcX := mathutil.RoundToInt(float32(x) - dx*inv*effective)
			srcY := mathutil.RoundToInt(float32(y) - dy*inv*effective)
			if srcX >= 0 && srcX < width && srcY >= 0 && srcY < height {
				e.temp[i] = e.persistence[srcY*width+srcX]
			}
		}
	}
}
