package engine

import (
	"math"

	"github.com/tphakala/go-motion-persist/internal/mathutil"
)

// warpWave shears the persistence trail sinusoidally. In horizontal
// mode each row is displaced along x by sin(y*frequency + phase) *
// amplitude; vertical mode displaces columns along y as a function of
// x. The amplitude is attenuated per pixel by quality tier, checked
// against the cached squared distances to keep the inner loop sqrt
// free. The caller advances the phase; a negligible amplitude skips
// the remap but still animates the phase.
func (e *Engine) warpWave(spec MoveSpec) {
	if spec.Amplitude >= -waveMinAmplitude && spec.Amplitude <= waveMinAmplitude {
		copy(e.temp, e.persistence)
		return
	}

	width := e.geo.Width
	height := e.geo.Height
	highSq := e.geo.HighQualityRadius * e.geo.HighQualityRadius
	mediumSq := e.geo.MediumQualityRadius * e.geo.MediumQualityRadius

	tierScale := func(i int) float32 {
		distSq := e.lut.PolarDistanceSq[i]
		switch {
		case distSq < highSq:
			return 1
		case distSq < mediumSq:
			return waveMediumAmplitudeScale
		default:
			return waveLowAmplitudeScale
		}
	}

	if spec.Axis == WaveVertical {
		// Column shear: the base offset depends on x only.
		offsets := make([]float32, width)
		for x := range width {
			offsets[x] = float32(math.Sin(float64(float32(x)*spec.Frequency+e.phase))) * spec.Amplitude
		}

		for y := range height {
			row := y * width
			for x := range width {
				i := row + x
				srcY := y - mathutil.RoundToInt(offsets[x]*tierScale(i))
				if srcY >= 0 && srcY < height {
					e.temp[i] = e.persistence[srcY*width+x]
				}
			}
		}
		return
	}

	for y := range height {
		base := float32(math.Sin(float64(float32(y)*spec.Frequency+e.phase))) * spec.Amplitude
		row := y * width

		for x := range width {
			i := row + x
			srcX := x - mathutil.RoundToInt(base*tierScale(i))
			if srcX >= 0 && srcX < width {
				e.temp[i] = e.persistence[row+srcX]
			}
		}
	}
}
