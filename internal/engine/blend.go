package engine

import (
	"github.com/tphakala/go-motion-persist/internal/mathutil"
)

// luma computes the integer grayscale approximation of an RGB pixel.
func luma(r, g, b byte) int {
	return (int(r)*lumaRedWeight + int(g)*lumaGreenWeight + int(b)*lumaBlueWeight) >> lumaShift
}

// gateFiltered applies the hard motion threshold: weighted motion at or
// below the adaptive threshold contributes nothing.
func gateFiltered(weighted, adaptive float32) float32 {
	if weighted > adaptive {
		return weighted
	}
	return 0
}

// blend folds the current frame's motion into the warped trail and
// writes the grayscale output. previous is the cached comparison frame.
// When decayApplied is true the scratch buffer has already been scaled
// by the decay rate.
func (e *Engine) blend(current, previous, output []byte, opts Options, decayApplied bool) {
	decay := opts.DecayRate
	if decayApplied {
		decay = 1
	}

	for i := range e.persistence {
		rgba := i * rgbaBytesPerPixel

		diff := mathutil.AbsInt(
			luma(current[rgba], current[rgba+1], current[rgba+2]) -
				luma(previous[rgba], previous[rgba+1], previous[rgba+2]))

		sensitivity := e.lut.RadialSensitivity[i]
		weighted := float32(diff) * sensitivity
		adaptive := opts.Threshold + e.lut.NormalizedDistance[i]*adaptiveThresholdScale

		filtered := gateFiltered(weighted, adaptive)
		enhanced := mathutil.Clamp(
			filtered*(opts.Sensitivity+sensitivity*enhancementBonus), 0, maxPixelValue)

		// The trail never sums across frames: each pixel keeps the
		// larger of fresh motion and the decayed prior trail.
		persisted := enhanced
		if trail := e.temp[i] * decay; trail > persisted {
			persisted = trail
		}
		e.persistence[i] = persisted

		gray := mathutil.ClampToByte(persisted)
		output[rgba] = gray
		output[rgba+1] = gray
		output[rgba+2] = gray
		output[rgba+3] = alphaOpaque
	}
}
