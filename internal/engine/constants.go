package engine

// Pixel layout constants.
const (
	rgbaBytesPerPixel = 4
	alphaOpaque       = 255
	maxPixelValue     = 255.0
)

// Integer luma approximation weights: gray = (r*77 + g*150 + b*29) >> 8.
// The weights sum to 256 so a white pixel maps to gray 255.
const (
	lumaRedWeight   = 77
	lumaGreenWeight = 150
	lumaBlueWeight  = 29
	lumaShift       = 8
)

// Blend constants.
const (
	// adaptiveThresholdScale is how much the motion threshold rises from
	// the center to the edge of the frame.
	adaptiveThresholdScale = 40.0

	// enhancementBonus is the extra gain applied in proportion to a
	// pixel's radial sensitivity when boosting filtered motion.
	enhancementBonus = 0.5
)

// Direction warp constants.
const (
	// directionIdentityMaxSpeed is the speed at or below which the
	// direction warp degenerates to an exact copy. Sub-pixel pans are
	// treated as identity rather than interpolated; see the warp policy
	// note in warp_direction.go.
	directionIdentityMaxSpeed = 1.0
)

// Radial warp constants.
const (
	radialMinSpeed       = 0.1
	radialDeadZoneMargin = 50.0

	// Tiered effective speed: full inside the high quality radius,
	// slightly reduced inside the medium radius, rounded and reduced
	// beyond it.
	radialMediumSpeedScale = 0.95
	radialLowSpeedScale    = 0.8
)

// Spiral warp constants.
const (
	spiralMinSpeed       = 0.1
	spiralMinRotation    = 0.01
	spiralDeadZoneMargin = 5.0

	// Tiered rotation attenuation. Beyond the medium quality radius the
	// rotation term is dropped entirely when it is negligible.
	spiralMediumRotationScale = 0.7
	spiralLowRotationScale    = 0.5
)

// Wave warp constants.
const (
	waveMinAmplitude = 0.1

	// Tiered amplitude attenuation by distance from center.
	waveMediumAmplitudeScale = 0.9
	waveLowAmplitudeScale    = 0.7
)
