package motion

// Geometry limits.
const (
	// maxDimension bounds frame width and height. 16384 covers every
	// practical capture resolution while keeping the lookup tables
	// under a few gigabytes.
	maxDimension = 16384

	// History depth limits.
	defaultHistoryDepth = 1
	maxHistoryDepth     = 64
)

// Per-call option defaults.
const (
	// DefaultDecayRate is the per-frame trail decay factor.
	DefaultDecayRate = 0.95

	// DefaultThreshold is the base motion cutoff at the frame center.
	DefaultThreshold = 30.0

	// DefaultSensitivity is the base motion gain.
	DefaultSensitivity = 1.0
)

// Warp variant defaults, applied when a field is absent from RawOptions.
const (
	defaultMoveAngle          = 0.0
	defaultMoveSpeed          = 0.0
	defaultSpiralRotation     = 0.1
	defaultWaveAmplitude      = 5.0
	defaultWaveFrequency      = 0.02
	defaultWavePhaseIncrement = 0.1
)

// RGBA frame layout.
const (
	bytesPerPixel = 4
)
