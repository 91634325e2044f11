package engine

// MoveType selects the spatial warp applied to the persistence buffer
// before new motion is blended in.
type MoveType int

const (
	// MoveNone leaves the persistence buffer in place (identity warp).
	MoveNone MoveType = iota

	// MoveDirection pans the buffer by a fixed displacement.
	MoveDirection

	// MoveRadial expands or contracts the buffer around the center.
	MoveRadial

	// MoveSpiral combines radial motion with rotation.
	MoveSpiral

	// MoveWave applies a sinusoidal shear driven by the engine phase.
	MoveWave
)

// WaveAxis selects the shear direction of the wave warp.
type WaveAxis int

const (
	// WaveHorizontal displaces rows along x.
	WaveHorizontal WaveAxis = iota

	// WaveVertical displaces columns along y.
	WaveVertical
)

// MoveSpec is the resolved warp configuration for one frame. Only the
// fields belonging to Type are consulted.
type MoveSpec struct {
	Type MoveType

	// Direction fields.
	Angle float32 // radians
	Speed float32 // pixels per frame; shared with Radial and Spiral

	// Spiral field.
	RotationSpeed float32 // radians per frame

	// Wave fields.
	Amplitude      float32
	Frequency      float32
	PhaseIncrement float32
	Axis           WaveAxis
}

// Options is the fully resolved per-frame configuration.
type Options struct {
	// DecayRate multiplies the warped trail each frame before it is
	// compared with fresh motion.
	DecayRate float32

	// Threshold is the base motion cutoff at the frame center. The
	// effective cutoff grows with distance from center.
	Threshold float32

	// Sensitivity is the base gain applied to filtered motion.
	Sensitivity float32

	// Move selects and parameterizes the warp.
	Move MoveSpec
}
