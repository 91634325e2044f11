package motion

import (
	"log"
	"math"
	"strings"

	"github.com/tphakala/go-motion-persist/internal/engine"
)

// MoveType enumerates the warp variants applied to the trail buffer
// before each blend.
type MoveType int

const (
	// MoveNone applies no warp; the trail decays in place.
	MoveNone MoveType = iota

	// MoveDirection pans the trail along a fixed angle.
	MoveDirection

	// MoveRadial expands or contracts the trail around the center.
	MoveRadial

	// MoveSpiral combines outward motion with rotation.
	MoveSpiral

	// MoveWave shears the trail sinusoidally, animated by the detector
	// phase.
	MoveWave
)

// String returns the wire tag for a move type.
func (m MoveType) String() string {
	switch m {
	case MoveDirection:
		return "direction"
	case MoveRadial:
		return "radial"
	case MoveSpiral:
		return "spiral"
	case MoveWave:
		return "wave"
	default:
		return "none"
	}
}

// ParseMoveType maps a wire tag to a MoveType. The second return value
// reports whether the tag was recognized; unknown tags map to MoveNone.
func ParseMoveType(tag string) (MoveType, bool) {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "", "none":
		return MoveNone, true
	case "direction":
		return MoveDirection, true
	case "radial":
		return MoveRadial, true
	case "spiral":
		return MoveSpiral, true
	case "wave":
		return MoveWave, true
	default:
		return MoveNone, false
	}
}

// WaveAxis selects the shear direction of the wave warp.
type WaveAxis int

const (
	// WaveHorizontal displaces rows along x.
	WaveHorizontal WaveAxis = iota

	// WaveVertical displaces columns along y.
	WaveVertical
)

// MoveSpec is a closed tagged union describing the per-frame warp.
// Only the fields belonging to Type are consulted.
type MoveSpec struct {
	// Type selects the warp variant.
	Type MoveType

	// Angle is the pan direction in radians (MoveDirection).
	Angle float32

	// Speed is the warp displacement in pixels per frame
	// (MoveDirection, MoveRadial, MoveSpiral).
	Speed float32

	// RotationSpeed is the spiral rotation in radians per frame
	// (MoveSpiral).
	RotationSpeed float32

	// Amplitude, Frequency and PhaseIncrement parameterize the wave
	// shear (MoveWave). PhaseIncrement advances the detector phase on
	// every wave frame.
	Amplitude      float32
	Frequency      float32
	PhaseIncrement float32

	// Axis selects horizontal or vertical wave shear (MoveWave).
	Axis WaveAxis
}

// DirectionMove builds a pan warp spec.
func DirectionMove(angle, speed float32) MoveSpec {
	return MoveSpec{Type: MoveDirection, Angle: angle, Speed: speed}
}

// RadialMove builds an expansion (positive speed) or contraction
// (negative speed) warp spec.
func RadialMove(speed float32) MoveSpec {
	return MoveSpec{Type: MoveRadial, Speed: speed}
}

// SpiralMove builds a spiral warp spec.
func SpiralMove(speed, rotationSpeed float32) MoveSpec {
	return MoveSpec{Type: MoveSpiral, Speed: speed, RotationSpeed: rotationSpeed}
}

// WaveMove builds a wave warp spec.
func WaveMove(amplitude, frequency, phaseIncrement float32, axis WaveAxis) MoveSpec {
	return MoveSpec{
		Type:           MoveWave,
		Amplitude:      amplitude,
		Frequency:      frequency,
		PhaseIncrement: phaseIncrement,
		Axis:           axis,
	}
}

// Options is the fully populated per-call configuration. Obtain a
// default-filled value from DefaultOptions, or resolve a RawOptions
// record. Options carry no persisted identity; a fresh value is
// consumed on every Process call.
type Options struct {
	// DecayRate multiplies the warped trail each frame, in [0, 1).
	DecayRate float32

	// Threshold is the base motion cutoff at the frame center.
	Threshold float32

	// Sensitivity is the base gain applied to filtered motion.
	Sensitivity float32

	// Move selects and parameterizes the warp.
	Move MoveSpec
}

// DefaultOptions returns the documented default configuration: decay
// 0.95, threshold 30, sensitivity 1, no warp.
func DefaultOptions() Options {
	return Options{
		DecayRate:   DefaultDecayRate,
		Threshold:   DefaultThreshold,
		Sensitivity: DefaultSensitivity,
		Move:        MoveSpec{Type: MoveNone},
	}
}

// RawOptions is the optional-field form of Options, typically decoded
// from a host-supplied configuration object. Nil fields resolve to the
// documented defaults; nothing in a RawOptions record can make Resolve
// fail.
type RawOptions struct {
	DecayRate   *float32 `yaml:"decay_rate" json:"decayRate"`
	Threshold   *float32 `yaml:"threshold" json:"threshold"`
	Sensitivity *float32 `yaml:"sensitivity" json:"sensitivity"`

	// MoveType is the warp tag: none, direction, radial, spiral, wave.
	// Unknown tags resolve to none and emit one diagnostic notice.
	MoveType string `yaml:"move_type" json:"moveType"`

	Angle          *float32 `yaml:"angle" json:"angle"`
	Speed          *float32 `yaml:"speed" json:"speed"`
	RotationSpeed  *float32 `yaml:"rotation_speed" json:"rotationSpeed"`
	Amplitude      *float32 `yaml:"amplitude" json:"amplitude"`
	Frequency      *float32 `yaml:"frequency" json:"frequency"`
	PhaseIncrement *float32 `yaml:"phase_increment" json:"phaseIncrement"`

	// WaveAxis is 0 for horizontal, 1 for vertical shear.
	WaveAxis *int `yaml:"wave_axis" json:"waveAxis"`
}

// Resolve produces a fully populated Options record, substituting the
// documented default for every absent or non-finite field.
func (r *RawOptions) Resolve() Options {
	opts := DefaultOptions()
	if r == nil {
		return opts
	}

	opts.DecayRate = scalarOrDefault(r.DecayRate, DefaultDecayRate)
	opts.Threshold = scalarOrDefault(r.Threshold, DefaultThreshold)
	opts.Sensitivity = scalarOrDefault(r.Sensitivity, DefaultSensitivity)

	moveType, known := ParseMoveType(r.MoveType)
	if !known {
		notice("unknown move type %q, using identity warp", r.MoveType)
	}

	switch moveType {
	case MoveDirection:
		opts.Move = DirectionMove(
			scalarOrDefault(r.Angle, defaultMoveAngle),
			scalarOrDefault(r.Speed, defaultMoveSpeed))
	case MoveRadial:
		opts.Move = RadialMove(scalarOrDefault(r.Speed, defaultMoveSpeed))
	case MoveSpiral:
		opts.Move = SpiralMove(
			scalarOrDefault(r.Speed, defaultMoveSpeed),
			scalarOrDefault(r.RotationSpeed, defaultSpiralRotation))
	case MoveWave:
		axis := WaveHorizontal
		if r.WaveAxis != nil && *r.WaveAxis == int(WaveVertical) {
			axis = WaveVertical
		}
		opts.Move = WaveMove(
			scalarOrDefault(r.Amplitude, defaultWaveAmplitude),
			scalarOrDefault(r.Frequency, defaultWaveFrequency),
			scalarOrDefault(r.PhaseIncrement, defaultWavePhaseIncrement),
			axis)
	default:
		opts.Move = MoveSpec{Type: MoveNone}
	}

	return opts
}

// scalarOrDefault substitutes the default for absent or non-finite
// values.
func scalarOrDefault(v *float32, def float32) float32 {
	if v == nil {
		return def
	}
	f := float64(*v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return def
	}
	return *v
}

// noticeFunc receives configuration diagnostics such as unknown move
// tags. Diagnostics are advisory; resolution always succeeds.
var noticeFunc = func(format string, args ...any) {
	log.Printf(format, args...)
}

// SetNoticeFunc replaces the diagnostic notice destination. Passing nil
// silences notices.
func SetNoticeFunc(fn func(format string, args ...any)) {
	if fn == nil {
		fn = func(string, ...any) {}
	}
	noticeFunc = fn
}

func notice(format string, args ...any) {
	noticeFunc(format, args...)
}

// engineOptions converts public options to the engine's internal form.
func engineOptions(opts Options) engine.Options {
	return engine.Options{
		DecayRate:   sanitizeScalar(opts.DecayRate, DefaultDecayRate),
		Threshold:   sanitizeScalar(opts.Threshold, DefaultThreshold),
		Sensitivity: sanitizeScalar(opts.Sensitivity, DefaultSensitivity),
		Move: engine.MoveSpec{
			Type:           engine.MoveType(opts.Move.Type),
			Angle:          sanitizeScalar(opts.Move.Angle, 0),
			Speed:          sanitizeScalar(opts.Move.Speed, 0),
			RotationSpeed:  sanitizeScalar(opts.Move.RotationSpeed, 0),
			Amplitude:      sanitizeScalar(opts.Move.Amplitude, 0),
			Frequency:      sanitizeScalar(opts.Move.Frequency, 0),
			PhaseIncrement: sanitizeScalar(opts.Move.PhaseIncrement, 0),
			Axis:           engine.WaveAxis(opts.Move.Axis),
		},
	}
}

// sanitizeScalar guards the kernel against NaN and Inf leaking in from
// hand-built Options values.
func sanitizeScalar(v, def float32) float32 {
	f := float64(v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return def
	}
	return v
}
