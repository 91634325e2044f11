// Package engine implements the motion persistence kernel: per-frame
// motion differencing against a cached previous frame, radial
// sensitivity weighting with an adaptive threshold, and a decaying
// persistence buffer that can be spatially warped before each blend.
package engine

import (
	"fmt"

	"github.com/tphakala/go-motion-persist/internal/framebuf"
	"github.com/tphakala/go-motion-persist/internal/simdops"
	"github.com/tphakala/go-motion-persist/internal/tables"
)

// Engine is the per-frame motion persistence kernel. It owns all
// cross-frame state: the persistence buffer, the frame history and the
// wave phase accumulator. Instances are not safe for concurrent use;
// the caller owns serialization of Process calls.
type Engine struct {
	geo *tables.Geometry
	lut *tables.Tables

	// persistence holds one decaying motion intensity per pixel, in
	// [0, 255]. temp is the per-call scratch the warps gather into; it
	// is never read across frames.
	persistence []float32
	temp        []float32

	history *framebuf.Ring
	phase   float32

	ops     *simdops.Ops
	useSIMD bool
}

// New constructs an engine for the given geometry. historyDepth selects
// how many frames back the comparison frame is; depth 1 differences
// against the immediately preceding frame.
func New(width, height, historyDepth int, useSIMD bool) (*Engine, error) {
	geo, err := tables.NewGeometry(width, height)
	if err != nil {
		return nil, err
	}

	n := geo.PixelCount()
	history, err := framebuf.NewRing(n*rgbaBytesPerPixel, historyDepth)
	if err != nil {
		return nil, err
	}

	return &Engine{
		geo:         geo,
		lut:         tables.BuildTables(geo),
		persistence: make([]float32, n),
		temp:        make([]float32, n),
		history:     history,
		ops:         simdops.For(useSIMD),
		useSIMD:     useSIMD,
	}, nil
}

// Process runs one frame through the kernel. current is the RGBA input
// frame; output receives the grayscale-in-RGBA trail visualization.
// Both must be exactly width*height*4 bytes; a mismatch is reported
// before any state is touched. The very first call primes the frame
// history and emits an all-black frame.
func (e *Engine) Process(current, output []byte, opts Options) error {
	frameLen := e.history.FrameLen()
	if len(current) != frameLen {
		return fmt.Errorf("current frame is %d bytes, want %d", len(current), frameLen)
	}
	if len(output) != frameLen {
		return fmt.Errorf("output frame is %d bytes, want %d", len(output), frameLen)
	}

	if !e.history.Primed() {
		e.history.Push(current)
		writeBlackFrame(output)
		return nil
	}

	decayApplied := e.warp(opts)
	e.blend(current, e.history.Oldest(), output, opts, decayApplied)
	e.history.Push(current)
	return nil
}

// warp runs the configured warp variant, filling the scratch buffer
// with the remapped persistence trail. It returns true when the decay
// factor has already been folded into the scratch buffer.
func (e *Engine) warp(opts Options) bool {
	clear(e.temp)

	switch opts.Move.Type {
	case MoveDirection:
		e.warpDirection(opts.Move.Angle, opts.Move.Speed)
	case MoveRadial:
		e.warpRadial(opts.Move.Speed)
	case MoveSpiral:
		e.warpSpiral(opts.Move.Speed, opts.Move.RotationSpeed)
	case MoveWave:
		e.warpWave(opts.Move)
		// The phase advances on every wave frame, even when the
		// amplitude is too small to move any pixels.
		e.phase += opts.Move.PhaseIncrement
	default:
		copy(e.temp, e.persistence)
	}

	if e.useSIMD {
		// Pre-scaling the whole scratch buffer is the same float32
		// multiply the blend loop would do per pixel, so the SIMD and
		// scalar paths stay numerically identical.
		e.ops.Scale(e.temp, e.temp, opts.DecayRate)
		return true
	}
	return false
}

// ResetPersistence zeroes the trail buffer. The frame history and wave
// phase are left untouched; only reconstruction unprimes the engine.
func (e *Engine) ResetPersistence() {
	clear(e.persistence)
}

// BufferSize returns the pixel count, width*height.
func (e *Engine) BufferSize() int {
	return e.geo.PixelCount()
}

// Width returns the frame width in pixels.
func (e *Engine) Width() int {
	return e.geo.Width
}

// Height returns the frame height in pixels.
func (e *Engine) Height() int {
	return e.geo.Height
}

// Phase returns the wave phase accumulator.
func (e *Engine) Phase() float32 {
	return e.phase
}

// SetPhase overwrites the wave phase accumulator. Hosts use this for
// reproducible wave animation.
func (e *Engine) SetPhase(phase float32) {
	e.phase = phase
}

// Primed reports whether a comparison frame is cached.
func (e *Engine) Primed() bool {
	return e.history.Primed()
}

// Persistence returns a copy of the trail buffer.
func (e *Engine) Persistence() []float32 {
	out := make([]float32, len(e.persistence))
	copy(out, e.persistence)
	return out
}

// TrailEnergy returns the total intensity currently held in the trail
// buffer, a cheap scalar activity signal.
func (e *Engine) TrailEnergy() float32 {
	return e.ops.Sum(e.persistence)
}

// writeBlackFrame fills output with opaque black pixels.
func writeBlackFrame(output []byte) {
	for i := 0; i < len(output); i += rgbaBytesPerPixel {
		output[i] = 0
		output[i+1] = 0
		output[i+2] = 0
		output[i+3] = alphaOpaque
	}
}
