package motion

import (
	"fmt"

	"github.com/tphakala/go-motion-persist/internal/engine"
	"github.com/tphakala/go-motion-persist/internal/metrics"
)

// Stats summarizes the trail buffer after a frame. See the metrics
// package for field semantics.
type Stats = metrics.Stats

// detector wraps the internal engine behind the public Detector
// interface. It carries no locking: the engine is single-threaded by
// contract and callers own serialization.
type detector struct {
	engine *engine.Engine
	config Config
}

func newDetector(config *Config, historyDepth int) (*detector, error) {
	eng, err := engine.New(config.Width, config.Height, historyDepth, config.EnableSIMD)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidGeometry, err)
	}

	return &detector{
		engine: eng,
		config: *config,
	}, nil
}

// Process runs one frame through the kernel.
func (d *detector) Process(current, output []byte, opts Options) error {
	frameLen := d.config.Width * d.config.Height * bytesPerPixel
	if len(current) != frameLen {
		return fmt.Errorf("%w: current frame is %d bytes, want %d",
			ErrBufferSizeMismatch, len(current), frameLen)
	}
	if len(output) != frameLen {
		return fmt.Errorf("%w: output frame is %d bytes, want %d",
			ErrBufferSizeMismatch, len(output), frameLen)
	}

	return d.engine.Process(current, output, engineOptions(opts))
}

// ResetPersistence zeroes the trail buffer.
func (d *detector) ResetPersistence() {
	d.engine.ResetPersistence()
}

// BufferSize returns Width*Height.
func (d *detector) BufferSize() int {
	return d.engine.BufferSize()
}

// Width returns the frame width in pixels.
func (d *detector) Width() int {
	return d.engine.Width()
}

// Height returns the frame height in pixels.
func (d *detector) Height() int {
	return d.engine.Height()
}

// Phase returns the wave phase accumulator.
func (d *detector) Phase() float32 {
	return d.engine.Phase()
}

// SetPhase overwrites the wave phase accumulator.
func (d *detector) SetPhase(phase float32) {
	d.engine.SetPhase(phase)
}

// Persistence returns a copy of the trail buffer.
func (d *detector) Persistence() []float32 {
	return d.engine.Persistence()
}

// Stats summarizes the trail buffer.
func (d *detector) Stats() Stats {
	return metrics.Compute(d.engine.Persistence())
}
