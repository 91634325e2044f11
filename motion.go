package motion

import (
	"errors"
	"fmt"
)

// Detector is the main interface for motion persistence processing.
// One Detector processes one frame at a time, synchronously; each call
// fully completes before the next may begin.
type Detector interface {
	// Process runs one RGBA frame through the kernel and writes the
	// grayscale trail visualization into output. Both buffers must be
	// exactly Width*Height*4 bytes. The first call after construction
	// primes the frame history and emits an all-black frame.
	Process(current, output []byte, opts Options) error

	// ResetPersistence zeroes the trail buffer. The cached comparison
	// frame and wave phase are untouched; reconstruct the detector to
	// return to the unprimed state.
	ResetPersistence()

	// BufferSize returns Width*Height, the per-pixel buffer length
	// callers should use when sizing external buffers.
	BufferSize() int

	// Width and Height return the configured frame dimensions.
	Width() int
	Height() int

	// Phase returns the wave phase accumulator. SetPhase overwrites it,
	// allowing hosts to seek or reproduce wave animation exactly.
	Phase() float32
	SetPhase(phase float32)

	// Persistence returns a copy of the trail buffer.
	Persistence() []float32

	// Stats summarizes the trail buffer after the most recent frame.
	Stats() Stats
}

// Config holds detector configuration.
type Config struct {
	// Width and Height are the frame dimensions in pixels.
	Width  int
	Height int

	// HistoryDepth selects how many frames back the comparison frame
	// is. 0 means the default of 1, differencing against the previous
	// frame. Larger depths emphasize slower motion.
	HistoryDepth int

	// EnableSIMD allows the use of SIMD optimizations. The SIMD path is
	// numerically identical to the pure Go path.
	EnableSIMD bool
}

// Common errors returned by the detector.
var (
	// ErrInvalidGeometry indicates non-positive or oversized frame
	// dimensions.
	ErrInvalidGeometry = errors.New("invalid frame geometry")

	// ErrBufferSizeMismatch indicates a frame buffer whose length is
	// not Width*Height*4.
	ErrBufferSizeMismatch = errors.New("frame buffer size mismatch")

	// ErrInvalidConfig indicates invalid configuration parameters.
	ErrInvalidConfig = errors.New("invalid detector configuration")
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: dimensions %dx%d must be positive", ErrInvalidGeometry, c.Width, c.Height)
	}

	if c.Width > maxDimension || c.Height > maxDimension {
		return fmt.Errorf("%w: dimensions %dx%d exceed maximum %d", ErrInvalidGeometry, c.Width, c.Height, maxDimension)
	}

	if c.HistoryDepth < 0 || c.HistoryDepth > maxHistoryDepth {
		return fmt.Errorf("%w: history depth %d out of range (0-%d)", ErrInvalidConfig, c.HistoryDepth, maxHistoryDepth)
	}

	return nil
}

// New creates a detector with the specified configuration.
func New(config *Config) (Detector, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	depth := config.HistoryDepth
	if depth == 0 {
		depth = defaultHistoryDepth
	}

	return newDetector(config, depth)
}
