// Package framebuf implements the frame history used for motion
// differencing. Callers supply one frame per Process call; the ring
// retains the most recent frames so the engine can difference against
// the frame from depth calls ago without requiring the caller to keep
// two frames alive.
package framebuf

import "fmt"

// Ring is a fixed-depth ring of raw frame bytes. All stored frames have
// the same length; pushed frames are copied, so callers may reuse their
// input buffers between calls.
type Ring struct {
	frames   [][]byte
	frameLen int
	depth    int
	head     int
	count    int
}

// NewRing creates a ring holding up to depth frames of frameLen bytes.
func NewRing(frameLen, depth int) (*Ring, error) {
	if frameLen <= 0 {
		return nil, fmt.Errorf("invalid frame length %d", frameLen)
	}
	if depth < 1 {
		return nil, fmt.Errorf("invalid history depth %d", depth)
	}

	frames := make([][]byte, depth)
	for i := range frames {
		frames[i] = make([]byte, frameLen)
	}

	return &Ring{
		frames:   frames,
		frameLen: frameLen,
		depth:    depth,
	}, nil
}

// Push copies frame into the ring, evicting the oldest entry when full.
func (r *Ring) Push(frame []byte) {
	copy(r.frames[r.head], frame)
	r.head = (r.head + 1) % r.depth
	if r.count < r.depth {
		r.count++
	}
}

// Oldest returns the oldest retained frame. With depth 1 this is the
// frame from the previous Push. The returned slice is the ring's own
// storage and must not be modified.
func (r *Ring) Oldest() []byte {
	if r.count == 0 {
		return nil
	}
	idx := (r.head - r.count + r.depth) % r.depth
	return r.frames[idx]
}

// Primed reports whether at least one frame has been pushed.
func (r *Ring) Primed() bool {
	return r.count > 0
}

// Depth returns the configured history depth.
func (r *Ring) Depth() int {
	return r.depth
}

// FrameLen returns the byte length of each stored frame.
func (r *Ring) FrameLen() int {
	return r.frameLen
}
