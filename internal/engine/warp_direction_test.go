package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fillPersistence gives every pixel a distinct nonzero value so
// misdirected gathers are visible.
func fillPersistence(e *Engine) {
	for i := range e.persistence {
		e.persistence[i] = float32(i + 1)
	}
}

// runWarp dispatches a warp with SIMD disabled so the scratch buffer
// holds the raw remap.
func runWarp(e *Engine, move MoveSpec) {
	e.warp(Options{DecayRate: 1, Move: move})
}

func TestWarpDirection_LowSpeedIsIdentity(t *testing.T) {
	e := newTestEngine(t, 8, 8)
	fillPersistence(e)

	for _, speed := range []float32{0, 0.5, 1.0} {
		runWarp(e, MoveSpec{Type: MoveDirection, Angle: 1.2, Speed: speed})
		assert.Equal(t, e.persistence, e.temp, "speed %v must be an exact copy", speed)
	}
}

func TestWarpDirection_ShiftRight(t *testing.T) {
	e := newTestEngine(t, 8, 8)
	fillPersistence(e)

	runWarp(e, MoveSpec{Type: MoveDirection, Angle: 0, Speed: 2})

	for y := range 8 {
		for x := range 8 {
			i := y*8 + x
			if x < 2 {
				assert.Equal(t, float32(0), e.temp[i], "revealed pixel (%d,%d)", x, y)
			} else {
				assert.Equal(t, e.persistence[i-2], e.temp[i], "pixel (%d,%d)", x, y)
			}
		}
	}
}

func TestWarpDirection_ShiftDown(t *testing.T) {
	e := newTestEngine(t, 8, 8)
	fillPersistence(e)

	runWarp(e, MoveSpec{Type: MoveDirection, Angle: math.Pi / 2, Speed: 3})

	for y := range 8 {
		for x := range 8 {
			i := y*8 + x
			if y < 3 {
				assert.Equal(t, float32(0), e.temp[i], "revealed row %d", y)
			} else {
				assert.Equal(t, e.persistence[(y-3)*8+x], e.temp[i])
			}
		}
	}
}

func TestWarpDirection_ShiftLeft(t *testing.T) {
	e := newTestEngine(t, 8, 8)
	fillPersistence(e)

	runWarp(e, MoveSpec{Type: MoveDirection, Angle: math.Pi, Speed: 2})

	for y := range 8 {
		for x := range 8 {
			i := y*8 + x
			if x >= 6 {
				assert.Equal(t, float32(0), e.temp[i], "revealed pixel (%d,%d)", x, y)
			} else {
				assert.Equal(t, e.persistence[i+2], e.temp[i])
			}
		}
	}
}

func TestWarpDirection_FullyOutOfBounds(t *testing.T) {
	e := newTestEngine(t, 8, 8)
	fillPersistence(e)

	runWarp(e, MoveSpec{Type: MoveDirection, Angle: 0, Speed: 100})

	require.Len(t, e.temp, 64)
	for i, v := range e.temp {
		assert.Equal(t, float32(0), v, "pixel %d must stay zero", i)
	}
}
