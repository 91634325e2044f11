package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWarpRadial_NegligibleSpeedIsIdentity(t *testing.T) {
	e := newTestEngine(t, 32, 32)
	fillPersistence(e)

	for _, speed := range []float32{0, 0.05, -0.1, 0.1} {
		runWarp(e, MoveSpec{Type: MoveRadial, Speed: speed})
		assert.Equal(t, e.persistence, e.temp, "speed %v must be an exact copy", speed)
	}
}

func TestWarpRadial_DeadZoneCopiesUnchanged(t *testing.T) {
	// A small frame sits entirely within the speed+50 dead zone.
	e := newTestEngine(t, 64, 64)
	fillPersistence(e)

	runWarp(e, MoveSpec{Type: MoveRadial, Speed: 2})

	assert.Equal(t, e.persistence, e.temp)
}

func TestWarpRadial_TieredExpansion(t *testing.T) {
	// 200x200: center (100,100), max radius ~141.4, tiers at ~42.4 and
	// ~99.0, dead zone 55 for speed 5.
	e := newTestEngine(t, 200, 200)
	fillPersistence(e)

	runWarp(e, MoveSpec{Type: MoveRadial, Speed: 5})

	// Inside the dead zone: copied unchanged.
	inner := 100*200 + 130 // (130,100), distance 30
	assert.Equal(t, e.persistence[inner], e.temp[inner])

	// Medium tier pixel (180,100), distance 80: effective speed 4.75,
	// source x = round(180 - 4.75) = 175.
	medium := 100*200 + 180
	assert.Equal(t, e.persistence[100*200+175], e.temp[medium])

	// Low tier pixel (199,100), distance 99: effective speed
	// round(5*0.8) = 4, source x = 195.
	low := 100*200 + 199
	assert.Equal(t, e.persistence[100*200+195], e.temp[low])
}

func TestWarpRadial_ContractionOutOfBoundsZeroes(t *testing.T) {
	e := newTestEngine(t, 200, 200)
	fillPersistence(e)

	// Strong contraction pulls edge sources from outside the frame.
	runWarp(e, MoveSpec{Type: MoveRadial, Speed: -60})

	edge := 100*200 + 199 // (199,100), distance 99, low tier
	assert.Equal(t, float32(0), e.temp[edge], "out-of-bounds source must leave zero")
}
