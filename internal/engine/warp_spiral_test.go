package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWarpSpiral_NegligibleMotionIsIdentity(t *testing.T) {
	e := newTestEngine(t, 32, 32)
	fillPersistence(e)

	cases := []MoveSpec{
		{Type: MoveSpiral, Speed: 0, RotationSpeed: 0},
		{Type: MoveSpiral, Speed: 0.1, RotationSpeed: 0.01},
		{Type: MoveSpiral, Speed: -0.1, RotationSpeed: -0.01},
	}
	for _, spec := range cases {
		runWarp(e, spec)
		assert.Equal(t, e.persistence, e.temp,
			"speed %v rotation %v must be an exact copy", spec.Speed, spec.RotationSpeed)
	}
}

func TestWarpSpiral_DeadZoneCopiesUnchanged(t *testing.T) {
	e := newTestEngine(t, 200, 200)
	fillPersistence(e)

	runWarp(e, MoveSpec{Type: MoveSpiral, Speed: 2, RotationSpeed: 0.1})

	// (103,100) is 3 pixels from center, inside the speed+5 dead zone.
	inner := 100*200 + 103
	assert.Equal(t, e.persistence[inner], e.temp[inner])
}

func TestWarpSpiral_PureOutwardMotion(t *testing.T) {
	e := newTestEngine(t, 200, 200)
	fillPersistence(e)

	// Rotation is negligible, so the warp reduces to a radial gather
	// along the pixel's own angle.
	runWarp(e, MoveSpec{Type: MoveSpiral, Speed: 2, RotationSpeed: 0})

	// (120,100): distance 20, angle 0, source (118,100).
	i := 100*200 + 120
	assert.Equal(t, e.persistence[100*200+118], e.temp[i])

	// (100,130): distance 30, angle pi/2, source (100,128).
	i = 130*200 + 100
	assert.Equal(t, e.persistence[128*200+100], e.temp[i])
}

func TestWarpSpiral_RotationByTier(t *testing.T) {
	e := newTestEngine(t, 200, 200)
	fillPersistence(e)

	// Zero radial speed leaves the distance unchanged; only the
	// rotation term moves sources. Tiers sit at ~42.4 and ~99.0.
	runWarp(e, MoveSpec{Type: MoveSpiral, Speed: 0, RotationSpeed: 0.2})

	// High quality tier, (120,100): distance 20, full rotation 0.2.
	// Source = (100 + 20*cos(-0.2), 100 + 20*sin(-0.2)) = (120, 96).
	i := 100*200 + 120
	assert.Equal(t, e.persistence[96*200+120], e.temp[i])

	// Medium tier, (160,100): distance 60, rotation 0.14.
	// Source = (100 + 60*cos(-0.14), 100 + 60*sin(-0.14)) = (159, 92).
	i = 100*200 + 160
	assert.Equal(t, e.persistence[92*200+159], e.temp[i])
}

func TestWarpSpiral_OutOfBoundsZeroes(t *testing.T) {
	e := newTestEngine(t, 200, 200)
	fillPersistence(e)

	// Strong inward speed pushes edge sources outside the frame.
	runWarp(e, MoveSpec{Type: MoveSpiral, Speed: -70, RotationSpeed: 0})

	edge := 100*200 + 199 // (199,100): source x = 100 + 169 = 269
	assert.Equal(t, float32(0), e.temp[edge])
}
