package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompute_Empty(t *testing.T) {
	assert.Equal(t, Stats{}, Compute(nil))
	assert.Equal(t, Stats{}, Compute([]float32{}))
}

func TestCompute_UniformBuffer(t *testing.T) {
	buf := []float32{100, 100, 100, 100}
	s := Compute(buf)

	assert.InDelta(t, 100, s.Mean, 1e-9)
	assert.InDelta(t, 100, s.Peak, 1e-9)
	assert.InDelta(t, 0, s.StdDev, 1e-9)
	assert.InDelta(t, 1.0, s.ActiveFraction, 1e-9)
}

func TestCompute_ActiveFraction(t *testing.T) {
	// Two of four pixels above the activity level.
	buf := []float32{0, 0.5, 50, 200}
	s := Compute(buf)

	assert.InDelta(t, 0.5, s.ActiveFraction, 1e-9)
	assert.InDelta(t, 200, s.Peak, 1e-9)
	assert.InDelta(t, 62.625, s.Mean, 1e-6)
}

func TestCompute_SingleElement(t *testing.T) {
	s := Compute([]float32{42})
	assert.InDelta(t, 42, s.Mean, 1e-9)
	assert.Equal(t, 0.0, s.StdDev, "single sample has no deviation")
}
