package mathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, float32(5), Clamp(float32(5), 0, 10))
	assert.Equal(t, float32(0), Clamp(float32(-1), 0, 10))
	assert.Equal(t, float32(10), Clamp(float32(11), 0, 10))
	assert.Equal(t, 3, Clamp(3, 3, 3))
}

func TestClampToByte(t *testing.T) {
	assert.Equal(t, uint8(0), ClampToByte(-4))
	assert.Equal(t, uint8(0), ClampToByte(0))
	assert.Equal(t, uint8(128), ClampToByte(128.7))
	assert.Equal(t, uint8(255), ClampToByte(255))
	assert.Equal(t, uint8(255), ClampToByte(300))
}

func TestRoundToInt(t *testing.T) {
	assert.Equal(t, 2, RoundToInt(1.5))
	assert.Equal(t, 1, RoundToInt(1.4))
	assert.Equal(t, -2, RoundToInt(-1.5))
	assert.Equal(t, 0, RoundToInt(0))
}

func TestAbsInt(t *testing.T) {
	assert.Equal(t, 3, AbsInt(-3))
	assert.Equal(t, 3, AbsInt(3))
	assert.Equal(t, 0, AbsInt(0))
}
