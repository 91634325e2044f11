// Package testutil provides reusable test helpers for motion kernel tests.
package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// rgbaBytesPerPixel matches the engine's frame layout.
const rgbaBytesPerPixel = 4

// SolidFrame builds an opaque RGBA frame filled with a single color.
func SolidFrame(width, height int, r, g, b uint8) []byte {
	frame := make([]byte, width*height*rgbaBytesPerPixel)
	for i := 0; i < len(frame); i += rgbaBytesPerPixel {
		frame[i] = r
		frame[i+1] = g
		frame[i+2] = b
		frame[i+3] = 255
	}
	return frame
}

// SetPixel overwrites one pixel of an RGBA frame.
func SetPixel(frame []byte, width, x, y int, r, g, b uint8) {
	i := (y*width + x) * rgbaBytesPerPixel
	frame[i] = r
	frame[i+1] = g
	frame[i+2] = b
	frame[i+3] = 255
}

// AssertBlackFrame verifies every pixel is {0,0,0,255}.
func AssertBlackFrame(t *testing.T, frame []byte) bool {
	t.Helper()
	for i := 0; i < len(frame); i += rgbaBytesPerPixel {
		if frame[i] != 0 || frame[i+1] != 0 || frame[i+2] != 0 || frame[i+3] != 255 {
			return assert.Fail(t, "frame is not black",
				"pixel %d = {%d,%d,%d,%d}", i/rgbaBytesPerPixel,
				frame[i], frame[i+1], frame[i+2], frame[i+3])
		}
	}
	return true
}

// AssertAllInRange verifies that all elements are within [min, max].
func AssertAllInRange(t *testing.T, s []float32, minVal, maxVal float32) bool {
	t.Helper()
	for i, v := range s {
		if v < minVal || v > maxVal {
			return assert.Fail(t, "value out of range",
				"s[%d]=%f is outside range [%f, %f]", i, v, minVal, maxVal)
		}
	}
	return true
}

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, s []float32) bool {
	t.Helper()
	for i, v := range s {
		f := float64(v)
		if math.IsNaN(f) {
			return assert.Fail(t, "found NaN", "s[%d] is NaN", i)
		}
		if math.IsInf(f, 0) {
			return assert.Fail(t, "found Inf", "s[%d] is Inf", i)
		}
	}
	return true
}

// AssertAllZero verifies that every element is exactly zero.
func AssertAllZero(t *testing.T, s []float32) bool {
	t.Helper()
	for i, v := range s {
		if v != 0 {
			return assert.Fail(t, "buffer not zeroed", "s[%d]=%f", i, v)
		}
	}
	return true
}
