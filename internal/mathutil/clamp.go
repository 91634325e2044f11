// Package mathutil provides small numeric helpers shared by the motion
// kernel hot paths.
package mathutil

import "math"

// Number constrains the numeric types supported by Clamp.
type Number interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// Clamp limits v to the inclusive range [lo, hi].
func Clamp[T Number](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampToByte converts a float32 intensity to a byte, saturating at the
// [0, 255] range.
func ClampToByte(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}

// RoundToInt rounds a float32 to the nearest integer, half away from zero.
func RoundToInt(v float32) int {
	return int(math.Round(float64(v)))
}

// AbsInt returns the absolute value of an integer difference.
func AbsInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
