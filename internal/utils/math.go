// internal/utils/math.go
package utils

import "math"

// Epsilon guards normalisation of zero-length vectors.
const Epsilon = 0.001

// SafeLen returns the length of (dx, dy), never below Epsilon.
func SafeLen(dx, dy float64) float64 {
	l := math.Hypot(dx, dy)
	if l < Epsilon {
		return Epsilon
	}
	return l
}
