package vec

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Clamp limits val to [min, max].
func Clamp[T constraints.Ordered](val, min, max T) T {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Sign returns 1 for val >= 0 and -1 otherwise. Zero counts as positive so
// that tie-breaks (e.g. the angle constraint) always pick a direction.
func Sign(val float64) float64 {
	if val >= 0 {
		return 1
	}
	return -1
}

// Lerp interpolates from a to b by factor (unclamped).
func Lerp[T constraints.Float](a, b, factor T) T {
	return a + factor*(b-a)
}

// Map remaps val from the range [srcA, srcB] to [dstA, dstB].
func Map(val, srcA, srcB, dstA, dstB float64) float64 {
	factor := (val - srcA) / (srcB - srcA)
	return dstA + factor*(dstB-dstA)
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(deg float64) float64 {
	return deg * math.Pi / 180
}

// Rad2Deg converts radians to degrees.
func Rad2Deg(rad float64) float64 {
	return rad * 180 / math.Pi
}
