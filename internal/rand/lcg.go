// Package rand provides the 32-bit linear congruential steps used to mix
// seeds and bit patterns.
//
// All arithmetic is fixed-width and wraps modulo 2^32. Results must not
// be computed in wider types.
package rand

import "math"

// Multiplier is the LCG multiplier shared by every step.
const Multiplier = 134775813

// Step advances x by one LCG step: x*Multiplier + 1 (mod 2^32).
func Step(x uint32) uint32 {
	return x*Multiplier + 1
}

// Combine folds two states with a single combined step:
// a*Multiplier + b*Multiplier + 1 (mod 2^32).
func Combine(a, b uint32) uint32 {
	return a*Multiplier + b*Multiplier + 1
}

// CombineSigned is Combine in two's-complement int32 arithmetic, reduced
// into [0, math.MaxInt32).
func CombineSigned(a, b int32) int32 {
	r := a*Multiplier + b*Multiplier + 1
	if r < 0 {
		// MinInt32 % MaxInt32 is -1, so this cannot overflow.
		r = r%math.MaxInt32 + math.MaxInt32
	}
	return r % math.MaxInt32
}

// Unit maps x onto [0, 1] by dividing by math.MaxUint32.
// Both ends are reachable.
func Unit(x uint32) float64 {
	return float64(x) / math.MaxUint32
}
