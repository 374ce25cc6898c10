// Package bits splits float64 values into the two 32-bit words of their
// IEEE-754 representation.
package bits

import "math"

// Lanes returns the low and high 32-bit words of x's bit pattern.
// The low lane holds bits 0..31, which is the word a little-endian host
// stores first in memory. The order does not depend on the host.
func Lanes(x float64) (lo, hi uint32) {
	b := math.Float64bits(x)
	return uint32(b), uint32(b >> 32)
}

// FromLanes rebuilds the float64 whose bit pattern is (lo, hi).
func FromLanes(lo, hi uint32) float64 {
	return math.Float64frombits(uint64(hi)<<32 | uint64(lo))
}
