package bits

import (
	"math"
	"testing"
)

func TestLanes(t *testing.T) {
	tests := []struct {
		x      float64
		lo, hi uint32
	}{
		{0, 0, 0},
		{1, 0, 0x3ff00000},
		{2, 0, 0x40000000},
		{math.Sqrt2, 0x667f3bcd, 0x3ff6a09e},
		{math.Copysign(0, -1), 0, 0x80000000},
		{math.Inf(1), 0, 0x7ff00000},
	}

	for _, tt := range tests {
		lo, hi := Lanes(tt.x)
		if lo != tt.lo || hi != tt.hi {
			t.Errorf("Lanes(%v) = (%#08x, %#08x), expected (%#08x, %#08x)", tt.x, lo, hi, tt.lo, tt.hi)
		}
	}
}

func TestFromLanesRoundTrip(t *testing.T) {
	for _, x := range []float64{0, 0.5, 1, 123.456, 1e-300, math.MaxFloat64} {
		lo, hi := Lanes(x)
		if got := FromLanes(lo, hi); math.Float64bits(got) != math.Float64bits(x) {
			t.Errorf("FromLanes(Lanes(%v)) = %v", x, got)
		}
	}
}
