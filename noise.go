// Package noise implements deterministic seeding and mixing primitives for
// pseudo-random noise generators.
//
// Three pure functions make up the package:
//
//   - SeedReal expands a real-valued seed plus a local and a global integer
//     seed into a generator state vector.
//   - ShuffleDouble maps a real value and an unsigned seed to a
//     pseudo-random value in [0, 1].
//   - CombineSeedLCG folds two integer seeds into one.
//
// Entropy is taken from the bit pattern of the square root of the real
// input, not from its numeric value. None of the functions keep state
// between calls and all are safe for concurrent use.
//
// Basic usage:
//
//	global := noise.CombineSeedLCG(userSeed, noise.StringSeed("plant.sensor"))
//	states, err := noise.ExpandSeed(local, global, t, 33)
//	...
//	y, err := noise.ShuffleDouble(t, uint32(states[0]))
//
// The package is not a general-purpose random number generator and is not
// cryptographically secure.
package noise

import (
	"github.com/pkg/errors"

	"github.com/nozzle/noise/internal/bits"
	nmath "github.com/nozzle/noise/internal/math"
	"github.com/nozzle/noise/internal/rand"
)

// LCGMultiplier is the multiplier of every linear congruential step.
const LCGMultiplier = rand.Multiplier

// ErrDomain is returned when a negative or NaN value is passed where a
// square root is taken.
var ErrDomain = nmath.ErrDomain

// SeedReal fills states with a state vector derived from the given seeds.
// Even indices receive the low-lane word mixed with localSeed, odd indices
// the folded word mixed with globalSeed, so states[i] == states[i+2].
// An empty states slice is valid and left untouched.
func SeedReal(localSeed, globalSeed int32, realSeed float64, states []int32) error {
	// The square root removes sampling artifacts of seeds taken from a
	// linear or quadratic scale.
	x0, err := nmath.Sqrt(realSeed)
	if err != nil {
		return errors.Wrap(err, "real seed")
	}

	lo, hi := bits.Lanes(x0)
	x1 := lo ^ uint32(localSeed)
	x2 := lo ^ hi ^ uint32(globalSeed)

	for i := range states {
		if i%2 == 0 {
			states[i] = int32(x1)
		} else {
			states[i] = int32(x2)
		}
	}
	return nil
}

// ExpandSeed is SeedReal with a freshly allocated state vector of length n.
func ExpandSeed(localSeed, globalSeed int32, realSeed float64, n int) ([]int32, error) {
	if n < 0 {
		return nil, errors.Errorf("negative state vector length %d", n)
	}
	states := make([]int32, n)
	if err := SeedReal(localSeed, globalSeed, realSeed, states); err != nil {
		return nil, err
	}
	return states, nil
}

// ShuffleDouble maps x and seed to a pseudo-random value in the closed
// interval [0, 1]. The result depends only on (x, seed).
//
// Both lanes of sqrt(x) take one LCG step, then a combined step mixes them.
// The combined word is divided by math.MaxUint32, so 1.0 is reachable.
func ShuffleDouble(x float64, seed uint32) (float64, error) {
	x0, err := nmath.Sqrt(x)
	if err != nil {
		return 0, errors.Wrap(err, "shuffle")
	}

	lo, hi := bits.Lanes(x0)
	x1 := rand.Step(lo)
	x2 := rand.Step(lo ^ hi ^ seed)

	return rand.Unit(rand.Combine(x1, x2)), nil
}

// CombineSeedLCG combines two seeds into one in [0, math.MaxInt32).
// Arithmetic wraps in 32 bits before the result is reduced.
func CombineSeedLCG(a, b int32) int32 {
	return rand.CombineSigned(a, b)
}
