// Package math provides guarded float64 helpers for seed mixing.
package math

import (
	"math"

	"github.com/pkg/errors"
)

// ErrDomain is returned when an argument is outside a function's domain.
var ErrDomain = errors.New("argument outside function domain")

// Sqrt returns the square root of x. Negative values and NaN yield
// ErrDomain instead of propagating NaN. -0 is accepted and returns -0.
func Sqrt(x float64) (float64, error) {
	if math.IsNaN(x) || x < 0 {
		return 0, errors.Wrapf(ErrDomain, "sqrt(%v)", x)
	}
	return math.Sqrt(x), nil
}
