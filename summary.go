package noise

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes a sample of shuffled values.
type Summary struct {
	N      int
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64

	// Ones counts values equal to 1.0, the closed upper end of the
	// ShuffleDouble range.
	Ones int
}

// Summarize computes sample statistics of values.
// A uniform sample on [0, 1] has mean 0.5 and standard deviation 1/sqrt(12).
func Summarize(values []float64) Summary {
	s := Summary{N: len(values)}
	if len(values) == 0 {
		return s
	}

	s.Mean, s.StdDev = stat.MeanStdDev(values, nil)
	if len(values) == 1 {
		s.StdDev = 0
	}
	s.Min = floats.Min(values)
	s.Max = floats.Max(values)
	for _, v := range values {
		if v == 1 {
			s.Ones++
		}
	}
	return s
}
