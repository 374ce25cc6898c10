package noise

import (
	"context"

	"github.com/pkg/errors"

	"github.com/nozzle/noise/internal/parallel"
)

// ShuffleAll applies ShuffleDouble with seed to every element of xs using
// up to workers goroutines (0 means GOMAXPROCS). The result has the same
// length and order as xs.
//
// The first element outside the domain stops the batch; the returned error
// names its index and satisfies errors.Is(err, ErrDomain).
func ShuffleAll(ctx context.Context, xs []float64, seed uint32, workers int) ([]float64, error) {
	out := make([]float64, len(xs))
	err := parallel.For(ctx, 0, len(xs), workers, func(_ context.Context, i int) error {
		y, err := ShuffleDouble(xs[i], seed)
		if err != nil {
			return errors.Wrapf(err, "element %d", i)
		}
		out[i] = y
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
