// Package parallel provides parallel execution helpers.
package parallel

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// NumWorkers returns the default number of workers for parallel operations.
func NumWorkers() int {
	return runtime.GOMAXPROCS(0)
}

// For executes fn for indices [start, end) using up to n workers.
// Indices are split into contiguous chunks, one per worker. The first
// error returned by fn cancels the context passed to the remaining
// calls and is returned from For.
func For(ctx context.Context, start, end, n int, fn func(ctx context.Context, i int) error) error {
	total := end - start
	if total <= 0 {
		return ctx.Err()
	}
	if n <= 0 {
		n = NumWorkers()
	}
	if n == 1 {
		for i := start; i < end; i++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := fn(ctx, i); err != nil {
				return err
			}
		}
		return nil
	}

	g, ctx := errgroup.WithContext(ctx)
	chunkSize := (total + n - 1) / n

	for w := 0; w < n; w++ {
		chunkStart := start + w*chunkSize
		chunkEnd := chunkStart + chunkSize
		if chunkEnd > end {
			chunkEnd = end
		}
		if chunkStart >= chunkEnd {
			break
		}

		g.Go(func() error {
			for i := chunkStart; i < chunkEnd; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				if err := fn(ctx, i); err != nil {
					return err
				}
			}
			return nil
		})
	}

	return g.Wait()
}
