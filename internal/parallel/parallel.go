// SPDX-License-Identifier: MIT

// Package parallel runs index-addressed work items on a bounded pool of
// goroutines. Every item writes only to its own slot, so results keep the
// input order regardless of scheduling.
package parallel

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Workers resolves a requested worker count: n <= 0 means GOMAXPROCS.
func Workers(n int) int {
	if n <= 0 {
		return runtime.GOMAXPROCS(0)
	}

	return n
}

// ForEach calls fn(ctx, i) for every i in [0, n) using at most workers
// goroutines. The first error cancels the shared context and is returned
// after all started items have finished.
func ForEach(ctx context.Context, n, workers int, fn func(ctx context.Context, i int) error) error {
	if n == 0 {
		return ctx.Err()
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(Workers(workers))
	for i := 0; i < n; i++ {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return fn(gctx, i)
		})
	}

	return g.Wait()
}

// Map applies fn to every element of in and returns the results in order.
func Map[A, B any](ctx context.Context, in []A, workers int, fn func(A) (B, error)) ([]B, error) {
	out := make([]B, len(in))
	err := ForEach(ctx, len(in), workers, func(_ context.Context, i int) error {
		v, err := fn(in[i])
		if err != nil {
			return err
		}
		out[i] = v
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}
