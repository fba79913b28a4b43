package tridiag

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// SolveAll solves independent systems concurrently, at most limit at a time
// (limit <= 0 means runtime.GOMAXPROCS(0)). Each solve is still sequential;
// only distinct problems run in parallel and they share no mutable state.
//
// out[i] is the solution of problems[i]. On the first failure the remaining
// problems that have not started are skipped and the error is returned
// wrapped with the problem index. Cancelling ctx has the same effect; a solve
// already in progress always runs to completion.
func SolveAll(ctx context.Context, problems []Problem, limit int) ([][]float64, error) {
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	out := make([][]float64, len(problems))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i := range problems {
		i := i
		p := &problems[i]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			x, err := Solve(p.Lower, p.Diag, p.Upper, p.RHS)
			if err != nil {
				return fmt.Errorf("problem %d: %w", i, err)
			}
			out[i] = x

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
