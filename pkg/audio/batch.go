package audio

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// OptimizeAll normalizes several clips concurrently, preserving input order
// in the results. Each clip is independent — the pipeline shares no mutable
// state — so the only coordination needed is the bounded errgroup. A
// maxParallel of zero or less means no limit.
//
// The first failing clip aborts the batch and its error is returned; partial
// results are discarded. Callers that want per-clip outcomes should call
// [Optimizer.Optimize] per clip instead.
func (o *Optimizer) OptimizeAll(ctx context.Context, encoded []string, maxParallel int) ([]OptimizationResult, error) {
	results := make([]OptimizationResult, len(encoded))

	eg, ctx := errgroup.WithContext(ctx)
	if maxParallel > 0 {
		eg.SetLimit(maxParallel)
	}

	for i, clip := range encoded {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := o.Optimize(clip)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
