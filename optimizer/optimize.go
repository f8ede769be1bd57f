package optimizer

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/PennIARC/GridTesting/corridor"
	"github.com/PennIARC/GridTesting/scenario"
)

// Optimize returns one Result per tolerance level, indexed by tolerance.
func Optimize(ctx context.Context, b *scenario.Bundle, opts ...Option) ([]Result, error) {
	if b == nil {
		return nil, ErrNilBundle
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	results := make([]Result, o.Tolerances)
	if o.Sequential {
		for t := range results {
			r, err := optimizeTolerance(ctx, b, o, t)
			if err != nil {
				return nil, err
			}
			results[t] = r
		}
		return results, nil
	}

	eg, egCtx := errgroup.WithContext(ctx)
	for t := range results {
		t := t
		eg.Go(func() error {
			r, err := optimizeTolerance(egCtx, b, o, t)
			if err != nil {
				return err
			}
			results[t] = r
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// optimizeTolerance scans every width for one tolerance and keeps the best.
func optimizeTolerance(ctx context.Context, b *scenario.Bundle, o Options, tolerance int) (Result, error) {
	best := Result{Tolerance: tolerance}
	for w := o.MinWidth; w <= o.MaxWidth; w++ {
		res, err := corridor.Search(b.Grid, b.VisibleField, w, tolerance,
			corridor.WithContext(ctx),
			corridor.WithMaxExpansions(o.MaxExpansions),
		)
		if err != nil {
			return Result{}, err
		}
		best.Searches++
		best.Expanded += res.Expanded
		if !res.Found {
			continue
		}

		exact := ExactScore(w, res.Length(), len(res.Violated))
		if exact.GreaterThan(best.Exact) {
			score, _ := exact.Float64()
			best.Feasible = true
			best.Path = res.Path
			best.Width = w
			best.Score = score
			best.Exact = exact
			best.Violated = res.Violated
		}
	}
	return best, nil
}
