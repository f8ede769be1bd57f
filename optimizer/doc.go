// Package optimizer picks, for each risk tolerance, the corridor half-width
// whose feasible path scores best.
//
// What:
//
//	For every tolerance t in [0, Tolerances) and every width w in
//	[MinWidth, MaxWidth] (defaults: t ∈ {0,1,2}, w ∈ 0..8) it runs
//	corridor.Search(w, t) and scores feasible paths with
//
//	    score = 150000 × (2w) / ((1 + missed) × (2L))
//
//	where L is the path length in steps and missed the number of crossed
//	visible mines; grid units convert to feet with the ×2 factor and L = 0
//	scores 0. The scan is exhaustive; the first strictly greater score wins,
//	so among equal scores the smaller width is kept.
//
// Scores are computed with exact decimal arithmetic and converted to float64
// for reporting, so the comparison between widths never depends on float
// rounding.
//
// Concurrency:
//
//	Tolerance levels are independent and run in parallel on an errgroup;
//	each goroutine owns its result slot and reads the bundle only.
//	WithSequential runs them one after another.
//
// Errors:
//
//   - ErrNilBundle:        nil bundle.
//   - ErrOptionViolation:  invalid width range, tolerance count or cap.
//   - Search errors and context cancellation are propagated.
package optimizer
