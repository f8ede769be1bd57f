package optimizer

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/PennIARC/GridTesting/terrain"
)

// Sentinel errors.
var (
	// ErrNilBundle indicates a nil scenario bundle.
	ErrNilBundle = errors.New("optimizer: bundle is nil")
	// ErrOptionViolation indicates an invalid Option.
	ErrOptionViolation = errors.New("optimizer: invalid option supplied")
)

// Scan defaults.
const (
	DefaultMinWidth   = 0
	DefaultMaxWidth   = 8
	DefaultTolerances = 3
)

// Options configures Optimize.
type Options struct {
	MinWidth, MaxWidth int
	Tolerances         int
	// MaxExpansions caps each individual search; 0 means no cap.
	MaxExpansions int
	// Sequential disables parallel tolerance solving.
	Sequential bool

	err error
}

// Option configures Optimize.
type Option func(*Options)

// DefaultOptions scans widths 0..8 for tolerances 0..2 in parallel.
func DefaultOptions() Options {
	return Options{
		MinWidth:   DefaultMinWidth,
		MaxWidth:   DefaultMaxWidth,
		Tolerances: DefaultTolerances,
	}
}

// WithWidths sets the inclusive width range. Requires 0 ≤ lo ≤ hi.
func WithWidths(lo, hi int) Option {
	return func(o *Options) {
		if lo < 0 || hi < lo {
			o.err = fmt.Errorf("%w: width range [%d,%d]", ErrOptionViolation, lo, hi)
			return
		}
		o.MinWidth, o.MaxWidth = lo, hi
	}
}

// WithTolerances sets how many tolerance levels (0..n-1) are solved. Requires n ≥ 1.
func WithTolerances(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: tolerances=%d", ErrOptionViolation, n)
			return
		}
		o.Tolerances = n
	}
}

// WithMaxExpansions caps every search; exhaustion counts as infeasible.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions=%d", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithSequential solves tolerance levels one after another.
func WithSequential() Option {
	return func(o *Options) {
		o.Sequential = true
	}
}

// Result is the best scenario found for one tolerance level.
type Result struct {
	Tolerance int
	Feasible  bool
	Path      []terrain.Point
	Width     int
	Score     float64
	// Exact is Score before float conversion.
	Exact decimal.Decimal
	// Violated lists the crossed visible-mine ids (visible roster scope).
	Violated []int
	// Searches and Expanded total the work done for this tolerance.
	Searches int
	Expanded int
}

// PathLength returns the path length in steps.
func (r Result) PathLength() int {
	if len(r.Path) == 0 {
		return 0
	}
	return len(r.Path) - 1
}
