package corridor

import (
	"context"
	"errors"
	"fmt"

	"github.com/PennIARC/GridTesting/terrain"
)

// Sentinel errors for search input validation.
var (
	// ErrNilGrid indicates a nil grid.
	ErrNilGrid = errors.New("corridor: grid is nil")
	// ErrNilField indicates a nil visible-mine distance field.
	ErrNilField = errors.New("corridor: distance field is nil")
	// ErrDimension indicates that field and grid dimensions differ.
	ErrDimension = errors.New("corridor: field dimensions do not match grid")
	// ErrInvalidWidth indicates a negative corridor half-width.
	ErrInvalidWidth = errors.New("corridor: width must be non-negative")
	// ErrInvalidBudget indicates a negative violation budget.
	ErrInvalidBudget = errors.New("corridor: budget must be non-negative")
	// ErrOptionViolation indicates an invalid Option.
	ErrOptionViolation = errors.New("corridor: invalid option supplied")
)

// tieBreakWeight scales the Euclidean term of the heuristic.
const tieBreakWeight = 0.001

// Option configures Search.
type Option func(*Options)

// Options holds search parameters and hooks.
type Options struct {
	// Ctx allows cancellation.
	Ctx context.Context
	// MaxExpansions, if > 0, caps the number of expanded states.
	MaxExpansions int
	// OnExpand is called each time a state is expanded, with the cell, its
	// cost from the start and the size of its violated set.
	OnExpand func(p terrain.Point, g, violated int)

	err error
}

// DefaultOptions returns background context, no expansion cap and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		OnExpand: func(terrain.Point, int, int) {},
	}
}

// WithContext sets a context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxExpansions caps expanded states.
//
//	n > 0:  cap at n; hitting the cap reports infeasible
//	n == 0: no cap
//	n < 0:  ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithOnExpand registers an expansion hook.
func WithOnExpand(fn func(p terrain.Point, g, violated int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// Result is the outcome of one search.
type Result struct {
	// Found reports whether the exit was reached within the budget.
	Found bool
	// Path lists cells from start to exit inclusive; empty when !Found.
	Path []terrain.Point
	// Violated lists the visible-mine ids whose zones the path crosses, ascending.
	Violated []int
	// Expanded counts states popped and expanded.
	Expanded int
	// Exhausted reports that MaxExpansions stopped the search.
	Exhausted bool
}

// Length returns the path length in steps (cells - 1), or 0 when not found.
func (r *Result) Length() int {
	if len(r.Path) == 0 {
		return 0
	}
	return len(r.Path) - 1
}
