package mapgen

import (
	"errors"
	"math/rand"

	"github.com/PennIARC/GridTesting/terrain"
)

// Sentinel errors for map generation.
var (
	// ErrNeedRandSource indicates Generate was called without an RNG.
	ErrNeedRandSource = errors.New("mapgen: rng is required")
	// ErrNegativeCount indicates a negative tree or mine count.
	ErrNegativeCount = errors.New("mapgen: count must be non-negative")
	// ErrInvalidProbability indicates a hidden rate outside [0,1].
	ErrInvalidProbability = errors.New("mapgen: probability out of range")
	// ErrInvalidBuffer indicates a negative safe buffer.
	ErrInvalidBuffer = errors.New("mapgen: safe buffer must be non-negative")
	// ErrTooSmall indicates the grid is too small for the requested placement.
	ErrTooSmall = errors.New("mapgen: grid too small")
)

// Placement constants.
const (
	// TreeRadius is the halo radius around each obstacle centre.
	TreeRadius = 3
	// treeEdgeMargin keeps tree centres this far inside the safe buffer.
	treeEdgeMargin = 4
	// treeRowMargin keeps tree centres off the top and bottom rows.
	treeRowMargin = 3
	// attemptFactor bounds mine sampling at attemptFactor × target.
	attemptFactor = 10
)

// Config holds the generation parameters exposed to operators.
type Config struct {
	// Trees is the number of circular obstacles to place.
	Trees int
	// Mines is the requested number of mines (visible + hidden).
	Mines int
	// HiddenRate is the probability that an accepted mine is hidden.
	HiddenRate float64
	// SafeBuffer is the width of the mine-free band next to the start and end columns.
	SafeBuffer int
}

// DefaultConfig returns the field defaults: 12 trees, 135 mines,
// 5% hidden, safe buffer 2.
func DefaultConfig() Config {
	return Config{Trees: 12, Mines: 135, HiddenRate: 0.05, SafeBuffer: 2}
}

// Option configures Generate.
type Option func(*options)

type options struct {
	rng           *rand.Rand
	width, height int
}

// WithSeed uses a fresh deterministic RNG seeded with seed.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand uses r for every draw. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("mapgen: WithRand(nil)")
	}
	return func(o *options) {
		o.rng = r
	}
}

// WithDimensions overrides the default 150×40 field size.
func WithDimensions(width, height int) Option {
	return func(o *options) {
		o.width, o.height = width, height
	}
}

func newOptions(opts ...Option) options {
	o := options{width: terrain.DefaultWidth, height: terrain.DefaultHeight}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Stats summarises a generation run.
type Stats struct {
	TreesPlaced    int
	MinesRequested int
	MinesTarget    int // min(requested, cells/2)
	MinesPlaced    int
	Attempts       int
}

// Degraded reports whether fewer mines were placed than targeted.
func (s Stats) Degraded() bool { return s.MinesPlaced < s.MinesTarget }

// Result is the output of Generate.
type Result struct {
	Grid    *terrain.Grid
	Visible []terrain.Mine
	Hidden  []terrain.Mine
	// All lists every mine in acceptance order; it is the all-mines roster.
	All   []terrain.Mine
	Stats Stats
}
