package mapgen

import (
	"fmt"

	"github.com/PennIARC/GridTesting/terrain"
)

const methodGenerate = "Generate"

// Generate builds a new map from cfg. Every call starts from an empty grid.
func Generate(cfg Config, opts ...Option) (*Result, error) {
	o := newOptions(opts...)
	if err := validate(cfg, o); err != nil {
		return nil, err
	}

	g, err := terrain.NewGrid(o.width, o.height)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodGenerate, err)
	}
	gen := &generator{cfg: cfg, opts: o, grid: g}
	gen.placeTrees()
	gen.placeMines()

	return &Result{
		Grid:    g,
		Visible: gen.visible,
		Hidden:  gen.hidden,
		All:     gen.all,
		Stats:   gen.stats,
	}, nil
}

func validate(cfg Config, o options) error {
	if o.rng == nil {
		return fmt.Errorf("%s: %w", methodGenerate, ErrNeedRandSource)
	}
	if cfg.Trees < 0 || cfg.Mines < 0 {
		return fmt.Errorf("%s: trees=%d mines=%d: %w", methodGenerate, cfg.Trees, cfg.Mines, ErrNegativeCount)
	}
	if cfg.HiddenRate < 0 || cfg.HiddenRate > 1 {
		return fmt.Errorf("%s: hidden rate %.4f not in [0,1]: %w", methodGenerate, cfg.HiddenRate, ErrInvalidProbability)
	}
	if cfg.SafeBuffer < 0 {
		return fmt.Errorf("%s: buffer=%d: %w", methodGenerate, cfg.SafeBuffer, ErrInvalidBuffer)
	}
	if o.width <= 0 || o.height <= 0 {
		return fmt.Errorf("%s: %dx%d: %w", methodGenerate, o.width, o.height, ErrTooSmall)
	}
	if cfg.Trees > 0 {
		lo, hi := treeColumns(cfg.SafeBuffer, o.width)
		if hi < lo || o.height-1-treeRowMargin < treeRowMargin {
			return fmt.Errorf("%s: no room for trees on %dx%d with buffer %d: %w",
				methodGenerate, o.width, o.height, cfg.SafeBuffer, ErrTooSmall)
		}
	}
	if cfg.Mines > 0 && o.width-1-cfg.SafeBuffer <= cfg.SafeBuffer+1 {
		return fmt.Errorf("%s: no mine column outside buffer %d on width %d: %w",
			methodGenerate, cfg.SafeBuffer, o.width, ErrTooSmall)
	}
	return nil
}

// treeColumns returns the inclusive range of admissible tree-centre columns.
func treeColumns(buffer, width int) (lo, hi int) {
	return buffer + treeEdgeMargin, width - buffer - treeEdgeMargin
}

// generator holds mutable state for one Generate call.
type generator struct {
	cfg     Config
	opts    options
	grid    *terrain.Grid
	visible []terrain.Mine
	hidden  []terrain.Mine
	all     []terrain.Mine
	stats   Stats
}

// intIn draws uniformly from the inclusive range [lo, hi].
func (gen *generator) intIn(lo, hi int) int {
	return lo + gen.opts.rng.Intn(hi-lo+1)
}

func (gen *generator) placeTrees() {
	g := gen.grid
	lo, hi := treeColumns(gen.cfg.SafeBuffer, g.Width)
	r2 := TreeRadius * TreeRadius
	for i := 0; i < gen.cfg.Trees; i++ {
		tx := gen.intIn(lo, hi)
		ty := gen.intIn(treeRowMargin, g.Height-1-treeRowMargin)
		for dy := -TreeRadius; dy <= TreeRadius; dy++ {
			for dx := -TreeRadius; dx <= TreeRadius; dx++ {
				p := terrain.Point{X: tx + dx, Y: ty + dy}
				if !g.InBounds(p.X, p.Y) || dx*dx+dy*dy > r2 {
					continue
				}
				if g.At(p) != terrain.Obstacle {
					_ = g.Set(p, terrain.Unsure)
				}
			}
		}
		_ = g.Set(terrain.Point{X: tx, Y: ty}, terrain.Obstacle)
		gen.stats.TreesPlaced++
	}
}

func (gen *generator) placeMines() {
	g := gen.grid
	buf := gen.cfg.SafeBuffer
	target := gen.cfg.Mines
	if half := g.Len() / 2; target > half {
		target = half
	}
	gen.stats.MinesRequested = gen.cfg.Mines
	gen.stats.MinesTarget = target

	for len(gen.all) < target && gen.stats.Attempts < target*attemptFactor {
		gen.stats.Attempts++
		p := terrain.Point{X: gen.opts.rng.Intn(g.Width), Y: gen.opts.rng.Intn(g.Height)}
		if p.X <= buf || p.X >= g.Width-1-buf {
			continue
		}
		if k := g.At(p); k == terrain.Obstacle || k.IsMine() {
			continue
		}
		m := terrain.Mine{Point: p, Hidden: gen.opts.rng.Float64() < gen.cfg.HiddenRate}
		if m.Hidden {
			_ = g.Set(p, terrain.MineHidden)
			gen.hidden = append(gen.hidden, m)
		} else {
			_ = g.Set(p, terrain.MineVisible)
			gen.visible = append(gen.visible, m)
		}
		gen.all = append(gen.all, m)
	}
	gen.stats.MinesPlaced = len(gen.all)
}
