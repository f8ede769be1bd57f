// Package scenario bundles one generated map with the two distance fields the
// planner reads: one over the visible-mine roster and one over all mines.
//
// A Bundle is immutable after New returns. Solving never mutates it, so one
// bundle can be shared by concurrent searches.
package scenario

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/PennIARC/GridTesting/distfield"
	"github.com/PennIARC/GridTesting/mapgen"
	"github.com/PennIARC/GridTesting/terrain"
)

// ErrNilGrid indicates New was called without a grid.
var ErrNilGrid = errors.New("scenario: grid is nil")

// Bundle is the immutable Generate-stage output.
type Bundle struct {
	// ID identifies this map in logs and traces.
	ID   uuid.UUID
	Grid *terrain.Grid
	// Visible and Hidden are the rosters by visibility; All is the combined
	// roster in discovery order. Field ids index Visible and All respectively.
	Visible []terrain.Mine
	Hidden  []terrain.Mine
	All     []terrain.Mine
	// VisibleField is built from Visible and drives the search.
	VisibleField *distfield.Field
	// AllField is built from All and exposes undetected risk.
	AllField *distfield.Field
}

// New builds both distance fields for grid. all must list every mine in
// discovery order; the visible and hidden rosters are derived from it.
func New(grid *terrain.Grid, all []terrain.Mine) (*Bundle, error) {
	if grid == nil {
		return nil, ErrNilGrid
	}
	b := &Bundle{
		ID:   uuid.New(),
		Grid: grid,
		All:  all,
	}
	for _, m := range all {
		if m.Hidden {
			b.Hidden = append(b.Hidden, m)
		} else {
			b.Visible = append(b.Visible, m)
		}
	}

	var err error
	if b.VisibleField, err = distfield.Build(grid.Width, grid.Height, terrain.Points(b.Visible)); err != nil {
		return nil, fmt.Errorf("scenario: visible field: %w", err)
	}
	if b.AllField, err = distfield.Build(grid.Width, grid.Height, terrain.Points(b.All)); err != nil {
		return nil, fmt.Errorf("scenario: all-mines field: %w", err)
	}
	return b, nil
}

// FromGenerated wraps a mapgen result.
func FromGenerated(res *mapgen.Result) (*Bundle, error) {
	if res == nil {
		return nil, ErrNilGrid
	}
	return New(res.Grid, res.All)
}

// FromLayout parses an ASCII layout and uses row-major order as discovery
// order. Intended for fixtures and examples.
func FromLayout(rows []string) (*Bundle, error) {
	g, err := terrain.Parse(rows)
	if err != nil {
		return nil, err
	}
	var all []terrain.Mine
	for i := 0; i < g.Len(); i++ {
		if k := g.AtIndex(i); k.IsMine() {
			all = append(all, terrain.Mine{Point: g.Coordinate(i), Hidden: k == terrain.MineHidden})
		}
	}
	return New(g, all)
}

// Open returns an empty bundle of the given size: no mines, no obstacles.
func Open(width, height int) (*Bundle, error) {
	g, err := terrain.NewGrid(width, height)
	if err != nil {
		return nil, err
	}
	return New(g, nil)
}
