package render

import (
	"github.com/PennIARC/GridTesting/optimizer"
	"github.com/PennIARC/GridTesting/scenario"
	"github.com/PennIARC/GridTesting/terrain"
)

// Build classifies every cell of b for result r.
//
// Precedence per cell: mines and obstacles are copied from the base map;
// otherwise a cell within r.Width of a visible mine is MissedZone when that
// mine was crossed and DangerVisible when not; otherwise a cell within r.Width
// of any mine is DangerHidden; otherwise halo tiles stay Unsure. Path cells
// are then overwritten with SafePath.
//
// An infeasible result yields an all-Empty grid and zero statistics.
func Build(b *scenario.Bundle, r optimizer.Result) Data {
	g := b.Grid
	d := Data{
		Tolerance: r.Tolerance,
		Cols:      g.Width,
		Rows:      g.Height,
		Codes:     make([]DisplayCode, g.Len()),
	}
	if !r.Feasible {
		return d
	}
	d.Feasible = true
	d.Score = r.Score
	d.Width = r.Width

	crossed := make(map[int]bool, len(r.Violated))
	for _, id := range r.Violated {
		crossed[id] = true
	}

	for i := range d.Codes {
		switch k := g.AtIndex(i); k {
		case terrain.MineVisible:
			d.Codes[i] = MineVisible
		case terrain.MineHidden:
			d.Codes[i] = MineHidden
		case terrain.Obstacle:
			d.Codes[i] = Obstacle
		default:
			if id, ok := b.VisibleField.WithinAt(i, r.Width); ok {
				if crossed[id] {
					d.Codes[i] = MissedZone
				} else {
					d.Codes[i] = DangerVisible
				}
			} else if _, ok := b.AllField.WithinAt(i, r.Width); ok {
				d.Codes[i] = DangerHidden
			} else if k == terrain.Unsure {
				d.Codes[i] = Unsure
			}
		}
	}

	for _, p := range r.Path {
		i := g.Index(p.X, p.Y)
		d.Codes[i] = SafePath
		if _, ok := b.AllField.WithinAt(i, r.Width); ok {
			d.ViolationCount++
		}
	}
	return d
}

// BuildAll builds Data for every result, indexed by tolerance.
func BuildAll(b *scenario.Bundle, results []optimizer.Result) []Data {
	out := make([]Data, len(results))
	for i, r := range results {
		out[i] = Build(b, r)
	}
	return out
}
