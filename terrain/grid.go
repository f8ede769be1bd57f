package terrain

import (
	"fmt"
	"strings"
)

// NewGrid returns an all-Empty grid of the given size.
// Returns ErrEmptyGrid if either dimension is not positive.
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("NewGrid(%d,%d): %w", width, height, ErrEmptyGrid)
	}
	return &Grid{Width: width, Height: height, tiles: make([]TileKind, width*height)}, nil
}

// Parse builds a grid from layout rows using the tile alphabet in the package doc.
// Complexity: O(W×H).
func Parse(rows []string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len([]rune(rows[0]))
	g, err := NewGrid(w, len(rows))
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != w {
			return nil, fmt.Errorf("Parse: row %d has %d cells, want %d: %w", y, len(runes), w, ErrNonRectangular)
		}
		for x, r := range runes {
			k, ok := kindOf(r)
			if !ok {
				return nil, fmt.Errorf("Parse: %q at (%d,%d): %w", r, x, y, ErrUnknownTile)
			}
			g.tiles[g.Index(x, y)] = k
		}
	}
	return g, nil
}

func kindOf(r rune) (TileKind, bool) {
	for k, tr := range tileRunes {
		if tr == r {
			return TileKind(k), true
		}
	}
	return Empty, false
}

// InBounds reports whether (x,y) lies within the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Index maps (x,y) to its row-major index y*Width + x.
func (g *Grid) Index(x, y int) int {
	return y*g.Width + x
}

// Coordinate converts a row-major index back to a Point.
func (g *Grid) Coordinate(idx int) Point {
	return Point{X: idx % g.Width, Y: idx / g.Width}
}

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.tiles) }

// At returns the tile at p. Out-of-bounds points read as Obstacle.
func (g *Grid) At(p Point) TileKind {
	if !g.InBounds(p.X, p.Y) {
		return Obstacle
	}
	return g.tiles[g.Index(p.X, p.Y)]
}

// AtIndex returns the tile at a row-major index.
func (g *Grid) AtIndex(idx int) TileKind { return g.tiles[idx] }

// Set writes k at p.
func (g *Grid) Set(p Point, k TileKind) error {
	if !g.InBounds(p.X, p.Y) {
		return fmt.Errorf("Set%v: %w", p, ErrOutOfBounds)
	}
	g.tiles[g.Index(p.X, p.Y)] = k
	return nil
}

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	tiles := make([]TileKind, len(g.tiles))
	copy(tiles, g.tiles)
	return &Grid{Width: g.Width, Height: g.Height, tiles: tiles}
}

// Start is the fixed entry cell (0, Height/2).
func (g *Grid) Start() Point { return Point{X: 0, Y: g.Height / 2} }

// End is the fixed exit cell (Width-1, Height/2).
func (g *Grid) End() Point { return Point{X: g.Width - 1, Y: g.Height / 2} }

// Mines scans the grid in row-major order and returns the visible and
// hidden mines it finds. Used when a grid comes from a layout rather than
// from the generator, which records discovery order itself.
func (g *Grid) Mines() (visible, hidden []Mine) {
	for i, k := range g.tiles {
		switch k {
		case MineVisible:
			visible = append(visible, Mine{Point: g.Coordinate(i)})
		case MineHidden:
			hidden = append(hidden, Mine{Point: g.Coordinate(i), Hidden: true})
		}
	}
	return visible, hidden
}

// Count returns how many cells hold k.
func (g *Grid) Count(k TileKind) int {
	n := 0
	for _, t := range g.tiles {
		if t == k {
			n++
		}
	}
	return n
}

// String renders the grid as layout rows joined by newlines.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.Width + 1) * g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			sb.WriteRune(g.tiles[g.Index(x, y)].Rune())
		}
		if y < g.Height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Points extracts the positions of a mine roster, preserving order.
func Points(mines []Mine) []Point {
	pts := make([]Point, len(mines))
	for i, m := range mines {
		pts[i] = m.Point
	}
	return pts
}
