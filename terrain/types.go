package terrain

import (
	"errors"
	"fmt"
)

// Sentinel errors for terrain operations.
var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("terrain: grid must have at least one row and one column")
	// ErrNonRectangular indicates layout rows of differing lengths.
	ErrNonRectangular = errors.New("terrain: all rows must have the same length")
	// ErrUnknownTile indicates a layout rune outside the tile alphabet.
	ErrUnknownTile = errors.New("terrain: unknown tile rune")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("terrain: coordinate out of bounds")
)

// Field dimensions used by the generator when no override is given.
const (
	DefaultWidth  = 150
	DefaultHeight = 40
)

// TileKind classifies a single cell of the base map.
type TileKind uint8

const (
	// Empty is open ground.
	Empty TileKind = iota
	// MineVisible is a detected mine; impassable for the search.
	MineVisible
	// MineHidden is an undetected mine; the search cannot see it.
	MineHidden
	// Obstacle is a hard obstacle (tree trunk); impassable.
	Obstacle
	// Unsure is the soft halo around an obstacle.
	Unsure
)

var tileNames = [...]string{"Empty", "MineVisible", "MineHidden", "Obstacle", "Unsure"}

var tileRunes = [...]rune{'.', 'M', 'H', 'T', '?'}

// String returns the tile name.
func (k TileKind) String() string {
	if int(k) < len(tileNames) {
		return tileNames[k]
	}
	return fmt.Sprintf("TileKind(%d)", uint8(k))
}

// Rune returns the layout rune used by Parse and Grid.String.
func (k TileKind) Rune() rune {
	if int(k) < len(tileRunes) {
		return tileRunes[k]
	}
	return '!'
}

// IsMine reports whether k is a visible or hidden mine.
func (k TileKind) IsMine() bool { return k == MineVisible || k == MineHidden }

// Point is a cell coordinate.
type Point struct {
	X, Y int
}

// String formats p as "(x,y)".
func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Mine is a placed mine. Its id is its index in whichever roster it is part of.
type Mine struct {
	Point
	Hidden bool
}

// Offsets4 lists orthogonal neighbour offsets in expansion order: E, W, S, N.
var Offsets4 = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// Grid is a Width×Height matrix of tiles. Consumers treat it as immutable;
// Set exists for the generator and for fixtures.
type Grid struct {
	Width, Height int
	tiles         []TileKind
}
