package distfield

import "errors"

// Sentinel errors for field construction.
var (
	// ErrEmptyGrid indicates non-positive dimensions.
	ErrEmptyGrid = errors.New("distfield: grid must have at least one row and one column")
	// ErrSourceOutOfBounds indicates a source cell outside the grid.
	ErrSourceOutOfBounds = errors.New("distfield: source out of bounds")
)

// Unreached is the distance reported for cells the BFS never reached.
// Callers treat it as infinitely far.
const Unreached = 999

// noOwner marks a cell without an owning source.
const noOwner = -1

// Field is an immutable distance/owner map over a Width×Height grid.
type Field struct {
	Width, Height int
	dist          []int32
	owner         []int32
	reached       int
	sources       int
}
