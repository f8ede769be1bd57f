// Package render turns an optimizer.Result into the data a display layer
// draws: a grid of display codes plus summary statistics.
//
// The DisplayCode enumeration is the only contract with the display layer,
// which maps each code to a colour. Numeric values are stable.
package render

import "fmt"

// DisplayCode classifies one cell for presentation.
type DisplayCode uint8

const (
	Empty         DisplayCode = 0
	SafePath      DisplayCode = 1
	MineVisible   DisplayCode = 2
	MineHidden    DisplayCode = 3
	Obstacle      DisplayCode = 4
	Unsure        DisplayCode = 5
	DangerVisible DisplayCode = 6 // within W of a visible mine not crossed by the path
	DangerHidden  DisplayCode = 7 // outside visible danger but within W of some mine
	MissedZone    DisplayCode = 8 // within W of a visible mine the path crossed
)

var codeNames = [...]string{
	"Empty", "SafePath", "MineVisible", "MineHidden", "Obstacle",
	"Unsure", "DangerVisible", "DangerHidden", "MissedZone",
}

func (c DisplayCode) String() string {
	if int(c) < len(codeNames) {
		return codeNames[c]
	}
	return fmt.Sprintf("DisplayCode(%d)", uint8(c))
}

// Data is the presentation view of one tolerance level.
type Data struct {
	Tolerance int
	// Cols×Rows codes, row-major.
	Cols, Rows int
	Codes      []DisplayCode
	// ViolationCount is the number of path cells within Width of any mine,
	// hidden ones included.
	ViolationCount int
	Score          float64
	Width          int
	Feasible       bool
}

// At returns the code at (x,y).
func (d Data) At(x, y int) DisplayCode { return d.Codes[y*d.Cols+x] }

// Grid returns the codes as rows.
func (d Data) Grid() [][]DisplayCode {
	rows := make([][]DisplayCode, d.Rows)
	for y := range rows {
		rows[y] = d.Codes[y*d.Cols : (y+1)*d.Cols : (y+1)*d.Cols]
	}
	return rows
}

// Count returns how many cells carry c.
func (d Data) Count(c DisplayCode) int {
	n := 0
	for _, v := range d.Codes {
		if v == c {
			n++
		}
	}
	return n
}

// OverBudget reports whether the realized violations exceed the tolerance.
func (d Data) OverBudget() bool { return d.ViolationCount > d.Tolerance }

// Summary formats the one-line header shown above each map.
func (d Data) Summary() string {
	s := fmt.Sprintf("TOLERANCE: %d  |  PATH WIDTH: %d  |  SCORE: %d  |  VIOLATIONS: %d",
		d.Tolerance, d.Width, int(d.Score), d.ViolationCount)
	if !d.Feasible {
		s += " [NO PATH]"
	}
	return s
}
