// Package terrain models the fixed-size field a corridor is planned across.
//
// What:
//
//   - Grid is a rectangular matrix of TileKind values stored row-major
//     (index = y*Width + x), so every per-cell lookup is a slice access.
//   - Point addresses a cell; Mine is a Point plus a visibility flag.
//   - Start and End are fixed: (0, Height/2) and (Width-1, Height/2).
//   - Parse builds a Grid from an ASCII layout for fixtures and examples.
//
// Why:
//
//   - Map generation, distance fields, search and render-data building all
//     share the same cell addressing; keeping it here avoids per-cell maps.
//
// Tiles:
//
//	'.' Empty   'M' MineVisible   'H' MineHidden   'T' Obstacle   '?' Unsure
//
// Complexity:
//
//   - NewGrid, Clone, Parse: O(W×H) time and memory.
//   - At, Set, Index, Coordinate, InBounds: O(1).
//
// Errors:
//
//   - ErrEmptyGrid: layout or dimensions have no rows or no columns.
//   - ErrNonRectangular: layout rows have differing lengths.
//   - ErrUnknownTile: layout contains a rune outside the tile alphabet.
//   - ErrOutOfBounds: a coordinate lies outside the grid.
package terrain
