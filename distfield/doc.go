// Package distfield builds discrete Voronoi distance fields over a grid.
//
// What:
//
//	A multi-source breadth-first search seeded with every source at distance 0.
//	Each source carries its id (its index in the roster). The first BFS layer
//	to reach a cell assigns both its step distance and its owner id.
//
// Tie-breaking:
//
//	First discoverer wins. Sources are enqueued in roster order and expanded
//	FIFO with neighbour order E, W, S, N, so equidistant ties go to the source
//	that was processed first. This is a graph-distance Voronoi over 4-connected
//	steps, not a Euclidean one.
//
// Ids are roster-scoped: a field built from the visible-mine roster and one
// built from the all-mines roster assign unrelated ids to the same mine.
//
// Complexity:
//
//   - Time:   O(W×H) (each cell is enqueued at most once).
//   - Memory: O(W×H) for the flat distance and owner slices.
//
// Errors:
//
//   - ErrEmptyGrid:          width or height is not positive.
//   - ErrSourceOutOfBounds:  a source lies outside the grid.
package distfield
