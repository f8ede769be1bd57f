// Package mapgen stochastically seeds a terrain.Grid with circular obstacles,
// visible mines and hidden mines.
//
// What:
//
//   - Obstacles: each tree picks a centre away from the edges, marks the disk
//     of radius 3 (dx²+dy² ≤ 9) as Unsure halo and the centre as Obstacle.
//     The centre is written last so halo marking never overwrites a trunk.
//   - Mines: random cells are sampled until the target count is reached or
//     the attempt budget (10× target) runs out. Cells inside the safe buffer
//     next to the start/end columns, obstacles and existing mines are rejected.
//     Each accepted mine is hidden with probability HiddenRate.
//   - Rosters keep discovery order; that order assigns mine ids downstream.
//
// Degradation:
//
//	Running out of attempts is not an error. Result.Stats reports how many
//	mines were requested, targeted and placed so callers can log the shortfall.
//
// Determinism:
//
//	All randomness comes from the injected *rand.Rand (WithSeed / WithRand).
//	A fixed seed and Config always produce the same grid and rosters.
//
// Complexity:
//
//   - Time:   O(W×H + trees×49 + 10×mines).
//   - Memory: O(W×H + mines).
//
// Errors:
//
//   - ErrNeedRandSource:     no RNG supplied.
//   - ErrNegativeCount:      Trees or Mines < 0.
//   - ErrInvalidProbability: HiddenRate outside [0,1].
//   - ErrInvalidBuffer:      SafeBuffer < 0.
//   - ErrTooSmall:           the grid cannot host obstacles or a mine column.
package mapgen
