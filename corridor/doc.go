// Package corridor finds the shortest entry-to-exit path across a terrain.Grid
// that keeps a corridor half-width W clear of visible mines, except for at
// most B mines whose danger zones the path is allowed to cross.
//
// What:
//
//   - Weighted A* over states (cell, violated-mine set). Two states on the
//     same cell with different violated sets are distinct nodes: the cheapest
//     way into a cell depends on which mines were already spent.
//   - Moves are 4-connected unit steps. Obstacle and MineVisible cells are
//     walls.
//   - Danger rule (visible-mine field only): a cell whose distance to its
//     nearest visible mine is ≤ W lies in that mine's danger zone. Entering it
//     adds the mine to the violated set, allowed only while the set size stays
//     ≤ B. Otherwise the cell is a wall for that state.
//   - The start cell is evaluated before the search; if it alone exceeds B the
//     search is infeasible without expanding anything.
//
// Priority:
//
//	f = g + h, h = |dx| + |dy| + 0.001·sqrt(dx² + dy²) towards the exit.
//	The Euclidean term only breaks ties towards straighter paths; since step
//	costs are integers it never reorders paths of different length on the
//	field sizes used here. Equal f values pop in insertion order.
//
// State representation:
//
//	The violated set is a fixed-size bitset over visible-mine ids (MineSet).
//	Sets are interned once, so a state key is a (cell, set id) pair of int32s
//	and transitions between sets are memoised.
//
// Complexity:
//
//   - Time:  O(S log S), S = W×H × number of distinct violated sets reached
//     (bounded by C(mines, ≤B); B is 0..2 in practice).
//   - Space: O(S).
//
// Options:
//
//   - WithContext(ctx):       abort with ctx.Err() on cancellation.
//   - WithMaxExpansions(n):   stop after n expansions and report infeasible.
//   - WithOnExpand(fn):       hook called for every expanded state.
//
// Errors:
//
//   - ErrNilGrid, ErrNilField: missing inputs.
//   - ErrDimension:            field and grid sizes differ.
//   - ErrInvalidWidth:         W < 0.
//   - ErrInvalidBudget:        B < 0.
//   - ErrOptionViolation:      invalid option (negative expansion cap).
//
// Infeasibility is a result (Found == false), never an error.
package corridor
