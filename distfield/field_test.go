package distfield_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/PennIARC/GridTesting/distfield"
	"github.com/PennIARC/GridTesting/mapgen"
	"github.com/PennIARC/GridTesting/terrain"
)

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// randomRoster draws a roster from the generator so tests cover realistic layouts.
func randomRoster(t *testing.T, seed int64) (*mapgen.Result, []terrain.Point) {
	t.Helper()
	res, err := mapgen.Generate(mapgen.DefaultConfig(), mapgen.WithSeed(seed))
	require.NoError(t, err)
	return res, terrain.Points(res.All)
}

func TestBuild_Errors(t *testing.T) {
	_, err := distfield.Build(0, 5, nil)
	require.ErrorIs(t, err, distfield.ErrEmptyGrid)

	_, err = distfield.Build(3, 3, []terrain.Point{{X: 3, Y: 0}})
	require.ErrorIs(t, err, distfield.ErrSourceOutOfBounds)
}

// TestBuild_EmptyRoster: no sources, no entries.
func TestBuild_EmptyRoster(t *testing.T) {
	f, err := distfield.Build(10, 4, nil)
	require.NoError(t, err)
	require.Equal(t, 0, f.Len())
	d, ok := f.Distance(terrain.Point{X: 2, Y: 2})
	require.False(t, ok)
	require.Equal(t, distfield.Unreached, d)
	_, ok = f.Within(terrain.Point{X: 2, Y: 2}, 1000)
	require.False(t, ok)
}

// TestBuild_SingleSource checks exact Manhattan distances on an open grid.
func TestBuild_SingleSource(t *testing.T) {
	src := terrain.Point{X: 2, Y: 1}
	f, err := distfield.Build(6, 4, []terrain.Point{src})
	require.NoError(t, err)
	require.Equal(t, 24, f.Len())
	for y := 0; y < 4; y++ {
		for x := 0; x < 6; x++ {
			d, ok := f.Distance(terrain.Point{X: x, Y: y})
			require.True(t, ok)
			require.Equal(t, abs(x-src.X)+abs(y-src.Y), d)
			id, ok := f.Owner(terrain.Point{X: x, Y: y})
			require.True(t, ok)
			require.Equal(t, 0, id)
		}
	}
}

// TestBuild_TieBreak: equidistant cells go to the earlier roster entry.
func TestBuild_TieBreak(t *testing.T) {
	// Sources at x=0 and x=4 on a 5×1 strip; x=2 is equidistant.
	f, err := distfield.Build(5, 1, []terrain.Point{{X: 0}, {X: 4}})
	require.NoError(t, err)
	id, ok := f.Owner(terrain.Point{X: 2})
	require.True(t, ok)
	require.Equal(t, 0, id)

	// Reversing the roster flips the winner.
	f, err = distfield.Build(5, 1, []terrain.Point{{X: 4}, {X: 0}})
	require.NoError(t, err)
	id, _ = f.Owner(terrain.Point{X: 2})
	require.Equal(t, 0, id)
	id, _ = f.Owner(terrain.Point{X: 0})
	require.Equal(t, 1, id)
}

// TestBuild_DuplicateSource keeps the first id.
func TestBuild_DuplicateSource(t *testing.T) {
	f, err := distfield.Build(3, 1, []terrain.Point{{X: 1}, {X: 1}})
	require.NoError(t, err)
	id, _ := f.Owner(terrain.Point{X: 1})
	require.Equal(t, 0, id)
	require.Equal(t, 2, f.Sources())
}

// TestBuild_Lipschitz: 4-adjacent cells differ by at most one step.
func TestBuild_Lipschitz(t *testing.T) {
	for seed := int64(1); seed <= 3; seed++ {
		res, roster := randomRoster(t, seed)
		g := res.Grid
		f, err := distfield.Build(g.Width, g.Height, roster)
		require.NoError(t, err)
		require.Equal(t, g.Len(), f.Len())
		for y := 0; y < g.Height; y++ {
			for x := 0; x < g.Width; x++ {
				a, _ := f.Distance(terrain.Point{X: x, Y: y})
				if x+1 < g.Width {
					b, _ := f.Distance(terrain.Point{X: x + 1, Y: y})
					require.LessOrEqual(t, abs(a-b), 1)
				}
				if y+1 < g.Height {
					b, _ := f.Distance(terrain.Point{X: x, Y: y + 1})
					require.LessOrEqual(t, abs(a-b), 1)
				}
			}
		}
	}
}

// TestBuild_Territories: every owner is a roster id, every source owns itself
// at distance 0, and every other cell has a same-owner neighbour one step
// closer, so territories are connected to their source.
func TestBuild_Territories(t *testing.T) {
	res, roster := randomRoster(t, 9)
	g := res.Grid
	f, err := distfield.Build(g.Width, g.Height, roster)
	require.NoError(t, err)

	for id, s := range roster {
		d, _ := f.Distance(s)
		require.Equal(t, 0, d)
		owner, _ := f.Owner(s)
		require.Equal(t, id, owner)
	}

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			p := terrain.Point{X: x, Y: y}
			d, _ := f.Distance(p)
			owner, ok := f.Owner(p)
			require.True(t, ok)
			require.GreaterOrEqual(t, owner, 0)
			require.Less(t, owner, len(roster))
			if d == 0 {
				continue
			}
			found := false
			for _, off := range terrain.Offsets4 {
				q := terrain.Point{X: x + off[0], Y: y + off[1]}
				qd, qok := f.Distance(q)
				qo, _ := f.Owner(q)
				if qok && qd == d-1 && qo == owner {
					found = true
					break
				}
			}
			require.True(t, found, "cell %v (owner %d, dist %d) has no parent", p, owner, d)
		}
	}
}

// TestWithin compares the radius test against Distance.
func TestWithin(t *testing.T) {
	f, err := distfield.Build(7, 1, []terrain.Point{{X: 3}})
	require.NoError(t, err)
	for x := 0; x < 7; x++ {
		_, ok := f.Within(terrain.Point{X: x}, 2)
		require.Equal(t, abs(x-3) <= 2, ok, "x=%d", x)
	}
	_, ok := f.Within(terrain.Point{X: 9}, 100)
	require.False(t, ok)
}
