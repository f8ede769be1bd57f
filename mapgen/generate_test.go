package mapgen_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/PennIARC/GridTesting/mapgen"
	"github.com/PennIARC/GridTesting/terrain"
)

// GenerateSuite exercises Generate on the default field size.
type GenerateSuite struct {
	suite.Suite
}

// TestValidation checks every sentinel error class.
func (s *GenerateSuite) TestValidation() {
	cases := []struct {
		name string
		cfg  mapgen.Config
		opts []mapgen.Option
		err  error
	}{
		{"NoRNG", mapgen.DefaultConfig(), nil, mapgen.ErrNeedRandSource},
		{"NegativeTrees", mapgen.Config{Trees: -1}, []mapgen.Option{mapgen.WithSeed(1)}, mapgen.ErrNegativeCount},
		{"NegativeMines", mapgen.Config{Mines: -5}, []mapgen.Option{mapgen.WithSeed(1)}, mapgen.ErrNegativeCount},
		{"RateHigh", mapgen.Config{HiddenRate: 1.5}, []mapgen.Option{mapgen.WithSeed(1)}, mapgen.ErrInvalidProbability},
		{"RateLow", mapgen.Config{HiddenRate: -0.1}, []mapgen.Option{mapgen.WithSeed(1)}, mapgen.ErrInvalidProbability},
		{"Buffer", mapgen.Config{SafeBuffer: -1}, []mapgen.Option{mapgen.WithSeed(1)}, mapgen.ErrInvalidBuffer},
		{"NoTreeRoom", mapgen.Config{Trees: 1, SafeBuffer: 2}, []mapgen.Option{mapgen.WithSeed(1), mapgen.WithDimensions(10, 10)}, mapgen.ErrTooSmall},
		{"NoMineColumn", mapgen.Config{Mines: 1, SafeBuffer: 2}, []mapgen.Option{mapgen.WithSeed(1), mapgen.WithDimensions(6, 3)}, mapgen.ErrTooSmall},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			_, err := mapgen.Generate(tc.cfg, tc.opts...)
			require.ErrorIs(s.T(), err, tc.err)
		})
	}
}

// TestInvariants checks placement rules on several seeds.
func (s *GenerateSuite) TestInvariants() {
	cfg := mapgen.DefaultConfig()
	cfg.HiddenRate = 0.3
	for seed := int64(1); seed <= 5; seed++ {
		res, err := mapgen.Generate(cfg, mapgen.WithSeed(seed))
		require.NoError(s.T(), err)
		g := res.Grid

		require.Equal(s.T(), terrain.DefaultWidth, g.Width)
		require.Equal(s.T(), terrain.DefaultHeight, g.Height)
		require.Equal(s.T(), terrain.Empty, g.At(g.Start()))
		require.Equal(s.T(), terrain.Empty, g.At(g.End()))

		require.Len(s.T(), res.All, len(res.Visible)+len(res.Hidden))
		require.Equal(s.T(), res.Stats.MinesPlaced, len(res.All))
		require.Equal(s.T(), cfg.Trees, res.Stats.TreesPlaced)

		seen := make(map[terrain.Point]bool, len(res.All))
		for _, m := range res.All {
			require.False(s.T(), seen[m.Point], "duplicate mine at %v", m.Point)
			seen[m.Point] = true
			require.Greater(s.T(), m.X, cfg.SafeBuffer)
			require.Less(s.T(), m.X, g.Width-1-cfg.SafeBuffer)
			want := terrain.MineVisible
			if m.Hidden {
				want = terrain.MineHidden
			}
			require.Equal(s.T(), want, g.At(m.Point))
		}
		require.Equal(s.T(), len(res.Visible), g.Count(terrain.MineVisible))
		require.Equal(s.T(), len(res.Hidden), g.Count(terrain.MineHidden))
		require.GreaterOrEqual(s.T(), g.Count(terrain.Obstacle), 1)
	}
}

// TestRosterOrder verifies that All interleaves Visible and Hidden in acceptance order.
func (s *GenerateSuite) TestRosterOrder() {
	cfg := mapgen.Config{Mines: 60, HiddenRate: 0.5, SafeBuffer: 2}
	res, err := mapgen.Generate(cfg, mapgen.WithSeed(7))
	require.NoError(s.T(), err)

	var vis, hid []terrain.Mine
	for _, m := range res.All {
		if m.Hidden {
			hid = append(hid, m)
		} else {
			vis = append(vis, m)
		}
	}
	require.Equal(s.T(), res.Visible, vis)
	require.Equal(s.T(), res.Hidden, hid)
}

// TestDeterministic checks that the same seed yields the same map.
func (s *GenerateSuite) TestDeterministic() {
	a, err := mapgen.Generate(mapgen.DefaultConfig(), mapgen.WithSeed(42))
	require.NoError(s.T(), err)
	b, err := mapgen.Generate(mapgen.DefaultConfig(), mapgen.WithRand(rand.New(rand.NewSource(42))))
	require.NoError(s.T(), err)
	require.Equal(s.T(), a.Grid.String(), b.Grid.String())
	require.Equal(s.T(), a.All, b.All)
}

// TestDegradesWhenCrowded shows that running out of attempts is not an error.
func (s *GenerateSuite) TestDegradesWhenCrowded() {
	// Only column 3 of a 7×2 grid admits mines: 2 cells for a target of 7.
	cfg := mapgen.Config{Mines: 100, SafeBuffer: 2}
	res, err := mapgen.Generate(cfg, mapgen.WithSeed(3), mapgen.WithDimensions(7, 2))
	require.NoError(s.T(), err)
	require.Equal(s.T(), 7, res.Stats.MinesTarget)
	require.Equal(s.T(), 70, res.Stats.Attempts)
	require.LessOrEqual(s.T(), res.Stats.MinesPlaced, 2)
	require.True(s.T(), res.Stats.Degraded())
}

// TestNoMinesNoTrees produces an all-Empty grid.
func (s *GenerateSuite) TestNoMinesNoTrees() {
	res, err := mapgen.Generate(mapgen.Config{SafeBuffer: 2}, mapgen.WithSeed(1))
	require.NoError(s.T(), err)
	require.Equal(s.T(), res.Grid.Len(), res.Grid.Count(terrain.Empty))
	require.Empty(s.T(), res.All)
	require.False(s.T(), res.Stats.Degraded())
}

// TestTreeShape places a single tree and checks the halo disk.
func (s *GenerateSuite) TestTreeShape() {
	res, err := mapgen.Generate(mapgen.Config{Trees: 1, SafeBuffer: 2}, mapgen.WithSeed(11))
	require.NoError(s.T(), err)
	g := res.Grid
	require.Equal(s.T(), 1, g.Count(terrain.Obstacle))
	// Disk of radius 3 has 29 lattice points; one is the trunk.
	require.Equal(s.T(), 28, g.Count(terrain.Unsure))
}

func TestGenerateSuite(t *testing.T) {
	suite.Run(t, new(GenerateSuite))
}
