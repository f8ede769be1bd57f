package scenario_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/PennIARC/GridTesting/mapgen"
	"github.com/PennIARC/GridTesting/scenario"
	"github.com/PennIARC/GridTesting/terrain"
)

func TestNew_NilGrid(t *testing.T) {
	_, err := scenario.New(nil, nil)
	require.ErrorIs(t, err, scenario.ErrNilGrid)
	_, err = scenario.FromGenerated(nil)
	require.ErrorIs(t, err, scenario.ErrNilGrid)
}

// TestFromGenerated checks that rosters and fields line up with the generator output.
func TestFromGenerated(t *testing.T) {
	cfg := mapgen.DefaultConfig()
	cfg.HiddenRate = 0.25
	res, err := mapgen.Generate(cfg, mapgen.WithSeed(5))
	require.NoError(t, err)

	b, err := scenario.FromGenerated(res)
	require.NoError(t, err)
	require.Equal(t, res.Visible, b.Visible)
	require.Equal(t, res.Hidden, b.Hidden)
	require.Equal(t, len(res.Visible), b.VisibleField.Sources())
	require.Equal(t, len(res.All), b.AllField.Sources())

	// Ids are roster-scoped: each visible mine owns itself in the visible
	// field under its visible index, and in the all field under its all index.
	for i, m := range b.Visible {
		id, ok := b.VisibleField.Owner(m.Point)
		require.True(t, ok)
		require.Equal(t, i, id)
	}
	for i, m := range b.All {
		id, ok := b.AllField.Owner(m.Point)
		require.True(t, ok)
		require.Equal(t, i, id)
	}
}

// TestFromLayout derives rosters in row-major order.
func TestFromLayout(t *testing.T) {
	b, err := scenario.FromLayout([]string{
		"..H..",
		".M..M",
	})
	require.NoError(t, err)
	require.Len(t, b.All, 3)
	require.Equal(t, []terrain.Point{{X: 1, Y: 1}, {X: 4, Y: 1}}, terrain.Points(b.Visible))
	require.Equal(t, []terrain.Point{{X: 2, Y: 0}}, terrain.Points(b.Hidden))

	d, ok := b.VisibleField.Distance(terrain.Point{X: 2, Y: 0})
	require.True(t, ok)
	require.Equal(t, 2, d)
	d, _ = b.AllField.Distance(terrain.Point{X: 2, Y: 0})
	require.Equal(t, 0, d)
}

// TestOpen returns a bundle with empty fields.
func TestOpen(t *testing.T) {
	b, err := scenario.Open(terrain.DefaultWidth, terrain.DefaultHeight)
	require.NoError(t, err)
	require.Equal(t, 0, b.VisibleField.Len())
	require.Equal(t, 0, b.AllField.Len())
	require.NotEqual(t, b.ID.String(), "")
}
