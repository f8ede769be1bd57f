package corridor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMineSet(t *testing.T) {
	s := NewMineSet(130)
	require.Equal(t, 0, s.Len())
	require.False(t, s.Has(3))
	require.False(t, s.Has(500))

	a := s.With(3).With(129).With(64)
	require.Equal(t, 0, s.Len(), "With must not mutate the receiver")
	require.Equal(t, 3, a.Len())
	require.True(t, a.Has(64))
	require.Equal(t, []int{3, 64, 129}, a.IDs())
}

func TestSetTable_Interning(t *testing.T) {
	tbl := newSetTable(10)
	empty := int32(0)
	a := tbl.add(empty, 4)
	b := tbl.add(empty, 4)
	require.Equal(t, a, b)

	ab := tbl.add(a, 7)
	ba := tbl.add(tbl.add(empty, 7), 4)
	require.Equal(t, ab, ba, "order of insertion must not matter")
	require.Equal(t, 2, tbl.sizes[ab])
	require.Len(t, tbl.sets, 4) // {}, {4}, {4,7}, {7}
}
