package geom_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vorocel/geom"
)

func TestDiangle_MonotoneOverQuadrants(t *testing.T) {
	east := geom.Diangle(1, 0)
	northeast := geom.Diangle(1, 1)
	north := geom.Diangle(0, 1)
	west := geom.Diangle(-1, 0)
	south := geom.Diangle(0, -1)

	require.Less(t, east, northeast)
	require.Less(t, northeast, north)
	require.Less(t, north, west)
	require.Less(t, west, south)
	require.InDelta(t, 0, east, geom.Epsilon)
}

func TestDiangleBracket_PlainAndWrapping(t *testing.T) {
	require.True(t, geom.DiangleBracket(0, 1, 2))
	require.False(t, geom.DiangleBracket(0, 3, 2))

	// wraps through the 4/0 seam
	require.True(t, geom.DiangleBracket(3, 3.5, 1))
	require.True(t, geom.DiangleBracket(3, 0.5, 1))
	require.False(t, geom.DiangleBracket(3, 2, 1))
}

func TestDiangleMid_PlainAndWrapping(t *testing.T) {
	require.InDelta(t, 1, geom.DiangleMid(0, 2), geom.Epsilon)

	// wraps through the seam: mid of [3,1) (i.e. 3 -> 5 == 1) is 4 == 0.
	require.InDelta(t, 0, geom.DiangleMid(3, 1), geom.Epsilon)
}
