package geom_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vorocel/geom"
)

func TestPoint_Arithmetic(t *testing.T) {
	p := geom.Pt(1, 2)
	q := geom.Pt(3, -1)

	require.Equal(t, geom.Pt(4, 1), p.Add(q))
	require.Equal(t, geom.Pt(-2, 3), p.Sub(q))
	require.Equal(t, geom.Pt(2, 4), p.Mult(2))
	require.InDelta(t, 1, p.Dot(q), geom.Epsilon)
	require.InDelta(t, -7, p.Cross(q), geom.Epsilon)
}

func TestPoint_NormAndNormalize(t *testing.T) {
	p := geom.Pt(3, 4)
	require.InDelta(t, 25, p.NormSq(), geom.Epsilon)
	require.InDelta(t, 5, p.Norm(), geom.Epsilon)
	require.InDelta(t, 1, p.Normalize().Norm(), geom.Epsilon)

	zero := geom.Pt(0, 0)
	require.Equal(t, zero, zero.Normalize())
}

func TestPoint_Distance(t *testing.T) {
	a, b := geom.Pt(0, 0), geom.Pt(3, 4)
	require.InDelta(t, 5, a.Distance(b), geom.Epsilon)
}

func TestPoint_XYPerp(t *testing.T) {
	require.Equal(t, geom.Pt(-1, 1), geom.Pt(1, 1).XYPerp())
}

func TestPoint_Equal(t *testing.T) {
	a := geom.Pt(1, 1)
	b := geom.Pt(1+geom.Epsilon/2, 1)
	c := geom.Pt(1.1, 1)
	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
}

func TestPoint_DistanceToLine(t *testing.T) {
	p1, p2 := geom.Pt(0, 0), geom.Pt(1, 0)
	require.InDelta(t, 2, geom.Pt(5, 2).DistanceToLine(p1, p2), geom.Epsilon)
	require.InDelta(t, 0, geom.Pt(0.5, 0).DistanceToLine(p1, p2), geom.Epsilon)

	// degenerate line (p1 == p2) falls back to distance from p1.
	require.InDelta(t, math.Hypot(3, 4), geom.Pt(3, 4).DistanceToLine(p1, p1), geom.Epsilon)
}

func TestPoint_IsRight(t *testing.T) {
	p1, p2 := geom.Pt(0, 0), geom.Pt(0, 1)
	require.True(t, geom.Pt(1, 0.5).IsRight(p1, p2))
	require.False(t, geom.Pt(-1, 0.5).IsRight(p1, p2))
}
