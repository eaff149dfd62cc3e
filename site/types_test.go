package site_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vorocel/geom"
	"github.com/katalvlaran/vorocel/site"
)

func TestPointSite_ApexAndRegion(t *testing.T) {
	p := geom.Pt(1, 2)
	s := site.NewPointSite(p)

	require.Equal(t, p, s.ApexPoint(geom.Pt(9, 9)))
	require.True(t, s.InRegion(geom.Pt(9, 9)))

	a, b, c := s.Coefficients()
	require.Zero(t, a)
	require.Zero(t, b)
	require.Zero(t, c)
}

func TestLineSite_DirAndNormal(t *testing.T) {
	s := site.NewLineSite(geom.Pt(0, 0), geom.Pt(1, 0), 1)
	require.InDelta(t, 1, s.Dir().X, geom.Epsilon)
	require.InDelta(t, 0, s.Dir().Y, geom.Epsilon)
	require.InDelta(t, 0, s.Normal().X, geom.Epsilon)
	require.InDelta(t, 1, s.Normal().Y, geom.Epsilon)
	require.InDelta(t, 1, s.Length(), geom.Epsilon)
}

func TestLineSite_ApexPoint(t *testing.T) {
	s := site.NewLineSite(geom.Pt(0, 0), geom.Pt(10, 0), 1)
	apex := s.ApexPoint(geom.Pt(4, 7))
	require.InDelta(t, 4, apex.X, geom.Epsilon)
	require.InDelta(t, 0, apex.Y, geom.Epsilon)
}

func TestLineSite_InRegion(t *testing.T) {
	s := site.NewLineSite(geom.Pt(0, 0), geom.Pt(10, 0), 1)
	require.True(t, s.InRegion(geom.Pt(5, 3)))
	require.False(t, s.InRegion(geom.Pt(-1, 3)))
	require.False(t, s.InRegion(geom.Pt(11, 3)))

	degenerate := site.NewLineSite(geom.Pt(2, 2), geom.Pt(2, 2), 1)
	require.False(t, degenerate.InRegion(geom.Pt(2, 2)))
}

func TestLineSite_Coefficients(t *testing.T) {
	s := site.NewLineSite(geom.Pt(0, 0), geom.Pt(1, 0), 1)
	a, b, c := s.Coefficients()
	// line y=0: normal (0,1), c = -(0*0+1*0) = 0.
	require.InDelta(t, 0, a, geom.Epsilon)
	require.InDelta(t, 1, b, geom.Epsilon)
	require.InDelta(t, 0, c, geom.Epsilon)

	onLine := geom.Pt(5, 0)
	require.InDelta(t, 0, a*onLine.X+b*onLine.Y+c, geom.Epsilon)

	off := geom.Pt(5, 3)
	require.InDelta(t, 3, a*off.X+b*off.Y+c, geom.Epsilon)
}
