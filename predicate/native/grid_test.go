package native_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vorocel/dcel"
	"github.com/katalvlaran/vorocel/geom"
	"github.com/katalvlaran/vorocel/predicate/native"
	"github.com/katalvlaran/vorocel/site"
)

func TestGrid_FindFace_ReturnsRegisteredFaceNearPoint(t *testing.T) {
	g := dcel.NewGraph()
	fA := g.AddFace()
	require.NoError(t, g.SetFaceSite(fA, site.NewPointSite(geom.Pt(5, 5))))
	fB := g.AddFace()
	require.NoError(t, g.SetFaceSite(fB, site.NewPointSite(geom.Pt(-5, -5))))

	idx := native.NewGrid(10, 4)
	idx.AddFace(g, fA)
	idx.AddFace(g, fB)

	require.Equal(t, fA, idx.FindFace(g, geom.Pt(5, 5)))
	require.Equal(t, fB, idx.FindFace(g, geom.Pt(-5, -5)))
}

func TestGrid_FindFace_FallsBackWhenBucketEmpty(t *testing.T) {
	g := dcel.NewGraph()
	fA := g.AddFace()
	require.NoError(t, g.SetFaceSite(fA, site.NewPointSite(geom.Pt(9, 9))))

	idx := native.NewGrid(10, 8)
	idx.AddFace(g, fA)

	// Query a bucket far from where fA was registered; the only live face
	// is still found via the linear fallback scan.
	require.Equal(t, fA, idx.FindFace(g, geom.Pt(-9, -9)))
}

func TestGrid_FindFace_EmptyGridReturnsNilFace(t *testing.T) {
	g := dcel.NewGraph()
	idx := native.NewGrid(10, 4)
	require.Equal(t, dcel.NilFace, idx.FindFace(g, geom.Pt(0, 0)))
}

func TestGrid_RepresentativePoint_LineSiteUsesMidpoint(t *testing.T) {
	g := dcel.NewGraph()
	fL := g.AddFace()
	require.NoError(t, g.SetFaceSite(fL, site.NewLineSite(geom.Pt(0, 0), geom.Pt(4, 0), 1)))

	idx := native.NewGrid(10, 4)
	idx.AddFace(g, fL)

	require.Equal(t, fL, idx.FindFace(g, geom.Pt(2, 0)))
}
