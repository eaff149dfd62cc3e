package topology_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vorocel/dcel"
	"github.com/katalvlaran/vorocel/geom"
	"github.com/katalvlaran/vorocel/site"
	"github.com/katalvlaran/vorocel/topology"
)

// closedTriangle's vertices are APEX, not NORMAL: a bare two-face triangle
// embedding borders every vertex with exactly two faces (inside, outside),
// never the three a real trivalent Voronoi vertex needs, so NORMAL would
// trip checkVertexFaceDegree on this synthetic fixture for reasons
// unrelated to whatever invariant a given test means to exercise.
func closedTriangle(t *testing.T) *dcel.Graph {
	t.Helper()
	g := dcel.NewGraph()
	v0 := g.AddVertex(geom.Pt(0, 0), dcel.APEX)
	v1 := g.AddVertex(geom.Pt(1, 0), dcel.APEX)
	v2 := g.AddVertex(geom.Pt(0, 1), dcel.APEX)

	e01f, e01b := g.AddTwinEdges(v0, v1)
	e12f, e12b := g.AddTwinEdges(v1, v2)
	e20f, e20b := g.AddTwinEdges(v2, v0)

	f := g.AddFace()
	require.NoError(t, g.SetNextCycle([]dcel.EdgeID{e01f, e12f, e20f}, f, 1))
	outer := g.AddFace()
	require.NoError(t, g.SetNextCycle([]dcel.EdgeID{e20b, e12b, e01b}, outer, -1))
	require.NoError(t, g.SetFaceSite(f, site.NewPointSite(geom.Pt(0.3, 0.3))))
	require.NoError(t, g.SetFaceSite(outer, site.NewPointSite(geom.Pt(10, 10))))
	return g
}

func TestCheck_ClosedTriangleIsClean(t *testing.T) {
	g := closedTriangle(t)
	require.NoError(t, topology.Check(g))
}

func TestCheck_FaceMismatchDetected(t *testing.T) {
	g := closedTriangle(t)
	// Corrupt one edge's Face without touching its neighbours' Next chain.
	ring, err := g.FaceRing(0)
	require.NoError(t, err)
	edge := g.MustEdge(ring[0])
	edge.Face = dcel.FaceID(1)

	err = topology.Check(g)
	require.Error(t, err)
	var v *topology.Violation
	require.ErrorAs(t, err, &v)
	require.Equal(t, topology.FaceMismatch, v.Kind)
}

func TestCheck_TwinMismatchDetected(t *testing.T) {
	g := closedTriangle(t)
	edge := g.MustEdge(0)
	realTwin := g.MustEdge(edge.Twin)
	realTwin.Twin = dcel.NilEdge

	err := topology.Check(g)
	require.Error(t, err)
	var v *topology.Violation
	require.ErrorAs(t, err, &v)
	require.Equal(t, topology.TwinMismatch, v.Kind)
}

func TestCheck_RestingVertexStatusEnforcedOutsideInsertion(t *testing.T) {
	g := closedTriangle(t)
	g.MustVertex(0).Status = dcel.IN

	require.Error(t, topology.Check(g))
	require.NoError(t, topology.Check(g, topology.DuringInsertion()))
}

func TestCheck_RestingFaceStatusEnforcedOutsideInsertion(t *testing.T) {
	g := closedTriangle(t)
	g.MustFace(0).Status = dcel.INCIDENT

	require.Error(t, topology.Check(g))
	require.NoError(t, topology.Check(g, topology.DuringInsertion()))
}

func TestCheck_FaceSiteMissingDetected(t *testing.T) {
	g := closedTriangle(t)
	g.MustFace(0).Site = nil

	err := topology.Check(g)
	require.Error(t, err)
	var v *topology.Violation
	require.ErrorAs(t, err, &v)
	require.Equal(t, topology.FaceSiteMissing, v.Kind)
}

func TestCheck_DisconnectedDetected(t *testing.T) {
	g := closedTriangle(t)
	// A second, wired-up component with no path back to the triangle: a
	// stray isolated vertex (no edges at all) is exempt, matching the
	// frame's own unwired APEX placeholders, so this pair must itself have
	// an edge to trigger the violation.
	v3 := g.AddVertex(geom.Pt(5, 5), dcel.NORMAL)
	v4 := g.AddVertex(geom.Pt(6, 5), dcel.NORMAL)
	g.AddTwinEdges(v3, v4)

	err := topology.Check(g)
	require.Error(t, err)
	var v *topology.Violation
	require.ErrorAs(t, err, &v)
	require.Equal(t, topology.Disconnected, v.Kind)
}

func TestCheck_VertexFaceDegreeDetected(t *testing.T) {
	g := closedTriangle(t)
	// v0 borders only the two triangle faces (f, outer); promoting it to
	// NORMAL makes that a violation of the three-face rule a real
	// trivalent Voronoi vertex must satisfy.
	g.MustVertex(0).Kind = dcel.NORMAL

	err := topology.Check(g)
	require.Error(t, err)
	var v *topology.Violation
	require.ErrorAs(t, err, &v)
	require.Equal(t, topology.VertexFaceDegree, v.Kind)
}

func TestCheck_OuterRadiusViolationDetected(t *testing.T) {
	g := dcel.NewGraph()
	g.AddVertex(geom.Pt(10, 0), dcel.OUTER)
	g.AddVertex(geom.Pt(0, 20), dcel.OUTER) // mismatched radius

	err := topology.Check(g)
	require.Error(t, err)
	var v *topology.Violation
	require.ErrorAs(t, err, &v)
	require.Equal(t, topology.OuterRadiusViolation, v.Kind)
}

func TestCheck_RingBrokenDetected(t *testing.T) {
	g := closedTriangle(t)
	// Redirect the last edge of the inner ring back into the middle of its
	// own cycle (still the same face, so no twin/face-mismatch fires first)
	// so following Next from face.Edge never returns to the start.
	g.MustEdge(4).Next = 2

	err := topology.Check(g)
	require.Error(t, err)
	var v *topology.Violation
	require.ErrorAs(t, err, &v)
	require.Equal(t, topology.RingBroken, v.Kind)
}
