package dcel_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vorocel/dcel"
	"github.com/katalvlaran/vorocel/geom"
)

func triangle(t *testing.T) (*dcel.Graph, []dcel.VertexID, dcel.FaceID) {
	t.Helper()
	g := dcel.NewGraph()
	v0 := g.AddVertex(geom.Pt(0, 0), dcel.NORMAL)
	v1 := g.AddVertex(geom.Pt(1, 0), dcel.NORMAL)
	v2 := g.AddVertex(geom.Pt(0, 1), dcel.NORMAL)

	e01f, e01b := g.AddTwinEdges(v0, v1)
	e12f, e12b := g.AddTwinEdges(v1, v2)
	e20f, e20b := g.AddTwinEdges(v2, v0)

	f := g.AddFace()
	require.NoError(t, g.SetNextCycle([]dcel.EdgeID{e01f, e12f, e20f}, f, 1))

	outer := g.AddFace()
	require.NoError(t, g.SetNextCycle([]dcel.EdgeID{e20b, e12b, e01b}, outer, -1))

	return g, []dcel.VertexID{v0, v1, v2}, f
}

func TestAddTwinEdges_TwinSymmetry(t *testing.T) {
	g, vs, _ := triangle(t)
	out := g.OutEdges(vs[0])
	require.Len(t, out, 2) // v0->v1 and v0->v2
	e, err := g.Edge(out[0])
	require.NoError(t, err)

	twin, err := g.Edge(e.Twin)
	require.NoError(t, err)
	require.Equal(t, out[0], twin.Twin)
	require.Equal(t, e.Source, twin.Target)
	require.Equal(t, e.Target, twin.Source)
}

func TestSetNextCycle_RingClosesAndFaceAssigned(t *testing.T) {
	g, _, f := triangle(t)
	ring, err := g.FaceRing(f)
	require.NoError(t, err)
	require.Len(t, ring, 3)
	for _, id := range ring {
		e, err := g.Edge(id)
		require.NoError(t, err)
		require.Equal(t, f, e.Face)
		require.Equal(t, int8(1), e.K)
	}
}

func TestSetNextCycle_EmptyListRejected(t *testing.T) {
	g := dcel.NewGraph()
	f := g.AddFace()
	err := g.SetNextCycle(nil, f, 0)
	require.ErrorIs(t, err, dcel.ErrEmptyCycle)
}

func TestAddVertexInEdge_SplitsBothHalves(t *testing.T) {
	g, vs, f := triangle(t)
	ring, err := g.FaceRing(f)
	require.NoError(t, err)
	e01 := ring[0]

	mid := g.AddVertex(geom.Pt(0.5, 0), dcel.NORMAL)
	vw, vu, err := g.AddVertexInEdge(mid, e01)
	require.NoError(t, err)

	ewMid, err := g.Edge(e01)
	require.NoError(t, err)
	require.Equal(t, mid, ewMid.Target)

	vwEdge, err := g.Edge(vw)
	require.NoError(t, err)
	require.Equal(t, mid, vwEdge.Source)
	require.Equal(t, vs[1], vwEdge.Target)

	vuEdge, err := g.Edge(vu)
	require.NoError(t, err)
	require.Equal(t, mid, vuEdge.Source)
	require.Equal(t, vs[0], vuEdge.Target)

	// Twin symmetry across the split must still hold both ways.
	twinOfE01, err := g.Edge(ewMid.Twin)
	require.NoError(t, err)
	require.Equal(t, vu, ewMid.Twin)
	require.Equal(t, mid, twinOfE01.Source)

	// The ring around f must still close through both new half-edges.
	newRing, err := g.FaceRing(f)
	require.NoError(t, err)
	require.Len(t, newRing, 4)
}

func TestDeleteVertex_RequiresStatusIn(t *testing.T) {
	g, vs, _ := triangle(t)
	err := g.DeleteVertex(vs[0])
	require.ErrorIs(t, err, dcel.ErrNotIn)
}

func TestDeleteVertex_RemovesIncidentEdges(t *testing.T) {
	g, vs, _ := triangle(t)
	v, err := g.Vertex(vs[0])
	require.NoError(t, err)
	v.Status = dcel.IN

	require.NoError(t, g.DeleteVertex(vs[0]))
	require.Empty(t, g.OutEdges(vs[0]))
	require.Empty(t, g.InEdges(vs[0]))

	_, err = g.Vertex(vs[0])
	require.ErrorIs(t, err, dcel.ErrUnknownVertex)
}

func TestStrictHandles_StaleAfterDelete(t *testing.T) {
	g := dcel.NewGraph(dcel.WithStrictHandles())
	v := g.AddVertex(geom.Pt(0, 0), dcel.NORMAL)
	vv, err := g.Vertex(v)
	require.NoError(t, err)
	vv.Status = dcel.IN
	require.NoError(t, g.DeleteVertex(v))

	_, err = g.Vertex(v)
	require.ErrorIs(t, err, dcel.ErrStaleHandle)
}

func TestRemoveDeg2Vertex_MergesSplit(t *testing.T) {
	g := dcel.NewGraph()
	a := g.AddVertex(geom.Pt(0, 0), dcel.NORMAL)
	mid := g.AddVertex(geom.Pt(1, 0), dcel.SPLIT)
	b := g.AddVertex(geom.Pt(2, 0), dcel.NORMAL)

	amF, amB := g.AddTwinEdges(a, mid)
	mbF, mbB := g.AddTwinEdges(mid, b)

	f1 := g.AddFace()
	require.NoError(t, g.SetNext(amF, mbF))
	require.NoError(t, g.SetNext(mbF, amF))
	e, _ := g.Edge(amF)
	e.Face, e.Next = f1, mbF
	e2, _ := g.Edge(mbF)
	e2.Face, e2.Next = f1, amF

	f2 := g.AddFace()
	e3, _ := g.Edge(mbB)
	e3.Face, e3.Next = f2, amB
	e4, _ := g.Edge(amB)
	e4.Face, e4.Next = f2, mbB

	require.NoError(t, g.RemoveDeg2Vertex(mid))

	out := g.OutEdges(a)
	require.Len(t, out, 1)
	merged, err := g.Edge(out[0])
	require.NoError(t, err)
	require.Equal(t, b, merged.Target)
}
