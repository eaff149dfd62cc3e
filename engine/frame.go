package engine

import (
	"math"

	"github.com/katalvlaran/vorocel/dcel"
	"github.com/katalvlaran/vorocel/geom"
	"github.com/katalvlaran/vorocel/site"
)

// frameHandles records the initial frame's structural vertices and faces.
// No insertion phase reads it; the seed search's fallback scans every
// vertex of the graph instead.
type frameHandles struct {
	origin     dcel.VertexID
	outers     [3]dcel.VertexID
	apex       [3]dcel.VertexID
	faces      [3]dcel.FaceID
	generators [3]geom.Point
}

// buildFrame constructs the regular-triangle bounding frame: a central
// origin vertex, three OUTER vertices at radius 3*far_multiplier*far_radius,
// and three triangular faces (Origin, Outer_k, Outer_k+1) each carrying one
// generator point site at radius 3*far_radius centred in its wedge. Three
// APEX vertices, the midpoints of each generator pair, are recorded for
// later reference but are not ring vertices of the frame itself.
func (e *Engine) buildFrame() {
	const n = 3
	outerRadius := 3 * e.farMultiplier * e.farRadius
	genRadius := 3 * e.farRadius

	origin := e.graph.AddVertex(geom.Pt(0, 0), dcel.NORMAL)

	var outers, apex [n]dcel.VertexID
	var generators [n]geom.Point
	for k := 0; k < n; k++ {
		outerAngle := math.Pi/2 + float64(k)*2*math.Pi/n
		outers[k] = e.graph.AddVertex(geom.Pt(outerRadius*math.Cos(outerAngle), outerRadius*math.Sin(outerAngle)), dcel.OUTER)

		genAngle := outerAngle + math.Pi/n
		generators[k] = geom.Pt(genRadius*math.Cos(genAngle), genRadius*math.Sin(genAngle))
	}
	for k := 0; k < n; k++ {
		mid := generators[k].Add(generators[(k+1)%n]).Mult(0.5)
		apex[k] = e.graph.AddVertex(mid, dcel.APEX)
	}

	var faces [n]dcel.FaceID
	for k := 0; k < n; k++ {
		faces[k] = e.graph.AddFace()
		_ = e.graph.SetFaceSite(faces[k], site.NewPointSite(generators[k]))
	}

	// Two half-edges per wedge boundary (Origin<->Outer_k), twinned between
	// face k and face k-1, plus one OUTEDGE per face (Outer_k->Outer_k+1).
	inFwd := make([]dcel.EdgeID, n)   // Origin -> Outer_k
	inBwd := make([]dcel.EdgeID, n)   // Outer_k -> Origin
	outEdge := make([]dcel.EdgeID, n) // Outer_k -> Outer_k+1, no twin
	for k := 0; k < n; k++ {
		fwd, bwd := e.graph.AddTwinEdges(origin, outers[k])
		inFwd[k], inBwd[k] = fwd, bwd
		outEdge[k] = e.graph.AddHalfEdge(outers[k], outers[(k+1)%n])
	}

	for k := 0; k < n; k++ {
		prev := (k + n - 1) % n
		ring := []dcel.EdgeID{inFwd[k], outEdge[k], inBwd[(k+1)%n]}
		_ = e.graph.SetNextCycle(ring, faces[k], 0)

		fwdEdge := e.graph.MustEdge(inFwd[k])
		fwdEdge.Type = dcel.LINE
		_ = fwdEdge.SetParameters(site.NewPointSite(generators[prev]), site.NewPointSite(generators[k]), 1)

		bwdEdge := e.graph.MustEdge(inBwd[k])
		bwdEdge.Type = dcel.LINE

		oe := e.graph.MustEdge(outEdge[k])
		oe.Type = dcel.OUTEDGE
	}
	// inBwd[k]'s parameters mirror its twin inFwd[k]; set once both exist.
	for k := 0; k < n; k++ {
		bwdEdge := e.graph.MustEdge(inBwd[k])
		prev := (k + n - 1) % n
		_ = bwdEdge.SetParameters(site.NewPointSite(generators[prev]), site.NewPointSite(generators[k]), -1)
	}

	e.frame = frameHandles{origin: origin, outers: outers, apex: apex, faces: faces, generators: generators}
	e.numPointSites = n
	for k := 0; k < n; k++ {
		e.index.AddFace(e.graph, faces[k])
		e.siteFace[k] = faces[k]
	}
}
