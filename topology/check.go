package topology

import (
	"fmt"
	"math"

	"github.com/katalvlaran/vorocel/dcel"
	"github.com/katalvlaran/vorocel/site"
)

// radiusTolerance absorbs floating-point drift when comparing an OUTER
// vertex's distance from the origin against the far radius shared by the
// other two.
const radiusTolerance = 1e-6

type config struct {
	duringInsertion bool
}

// Option configures one Check call.
type Option func(*config)

// DuringInsertion relaxes the two resting-status invariants (every vertex
// UNDECIDED, every face NONINCIDENT) and the three-face rule for NORMAL
// vertices, for checking a graph mid-insertion while IN/OUT/NEW/INCIDENT
// markings are still live.
func DuringInsertion() Option {
	return func(c *config) { c.duringInsertion = true }
}

// Check walks every live vertex, edge and face in g and reports the first
// broken invariant it finds, or nil if none. Complexity: O(V+E+F).
func Check(g *dcel.Graph, opts ...Option) error {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	for _, id := range g.AllEdges() {
		if v := checkTwin(g, id); v != nil {
			return v
		}
		if v := checkNextFace(g, id); v != nil {
			return v
		}
	}

	for _, id := range g.AllFaces() {
		if v := checkRing(g, id); v != nil {
			return v
		}
	}

	if v := checkOuterRadius(g); v != nil {
		return v
	}
	for _, id := range g.AllFaces() {
		if v := checkFaceSite(g, id); v != nil {
			return v
		}
	}
	if v := checkConnected(g); v != nil {
		return v
	}

	if !cfg.duringInsertion {
		for _, id := range g.AllVertices() {
			if v := checkVertexRest(g, id); v != nil {
				return v
			}
		}
		for _, id := range g.AllFaces() {
			if v := checkFaceRest(g, id); v != nil {
				return v
			}
		}
		for _, id := range g.AllVertices() {
			if v := checkVertexFaceDegree(g, id); v != nil {
				return v
			}
		}
	}

	return nil
}

func checkTwin(g *dcel.Graph, id dcel.EdgeID) *Violation {
	edge := g.MustEdge(id)
	if edge.Twin == dcel.NilEdge {
		// A handful of edge kinds are intentionally twin-less: the three
		// frame OUTEDGEs, and a null face's no-twin stub closing its ring.
		return nil
	}
	twin, err := g.Edge(edge.Twin)
	if err != nil {
		return &Violation{Kind: TwinMismatch, Handle: int(id), Detail: fmt.Sprintf("twin handle unresolvable: %v", err)}
	}
	if twin.Twin != id {
		return &Violation{Kind: TwinMismatch, Handle: int(id), Detail: "twin.twin != self"}
	}
	if twin.Source != edge.Target || twin.Target != edge.Source {
		return &Violation{Kind: TwinMismatch, Handle: int(id), Detail: "twin endpoints do not mirror self"}
	}
	return nil
}

func checkNextFace(g *dcel.Graph, id dcel.EdgeID) *Violation {
	edge := g.MustEdge(id)
	if edge.Next == dcel.NilEdge || edge.Face == dcel.NilFace {
		return nil // transient edge not yet stitched into a ring
	}
	next, err := g.Edge(edge.Next)
	if err != nil {
		return &Violation{Kind: FaceMismatch, Handle: int(id), Detail: fmt.Sprintf("next handle unresolvable: %v", err)}
	}
	if next.Face != edge.Face {
		return &Violation{Kind: FaceMismatch, Handle: int(id), Detail: "next.face != face"}
	}
	return nil
}

func checkRing(g *dcel.Graph, id dcel.FaceID) *Violation {
	face := g.MustFace(id)
	if face.Edge == dcel.NilEdge {
		return nil // transient face, no ring assigned yet
	}
	ring, err := g.FaceRing(id)
	if err != nil {
		return &Violation{Kind: RingBroken, Handle: int(id), Detail: err.Error()}
	}
	for _, eid := range ring {
		if g.MustEdge(eid).Face != id {
			return &Violation{Kind: FaceEdgeNotOnRing, Handle: int(id), Detail: fmt.Sprintf("edge %d on ring claims a different face", eid)}
		}
	}
	return nil
}

func checkVertexRest(g *dcel.Graph, id dcel.VertexID) *Violation {
	v := g.MustVertex(id)
	if v.Status != dcel.UNDECIDED {
		return &Violation{Kind: RestingVertexStatus, Handle: int(id), Detail: v.Status.String()}
	}
	return nil
}

func checkFaceRest(g *dcel.Graph, id dcel.FaceID) *Violation {
	f := g.MustFace(id)
	if f.Status != dcel.NONINCIDENT {
		return &Violation{Kind: RestingFaceStatus, Handle: int(id), Detail: f.Status.String()}
	}
	return nil
}

// checkOuterRadius derives the far radius from the first OUTER vertex found,
// then requires every other OUTER vertex to sit at that same radius and
// every site point to lie strictly inside it.
func checkOuterRadius(g *dcel.Graph) *Violation {
	var farR float64
	have := false
	for _, id := range g.AllVertices() {
		v := g.MustVertex(id)
		if v.Kind != dcel.OUTER {
			continue
		}
		r := v.Pos.Norm()
		if !have {
			farR, have = r, true
			continue
		}
		if math.Abs(r-farR) > radiusTolerance {
			return &Violation{Kind: OuterRadiusViolation, Handle: int(id), Detail: fmt.Sprintf("outer vertex at radius %g, want %g", r, farR)}
		}
	}
	if !have {
		return nil
	}

	for _, id := range g.AllFaces() {
		f := g.MustFace(id)
		if f.Site == nil {
			continue
		}
		switch s := f.Site.(type) {
		case *site.PointSite:
			if s.P.Norm() >= farR {
				return &Violation{Kind: OuterRadiusViolation, Handle: int(id), Detail: "point site not strictly inside far radius"}
			}
		case *site.LineSite:
			if s.A.Norm() >= farR || s.B.Norm() >= farR {
				return &Violation{Kind: OuterRadiusViolation, Handle: int(id), Detail: "line site endpoint not strictly inside far radius"}
			}
		}
	}
	return nil
}

// checkFaceSite requires every stitched, non-transient face to carry a
// site. A face with a NULLEDGE-bounded ring is a zero-area bookkeeping face
// from a line-site endpoint and is exempt, matching the no-site contract
// documented on dcel.Face.Site.
func checkFaceSite(g *dcel.Graph, id dcel.FaceID) *Violation {
	f := g.MustFace(id)
	if f.Edge == dcel.NilEdge {
		return nil // transient, not yet stitched
	}
	if g.MustEdge(f.Edge).Type == dcel.NULLEDGE {
		return nil // zero-area null face
	}
	if f.Site == nil {
		return &Violation{Kind: FaceSiteMissing, Handle: int(id), Detail: "face has no site"}
	}
	return nil
}

// checkConnected requires every vertex with at least one incident edge to
// be reachable from every other such vertex, treating each half-edge as an
// undirected link. A vertex with no incident edges at all (the frame's APEX
// placeholders, recorded for a future apex-split but not yet wired into any
// ring) is not part of the graph yet and is exempt.
func checkConnected(g *dcel.Graph) *Violation {
	all := g.AllVertices()
	degree := func(v dcel.VertexID) int { return len(g.OutEdges(v)) + len(g.InEdges(v)) }

	var root dcel.VertexID
	haveRoot := false
	for _, v := range all {
		if degree(v) > 0 {
			root, haveRoot = v, true
			break
		}
	}
	if !haveRoot {
		return nil
	}

	seen := map[dcel.VertexID]bool{root: true}
	queue := []dcel.VertexID{root}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, id := range g.OutEdges(v) {
			if w := g.MustEdge(id).Target; !seen[w] {
				seen[w] = true
				queue = append(queue, w)
			}
		}
		for _, id := range g.InEdges(v) {
			if w := g.MustEdge(id).Source; !seen[w] {
				seen[w] = true
				queue = append(queue, w)
			}
		}
	}
	for _, v := range all {
		if !seen[v] && degree(v) > 0 {
			return &Violation{Kind: Disconnected, Handle: int(v), Detail: "unreachable from the rest of the graph"}
		}
	}
	return nil
}

// checkVertexFaceDegree requires every NORMAL vertex to border exactly
// three faces, the signature of an ordinary trivalent Voronoi vertex.
// ENDPOINT/SEPPOINT/SPLIT/OUTER vertices have their own, higher-degree
// shapes and are exempt.
func checkVertexFaceDegree(g *dcel.Graph, id dcel.VertexID) *Violation {
	v := g.MustVertex(id)
	if v.Kind != dcel.NORMAL {
		return nil
	}
	faces := map[dcel.FaceID]bool{}
	for _, eid := range g.OutEdges(id) {
		if f := g.MustEdge(eid).Face; f != dcel.NilFace {
			faces[f] = true
		}
	}
	if len(faces) != 3 {
		return &Violation{Kind: VertexFaceDegree, Handle: int(id), Detail: fmt.Sprintf("borders %d faces, want 3", len(faces))}
	}
	return nil
}
