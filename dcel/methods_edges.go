package dcel

import "fmt"

// AddTwinEdges creates two new half-edges u->w and w->u, sets their twin
// pointers to each other, and returns (u->w, w->u). Face, Next and Type are
// left unset (NilFace, NilEdge, the zero EdgeType) for the caller to fill in
// once the surrounding ring is known.
func (g *Graph) AddTwinEdges(u, w VertexID) (EdgeID, EdgeID) {
	fwdID := EdgeID(len(g.edges))
	g.edges = append(g.edges, edgeSlot{e: HalfEdge{Source: u, Target: w, Next: NilEdge, Face: NilFace}, alive: true})
	bwdID := EdgeID(len(g.edges))
	g.edges = append(g.edges, edgeSlot{e: HalfEdge{Source: w, Target: u, Next: NilEdge, Face: NilFace}, alive: true})
	g.edges[fwdID].e.Twin = bwdID
	g.edges[bwdID].e.Twin = fwdID
	return fwdID, bwdID
}

// AddHalfEdge creates a single half-edge u->w with no twin (NilEdge), for
// the three OUTEDGEs of the initial frame and any other edge whose far side
// is intentionally left unbounded. Face, Next and Type are left unset.
func (g *Graph) AddHalfEdge(u, w VertexID) EdgeID {
	id := EdgeID(len(g.edges))
	g.edges = append(g.edges, edgeSlot{e: HalfEdge{Source: u, Target: w, Twin: NilEdge, Next: NilEdge, Face: NilFace}, alive: true})
	return id
}

// SetNext sets e1.Next = e2.
func (g *Graph) SetNext(e1, e2 EdgeID) error {
	edge1, err := g.resolveEdge(e1)
	if err != nil {
		return fmt.Errorf("SetNext: %w", err)
	}
	if _, err := g.resolveEdge(e2); err != nil {
		return fmt.Errorf("SetNext: %w", err)
	}
	edge1.Next = e2
	return nil
}

// SetNextCycle chains list into a closed ring (list[i].Next = list[i+1],
// wrapping around), assigns Face = f and K = k to every edge in the ring,
// and sets f.Edge to list[0]. Pre: list is non-empty.
func (g *Graph) SetNextCycle(list []EdgeID, f FaceID, k int8) error {
	if len(list) == 0 {
		return fmt.Errorf("SetNextCycle: %w", ErrEmptyCycle)
	}
	for i, id := range list {
		edge, err := g.resolveEdge(id)
		if err != nil {
			return fmt.Errorf("SetNextCycle: %w", err)
		}
		edge.Face = f
		edge.K = k
		edge.Next = list[(i+1)%len(list)]
	}
	face, err := g.resolveFace(f)
	if err != nil {
		return fmt.Errorf("SetNextCycle: %w", err)
	}
	face.Edge = list[0]
	return nil
}

// AddVertexInEdge splits the undirected edge e (and its twin) by inserting
// v in the middle. e keeps its id and becomes the u->v half; e.Twin keeps
// its id and becomes the w->v half; two freshly allocated half-edges,
// v->u and v->w, complete the two new twin pairs. Returns the two
// half-edges leaving v (v->w continuing e's original ring, v->u
// continuing e.Twin's).
//
// Every field read below is copied out of its slot before the two appends
// that follow, since appending to g.edges can reallocate the backing array
// and strand any pointer taken before it.
func (g *Graph) AddVertexInEdge(v VertexID, e EdgeID) (EdgeID, EdgeID, error) {
	edge, err := g.resolveEdge(e)
	if err != nil {
		return NilEdge, NilEdge, fmt.Errorf("AddVertexInEdge: %w", err)
	}
	twinID := edge.Twin
	if twinID == NilEdge {
		return NilEdge, NilEdge, fmt.Errorf("AddVertexInEdge: %w", ErrNoTwin)
	}
	twin, err := g.resolveEdge(twinID)
	if err != nil {
		return NilEdge, NilEdge, fmt.Errorf("AddVertexInEdge: %w", err)
	}
	u, w := edge.Source, edge.Target
	origType, origFace, origK, origNext := edge.Type, edge.Face, edge.K, edge.Next
	twinType, twinFace, twinK, twinNext := twin.Type, twin.Face, twin.K, twin.Next

	vuID := EdgeID(len(g.edges))
	g.edges = append(g.edges, edgeSlot{e: HalfEdge{Source: v, Target: u, Twin: e}, alive: true})
	vwID := EdgeID(len(g.edges))
	g.edges = append(g.edges, edgeSlot{e: HalfEdge{Source: v, Target: w, Twin: twinID}, alive: true})

	edge, _ = g.resolveEdge(e) // re-resolve: the appends above may have reallocated g.edges
	edge.Target = v
	edge.Twin = vuID
	edge.Next = vwID

	twin, _ = g.resolveEdge(twinID)
	twin.Target = v
	twin.Twin = vwID
	twin.Next = vuID

	vu, _ := g.resolveEdge(vuID)
	vu.Type, vu.Face, vu.K, vu.Next = twinType, twinFace, twinK, twinNext

	vw, _ := g.resolveEdge(vwID)
	vw.Type, vw.Face, vw.K, vw.Next = origType, origFace, origK, origNext

	return vwID, vuID, nil
}
