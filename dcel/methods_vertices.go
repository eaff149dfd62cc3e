package dcel

import (
	"fmt"

	"github.com/katalvlaran/vorocel/geom"
)

// AddVertex creates a new vertex at pos with the given kind and returns its
// handle. Complexity: amortised O(1).
func (g *Graph) AddVertex(pos geom.Point, kind VertexKind) VertexID {
	v := Vertex{
		Pos:      pos,
		Kind:     kind,
		Status:   UNDECIDED,
		Index:    g.nextIndex,
		NullFace: NilFace,
	}
	g.nextIndex++
	g.vertices = append(g.vertices, vertexSlot{v: v, alive: true})
	return VertexID(len(g.vertices) - 1)
}

// OutEdges returns every half-edge whose Source is v, in arena order (not
// necessarily ring order — callers that need angular or ring order sort
// the result themselves). The contract is simply "iteration over
// half-edges leaving v" with no ordering guarantee beyond that.
func (g *Graph) OutEdges(v VertexID) []EdgeID {
	var out []EdgeID
	for i := range g.edges {
		slot := &g.edges[i]
		if slot.alive && slot.e.Source == v {
			out = append(out, EdgeID(i))
		}
	}
	return out
}

// InEdges returns every half-edge whose Target is v.
func (g *Graph) InEdges(v VertexID) []EdgeID {
	var in []EdgeID
	for i := range g.edges {
		slot := &g.edges[i]
		if slot.alive && slot.e.Target == v {
			in = append(in, EdgeID(i))
		}
	}
	return in
}

// Degree returns the number of live half-edges leaving v.
func (g *Graph) Degree(v VertexID) int { return len(g.OutEdges(v)) }

// DeleteVertex removes v and every half-edge incident to it (as source or
// target). Pre: v.Status == IN. Complexity: O(E) in the number of edges
// (arena scan); acceptable since it only runs during the demolish phase of
// one insertion, never in a hot inner loop.
func (g *Graph) DeleteVertex(v VertexID) error {
	slot, err := g.resolveVertex(v)
	if err != nil {
		return fmt.Errorf("DeleteVertex: %w", err)
	}
	if slot.Status != IN {
		return fmt.Errorf("DeleteVertex(%d): %w", v, ErrNotIn)
	}
	for i := range g.edges {
		es := &g.edges[i]
		if es.alive && (es.e.Source == v || es.e.Target == v) {
			es.alive = false
		}
	}
	g.vertices[v].alive = false
	g.vertices[v].gen++
	return nil
}

// RemoveDeg2Vertex merges the in/out half-edge pair on each side of a
// degree-2 vertex back into a single edge, preserving twin symmetry. Pre: v
// has exactly two half-edges leaving it and two arriving at it (the SPLIT
// vertex case). The insertion engine does not call it.
func (g *Graph) RemoveDeg2Vertex(v VertexID) error {
	out := g.OutEdges(v)
	in := g.InEdges(v)
	if len(out) != 2 || len(in) != 2 {
		return fmt.Errorf("RemoveDeg2Vertex(%d): %w", v, ErrBadDegree)
	}
	// Pair each incoming half-edge with the outgoing half-edge that
	// continues its ring (e.Next), splicing the two into one edge that
	// skips v, then drop the now-redundant pair at v.
	for _, inID := range in {
		inEdge, err := g.resolveEdge(inID)
		if err != nil {
			return fmt.Errorf("RemoveDeg2Vertex(%d): %w", v, err)
		}
		nextID := inEdge.Next
		nextEdge, err := g.resolveEdge(nextID)
		if err != nil {
			return fmt.Errorf("RemoveDeg2Vertex(%d): %w", v, err)
		}
		inEdge.Target = nextEdge.Target
		inEdge.Next = nextEdge.Next
		if twin, terr := g.resolveEdge(nextEdge.Twin); terr == nil {
			twin.Source = inEdge.Target
			twin.Twin = inID
		}
		inEdge.Twin = nextEdge.Twin
		g.edges[nextID].alive = false
	}
	g.vertices[v].alive = false
	g.vertices[v].gen++
	return nil
}
