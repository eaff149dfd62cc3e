package dcel

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/vorocel/site"
)

// AddFace creates a new face with no bounding edge yet (NilEdge) and no
// site, and returns its handle.
func (g *Graph) AddFace() FaceID {
	g.faces = append(g.faces, faceSlot{f: Face{Edge: NilEdge, Status: NONINCIDENT}, alive: true})
	return FaceID(len(g.faces) - 1)
}

// SetFaceSite attaches s as the site owned by f.
func (g *Graph) SetFaceSite(f FaceID, s site.Site) error {
	face, err := g.resolveFace(f)
	if err != nil {
		return fmt.Errorf("SetFaceSite: %w", err)
	}
	face.Site = s
	return nil
}

// FaceRing returns the half-edges of f's boundary ring in order, starting
// from f.Edge. Complexity: O(ring size).
func (g *Graph) FaceRing(f FaceID) ([]EdgeID, error) {
	face, err := g.resolveFace(f)
	if err != nil {
		return nil, fmt.Errorf("FaceRing: %w", err)
	}
	if face.Edge == NilEdge {
		return nil, nil
	}
	start := face.Edge
	var ring []EdgeID
	cur := start
	for {
		ring = append(ring, cur)
		edge, err := g.resolveEdge(cur)
		if err != nil {
			return nil, fmt.Errorf("FaceRing: %w", err)
		}
		cur = edge.Next
		if cur == start {
			break
		}
		if len(ring) > len(g.edges)+1 {
			return nil, fmt.Errorf("FaceRing(%d): ring does not close", f)
		}
	}
	return ring, nil
}

// DumpFace renders a face's ring as "v0 -> v1 -> ... -> v0" for debugging.
func (g *Graph) DumpFace(f FaceID) string {
	ring, err := g.FaceRing(f)
	if err != nil || len(ring) == 0 {
		return fmt.Sprintf("face %d: <empty>", f)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "face %d:", f)
	first, _ := g.resolveEdge(ring[0])
	fmt.Fprintf(&b, " v%d", first.Source)
	for _, id := range ring {
		edge, _ := g.resolveEdge(id)
		fmt.Fprintf(&b, " -> v%d", edge.Target)
	}
	return b.String()
}
