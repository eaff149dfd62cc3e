package engine

import "github.com/katalvlaran/vorocel/dcel"

// neighbors returns the set of vertices adjacent to v via a live half-edge
// in either direction.
func neighbors(g *dcel.Graph, v dcel.VertexID) []dcel.VertexID {
	seen := make(map[dcel.VertexID]bool)
	var out []dcel.VertexID
	add := func(w dcel.VertexID) {
		if !seen[w] {
			seen[w] = true
			out = append(out, w)
		}
	}
	for _, id := range g.OutEdges(v) {
		add(g.MustEdge(id).Target)
	}
	for _, id := range g.InEdges(v) {
		add(g.MustEdge(id).Source)
	}
	return out
}

// incidentFaces returns the distinct faces touching v.
func incidentFaces(g *dcel.Graph, v dcel.VertexID) []dcel.FaceID {
	seen := make(map[dcel.FaceID]bool)
	var out []dcel.FaceID
	for _, id := range g.OutEdges(v) {
		f := g.MustEdge(id).Face
		if f != dcel.NilFace && !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	return out
}

// faceVertices returns the distinct vertices on f's boundary ring.
func faceVertices(g *dcel.Graph, f dcel.FaceID) []dcel.VertexID {
	ring, err := g.FaceRing(f)
	if err != nil {
		return nil
	}
	var out []dcel.VertexID
	for _, id := range ring {
		out = append(out, g.MustEdge(id).Source)
	}
	return out
}

// predicateC4 is the adjacency-count admissibility test: v is rejected if
// it already has two or more IN neighbours, since marking it IN too would
// close a cycle of deletions.
func predicateC4(g *dcel.Graph, v dcel.VertexID) bool {
	count := 0
	for _, w := range neighbors(g, v) {
		if g.MustVertex(w).Status == dcel.IN {
			count++
		}
	}
	return count >= 2
}

// predicateC5 is the connectedness admissibility test: on every face
// already flagged INCIDENT that touches v, v must be graph-adjacent to at
// least one other IN vertex on that face's ring.
func predicateC5(g *dcel.Graph, ctx *context, v dcel.VertexID) bool {
	nb := neighbors(g, v)
	for _, f := range incidentFaces(g, v) {
		if !ctx.incident[f] {
			continue
		}
		ringSet := make(map[dcel.VertexID]bool)
		for _, rv := range faceVertices(g, f) {
			ringSet[rv] = true
		}
		found := false
		for _, w := range nb {
			if w != v && ringSet[w] && g.MustVertex(w).Status == dcel.IN {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
