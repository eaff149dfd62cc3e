package engine

import (
	"fmt"

	"github.com/katalvlaran/vorocel/dcel"
	"github.com/katalvlaran/vorocel/geom"
)

// findNullFace prepares one segment endpoint: it locates the two points
// where the line through (p, other) crosses origFace's ring, splices a
// SEPPOINT into each crossing via addSepPoint, and splits origFace in two
// with addSeparator so the point site's former cell survives as two
// separate faces meeting at p instead of one untouched polygon. It returns
// the endpoint rig (the zero-area triangle at p used by the caller to wire
// the line site's own positive/negative faces) plus the fresh FaceID
// created for the side that did not keep origFace's identity.
func (e *Engine) findNullFace(ctx *context, p, other geom.Point, origFace dcel.FaceID, mirrored bool) (endpointRig, dcel.FaceID, error) {
	ring, err := e.graph.FaceRing(origFace)
	if err != nil {
		return endpointRig{}, dcel.NilFace, fmt.Errorf("findNullFace: %w", err)
	}

	toPos, err := e.processNextNull(ring, p, other)
	if err != nil {
		return endpointRig{}, dcel.NilFace, fmt.Errorf("findNullFace: %w", err)
	}
	toNeg, err := e.processPrevNull(ring, p, other)
	if err != nil {
		return endpointRig{}, dcel.NilFace, fmt.Errorf("findNullFace: %w", err)
	}
	if toPos == toNeg {
		return endpointRig{}, dcel.NilFace, fmt.Errorf("findNullFace: %w", ErrRingNotStraddled)
	}

	rig := e.buildEndpointRig(ctx, p, other, mirrored)

	posSep := e.addSepPoint(rig.posSep, toPos)
	negSep := e.addSepPoint(rig.negSep, toNeg)

	posPart, err := e.addSeparator(ctx, origFace, posSep, negSep)
	if err != nil {
		return endpointRig{}, dcel.NilFace, fmt.Errorf("findNullFace: %w", err)
	}

	return rig, posPart, nil
}

// processNextNull scans ring for the edge whose source lies on the
// negative (right-of dir) side and whose successor lies on the positive
// (left-of dir) side: the crossing where the positive separator attaches.
func (e *Engine) processNextNull(ring []dcel.EdgeID, p, other geom.Point) (dcel.EdgeID, error) {
	return findSeparatorTarget(e.graph, ring, p, other, false)
}

// processPrevNull is processNextNull's mirror: the pos-to-neg crossing
// where the negative separator attaches.
func (e *Engine) processPrevNull(ring []dcel.EdgeID, p, other geom.Point) (dcel.EdgeID, error) {
	return findSeparatorTarget(e.graph, ring, p, other, true)
}

// findSeparatorTarget walks ring looking for the single edge whose source
// and target fall on opposite sides of the line through (p,other); wantPosToNeg
// selects which of the two crossings (there are exactly two around a ring
// that fully straddles the line) to return.
func findSeparatorTarget(g *dcel.Graph, ring []dcel.EdgeID, p, other geom.Point, wantPosToNeg bool) (dcel.EdgeID, error) {
	n := len(ring)
	side := make([]bool, n) // true: right-of-dir (negative, K=-1)
	for i, id := range ring {
		v := g.MustEdge(id).Source
		side[i] = g.MustVertex(v).Pos.IsRight(p, other)
	}
	for i := 0; i < n; i++ {
		prev := (i - 1 + n) % n
		if wantPosToNeg && !side[prev] && side[i] {
			return ring[prev], nil
		}
		if !wantPosToNeg && side[prev] && !side[i] {
			return ring[prev], nil
		}
	}
	return dcel.NilEdge, ErrRingNotStraddled
}

// addSepPoint splices the already-constructed SEPPOINT vertex v into edge,
// replacing the single crossing edge with two shorter edges through v on
// both the face that owned edge and its twin's face. Returns v for
// convenience chaining.
func (e *Engine) addSepPoint(v dcel.VertexID, edge dcel.EdgeID) dcel.VertexID {
	_, _, _ = e.graph.AddVertexInEdge(v, edge)
	return v
}

// addSeparator joins posSep and negSep with a direct edge pair, splitting
// origFace's ring into two: origFace keeps its id and becomes the negative
// remainder, a freshly allocated face becomes the positive remainder. This
// is repairFace's work for the endpoint-splice case — the two halves never
// need a next-pointer pass beyond the single new edge pair, since
// addSepPoint already preserved every other edge's Face/Next untouched.
func (e *Engine) addSeparator(ctx *context, origFace dcel.FaceID, posSep, negSep dcel.VertexID) (dcel.FaceID, error) {
	run, err := findRingRunBetween(e.graph, origFace, posSep, negSep)
	if err != nil {
		return dcel.NilFace, fmt.Errorf("addSeparator: %w", err)
	}

	fwd, bwd := e.graph.AddTwinEdges(posSep, negSep)
	e.graph.MustEdge(fwd).Type = dcel.SEPARATOR
	e.graph.MustEdge(bwd).Type = dcel.SEPARATOR

	posFace := e.graph.AddFace()
	negRing := append([]dcel.EdgeID{fwd}, run.rest()...)
	if err := e.graph.SetNextCycle(negRing, origFace, -1); err != nil {
		return dcel.NilFace, fmt.Errorf("addSeparator: %w", err)
	}
	posRing := append(append([]dcel.EdgeID{}, run.run()...), bwd)
	if err := e.graph.SetNextCycle(posRing, posFace, 1); err != nil {
		return dcel.NilFace, fmt.Errorf("addSeparator: %w", err)
	}

	if face, err := e.graph.Face(origFace); err == nil {
		_ = e.graph.SetFaceSite(posFace, face.Site)
	}
	ctx.touch(posSep)
	ctx.touch(negSep)
	return posFace, nil
}

// mergeNullFace is findNullFace's counterpart for a point already used as
// another segment's endpoint: prior is the rig built the first time that
// point was spliced in. Rather than cutting a fresh origFace (which is no
// longer known statically — the point site's cell has already been carved
// by the earlier segment), it searches the faces still touching prior's
// separators for whichever one this segment's direction actually
// straddles, using the same processNextNull/processPrevNull bracket read
// findNullFace itself uses. It attaches a second, independent null-face
// triangle to the shared ENDPOINT vertex via attachEndpointTriangle.
func (e *Engine) mergeNullFace(ctx *context, p, other geom.Point, prior endpointRig, mirrored bool) (endpointRig, dcel.FaceID, error) {
	for _, f := range candidateOrigFaces(e.graph, prior) {
		ring, err := e.graph.FaceRing(f)
		if err != nil {
			continue
		}
		toPos, err := e.processNextNull(ring, p, other)
		if err != nil {
			continue
		}
		toNeg, err := e.processPrevNull(ring, p, other)
		if err != nil {
			continue
		}
		if toPos == toNeg {
			continue
		}

		dir := other.Sub(p).Normalize()
		alfa := geom.Diangle(dir.X, dir.Y)
		posSep := e.graph.AddVertex(p, dcel.SEPPOINT)
		negSep := e.graph.AddVertex(p, dcel.SEPPOINT)
		e.graph.MustVertex(posSep).Alfa = geom.DiangleMid(alfa, alfa+2)
		e.graph.MustVertex(posSep).K3 = ctx.k3Sign
		e.graph.MustVertex(negSep).Alfa = geom.DiangleMid(alfa-2, alfa)
		e.graph.MustVertex(negSep).K3 = -ctx.k3Sign

		e.addSepPoint(posSep, toPos)
		e.addSepPoint(negSep, toNeg)
		posPart, err := e.addSeparator(ctx, f, posSep, negSep)
		if err != nil {
			return endpointRig{}, dcel.NilFace, fmt.Errorf("mergeNullFace: %w", err)
		}

		rig := e.attachEndpointTriangle(prior.endpoint, posSep, negSep, mirrored)
		return rig, posPart, nil
	}
	return endpointRig{}, dcel.NilFace, fmt.Errorf("mergeNullFace: %w", ErrRingNotStraddled)
}

// candidateOrigFaces returns the faces still touching prior's two
// separators that are not themselves prior's null face or either of the
// two line-site faces it anchors — i.e. the point site's own surviving
// cell remainder(s), the only faces a second shared segment could be
// straddling.
func candidateOrigFaces(g *dcel.Graph, prior endpointRig) []dcel.FaceID {
	exclude := map[dcel.FaceID]bool{prior.nullFace: true}
	if e, err := g.Edge(prior.toPosFace); err == nil {
		exclude[e.Face] = true
	}
	if e, err := g.Edge(prior.toNegFace); err == nil {
		exclude[e.Face] = true
	}
	seen := map[dcel.FaceID]bool{}
	var out []dcel.FaceID
	for _, v := range []dcel.VertexID{prior.posSep, prior.negSep} {
		for _, f := range incidentFaces(g, v) {
			if exclude[f] || seen[f] {
				continue
			}
			seen[f] = true
			out = append(out, f)
		}
	}
	return out
}

// findRingRunBetween re-walks f's current ring to find the two edges whose
// Source is a and b respectively, returning the same ringRun shape splitFace
// consumes (generalised from findRingRun's NEW-status search to an explicit
// vertex pair, since the endpoint splice's cut points are SEPPOINTs, not
// delete-tree boundary vertices).
func findRingRunBetween(g *dcel.Graph, f dcel.FaceID, a, b dcel.VertexID) (ringRun, error) {
	ring, err := g.FaceRing(f)
	if err != nil {
		return ringRun{}, fmt.Errorf("findRingRunBetween(%d): %w", f, err)
	}
	ia, ib := -1, -1
	for i, id := range ring {
		src := g.MustEdge(id).Source
		if src == a {
			ia = i
		}
		if src == b {
			ib = i
		}
	}
	if ia == -1 || ib == -1 {
		return ringRun{}, fmt.Errorf("findRingRunBetween(%d): %w", f, ErrRingNotStraddled)
	}
	return ringRun{ring: ring, runStart: ia, runEnd: ib, a: a, b: b}, nil
}
