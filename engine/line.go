package engine

import (
	"fmt"

	"github.com/katalvlaran/vorocel/dcel"
	"github.com/katalvlaran/vorocel/geom"
	"github.com/katalvlaran/vorocel/site"
)

// endpointRig is the small zero-area null-face triangle built at one
// segment endpoint: an ENDPOINT vertex at the site's own point, flanked by
// two SEPPOINT vertices on the positive/negative offset sides, with three
// NULLEDGE half-edges closing the ring. The two non-stub sides are twinned
// with the positive and negative line-site faces built alongside it.
type endpointRig struct {
	nullFace       dcel.FaceID
	endpoint       dcel.VertexID
	posSep, negSep dcel.VertexID
	toPosFace      dcel.EdgeID // free half-edge, one side owned by the positive face
	toNegFace      dcel.EdgeID // free half-edge, one side owned by the negative face
}

// InsertLineSite inserts the line segment between the point sites returned
// by two earlier InsertPointSite calls. step, if in [1,4], returns
// (false, nil) immediately after that phase completes; <=0 or >4 runs to
// completion.
//
// Each endpoint's point-site cell is split in two by the line through the
// segment (findNullFace/processNextNull/processPrevNull/addSepPoint/
// addSeparator): the half on the K=+1 side becomes a fresh face that keeps
// the same point site, and the point site's original face survives as the
// K=-1 remainder, so the endpoint's SEPPOINTs are spliced into real ring
// edges of the rest of the diagram. A point already used as another segment's endpoint reuses
// its existing ENDPOINT vertex and gets a second, independent null-face
// triangle attached to it (mergeNullFace) instead of being rejected.
//
// Once both endpoints are wired, recarveInterior runs a second seed/
// augment/materialise pass driven by the line site's own in-circle
// predicate, splitting any third site's cell the segment's interior
// happens to cross with a SPLIT vertex.
func (e *Engine) InsertLineSite(idx1, idx2 int, step int) (bool, error) {
	face1, ok := e.siteFace[idx1]
	if !ok {
		return false, fmt.Errorf("InsertLineSite: %w", ErrUnknownSiteIndex)
	}
	face2, ok := e.siteFace[idx2]
	if !ok {
		return false, fmt.Errorf("InsertLineSite: %w", ErrUnknownSiteIndex)
	}
	p1, err := e.sitePoint(face1)
	if err != nil {
		return false, fmt.Errorf("InsertLineSite: %w", err)
	}
	p2, err := e.sitePoint(face2)
	if err != nil {
		return false, fmt.Errorf("InsertLineSite: %w", err)
	}
	if p1.Equal(p2) {
		return false, fmt.Errorf("InsertLineSite: %w", ErrDegenerateSegment)
	}

	ctx := newContext()
	ctx.k3Sign = 1

	// Phase 1: endpoint preparation — splice a null face into each
	// endpoint's existing point-site cell (or attach a second one to an
	// already-shared endpoint).
	rig1, posPart1, err := e.endpointRigFor(ctx, idx1, p1, p2, face1, false)
	if err != nil {
		return false, fmt.Errorf("InsertLineSite: %w", err)
	}
	if step == 1 {
		return false, nil
	}
	rig2, posPart2, err := e.endpointRigFor(ctx, idx2, p2, p1, face2, true)
	if err != nil {
		return false, fmt.Errorf("InsertLineSite: %w", err)
	}
	if step == 2 {
		return false, nil
	}

	// Phase 2: line-site edges and the two side faces.
	posSite := site.NewLineSite(p1, p2, 1)
	negSite := site.NewLineSite(p1, p2, -1)
	lineFwd, lineBwd := e.graph.AddTwinEdges(rig1.endpoint, rig2.endpoint)
	posFace := e.graph.AddFace()
	_ = e.graph.SetFaceSite(posFace, posSite)
	negFace := e.graph.AddFace()
	_ = e.graph.SetFaceSite(negFace, negSite)
	if step == 3 {
		return false, nil
	}

	// Stub closing edges complete the two side faces, running directly
	// between the two endpoints' separators: each separator is now a real
	// vertex spliced into its own point-site cell (via findNullFace), so
	// these stubs connect two genuinely stitched boundaries rather than two
	// floating ones.
	posStub := e.graph.AddHalfEdge(rig2.posSep, rig1.posSep)
	negStub := e.graph.AddHalfEdge(rig1.negSep, rig2.negSep)
	e.graph.MustEdge(posStub).Type = dcel.SEPARATOR
	e.graph.MustEdge(negStub).Type = dcel.SEPARATOR

	lineFwdEdge := e.graph.MustEdge(lineFwd)
	lineFwdEdge.Type = dcel.LINESITE
	lineFwdEdge.K = 1
	lineBwdEdge := e.graph.MustEdge(lineBwd)
	lineBwdEdge.Type = dcel.LINESITE
	lineBwdEdge.K = -1

	posRing := []dcel.EdgeID{lineFwd, rig2.toPosFace, posStub, rig1.toPosFace}
	if err := e.graph.SetNextCycle(posRing, posFace, 1); err != nil {
		return false, fmt.Errorf("InsertLineSite: %w", err)
	}
	negRing := []dcel.EdgeID{lineBwd, rig1.toNegFace, negStub, rig2.toNegFace}
	if err := e.graph.SetNextCycle(negRing, negFace, -1); err != nil {
		return false, fmt.Errorf("InsertLineSite: %w", err)
	}
	if step == 4 {
		return false, nil
	}

	e.index.AddFace(e.graph, posFace)
	e.index.AddFace(e.graph, negFace)
	e.index.AddFace(e.graph, posPart1)
	e.index.AddFace(e.graph, posPart2)
	e.numLineSites++
	e.endpointRigAt[idx1] = rig1
	e.endpointRigAt[idx2] = rig2

	// Phase 5: re-carve any third site's cell the segment's interior
	// crosses, driven by the line site's own in-circle predicate.
	if err := e.recarveInterior(p1, p2, posSite, negSite); err != nil {
		return false, fmt.Errorf("InsertLineSite: %w", err)
	}

	if err := e.Check(); err != nil {
		return false, fmt.Errorf("InsertLineSite: %w", err)
	}
	return true, nil
}

// endpointRigFor resolves one segment endpoint: a fresh null-face triangle
// the first time idx is used as an endpoint, or a second one merged onto
// the existing ENDPOINT vertex if idx was already consumed.
func (e *Engine) endpointRigFor(ctx *context, idx int, p, other geom.Point, face dcel.FaceID, mirrored bool) (endpointRig, dcel.FaceID, error) {
	if prior, used := e.endpointRigAt[idx]; used {
		return e.mergeNullFace(ctx, p, other, prior, mirrored)
	}
	return e.findNullFace(ctx, p, other, face, mirrored)
}

// sitePoint returns the planar point of the PointSite owned by f.
func (e *Engine) sitePoint(f dcel.FaceID) (geom.Point, error) {
	face, err := e.graph.Face(f)
	if err != nil {
		return geom.Point{}, fmt.Errorf("sitePoint: %w", err)
	}
	ps, ok := face.Site.(*site.PointSite)
	if !ok {
		return geom.Point{}, fmt.Errorf("sitePoint(%d): %w", f, ErrUnknownSiteIndex)
	}
	return ps.P, nil
}

// buildEndpointRig builds the zero-area null-face triangle at p, oriented
// towards other (the segment's far endpoint). mirrored flips which pair of
// own/free edges the triangle exposes, so that the two rigs at the two
// ends of one segment present compatible free edges to the positive and
// negative side faces (see attachEndpointTriangle).
func (e *Engine) buildEndpointRig(ctx *context, p, other geom.Point, mirrored bool) endpointRig {
	dir := other.Sub(p).Normalize()
	alfa := geom.Diangle(dir.X, dir.Y)

	endpoint := e.graph.AddVertex(p, dcel.ENDPOINT)
	posSep := e.graph.AddVertex(p, dcel.SEPPOINT)
	negSep := e.graph.AddVertex(p, dcel.SEPPOINT)
	e.graph.MustVertex(endpoint).Alfa = alfa
	e.graph.MustVertex(endpoint).K3 = 0
	e.graph.MustVertex(posSep).Alfa = geom.DiangleMid(alfa, alfa+2)
	e.graph.MustVertex(posSep).K3 = ctx.k3Sign
	e.graph.MustVertex(negSep).Alfa = geom.DiangleMid(alfa-2, alfa)
	e.graph.MustVertex(negSep).K3 = -ctx.k3Sign

	rig := e.attachEndpointTriangle(endpoint, posSep, negSep, mirrored)
	e.graph.MustVertex(endpoint).NullFace = rig.nullFace
	return rig
}

// attachEndpointTriangle builds the zero-area null-face triangle out of an
// already-positioned endpoint/posSep/negSep vertex trio: a fresh ENDPOINT
// vertex and pair of SEPPOINTs for a plain insertion (buildEndpointRig), or
// an existing ENDPOINT vertex shared with an earlier segment plus a new
// SEPPOINT pair for a shared-endpoint merge (mergeNullFace). mirrored flips
// which pair of own/free edges the triangle exposes, so that the two rigs
// at the two ends of one segment present compatible free edges to the
// positive and negative side faces: unmirrored, the free positive edge runs
// SEPPOINT->ENDPOINT and the free negative edge ENDPOINT->SEPPOINT;
// mirrored, the other way round.
func (e *Engine) attachEndpointTriangle(endpoint, posSep, negSep dcel.VertexID, mirrored bool) endpointRig {
	nullFace := e.graph.AddFace()

	var ownFwd, ownStub, ownBwd dcel.EdgeID
	var freePos, freeNeg dcel.EdgeID
	if !mirrored {
		fwd, bwd := e.graph.AddTwinEdges(endpoint, posSep) // E->S+, S+->E
		ownFwd, freePos = fwd, bwd
		fwd2, bwd2 := e.graph.AddTwinEdges(endpoint, negSep) // E->S-, S-->E
		freeNeg = fwd2
		ownBwd = bwd2
		ownStub = e.graph.AddHalfEdge(posSep, negSep)
	} else {
		fwd, bwd := e.graph.AddTwinEdges(endpoint, negSep) // E->S-, S-->E
		ownFwd = fwd
		freeNeg = bwd
		fwd2, bwd2 := e.graph.AddTwinEdges(endpoint, posSep) // E->S+, S+->E
		freePos = fwd2
		ownBwd = bwd2
		ownStub = e.graph.AddHalfEdge(negSep, posSep)
	}
	for _, id := range []dcel.EdgeID{ownFwd, ownStub, ownBwd, freePos, freeNeg} {
		e.graph.MustEdge(id).Type = dcel.NULLEDGE
	}
	ring := []dcel.EdgeID{ownFwd, ownStub, ownBwd}
	_ = e.graph.SetNextCycle(ring, nullFace, 0)

	return endpointRig{
		nullFace:  nullFace,
		endpoint:  endpoint,
		posSep:    posSep,
		negSep:    negSep,
		toPosFace: freePos,
		toNegFace: freeNeg,
	}
}
