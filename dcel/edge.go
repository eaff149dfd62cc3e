package dcel

import (
	"fmt"
	"math"

	"github.com/katalvlaran/vorocel/geom"
	"github.com/katalvlaran/vorocel/site"
)

// HalfEdge is one directed side of an undirected edge.
type HalfEdge struct {
	// Source and Target are the vertices this half-edge runs between.
	Source, Target VertexID

	// Twin is the oppositely directed half-edge sharing the same two
	// vertices, or NilEdge for the three frame OUTEDGEs.
	Twin EdgeID

	// Next is the following half-edge around Face.
	Next EdgeID

	// Face is the face this half-edge bounds.
	Face FaceID

	// Type classifies the edge.
	Type EdgeType

	// K is the offset-side sign (-1/+1), meaningful only when Face is a
	// line-site face.
	K int8

	// params holds the analytic bisector description set by
	// SetParameters: [origin.x, origin.y, dir.x, dir.y, normal.x,
	// normal.y, curvature, focalDist]. Point(t) = origin + dir*t +
	// normal*(curvature*t*t). curvature is 0 for a straight bisector
	// (point-point, line-line) and 1/(2*focalDist) for the parabola
	// traced by a point-line bisector.
	params    [8]float64
	hasParams bool
}

// SetParameters populates the analytic bisector description between siteA
// and siteB with the given orientation sign. Only point-point and
// point-line combinations have a closed form here; any other combination
// returns ErrUnsupportedSitePair and the caller must fall back to the
// external solver's bracket-and-bisect search.
func (e *HalfEdge) SetParameters(siteA, siteB site.Site, sign int8) error {
	pa, okA := siteA.(*site.PointSite)
	pb, okB := siteB.(*site.PointSite)
	if okA && okB {
		e.setLineParameters(pa.P, pb.P, sign)
		return nil
	}
	if okA {
		if lb, ok := siteB.(*site.LineSite); ok {
			e.setParabolaParameters(pa.P, lb, sign)
			return nil
		}
	}
	if okB {
		if la, ok := siteA.(*site.LineSite); ok {
			e.setParabolaParameters(pb.P, la, sign)
			return nil
		}
	}
	return fmt.Errorf("SetParameters: %w", ErrUnsupportedSitePair)
}

// setLineParameters fills params for the straight bisector of two points.
func (e *HalfEdge) setLineParameters(a, b geom.Point, sign int8) {
	mid := a.Add(b).Mult(0.5)
	dir := b.Sub(a).Normalize().XYPerp() // perpendicular to a->b
	if sign < 0 {
		dir = dir.Mult(-1)
	}
	e.params = [8]float64{mid.X, mid.Y, dir.X, dir.Y, 0, 0, 0, 0}
	e.hasParams = true
}

// setParabolaParameters fills params for the bisector of a point (focus)
// and a line site (directrix): a parabola with vertex at the midpoint of
// the focus and its foot of perpendicular on the directrix.
func (e *HalfEdge) setParabolaParameters(focus geom.Point, l *site.LineSite, sign int8) {
	foot := l.ApexPoint(focus)
	d := focus.Distance(foot)
	tangent := l.Dir()
	normal := focus.Sub(foot)
	if d > geom.Epsilon {
		normal = normal.Normalize()
	} else {
		normal = l.Normal()
	}
	if sign < 0 {
		tangent = tangent.Mult(-1)
	}
	vertex := foot.Add(normal.Mult(d / 2))
	var curvature float64
	if d > geom.Epsilon {
		curvature = 1 / (2 * d)
	}
	e.params = [8]float64{vertex.X, vertex.Y, tangent.X, tangent.Y, normal.X, normal.Y, curvature, d}
	e.hasParams = true
}

// HasParameters reports whether SetParameters has been called successfully.
func (e *HalfEdge) HasParameters() bool { return e.hasParams }

// Curvature returns the curvature term of the analytic bisector: 0 for a
// straight edge (point-point, line-line), 1/(2*focalDist) for the parabola
// traced by a point-line bisector.
func (e *HalfEdge) Curvature() float64 { return e.params[6] }

// OriginDir returns the origin point and unit direction of the analytic
// bisector, i.e. Point(t) = origin + dir*t for a straight edge.
func (e *HalfEdge) OriginDir() (origin, dir geom.Point) {
	return geom.Pt(e.params[0], e.params[1]), geom.Pt(e.params[2], e.params[3])
}

// Point evaluates the analytic bisector at parameter t.
func (e *HalfEdge) Point(t float64) geom.Point {
	origin := geom.Pt(e.params[0], e.params[1])
	dir := geom.Pt(e.params[2], e.params[3])
	normal := geom.Pt(e.params[4], e.params[5])
	curvature := e.params[6]
	return origin.Add(dir.Mult(t)).Add(normal.Mult(curvature * t * t))
}

// MinimumT returns the parameter t at which Point(t) is closest to q; for a
// straight bisector this is the signed projection onto dir. No code in this
// module calls it.
func (e *HalfEdge) MinimumT(q geom.Point) float64 {
	origin := geom.Pt(e.params[0], e.params[1])
	dir := geom.Pt(e.params[2], e.params[3])
	if e.params[6] == 0 {
		return q.Sub(origin).Dot(dir)
	}
	// Parabola: fall back to a coarse projection; callers needing an
	// exact minimum-distance parameter should bracket-and-bisect around
	// this estimate (see predicate/native.bisect).
	best, bestDist := 0.0, math.Inf(1)
	const probes = 64
	for i := -probes / 2; i <= probes/2; i++ {
		t := float64(i) * 0.1
		if d := e.Point(t).Distance(q); d < bestDist {
			best, bestDist = t, d
		}
	}
	return best
}
