package native

import (
	"fmt"
	"math"

	"github.com/npillmayer/schuko/tracing"

	"github.com/katalvlaran/vorocel/dcel"
	"github.com/katalvlaran/vorocel/predicate"
	"github.com/katalvlaran/vorocel/site"
)

// tracer writes to trace with key "vorocel/predicate".
func tracer() tracing.Trace {
	return tracing.Select("vorocel/predicate")
}

// DistErrorTolerance is the residual above which Solver.DistError's caller
// should log. Exported so engine can reuse the same constant in its own
// bookkeeping/tests.
const DistErrorTolerance = 1e-9

// Solver is the default predicate.Solver: closed-form linear/quadratic
// solve for a straight bisector edge against an incoming point or line
// site, falling back to bisect for a parabola edge or any degenerate
// closed-form (a near-zero denominator).
type Solver struct{}

// Position implements predicate.Solver.
func (Solver) Position(g *dcel.Graph, e dcel.EdgeID, newSite site.Site) (predicate.Solution, error) {
	edge, err := g.Edge(e)
	if err != nil {
		return predicate.Solution{}, fmt.Errorf("native.Solver.Position: %w", err)
	}
	anchor, err := edgeAnchorSite(g, edge)
	if err != nil {
		return predicate.Solution{}, fmt.Errorf("native.Solver.Position: %w", err)
	}

	if edge.HasParameters() && isStraight(edge) {
		if sol, ok := solveClosedForm(edge, anchor, newSite); ok {
			return sol, nil
		}
	}

	sol, ok := solveByBisection(edge, anchor, newSite)
	if !ok {
		tracer().P("edge", int(e)).Debugf("positioning solver: no bracket found")
		return predicate.Solution{}, fmt.Errorf("native.Solver.Position(edge=%d): %w", e, ErrNoBracket)
	}
	return sol, nil
}

// DistError implements predicate.Solver.
func (Solver) DistError(g *dcel.Graph, e dcel.EdgeID, sol predicate.Solution, newSite site.Site) float64 {
	edge, err := g.Edge(e)
	if err != nil {
		return math.Inf(1)
	}
	anchor, err := edgeAnchorSite(g, edge)
	if err != nil {
		return math.Inf(1)
	}
	dAnchor := anchor.ApexPoint(sol.Point).Distance(sol.Point)
	dNew := newSite.ApexPoint(sol.Point).Distance(sol.Point)
	derr := math.Abs(dAnchor - dNew)
	if derr > DistErrorTolerance {
		tracer().P("edge", int(e)).Errorf("dist_error %.3g exceeds tolerance", derr)
	}
	return derr
}

// edgeAnchorSite returns the site of either face adjacent to edge (they
// trace the same bisector, so either is an equally valid anchor).
func edgeAnchorSite(g *dcel.Graph, edge *dcel.HalfEdge) (site.Site, error) {
	if face, err := g.Face(edge.Face); err == nil && face.Site != nil {
		return face.Site, nil
	}
	if edge.Twin != dcel.NilEdge {
		if twin, err := g.Edge(edge.Twin); err == nil {
			if face, err := g.Face(twin.Face); err == nil && face.Site != nil {
				return face.Site, nil
			}
		}
	}
	return nil, ErrNoAnchorSite
}

func isStraight(edge *dcel.HalfEdge) bool {
	return edge.Curvature() == 0
}

// solveClosedForm handles a straight (point-point) bisector edge against a
// PointSite (linear) or LineSite (quadratic) newSite.
func solveClosedForm(edge *dcel.HalfEdge, anchor, newSite site.Site) (predicate.Solution, bool) {
	anchorPt, ok := anchor.(*site.PointSite)
	if !ok {
		return predicate.Solution{}, false
	}
	O, D := edge.OriginDir()
	A := anchorPt.P

	switch ns := newSite.(type) {
	case *site.PointSite:
		C := ns.P
		denom := 2 * D.Dot(A.Sub(C))
		if math.Abs(denom) < 1e-12 {
			return predicate.Solution{}, false
		}
		t := (A.NormSq() - C.NormSq() - 2*O.Dot(A.Sub(C))) / denom
		return predicate.Solution{Point: O.Add(D.Mult(t)), K3: 0}, true

	case *site.LineSite:
		a, b, c := ns.Coefficients()
		s0 := a*O.X + b*O.Y + c
		s1 := a*D.X + b*D.Y
		diff := O.Sub(A)
		qa := D.NormSq()
		qb := 2 * D.Dot(diff)
		qc := diff.NormSq()
		qa2 := s1*s1 - qa
		qb2 := 2*s0*s1 - qb
		qc2 := s0*s0 - qc
		roots, n := solveQuadratic(qa2, qb2, qc2)
		best, bestOK := 0.0, false
		for i := 0; i < n; i++ {
			t := roots[i]
			sVal := s0 + s1*t
			if sameSign(sVal, float64(ns.K)) {
				if !bestOK || math.Abs(t) < math.Abs(best) {
					best, bestOK = t, true
				}
			}
		}
		if !bestOK {
			return predicate.Solution{}, false
		}
		return predicate.Solution{Point: O.Add(D.Mult(best)), K3: ns.K}, true
	}
	return predicate.Solution{}, false
}

func sameSign(x, sign float64) bool {
	if sign > 0 {
		return x >= 0
	}
	return x <= 0
}

// solveQuadratic returns the real roots of a*t^2+b*t+c=0.
func solveQuadratic(a, b, c float64) (roots [2]float64, n int) {
	if math.Abs(a) < 1e-12 {
		if math.Abs(b) < 1e-12 {
			return roots, 0
		}
		roots[0] = -c / b
		return roots, 1
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return roots, 0
	}
	sq := math.Sqrt(disc)
	roots[0] = (-b + sq) / (2 * a)
	roots[1] = (-b - sq) / (2 * a)
	return roots, 2
}

// solveByBisection handles a parabola edge, or any closed-form case that
// bottomed out on a degenerate denominator: it brackets the point along the
// edge's curve where distance to anchor equals distance to newSite.
func solveByBisection(edge *dcel.HalfEdge, anchor, newSite site.Site) (predicate.Solution, bool) {
	anchorPt := anchor.ApexPoint
	f := func(t float64) float64 {
		p := edge.Point(t)
		return anchorPt(p).Distance(p) - newSite.ApexPoint(p).Distance(p)
	}
	lo, hi := -1.0, 1.0
	t, ok := bisect(f, lo, hi, 80)
	if !ok {
		return predicate.Solution{}, false
	}
	var k3 int8
	if ls, ok := newSite.(*site.LineSite); ok {
		k3 = ls.K
	}
	return predicate.Solution{Point: edge.Point(t), K3: k3}, true
}
