package engine

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/vorocel/dcel"
	"github.com/katalvlaran/vorocel/geom"
	"github.com/katalvlaran/vorocel/predicate"
	"github.com/katalvlaran/vorocel/site"
)

// recarveInterior runs a second seed/augment/materialise pass, driven by
// the line site's own in-circle predicate, against whatever the segment's
// interior (not just its two endpoints) passes close enough to steal from
// an existing cell. posSite and negSite share the same ApexPoint (the foot
// of the perpendicular onto the segment, independent of K), so one pass
// against posSite finds the same delete tree either site would — the
// positive/negative distinction only matters once a boundary vertex is
// materialised and handed to whichever side it belongs to.
//
// A seed search that finds nothing (the segment's interior doesn't
// approach any existing site closely enough to matter) is not an error:
// most line-site insertions carve nothing beyond their own two endpoint
// cells.
func (e *Engine) recarveInterior(p1, p2 geom.Point, posSite, negSite *site.LineSite) error {
	mid := p1.Add(p2).Mult(0.5)
	ctx := newContext()

	seed, err := e.seedSearch(ctx, posSite, mid)
	if err != nil {
		if errors.Is(err, ErrNoSeed) {
			return nil
		}
		return fmt.Errorf("recarveInterior: %w", err)
	}
	e.markIn(ctx, seed)
	e.augment(ctx, posSite)
	if len(ctx.v0) == 0 {
		return nil
	}

	if err := e.materialiseSplit(ctx, posSite, negSite); err != nil {
		return fmt.Errorf("recarveInterior: %w", err)
	}
	if err := e.stitchSplitCells(ctx, p1, p2, posSite, negSite); err != nil {
		return fmt.Errorf("recarveInterior: %w", err)
	}

	e.demolish(ctx)
	e.reset(ctx)
	return nil
}

// materialiseSplit mirrors materialise's boundary walk, but the vertex it
// inserts on each IN->OUT half-edge is a SPLIT vertex — the marker a
// segment's interior leaves on a cell it re-carves, as opposed to the
// NORMAL vertex an ordinary point-site insertion produces.
func (e *Engine) materialiseSplit(ctx *context, posSite, negSite *site.LineSite) error {
	for v := range ctx.v0 {
		for _, id := range e.graph.OutEdges(v) {
			edge := e.graph.MustEdge(id)
			target := e.graph.MustVertex(edge.Target)
			if target.Status != dcel.OUT {
				continue
			}
			sol, usedSite, err := e.positionSplitBoundary(id, posSite, negSite)
			if err != nil {
				e.tracer.P("edge", int(id)).Debugf("materialiseSplit: position failed: %v", err)
				continue
			}
			e.solver.DistError(e.graph, id, sol, usedSite)
			newV := e.graph.AddVertex(sol.Point, dcel.SPLIT)
			if _, _, err := e.graph.AddVertexInEdge(newV, id); err != nil {
				return fmt.Errorf("materialiseSplit: %w", err)
			}
			newVert := e.graph.MustVertex(newV)
			newVert.Status = dcel.NEW
			newVert.K3 = sol.K3
			ctx.touch(newV)
		}
	}
	return nil
}

// positionSplitBoundary solves for where the half-edge's bisector meets
// the segment's own boundary, trying the positive line site first and
// falling back to the negative one — each half-edge genuinely belongs to
// one side or the other, so exactly one of the two ordinarily succeeds.
func (e *Engine) positionSplitBoundary(id dcel.EdgeID, posSite, negSite *site.LineSite) (predicate.Solution, site.Site, error) {
	if sol, err := e.solver.Position(e.graph, id, posSite); err == nil {
		return sol, posSite, nil
	}
	if sol, err := e.solver.Position(e.graph, id, negSite); err == nil {
		return sol, negSite, nil
	}
	return predicate.Solution{}, nil, fmt.Errorf("positionSplitBoundary(%d): %w", id, ErrLineBoundaryUnsolved)
}

// stitchSplitCells splits every face the delete tree touched in two,
// handing the portion of its ring the tree ran through to a fresh face on
// whichever side of the segment the run's cut vertices actually sit on:
// run.a's position relative to the segment (geom.Point.IsRight) decides
// the side, since a single re-carved cell's two crossings always land on
// the same side of the dividing line the segment itself defines. The fresh
// face shares posSite/negSite with the segment's own two endpoint faces —
// the segment's positive (or negative) region is this recarved piece plus
// the endpoint-to-endpoint sliver built in InsertLineSite's Phase 2, not
// one single ring spanning both.
func (e *Engine) stitchSplitCells(ctx *context, p1, p2 geom.Point, posSite, negSite *site.LineSite) error {
	for f := range ctx.incident {
		face, err := e.graph.Face(f)
		if err != nil {
			return fmt.Errorf("stitchSplitCells: %w", err)
		}
		fSite := face.Site
		run, err := findRingRun(e.graph, f)
		if err != nil {
			return fmt.Errorf("stitchSplitCells: %w", err)
		}

		aPos := e.graph.MustVertex(run.a).Pos
		newSite, k := site.Site(posSite), int8(1)
		if aPos.IsRight(p1, p2) {
			newSite, k = negSite, -1
		}
		newFace := e.graph.AddFace()
		_ = e.graph.SetFaceSite(newFace, newSite)
		if err := e.splitFace(ctx, run, f, newFace, fSite, newSite, 0, k); err != nil {
			return fmt.Errorf("stitchSplitCells: %w", err)
		}
		e.index.AddFace(e.graph, newFace)
	}
	return nil
}
