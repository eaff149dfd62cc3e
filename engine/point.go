package engine

import (
	"fmt"

	"github.com/katalvlaran/vorocel/dcel"
	"github.com/katalvlaran/vorocel/geom"
	"github.com/katalvlaran/vorocel/site"
)

// InsertPointSite inserts a point site and returns its stable integer
// index. step, if in [1,6], makes the call return (-1, nil) immediately
// after that phase completes, so a test can inspect intermediate
// internal-consistency state; step <= 0 or step > 6 runs to completion.
func (e *Engine) InsertPointSite(p geom.Point, step int) (int, error) {
	if p.Norm() >= e.farRadius {
		return 0, fmt.Errorf("InsertPointSite: %w", ErrOutsideFarRadius)
	}
	index := e.numPointSites
	e.numPointSites++
	newSite := site.NewPointSite(p)
	ctx := newContext()

	// Phase 1: seed.
	seed, err := e.seedSearch(ctx, newSite, p)
	if err != nil {
		return 0, fmt.Errorf("InsertPointSite: %w", err)
	}
	e.markIn(ctx, seed)
	if step == 1 {
		return -1, nil
	}

	// Phase 2: augment.
	e.augment(ctx, newSite)
	if len(ctx.v0) == 0 {
		return 0, fmt.Errorf("InsertPointSite: %w", ErrEmptyDeleteTree)
	}
	if step == 2 {
		return -1, nil
	}

	// Phase 3: materialise.
	boundary, err := e.materialise(ctx, newSite)
	if err != nil {
		return 0, fmt.Errorf("InsertPointSite: %w", err)
	}
	if step == 3 {
		return -1, nil
	}

	// Phase 4: stitch.
	newFace := e.graph.AddFace()
	_ = e.graph.SetFaceSite(newFace, newSite)
	if err := e.stitchPointCell(ctx, newFace, newSite, boundary); err != nil {
		return 0, fmt.Errorf("InsertPointSite: %w", err)
	}
	e.index.AddFace(e.graph, newFace)
	if step == 4 {
		return -1, nil
	}

	// Phase 5: demolish.
	e.demolish(ctx)
	if step == 5 {
		return -1, nil
	}

	// Phase 6: reset.
	e.reset(ctx)
	e.siteFace[index] = newFace
	if err := e.Check(); err != nil {
		return 0, fmt.Errorf("InsertPointSite: %w", err)
	}
	if step == 6 {
		return -1, nil
	}
	return index, nil
}

// seedSearch asks the spatial index for a candidate face, then scans that
// face's ring (falling back to the whole graph if the ring yields nothing
// admissible — acceptable on the small diagrams this engine builds) for
// the NORMAL, non-OUT vertex minimising in_circle against newSite's apex,
// constrained to newSite's region.
func (e *Engine) seedSearch(ctx *context, newSite site.Site, p geom.Point) (dcel.VertexID, error) {
	f := e.index.FindFace(e.graph, p)
	candidates := e.seedCandidates(f)
	if len(candidates) == 0 {
		candidates = e.allVertexCandidates()
	}

	best := dcel.NilVertex
	bestH := 0.0
	apex := newSite.ApexPoint(p)
	for _, v := range candidates {
		vert := e.graph.MustVertex(v)
		if vert.Kind != dcel.NORMAL || vert.Status == dcel.OUT {
			continue
		}
		if !newSite.InRegion(vert.Pos) && !isPointSite(newSite) {
			continue
		}
		generator := e.generatorFor(v)
		h := e.inCircle.InCircle(vert.Pos, generator, apex)
		if h < bestH || best == dcel.NilVertex {
			best, bestH = v, h
		}
	}
	if best == dcel.NilVertex {
		return dcel.NilVertex, ErrNoSeed
	}
	return best, nil
}

func isPointSite(s site.Site) bool {
	_, ok := s.(*site.PointSite)
	return ok
}

func (e *Engine) seedCandidates(f dcel.FaceID) []dcel.VertexID {
	if f == dcel.NilFace {
		return nil
	}
	return faceVertices(e.graph, f)
}

func (e *Engine) allVertexCandidates() []dcel.VertexID {
	return e.graph.AllVertices()
}

// generatorFor returns the position v's in-circle comparison is currently
// anchored against: the site of the first incident face that carries one,
// falling back to v's own position (a zero-clearance anchor) if isolated.
func (e *Engine) generatorFor(v dcel.VertexID) geom.Point {
	vert := e.graph.MustVertex(v)
	for _, f := range incidentFaces(e.graph, v) {
		face, err := e.graph.Face(f)
		if err != nil || face.Site == nil {
			continue
		}
		return face.Site.ApexPoint(vert.Pos)
	}
	return vert.Pos
}

func (e *Engine) markIn(ctx *context, v dcel.VertexID) {
	vert := e.graph.MustVertex(v)
	vert.Status = dcel.IN
	ctx.v0[v] = true
	ctx.touch(v)
	for _, f := range incidentFaces(e.graph, v) {
		ctx.incident[f] = true
	}
}

// augment runs the weighted breadth-first expansion of the delete tree:
// vertices already marked IN push their UNDECIDED neighbors onto the
// in-circle priority queue, and each pop either admits the vertex (marking
// it IN and pushing its own neighbors in turn) or rejects it (marking it
// OUT), until the queue drains.
func (e *Engine) augment(ctx *context, newSite site.Site) {
	for v := range ctx.v0 {
		e.pushNeighbors(ctx, v, newSite)
	}
	for {
		v, _, ok := ctx.queue.pop()
		if !ok {
			break
		}
		vid := dcel.VertexID(v)
		vert, err := e.graph.Vertex(vid)
		if err != nil || vert.Status != dcel.UNDECIDED {
			continue // stale entry: already decided since it was pushed
		}
		apex := newSite.ApexPoint(vert.Pos)
		h := e.inCircle.InCircle(vert.Pos, e.generatorFor(vid), apex)
		admit := h < 0 &&
			!predicateC4(e.graph, vid) &&
			predicateC5(e.graph, ctx, vid) &&
			(newSite.InRegion(vert.Pos) || isPointSite(newSite))
		if !admit {
			vert.Status = dcel.OUT
			ctx.touch(vid)
			continue
		}
		e.markIn(ctx, vid)
		e.pushNeighbors(ctx, vid, newSite)
	}
}

func (e *Engine) pushNeighbors(ctx *context, v dcel.VertexID, newSite site.Site) {
	for _, w := range neighbors(e.graph, v) {
		wert := e.graph.MustVertex(w)
		if wert.Status != dcel.UNDECIDED || ctx.inQueue[w] {
			continue
		}
		if wert.Kind != dcel.NORMAL {
			// OUTER (frame boundary) and APEX vertices sit beyond every
			// finite site's clearance disk by construction: mark OUT
			// directly instead of routing them through the in-circle
			// queue, so a boundary half-edge leaving an IN vertex towards
			// one of these is still a valid materialise target.
			wert.Status = dcel.OUT
			ctx.touch(w)
			continue
		}
		apex := newSite.ApexPoint(wert.Pos)
		h := e.inCircle.InCircle(wert.Pos, e.generatorFor(w), apex)
		ctx.queue.push(int(w), h)
		ctx.inQueue[w] = true
		wert.InQueue = true
		ctx.touch(w)
	}
}

// boundaryEdge pairs a tree-boundary half-edge (source IN, target OUT) with
// the NEW vertex materialised on it.
type boundaryEdge struct {
	edge dcel.EdgeID
	newV dcel.VertexID
}

// materialise walks every half-edge whose source is IN and target is OUT,
// solves for the new bisector's intersection point on that edge, and
// inserts a NEW vertex there.
func (e *Engine) materialise(ctx *context, newSite site.Site) ([]boundaryEdge, error) {
	var out []boundaryEdge
	for v := range ctx.v0 {
		for _, id := range e.graph.OutEdges(v) {
			edge := e.graph.MustEdge(id)
			target := e.graph.MustVertex(edge.Target)
			if target.Status != dcel.OUT {
				continue
			}
			sol, err := e.solver.Position(e.graph, id, newSite)
			if err != nil {
				e.tracer.P("edge", int(id)).Debugf("materialise: position failed: %v", err)
				continue
			}
			e.solver.DistError(e.graph, id, sol, newSite)
			newV := e.graph.AddVertex(sol.Point, dcel.NORMAL)
			if _, _, err := e.graph.AddVertexInEdge(newV, id); err != nil {
				return nil, fmt.Errorf("materialise: %w", err)
			}
			newVert := e.graph.MustVertex(newV)
			newVert.Status = dcel.NEW
			newVert.K3 = sol.K3
			ctx.touch(newV)
			out = append(out, boundaryEdge{edge: id, newV: newV})
		}
	}
	return out, nil
}

// stitchPointCell splits every face flagged INCIDENT in two by a NEW-NEW
// shortcut edge (through an intermediate APEX vertex when the apex-split
// rule fires), handing the portion of its ring that ran through the delete
// tree over to newFace.
func (e *Engine) stitchPointCell(ctx *context, newFace dcel.FaceID, newSite site.Site, _ []boundaryEdge) error {
	for f := range ctx.incident {
		face, err := e.graph.Face(f)
		if err != nil {
			return fmt.Errorf("stitchPointCell: %w", err)
		}
		fSite := face.Site
		run, err := findRingRun(e.graph, f)
		if err != nil {
			return fmt.Errorf("stitchPointCell: %w", err)
		}
		if err := e.splitFace(ctx, run, f, newFace, fSite, newSite, 0, 0); err != nil {
			return fmt.Errorf("stitchPointCell: %w", err)
		}
	}
	return nil
}

// demolish destroys every vertex the delete tree marked IN.
func (e *Engine) demolish(ctx *context) {
	for v := range ctx.v0 {
		_ = e.graph.DeleteVertex(v)
	}
}

// reset restores every vertex this insertion touched to UNDECIDED
// (skipping the ones just destroyed) and flips every INCIDENT face back
// to NONINCIDENT.
func (e *Engine) reset(ctx *context) {
	for v := range ctx.modified {
		if ctx.v0[v] {
			continue // already deleted by demolish
		}
		if vert, err := e.graph.Vertex(v); err == nil {
			vert.Status = dcel.UNDECIDED
			vert.InQueue = false
		}
	}
	for f := range ctx.incident {
		if face, err := e.graph.Face(f); err == nil {
			face.Status = dcel.NONINCIDENT
		}
	}
}
