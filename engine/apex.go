package engine

import (
	"fmt"

	"github.com/katalvlaran/vorocel/dcel"
	"github.com/katalvlaran/vorocel/geom"
	"github.com/katalvlaran/vorocel/site"
)

// ringRun is the portion of a face's ring consumed by the delete tree: the
// contiguous edges from the first materialised NEW vertex to the second,
// and everything left over once that run is excised.
type ringRun struct {
	ring       []dcel.EdgeID
	runStart   int // ring index of the edge leaving the first NEW vertex
	runEnd     int // ring index of the edge leaving the second NEW vertex
	a, b       dcel.VertexID
}

// findRingRun scans f's ring for the two NEW vertices materialised on its
// boundary and returns the run between them.
func findRingRun(g *dcel.Graph, f dcel.FaceID) (ringRun, error) {
	ring, err := g.FaceRing(f)
	if err != nil {
		return ringRun{}, fmt.Errorf("findRingRun(%d): %w", f, err)
	}
	first, second := -1, -1
	for i, id := range ring {
		v := g.MustEdge(id).Source
		if g.MustVertex(v).Status == dcel.NEW {
			if first == -1 {
				first = i
			} else if second == -1 {
				second = i
				break
			}
		}
	}
	if first == -1 || second == -1 {
		return ringRun{}, fmt.Errorf("findRingRun(%d): fewer than two NEW vertices on ring", f)
	}
	return ringRun{
		ring:     ring,
		runStart: first,
		runEnd:   second,
		a:        g.MustEdge(ring[first]).Source,
		b:        g.MustEdge(ring[second]).Source,
	}, nil
}

// slice returns ring[from:to) treated circularly.
func (r ringRun) slice(from, to int) []dcel.EdgeID {
	n := len(r.ring)
	var out []dcel.EdgeID
	for i := from; i != to; i = (i + 1) % n {
		out = append(out, r.ring[i])
	}
	return out
}

// run returns the edges from a to b (the portion handed to the new face).
func (r ringRun) run() []dcel.EdgeID { return r.slice(r.runStart, r.runEnd) }

// rest returns the edges from b back around to a (the portion f keeps).
func (r ringRun) rest() []dcel.EdgeID { return r.slice(r.runEnd, r.runStart) }

// needsApexSplit reports whether a and b fall on opposite sides of the line
// through siteA and siteB, which is when a straight NEW-NEW shortcut would
// cross outside the cell and an intermediate APEX vertex is needed instead.
func needsApexSplit(a, b, siteA, siteB geom.Point) bool {
	return a.IsRight(siteA, siteB) != b.IsRight(siteA, siteB)
}

// splitFace excises run's [a..b) from f's ring and hands it to newFace,
// joining the two NEW vertices a and b with either one straight shortcut
// edge or, if the apex-split rule fires, two edges through an intermediate
// APEX vertex. fSite and newSite are the two sites whose bisector the
// shortcut traces. kF/kNew are the K labels to stamp on the shortcut (0 for
// a plain point-site cell, ±1 when the new face is a line-site cell).
func (e *Engine) splitFace(ctx *context, run ringRun, f, newFace dcel.FaceID, fSite, newSite site.Site, kF, kNew int8) error {
	a, b := run.a, run.b
	aPos, bPos := e.graph.MustVertex(a).Pos, e.graph.MustVertex(b).Pos
	fPoint := fSite.ApexPoint(aPos)
	newPoint := newSite.ApexPoint(aPos)

	var fwdChain, bwdChain []dcel.EdgeID
	if needsApexSplit(aPos, bPos, fPoint, newPoint) {
		mid := aPos.Add(bPos).Mult(0.5)
		apexV := e.graph.AddVertex(mid, dcel.APEX)
		ctx.touch(apexV)
		aApexFwd, aApexBwd := e.graph.AddTwinEdges(a, apexV)
		apexBFwd, apexBBwd := e.graph.AddTwinEdges(apexV, b)
		fwdChain = []dcel.EdgeID{aApexFwd, apexBFwd}
		bwdChain = []dcel.EdgeID{apexBBwd, aApexBwd}
	} else {
		fwd, bwd := e.graph.AddTwinEdges(a, b)
		fwdChain = []dcel.EdgeID{fwd}
		bwdChain = []dcel.EdgeID{bwd}
	}
	for _, id := range fwdChain {
		e.graph.MustEdge(id).Type = dcel.LINE
		_ = e.graph.MustEdge(id).SetParameters(fSite, newSite, 1)
	}
	for _, id := range bwdChain {
		e.graph.MustEdge(id).Type = dcel.LINE
		_ = e.graph.MustEdge(id).SetParameters(fSite, newSite, -1)
	}

	fRing := append(append([]dcel.EdgeID{}, fwdChain...), run.rest()...)
	if err := e.graph.SetNextCycle(fRing, f, kF); err != nil {
		return fmt.Errorf("splitFace: %w", err)
	}
	newRing := append(append([]dcel.EdgeID{}, run.run()...), bwdChain...)
	if err := e.graph.SetNextCycle(newRing, newFace, kNew); err != nil {
		return fmt.Errorf("splitFace: %w", err)
	}
	return nil
}
