package engine

import (
	"github.com/npillmayer/schuko/tracing"

	"github.com/katalvlaran/vorocel/dcel"
	"github.com/katalvlaran/vorocel/predicate"
)

// Engine holds the shared half-edge graph and the collaborators used by
// every insertion. It is not safe for concurrent use.
type Engine struct {
	graph *dcel.Graph

	farRadius     float64
	farMultiplier float64

	solver   predicate.Solver
	inCircle predicate.InCirclePredicate
	index    predicate.SpatialIndex
	tracer   tracing.Trace

	numPointSites int
	numLineSites  int

	// siteFace resolves a stable point-site index (as returned by
	// InsertPointSite) back to the face that site owns, so InsertLineSite
	// can turn that face's point-site cell into a null face at each
	// segment endpoint.
	siteFace map[int]dcel.FaceID

	// endpointRigAt records, per point-site index, the endpointRig built the
	// first time that site was used as a line-site endpoint. A second
	// segment sharing the same point reuses the recorded ENDPOINT vertex
	// and attaches its own independent null-face triangle to it instead of
	// allocating a fresh ENDPOINT (mergeNullFace).
	endpointRigAt map[int]endpointRig

	// frame records the three generator faces and the origin vertex built
	// by the initial frame; no insertion phase reads it.
	frame frameHandles
}

// Graph returns the underlying half-edge graph for read-only inspection
// (e.g. by topology.Check or a demonstration program walking cells).
func (e *Engine) Graph() *dcel.Graph { return e.graph }

// FarRadius returns the configured far radius.
func (e *Engine) FarRadius() float64 { return e.farRadius }

// NumPointSites returns the number of point sites inserted so far,
// including the three frame generators seeded at construction.
func (e *Engine) NumPointSites() int { return e.numPointSites }

// NumLineSites returns the number of line-segment sites inserted so far.
func (e *Engine) NumLineSites() int { return e.numLineSites }

// New constructs an Engine with an initial triangular frame enclosing the
// disk of radius farRadius, and nBins as the default spatial index's bucket
// grid resolution. Panics (via the failing Option) only for a malformed
// Option; farRadius <= 0 is itself a programmer error and panics directly,
// following the usual split between validating option constructors and an
// algorithm core that never panics — New is construction-time setup, not
// an insertion operation.
func New(farRadius float64, nBins int, opts ...Option) *Engine {
	if farRadius <= 0 {
		panic("engine: New(farRadius<=0)")
	}
	cfg := defaultConfig(farRadius, nBins)
	for _, opt := range opts {
		opt(&cfg)
	}

	e := &Engine{
		graph:         dcel.NewGraph(graphOptions(&cfg)...),
		farRadius:     farRadius,
		farMultiplier: cfg.farMultiplier,
		solver:        cfg.solver,
		inCircle:      cfg.inCircle,
		index:         cfg.index,
		tracer:        cfg.tracer,
		siteFace:      make(map[int]dcel.FaceID),
		endpointRigAt: make(map[int]endpointRig),
	}
	e.buildFrame()
	return e
}
