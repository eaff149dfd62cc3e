package engine

import (
	"github.com/npillmayer/schuko/tracing"

	"github.com/katalvlaran/vorocel/dcel"
	"github.com/katalvlaran/vorocel/predicate"
	"github.com/katalvlaran/vorocel/predicate/native"
)

// engineConfig collects the values Option mutates before New builds the
// initial frame.
type engineConfig struct {
	farMultiplier float64
	nBins         int
	solver        predicate.Solver
	inCircle      predicate.InCirclePredicate
	index         predicate.SpatialIndex
	tracer        tracing.Trace
	strict        bool
}

// Option customizes Engine construction by mutating an engineConfig before
// the initial frame is built. Option constructors validate and panic on
// meaningless inputs; Engine's own insertion methods never panic.
type Option func(*engineConfig)

// WithFarMultiplier overrides the default far_multiplier (6) controlling how
// far the frame's OUTER vertices sit beyond far_radius. Panics if m < 1.
func WithFarMultiplier(m float64) Option {
	if m < 1 {
		panic("engine: WithFarMultiplier(m<1)")
	}
	return func(c *engineConfig) { c.farMultiplier = m }
}

// WithSolver overrides the default positioning solver. Panics on nil.
func WithSolver(s predicate.Solver) Option {
	if s == nil {
		panic("engine: WithSolver(nil)")
	}
	return func(c *engineConfig) { c.solver = s }
}

// WithInCircle overrides the default in-circle predicate. Panics on nil.
func WithInCircle(p predicate.InCirclePredicate) Option {
	if p == nil {
		panic("engine: WithInCircle(nil)")
	}
	return func(c *engineConfig) { c.inCircle = p }
}

// WithSpatialIndex overrides the default spatial index. Panics on nil.
func WithSpatialIndex(idx predicate.SpatialIndex) Option {
	if idx == nil {
		panic("engine: WithSpatialIndex(nil)")
	}
	return func(c *engineConfig) { c.index = idx }
}

// WithLogger overrides the default trace sink (tracing.Select("vorocel")).
func WithLogger(t tracing.Trace) Option {
	if t == nil {
		panic("engine: WithLogger(nil)")
	}
	return func(c *engineConfig) { c.tracer = t }
}

// WithStrictHandles enables dcel.WithStrictHandles on the underlying graph.
func WithStrictHandles() Option {
	return func(c *engineConfig) { c.strict = true }
}

func defaultConfig(farRadius float64, nBins int) engineConfig {
	return engineConfig{
		farMultiplier: 6,
		nBins:         nBins,
		solver:        native.Solver{},
		inCircle:      native.InCircle{},
		index:         native.NewGrid(farRadius, nBins),
		tracer:        tracing.Select("vorocel"),
	}
}

func graphOptions(c *engineConfig) []dcel.GraphOption {
	if c.strict {
		return []dcel.GraphOption{dcel.WithStrictHandles()}
	}
	return nil
}
