// Package vorocel is an incremental Voronoi-diagram engine for point and
// line-segment sites in the plane.
//
// What is vorocel?
//
//	A single-threaded incremental construction engine that maintains a
//	half-edge planar subdivision of the plane as sites are inserted one at
//	a time:
//		• Point sites and line-segment sites, Euclidean distance
//		• Half-edge graph: vertices, twinned directed edges, faces
//		• Incremental insertion: no batch construction, no deletion
//		• Pluggable numeric collaborators: positioning solver, in-circle
//		  predicate, spatial index — with solid default implementations
//
// Under the hood, everything is organized under focused subpackages:
//
//	geom/      — point/vector arithmetic, angular (diangle) comparisons
//	dcel/      — the half-edge graph arena: vertices, half-edges, faces
//	site/      — tagged PointSite / LineSite sum type
//	predicate/ — external-collaborator contracts (solver, in-circle, index)
//	engine/    — the incremental insertion engine (the CORE)
//	topology/  — post-condition invariant checker
//
// Quick example:
//
//	eng := engine.New(1.0, 64)
//	a, _ := eng.InsertPointSite(geom.Point{X: -0.3}, 0)
//	b, _ := eng.InsertPointSite(geom.Point{X: 0.3}, 0)
//	eng.InsertLineSite(a, b, 0)
package vorocel
