// Package dcel implements the half-edge planar graph shared by every
// Voronoi insertion: vertices, twinned directed half-edges, and the faces
// they bound.
//
// Storage is an arena: vertices, half-edges, and faces each live in a dense
// slice inside Graph, addressed by a stable integer handle (VertexID,
// EdgeID, FaceID) rather than a pointer. The half-edge structure is
// intrinsically cyclic — twin, next, and face form loops — so pointers
// would make the graph ungarbage-collectable and handles would not survive
// a Clone; a slice-indexed arena sidesteps both problems at the cost of a
// bounds check per dereference.
//
// Every low-level mutation (AddVertex, AddTwinEdges, AddFace, SetNext,
// SetNextCycle, AddVertexInEdge, RemoveDeg2Vertex, DeleteVertex) leaves the
// structural invariants of the graph intact on its own pre/post-conditions;
// it is the insertion engine's job to call them in an order that keeps the
// whole graph valid between public operations.
package dcel
