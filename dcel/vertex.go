package dcel

import "github.com/katalvlaran/vorocel/geom"

// Vertex is one node of the half-edge graph.
type Vertex struct {
	// Pos is the vertex's planar position.
	Pos geom.Point

	// Kind classifies the vertex's structural role.
	Kind VertexKind

	// Status is the vertex's transient role during the current insertion;
	// UNDECIDED outside of any insertion call.
	Status VertexStatus

	// Index is a stable, monotonically increasing creation sequence
	// number, assigned once and never reused.
	Index int

	// Alfa is the diangle of the outgoing direction from a null face's
	// endpoint; meaningful only for ENDPOINT/SEPPOINT vertices.
	Alfa float64

	// K3 is the side label (-1, 0, +1) a null-face vertex carries,
	// recording which offset-side of an incoming line site it belongs to.
	K3 int8

	// Generator is the cached generator point used by the in-circle
	// predicate, so the predicate need not re-derive it from the
	// incident faces' sites on every comparison.
	Generator geom.Point

	// NullFace is the null face this vertex anchors, or NilFace if the
	// vertex is not an ENDPOINT/SEPPOINT.
	NullFace FaceID

	// InQueue is a transient flag set while the vertex sits in the
	// augment-phase priority queue, so a stale re-push can be skipped.
	InQueue bool

	// Param is a slot for how far along its defining bisector edge this
	// vertex sits (the reference's zero_dist/dist/init_dist). No code in
	// this module sets or reads it; it stays 0.
	Param float64
}
