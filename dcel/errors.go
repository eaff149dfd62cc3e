package dcel

import "errors"

// Sentinel errors for the dcel package. Callers branch with errors.Is;
// messages are never stringified with caller-specific data at the
// definition site, only at the wrapping call site (via %w).
var (
	// ErrUnknownVertex indicates a VertexID does not resolve to a live slot.
	ErrUnknownVertex = errors.New("dcel: unknown vertex handle")

	// ErrUnknownEdge indicates an EdgeID does not resolve to a live slot.
	ErrUnknownEdge = errors.New("dcel: unknown edge handle")

	// ErrUnknownFace indicates a FaceID does not resolve to a live slot.
	ErrUnknownFace = errors.New("dcel: unknown face handle")

	// ErrStaleHandle indicates a handle was used after its slot's
	// generation advanced past a DeleteVertex call (strict mode only).
	ErrStaleHandle = errors.New("dcel: stale handle (vertex already deleted)")

	// ErrNoTwin indicates an operation required e.Twin but the edge has none
	// (true only for the three OUTEDGE frame edges).
	ErrNoTwin = errors.New("dcel: half-edge has no twin")

	// ErrEmptyCycle indicates SetNextCycle was called with an empty edge list.
	ErrEmptyCycle = errors.New("dcel: cannot cycle an empty edge list")

	// ErrBadDegree indicates a vertex does not have the in/out-degree an
	// operation requires (RemoveDeg2Vertex wants exactly two in, two out).
	ErrBadDegree = errors.New("dcel: vertex has unexpected degree")

	// ErrNotIn indicates DeleteVertex was called on a vertex whose status
	// is not IN.
	ErrNotIn = errors.New("dcel: delete_vertex requires status IN")

	// ErrUnsupportedSitePair indicates set_parameters was asked for an
	// analytic bisector between a combination of site kinds that has no
	// closed form here (line-line); callers fall back to the external
	// solver's bracket-and-bisect search instead.
	ErrUnsupportedSitePair = errors.New("dcel: no closed-form bisector for this site pair")
)
