package dcel

import "github.com/katalvlaran/vorocel/site"

// Face is bounded by a closed ring of half-edges, recoverable by following
// Edge.Next back to Edge.
type Face struct {
	// Edge is any one bounding half-edge; the invariant f.Edge.Face == f
	// holds before and after every public operation.
	Edge EdgeID

	// Site is the site this face is the cell of; nil for the frame's
	// outer face and for transient null/working faces.
	Site site.Site

	// Status is the face's transient role during the current insertion.
	Status FaceStatus
}
