package engine

import "errors"

var (
	// ErrOutsideFarRadius indicates a point-site insertion was attempted
	// outside the configured far radius (precondition).
	ErrOutsideFarRadius = errors.New("engine: point outside far radius")

	// ErrUnknownSiteIndex indicates insert_line_site was given an index
	// insert_point_site never returned.
	ErrUnknownSiteIndex = errors.New("engine: unknown site index")

	// ErrNoSeed indicates the seed search found no admissible vertex to
	// begin the delete tree from.
	ErrNoSeed = errors.New("engine: no seed vertex found")

	// ErrEmptyDeleteTree indicates augmentation ended without marking any
	// vertex IN, leaving nothing to stitch against.
	ErrEmptyDeleteTree = errors.New("engine: delete tree is empty")

	// ErrDegenerateSegment indicates the two endpoint indices resolve to
	// the same vertex, or a zero-length segment.
	ErrDegenerateSegment = errors.New("engine: degenerate line segment")

	// ErrRingNotStraddled indicates a point site's cell ring was not split
	// into exactly one positive-side and one negative-side run by the line
	// through a segment endpoint, so no separator target could be found.
	ErrRingNotStraddled = errors.New("engine: site cell ring not straddled by segment direction")

	// ErrLineBoundaryUnsolved indicates a mid-segment re-carving pass found
	// a boundary vertex to materialise but neither the positive nor the
	// negative line site could position it.
	ErrLineBoundaryUnsolved = errors.New("engine: line-site boundary vertex unsolved")
)
