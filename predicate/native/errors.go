package native

import "errors"

var (
	// ErrNoBracket indicates the bisection fallback could not find a sign
	// change within its range-doubling budget.
	ErrNoBracket = errors.New("native: no root bracket found")

	// ErrNoAnchorSite indicates neither face adjacent to an edge carries a
	// site, so there is nothing to anchor a positioning solve against.
	ErrNoAnchorSite = errors.New("native: edge has no anchor site")
)
