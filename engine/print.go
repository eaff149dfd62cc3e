package engine

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/vorocel/topology"
)

// Print renders a one-line-per-count summary of the diagram's current
// size, in the style of a quick debug dump.
func (e *Engine) Print() string {
	var b strings.Builder
	fmt.Fprintf(&b, "vertices: %d\n", e.graph.NumVertices())
	fmt.Fprintf(&b, "edges:    %d\n", e.graph.NumEdges())
	fmt.Fprintf(&b, "faces:    %d\n", e.graph.NumFaces())
	fmt.Fprintf(&b, "sites:    %d point, %d line\n", e.numPointSites, e.numLineSites)
	return b.String()
}

// Check runs the structural invariant checker over the current graph and
// returns the first violation found, or nil. Every public Insert call ends
// by calling this itself; exported so a caller can also run it standalone
// (e.g. after loading a diagram back from storage).
func (e *Engine) Check() error {
	return topology.Check(e.graph)
}
