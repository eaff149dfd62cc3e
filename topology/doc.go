// Package topology verifies the structural invariants a half-edge Voronoi
// diagram must hold at rest: twin symmetry, ring consistency, and the
// resting status of every vertex and face. Check runs in O(V+E+F) and never
// panics; a violation is returned as an error rather than asserted, so a
// caller embedding this as a library can decide whether "fatal" means abort
// the process or just log and stop trusting the diagram.
package topology
