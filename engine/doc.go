// Package engine implements the incremental insertion algorithm that builds
// and maintains a Voronoi diagram over point and line-segment sites as a
// half-edge graph (package dcel). Each Insert method performs one
// complete insertion: it asks the spatial index for a seed face, grows a
// delete tree via a priority-ordered breadth-first search, materialises new
// vertices on the tree's boundary, stitches the new cell(s), demolishes the
// tree interior, and resets all transient vertex/face state before
// returning.
//
// Engine itself holds only cross-insertion state: the graph, the default
// collaborators, and the site counters. All per-insertion working state
// (the delete-tree queue, the modified-vertex set, the incident-face list,
// the endpoint/null-face bookkeeping) lives in an unexported *context value
// built fresh by each Insert call and discarded at return.
package engine
