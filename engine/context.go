package engine

import "github.com/katalvlaran/vorocel/dcel"

// context carries the transient per-insertion state that would otherwise
// have to live as engine-scoped mutable globals: the delete-tree queue,
// the set of vertices marked IN ("v0"), the faces flagged INCIDENT, the
// vertices touched during this call (so reset can restore them), and (for
// a line-site insertion) the sign convention shared by its two endpoint
// rigs. A fresh context is built at the top of every Insert call and
// discarded at return; Engine itself never holds any of this.
type context struct {
	queue *vertexQueue

	v0       map[dcel.VertexID]bool // delete-tree members, marked IN
	incident map[dcel.FaceID]bool
	modified map[dcel.VertexID]bool // touched vertices to reset at phase 6

	inQueue map[dcel.VertexID]bool // vertices already pushed, to avoid duplicate pushes

	// k3Sign is the +1/-1 convention an InsertLineSite call's two endpoint
	// rigs share, so corresponding SEPPOINT vertices on either end carry
	// matching K3 labels.
	k3Sign int8
}

func newContext() *context {
	return &context{
		queue:    newVertexQueue(),
		v0:       make(map[dcel.VertexID]bool),
		incident: make(map[dcel.FaceID]bool),
		modified: make(map[dcel.VertexID]bool),
		inQueue:  make(map[dcel.VertexID]bool),
	}
}

func (c *context) touch(v dcel.VertexID) { c.modified[v] = true }
