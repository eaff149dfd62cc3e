package engine

import "container/heap"

// queueItem is one candidate vertex awaiting the augment loop, ranked by
// -in_circle so the most-confidently-inside vertex pops first. h is cached
// at push time; the popper re-checks the vertex's live status before
// acting on it, since a vertex can transition to IN or OUT while its entry
// is still sitting in the queue, leaving a stale entry behind.
type queueItem struct {
	vertex int // dcel.VertexID, stored as int to avoid an import cycle concern
	h      float64
}

// vertexQueue is a max-priority queue over -h, i.e. a min-heap ordered by h
// ascending (the most negative in_circle value first, i.e. the largest
// |h| among negative values), built on container/heap the same way a
// Dijkstra-style shortest-path queue is.
type vertexQueue []queueItem

func (q vertexQueue) Len() int            { return len(q) }
func (q vertexQueue) Less(i, j int) bool  { return q[i].h < q[j].h } // more negative h = higher priority
func (q vertexQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *vertexQueue) Push(x interface{}) { *q = append(*q, x.(queueItem)) }
func (q *vertexQueue) Pop() interface{} {
	old := *q
	n := len(old)
	it := old[n-1]
	*q = old[:n-1]
	return it
}

func newVertexQueue() *vertexQueue {
	q := &vertexQueue{}
	heap.Init(q)
	return q
}

func (q *vertexQueue) push(vertex int, h float64) {
	heap.Push(q, queueItem{vertex: vertex, h: h})
}

func (q *vertexQueue) pop() (int, float64, bool) {
	if q.Len() == 0 {
		return 0, 0, false
	}
	it := heap.Pop(q).(queueItem)
	return it.vertex, it.h, true
}
