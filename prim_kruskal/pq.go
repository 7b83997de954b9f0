package prim_kruskal

import "github.com/katalvlaran/citygraph/core"

// pqItem is a queued candidate edge with its push sequence.
type pqItem struct {
	edge core.Edge
	seq  uint64
}

// edgePQ implements heap.Interface for a min-heap of candidate edges,
// ordered by Distance and then by push sequence. container/heap is not
// stable on its own; the sequence makes equal distances pop in FIFO order.
type edgePQ struct {
	items []pqItem
	next  uint64
}

// Len returns the number of edges in the priority queue.
func (pq *edgePQ) Len() int { return len(pq.items) }

// Less orders by distance, then by insertion.
func (pq *edgePQ) Less(i, j int) bool {
	a, b := pq.items[i], pq.items[j]
	if a.edge.Distance != b.edge.Distance {
		return a.edge.Distance < b.edge.Distance
	}

	return a.seq < b.seq
}

// Swap swaps elements at indices i and j.
func (pq *edgePQ) Swap(i, j int) { pq.items[i], pq.items[j] = pq.items[j], pq.items[i] }

// Push appends a core.Edge, stamping it with the next sequence number.
// Called by heap.Push.
func (pq *edgePQ) Push(x interface{}) {
	pq.items = append(pq.items, pqItem{edge: x.(core.Edge), seq: pq.next})
	pq.next++
}

// Pop removes and returns the last core.Edge. Called by heap.Pop.
func (pq *edgePQ) Pop() interface{} {
	old := pq.items
	n := len(old)
	it := old[n-1]
	pq.items = old[:n-1]

	return it.edge
}
