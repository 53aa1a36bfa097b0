package astar

import "container/heap"

// frontierItem is one discovered-but-not-expanded node.
type frontierItem struct {
	id    string  // node ID
	f     float64 // g + h, the selection priority
	index int     // position in the heap, maintained by Swap
}

// frontierPQ is a min-heap of *frontierItem ordered by f ascending, then by
// node ID ascending. The ID comparison is the tie-break: among equal f the
// lexicographically smallest name is selected, independent of discovery order.
type frontierPQ []*frontierItem

// Len returns the number of items in the heap.
func (pq frontierPQ) Len() int { return len(pq) }

// Less orders by f, then by ID.
func (pq frontierPQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}

	return pq[i].id < pq[j].id
}

// Swap swaps two elements and keeps their indices current.
func (pq frontierPQ) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

// Push adds x (a *frontierItem) at the end; called by heap.Push.
func (pq *frontierPQ) Push(x interface{}) {
	item := x.(*frontierItem)
	item.index = len(*pq)
	*pq = append(*pq, item)
}

// Pop removes the last element; called by heap.Pop.
func (pq *frontierPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*pq = old[:n-1]

	return item
}

// frontier is the open set: a keyed min-heap with O(1) membership.
// Unlike a lazy decrease-key queue it never holds stale duplicates, so its
// length is exactly the number of open nodes.
type frontier struct {
	pq    frontierPQ
	items map[string]*frontierItem
}

func newFrontier(capacity int) *frontier {
	return &frontier{
		pq:    make(frontierPQ, 0, capacity),
		items: make(map[string]*frontierItem, capacity),
	}
}

func (fr *frontier) Len() int { return fr.pq.Len() }

func (fr *frontier) contains(id string) bool {
	_, ok := fr.items[id]

	return ok
}

// push inserts id with priority f. id must not already be present.
func (fr *frontier) push(id string, f float64) {
	item := &frontierItem{id: id, f: f}
	heap.Push(&fr.pq, item)
	fr.items[id] = item
}

// update changes the priority of an open node; it is a no-op for absent IDs.
func (fr *frontier) update(id string, f float64) {
	item, ok := fr.items[id]
	if !ok {
		return
	}
	item.f = f
	heap.Fix(&fr.pq, item.index)
}

// popMin removes and returns the node with the smallest (f, id).
func (fr *frontier) popMin() (string, float64) {
	item := heap.Pop(&fr.pq).(*frontierItem)
	delete(fr.items, item.id)

	return item.id, item.f
}
