package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/lvlath-astar/core"
)

// Distances computes the minimum cost from source to every declared vertex
// of g. Unreachable vertices map to +Inf.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. g must declare source (core.ErrUnknownNode).
//
// Edges to undeclared vertices are followed only as far as the lookup of
// their successors, which fails with core.ErrUnknownNode.
//
// Complexity:
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Distances(g *core.Graph, source string) (map[string]float64, error) {
	r, err := run(g, source)
	if err != nil {
		return nil, err
	}

	return r.dist, nil
}

// ShortestPath returns one minimum-cost path from source to target and its cost.
// When several predecessors give the same distance, the one settled first is kept;
// settling order is by distance, then by smaller vertex ID.
//
// Errors:
//   - ErrNilGraph, core.ErrUnknownNode as for Distances (target is checked too).
//   - ErrUnreachable if no path exists.
func ShortestPath(g *core.Graph, source, target string) ([]string, float64, error) {
	if g != nil && !g.HasNode(target) {
		return nil, 0, fmt.Errorf("%w: target %q", core.ErrUnknownNode, target)
	}
	r, err := run(g, source)
	if err != nil {
		return nil, 0, err
	}
	d := r.dist[target]
	if math.IsInf(d, 1) {
		return nil, 0, fmt.Errorf("%w: %s→%s", ErrUnreachable, source, target)
	}

	path := []string{target}
	for v := target; v != source; {
		v = r.prev[v]
		path = append(path, v)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, d, nil
}

// run validates input and executes the main loop.
func run(g *core.Graph, source string) (*runner, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasNode(source) {
		return nil, fmt.Errorf("%w: source %q", core.ErrUnknownNode, source)
	}

	V := g.Order()
	r := &runner{
		g:       g,
		dist:    make(map[string]float64, V),
		prev:    make(map[string]string, V),
		visited: make(map[string]bool, V),
		pq:      make(nodePQ, 0, V),
	}
	r.init(source)
	if err := r.process(); err != nil {
		return nil, err
	}

	return r, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph        // read-only input
	dist    map[string]float64 // vertex → best known distance
	prev    map[string]string  // vertex → predecessor on that distance
	visited map[string]bool    // vertex → distance finalized
	pq      nodePQ             // lazy decrease-key min-heap
}

// init sets every declared vertex to +Inf and pushes source at distance 0.
func (r *runner) init(source string) {
	for _, v := range r.g.Nodes() {
		r.dist[v] = math.Inf(1)
	}
	r.dist[source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: source, dist: 0})
}

// process pops vertices in distance order and relaxes their edges.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		// stale heap entry
		if r.visited[item.id] {
			continue
		}
		r.visited[item.id] = true

		if err := r.relax(item.id); err != nil {
			return err
		}
	}

	return nil
}

// relax improves the distance of each successor of u when strictly shorter.
func (r *runner) relax(u string) error {
	edges, err := r.g.Successors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get successors of %q: %w", u, err)
	}

	for _, e := range edges {
		nd := r.dist[u] + e.Weight
		cur, ok := r.dist[e.To]
		if ok && nd >= cur {
			continue
		}
		r.dist[e.To] = nd
		r.prev[e.To] = u
		heap.Push(&r.pq, &nodeItem{id: e.To, dist: nd})
	}

	return nil
}

// nodeItem represents a vertex and its tentative distance.
type nodeItem struct {
	id   string
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then id.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance and breaks ties by ID so runs are reproducible.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
