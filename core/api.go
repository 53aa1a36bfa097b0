// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only queries over an immutable Graph.
// Policy:
//   - No algorithms or hidden state here.
//   - Every exported method documents its errors and complexity.
//   - Returned slices are copies; callers may modify them freely.

package core

import "fmt"

// HasNode reports whether id was declared when the Graph was built.
// Complexity: O(1).
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]

	return ok
}

// Node returns the declared Node for id.
//
// Errors:
//   - ErrUnknownNode if id was never declared.
//
// Complexity: O(1).
func (g *Graph) Node(id string) (Node, error) {
	n, ok := g.nodes[id]
	if !ok {
		return Node{}, fmt.Errorf("%w: %q", ErrUnknownNode, id)
	}

	return n, nil
}

// Successors returns the outgoing edges of id in declaration order.
//
// A declared node without outgoing edges yields an empty, non-nil slice.
// A node that was never declared is a configuration error, not an empty result.
//
// Errors:
//   - ErrUnknownNode if id was never declared.
//
// Complexity: O(d) for the copy, where d is the out-degree of id.
func (g *Graph) Successors(id string) ([]Edge, error) {
	edges, ok := g.adj[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNode, id)
	}
	out := make([]Edge, len(edges))
	copy(out, edges)

	return out, nil
}

// Heuristic returns the static estimate h(id) declared on the node.
//
// Errors:
//   - ErrUnknownNode if id was never declared.
//
// Complexity: O(1).
func (g *Graph) Heuristic(id string) (float64, error) {
	n, ok := g.nodes[id]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownNode, id)
	}

	return n.H, nil
}

// Nodes returns all node IDs in declaration order.
// Complexity: O(V).
func (g *Graph) Nodes() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// Order returns the number of declared nodes.
func (g *Graph) Order() int { return len(g.order) }

// Size returns the total number of directed edges.
func (g *Graph) Size() int { return g.size }

// EdgeWeight returns the smallest weight among the edges from→to; parallel
// edges are allowed and a search always travels the cheapest one.
// The boolean is false when from is undeclared or has no such edge.
// Complexity: O(d), where d is the out-degree of from.
func (g *Graph) EdgeWeight(from, to string) (float64, bool) {
	best, found := 0.0, false
	for _, e := range g.adj[from] {
		if e.To == to && (!found || e.Weight < best) {
			best, found = e.Weight, true
		}
	}

	return best, found
}

// PathCost sums edge weights along path, using EdgeWeight for every
// consecutive pair. An empty or single-node path costs 0.
//
// Errors:
//   - ErrUnknownNode if a node of path is undeclared.
//   - ErrNoEdge if a consecutive pair is not joined by an edge.
//
// Complexity: O(Σ d) over the nodes of path.
func (g *Graph) PathCost(path []string) (float64, error) {
	var total float64
	for i, id := range path {
		if !g.HasNode(id) {
			return 0, fmt.Errorf("%w: %q", ErrUnknownNode, id)
		}
		if i == 0 {
			continue
		}
		w, ok := g.EdgeWeight(path[i-1], id)
		if !ok {
			return 0, fmt.Errorf("%w: %s→%s", ErrNoEdge, path[i-1], id)
		}
		total += w
	}

	return total, nil
}
