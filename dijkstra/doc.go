// Package dijkstra computes exact shortest paths on a core.Graph with
// non-negative edge weights.
//
// It is the uninformed counterpart of package astar: no heuristic, every
// reachable vertex settled in increasing distance order. The repository uses
// it as the ground truth for path cost, both in tests and behind the
// `astar -verify` flag, which exposes the non-reopening caveat of astar under
// inconsistent heuristics.
//
// API:
//
//	Distances(g, source)            (map[string]float64, error)
//	ShortestPath(g, source, target) ([]string, float64, error)
//
// Distances maps every declared vertex to its distance, +Inf when unreachable.
// ShortestPath returns ErrUnreachable rather than an empty path.
//
// Complexity:
//
//   - Time:  O((V + E) log V), lazy decrease-key (stale heap entries skipped).
//   - Space: O(V + E).
//
// Errors (sentinel):
//
//   - ErrNilGraph:         nil *core.Graph.
//   - core.ErrUnknownNode: undeclared source/target, or an edge to an undeclared vertex.
//   - ErrUnreachable:      ShortestPath target has no route from source.
package dijkstra
