// Package astar implements A* best-first search between two nodes of an
// immutable core.Graph.
//
// Overview:
//
//   - FindPath expands, one at a time, the open node minimizing f = g + h,
//     where g is the cheapest known cost from the start and h the heuristic
//     estimate to the goal.
//   - Equal f values are broken by node ID (lexicographically smallest first),
//     so the output never depends on the order in which edges were declared.
//   - The result carries the start→goal path, its cost, and the audit trail of
//     expanded nodes in expansion order.
//
// Cost bookkeeping:
//
//	g(start) = 0, parent(start) = none
//	for each successor s of current (s not yet expanded):
//	    tentative = g(current) + w(current, s)
//	    if g(s) unknown or h(s)+tentative ≤ f(s):   // "<" under TieKeepFirst
//	        g(s), parent(s) = tentative, current
//	    s joins the open set if absent
//
// The "≤" comparison is deliberate: when two routes reach s with the same
// cost, the most recently discovered one becomes the parent. TieKeepFirst
// switches to "<" and keeps the first route instead.
//
// Known caveat (non-reopening):
//
//	Once a node is expanded it is never revisited, even if a cheaper route to
//	it is discovered later. The returned path is therefore optimal only under
//	a consistent heuristic (h(u) ≤ w(u,v) + h(v) for every edge). An admissible
//	but inconsistent heuristic may yield a valid yet more expensive path.
//	Admissibility and consistency are assumed, never checked.
//
// Heuristics:
//
//	By default h(id) is the static H declared on each core.Node. WithHeuristic
//	substitutes any func(id string) (float64, error); the geonet package uses it
//	to supply straight-line distance to the goal.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:        nil *core.Graph.
//   - core.ErrUnknownNode: start or goal undeclared (checked before the loop),
//     or an edge points at an undeclared node (surfaces when reached).
//   - ErrBadHeuristic:    a heuristic returned a negative or NaN value.
//   - ErrOptionViolation: nil heuristic or unknown tie policy.
//
// An unreachable goal is not an error: Result.Found is false.
//
// Concurrency:
//
//	Each call owns its open set, g-cost, parent, and expanded state; nothing
//	is shared between calls. Any number of goroutines may search the same
//	Graph concurrently.
//
// Example:
//
//	res, err := astar.FindPath(g, "Start", "Goal")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if res.Found {
//	    fmt.Println(res.Path, res.Cost)
//	}
package astar
