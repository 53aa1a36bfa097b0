// Package core provides the immutable, directed, weighted Graph that the
// search packages (astar, dijkstra, geonet, gridgraph) operate on.
//
// A Graph G = (V, E) is declared once, up front, as an ordered list of
// Adjacency entries. Each entry names a Node (ID plus a static heuristic H)
// and its outgoing edges. After NewGraph returns nothing can be added or
// removed, so one Graph may be shared by any number of concurrent searches
// without locks.
//
// Why an ordered slice and not a map?
//
//   - Successor order is part of the observable contract: Successors returns
//     edges exactly as declared, and search audit trails depend on it.
//   - A Go map cannot carry duplicate keys, so declaring the same node twice
//     is only detectable (ErrDuplicateNode) from an ordered slice.
//
// Validation performed by NewGraph:
//
//	– empty node ID                 → ErrEmptyNodeID
//	– node declared twice           → ErrDuplicateNode
//	– H < 0 or NaN                  → ErrNegativeHeuristic
//	– edge weight < 0 or NaN        → ErrNegativeWeight
//	– edge to undeclared node       → ErrUnknownNode (only with WithStrictTargets)
//
// Queries:
//
//	HasNode(id string) bool                       // O(1)
//	Node(id string) (Node, error)                 // O(1)
//	Successors(id string) ([]Edge, error)         // O(d), declaration order
//	Heuristic(id string) (float64, error)         // O(1)
//	Nodes() []string                              // O(V), declaration order
//	Order() int / Size() int                      // O(1)
//	EdgeWeight(from, to string) (float64, bool)   // O(d), cheapest parallel edge
//	PathCost(path []string) (float64, error)      // O(Σ d)
//
// Edges pointing at undeclared nodes are allowed by default: a declared node
// with no outgoing edges yields an empty successor list, while an undeclared
// one yields ErrUnknownNode at the moment something asks for it.
package core
