// Package lvlath is the root of an in-memory toolkit for minimum-cost path
// search with A* over small, immutable, weighted directed graphs.
//
// What is inside?
//
//	core/       immutable Graph built from an ordered adjacency list, with per-node heuristics
//	astar/      A* search returning the path, its cost, and the expansion order
//	dijkstra/   exact shortest paths, used to cross-check A* results
//	graphio/    YAML/JSON graph documents and result reports
//	geonet/     located waypoints (orb) with an R-tree snap index and distance heuristics
//	gridgraph/  2D terrain grids with Manhattan/octile heuristics
//	cmd/astar   command-line front end over graphio and astar
//
// Reference graph shipped with cmd/astar (undirected weights, h in brackets):
//
//	Start[0] ─2─ A[2]     Start ─3─ B[5]     Start ─5─ D[1]
//	A ─4─ C[2]            B ─4─ D            C ─1─ D
//	C ─2─ Goal[0]         D ─5─ Goal
//
// Every edge is stored in both directions. The search expands Start, A, D, B, C and returns
// Start → D → C → Goal at cost 8.
//
//	go get github.com/katalvlaran/lvlath-astar
package lvlath
