// Package gridgraph treats a 2D grid of cells as a weighted graph and
// routes across it with A*.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with tunable LandThreshold.
//   - Cells with value ≥ LandThreshold are passable; the value is the cost
//     of stepping onto the cell. Diagonal steps cost √2 times the value.
//   - Passable cells become nodes "x,y" of an immutable *core.Graph.
//   - Heuristic returns Manhattan (Conn4) or octile (Conn8) distance to a
//     goal, scaled by the cheapest passable cell so it never overestimates.
//
// Why:
//
//   - Game maps: movement over terrain with varying difficulty.
//   - Robotics: occupancy grids with obstacles.
//
// Complexity:
//
//   - NewGridGraph: O(W×H×d), Memory: O(W×H×d)   (d = number of neighbors, 4 or 8).
//   - FindPath:     O((W×H×d) log(W×H)).
//
// Options:
//
//   - GridOptions.LandThreshold: minimum value considered passable.
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds: a requested endpoint lies outside the grid.
//   - ErrBlocked: a requested endpoint is not passable.
package gridgraph
