package gridgraph

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlath-astar/astar"
	"github.com/katalvlaran/lvlath-astar/core"
)

var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice
// and builds its core.Graph.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs, and core.ErrNegativeWeight
// when LandThreshold admits negative cell values.
// Algorithmic complexity: O(W×H×d) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}
	offsets := offsets4
	if opts.Conn == Conn8 {
		offsets = offsets8
	}
	gg := &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		Conn:            opts.Conn,
		LandThreshold:   opts.LandThreshold,
		neighborOffsets: offsets,
	}
	if err := gg.build(); err != nil {
		return nil, err
	}

	return gg, nil
}

// build emits one adjacency entry per passable cell in row-major order.
func (gg *GridGraph) build() error {
	adj := make([]core.Adjacency, 0, gg.Width*gg.Height)
	gg.minCost = math.Inf(1)
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.Passable(x, y) {
				continue
			}
			gg.minCost = math.Min(gg.minCost, float64(gg.CellValues[y][x]))
			entry := core.Adjacency{Node: core.Node{ID: VertexID(x, y)}}
			for _, d := range gg.neighborOffsets {
				nx, ny := x+d[0], y+d[1]
				if !gg.Passable(nx, ny) {
					continue
				}
				step := 1.0
				if d[0] != 0 && d[1] != 0 {
					step = math.Sqrt2
				}
				entry.Edges = append(entry.Edges, core.Edge{
					To:     VertexID(nx, ny),
					Weight: step * float64(gg.CellValues[ny][nx]),
				})
			}
			adj = append(adj, entry)
		}
	}
	if math.IsInf(gg.minCost, 1) || gg.minCost < 0 {
		gg.minCost = 0
	}

	g, err := core.NewGraph(adj)
	if err != nil {
		return fmt.Errorf("gridgraph: %w", err)
	}
	gg.graph = g

	return nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// Passable reports whether (x,y) is in bounds and at or above LandThreshold.
func (gg *GridGraph) Passable(x, y int) bool {
	return gg.InBounds(x, y) && gg.CellValues[y][x] >= gg.LandThreshold
}

// NeighborOffsets returns the precomputed neighbor offsets slice.
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// VertexID formats the node identifier for cell (x,y).
func VertexID(x, y int) string {
	return fmt.Sprintf("%d,%d", x, y)
}

// Coordinate parses a node identifier produced by VertexID.
func Coordinate(id string) (x, y int, err error) {
	if _, err = fmt.Sscanf(id, "%d,%d", &x, &y); err != nil {
		return 0, 0, fmt.Errorf("%w: %q", core.ErrUnknownNode, id)
	}

	return x, y, nil
}

// Graph returns the immutable graph of passable cells.
func (gg *GridGraph) Graph() *core.Graph {
	return gg.graph
}

// Heuristic returns the grid distance from any cell to (gx,gy): Manhattan
// under Conn4, octile under Conn8, times the cheapest passable cell value.
func (gg *GridGraph) Heuristic(gx, gy int) astar.HeuristicFunc {
	return func(id string) (float64, error) {
		x, y, err := Coordinate(id)
		if err != nil {
			return 0, err
		}
		dx := math.Abs(float64(x - gx))
		dy := math.Abs(float64(y - gy))
		if gg.Conn == Conn8 {
			lo, hi := math.Min(dx, dy), math.Max(dx, dy)
			return gg.minCost * (hi + (math.Sqrt2-1)*lo), nil
		}

		return gg.minCost * (dx + dy), nil
	}
}

// FindPath runs A* from (sx,sy) to (gx,gy) with the grid heuristic.
// Options in opts are applied after the heuristic and may override it.
// Returns ErrOutOfBounds or ErrBlocked for an unusable endpoint.
func (gg *GridGraph) FindPath(sx, sy, gx, gy int, opts ...astar.Option) (astar.Result, error) {
	for _, c := range [][2]int{{sx, sy}, {gx, gy}} {
		if !gg.InBounds(c[0], c[1]) {
			return astar.Result{}, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, c[0], c[1])
		}
		if !gg.Passable(c[0], c[1]) {
			return astar.Result{}, fmt.Errorf("%w: (%d,%d)", ErrBlocked, c[0], c[1])
		}
	}
	all := make([]astar.Option, 0, len(opts)+1)
	all = append(all, astar.WithHeuristic(gg.Heuristic(gx, gy)))
	all = append(all, opts...)

	return astar.FindPath(gg.graph, VertexID(sx, sy), VertexID(gx, gy), all...)
}
