// File: types.go
// Role: sentinel errors, options, and the GridGraph type.

package gridgraph

import (
	"errors"

	"github.com/katalvlaran/lvlath-astar/core"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrOutOfBounds indicates a requested cell lies outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: cell out of bounds")
	// ErrBlocked indicates a requested cell is below LandThreshold.
	ErrBlocked = errors.New("gridgraph: cell is blocked")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// GridOptions contains tunable parameters for grid construction.
type GridOptions struct {
	// LandThreshold specifies the minimum cell value considered passable.
	LandThreshold int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns a GridOptions with default settings:
// LandThreshold=1 (values ≥1 are passable), Conn=Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		LandThreshold: 1,
		Conn:          Conn4,
	}
}

// GridGraph treats a 2D integer grid as a weighted graph. It is immutable once built.
// Width and Height define dimensions; CellValues[y][x] holds the original input value,
// which is also the cost of stepping onto that cell.
type GridGraph struct {
	Width, Height   int
	CellValues      [][]int
	Conn            Connectivity
	LandThreshold   int
	neighborOffsets [][2]int

	graph   *core.Graph
	minCost float64 // cheapest passable cell, scales the heuristic
}
