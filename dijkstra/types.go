// Package dijkstra defines the sentinel errors of the reference
// shortest-path implementation.
package dijkstra

import "errors"

// Sentinel errors returned by the Dijkstra implementation.
//
// Undeclared source or target vertices surface as core.ErrUnknownNode.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrUnreachable indicates ShortestPath found no route to the target.
	ErrUnreachable = errors.New("dijkstra: target unreachable")
)
