// File: types.go
// Role: Node, Edge, Adjacency, Graph, GraphOption, sentinel errors, and NewGraph.
//
// This file declares Node, Edge, Adjacency, Graph, GraphOption,
// sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyNodeID        - node ID is the empty string.
//	ErrUnknownNode        - requested node was never registered.
//	ErrDuplicateNode      - node ID registered twice in one adjacency list.
//	ErrNegativeWeight     - edge weight is negative or NaN.
//	ErrNegativeHeuristic  - node heuristic is negative or NaN.
//	ErrNoEdge             - a path step has no matching edge.

package core

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates that a Node was declared with an empty ID.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrUnknownNode indicates an operation referenced a node absent from the graph.
	ErrUnknownNode = errors.New("core: unknown node")

	// ErrDuplicateNode indicates that the same node ID was declared more than once.
	ErrDuplicateNode = errors.New("core: duplicate node")

	// ErrNegativeWeight indicates an edge weight below zero (or NaN).
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrNegativeHeuristic indicates a heuristic estimate below zero (or NaN).
	ErrNegativeHeuristic = errors.New("core: negative heuristic")

	// ErrNoEdge indicates two consecutive path nodes are not joined by an edge.
	ErrNoEdge = errors.New("core: no such edge")
)

// Node is a named vertex carrying a static heuristic estimate.
//
// Node is plain data. Two nodes with the same ID are the same node; the
// f-cost is computed by the search engine, never by the node itself.
type Node struct {
	// ID uniquely identifies this Node within its Graph.
	ID string

	// H is the estimated remaining cost from this node to the goal (H ≥ 0).
	H float64
}

// Edge is a directed, weighted reference to a target node.
// A pair of opposite edges is two independent Edge values.
type Edge struct {
	// To is the target node ID.
	To string

	// Weight is the traversal cost (Weight ≥ 0).
	Weight float64
}

// Adjacency declares one node together with its ordered outgoing edges.
// The order of Edges is the order in which Successors reports them.
type Adjacency struct {
	Node  Node
	Edges []Edge
}

// GraphOption configures Graph validation before creation.
type GraphOption func(cfg *graphConfig)

type graphConfig struct {
	strictTargets bool
}

// WithStrictTargets makes NewGraph reject edges whose target is not declared
// as a node. Without it such edges are accepted and only fail, with
// ErrUnknownNode, when a search tries to expand the missing target.
func WithStrictTargets() GraphOption {
	return func(cfg *graphConfig) { cfg.strictTargets = true }
}

// Graph is an immutable adjacency structure.
//
// A Graph never changes after NewGraph returns, so any number of goroutines
// may query it concurrently without locking.
type Graph struct {
	order []string          // node IDs in declaration order
	nodes map[string]Node   // node ID → Node
	adj   map[string][]Edge // node ID → outgoing edges in declaration order
	size  int               // total number of edges
}

// NewGraph builds a Graph from an ordered adjacency declaration.
//
// Validation (in order, per entry):
//  1. Node.ID must be non-empty (ErrEmptyNodeID).
//  2. Node.ID must not repeat (ErrDuplicateNode).
//  3. Node.H must be ≥ 0 (ErrNegativeHeuristic).
//  4. Every Edge.Weight must be ≥ 0 (ErrNegativeWeight).
//  5. With WithStrictTargets, every Edge.To must be declared (ErrUnknownNode).
//
// The input slices are copied; later changes to adjacency do not affect the Graph.
// Complexity: O(V + E).
func NewGraph(adjacency []Adjacency, opts ...GraphOption) (*Graph, error) {
	var cfg graphConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	g := &Graph{
		order: make([]string, 0, len(adjacency)),
		nodes: make(map[string]Node, len(adjacency)),
		adj:   make(map[string][]Edge, len(adjacency)),
	}

	for _, entry := range adjacency {
		id := entry.Node.ID
		if id == "" {
			return nil, ErrEmptyNodeID
		}
		if _, dup := g.nodes[id]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateNode, id)
		}
		if entry.Node.H < 0 || math.IsNaN(entry.Node.H) {
			return nil, fmt.Errorf("%w: node %q h=%v", ErrNegativeHeuristic, id, entry.Node.H)
		}

		edges := make([]Edge, len(entry.Edges))
		for i, e := range entry.Edges {
			if e.Weight < 0 || math.IsNaN(e.Weight) {
				return nil, fmt.Errorf("%w: edge %s→%s weight=%v", ErrNegativeWeight, id, e.To, e.Weight)
			}
			edges[i] = e
		}

		g.order = append(g.order, id)
		g.nodes[id] = entry.Node
		g.adj[id] = edges
		g.size += len(edges)
	}

	if cfg.strictTargets {
		for _, id := range g.order {
			for _, e := range g.adj[id] {
				if _, ok := g.nodes[e.To]; !ok {
					return nil, fmt.Errorf("%w: edge %s→%s targets an undeclared node", ErrUnknownNode, id, e.To)
				}
			}
		}
	}

	return g, nil
}
