// File: types.go
// Role: sentinel errors, Result, TiePolicy, and functional options of the
// A* search engine.

package astar

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by FindPath.
//
// Unknown start/goal nodes and malformed graphs surface as core.ErrUnknownNode,
// wrapped with context; test for them with errors.Is.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to FindPath.
	ErrNilGraph = errors.New("astar: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")

	// ErrBadHeuristic indicates a heuristic returned a negative or NaN estimate.
	ErrBadHeuristic = errors.New("astar: heuristic returned a negative or NaN estimate")
)

// HeuristicFunc estimates the remaining cost from a node to the goal.
// It must return core.ErrUnknownNode (possibly wrapped) for nodes it does not know.
type HeuristicFunc func(id string) (float64, error)

// TiePolicy decides whether a successor's parent is replaced when a newly
// discovered path has exactly the same f-cost as the recorded one.
type TiePolicy int

const (
	// TieLastWriter replaces parent and g-cost when the new f is less than
	// or equal to the recorded f: the most recently discovered equal-cost
	// path wins.
	TieLastWriter TiePolicy = iota

	// TieKeepFirst replaces them only when the new f is strictly smaller:
	// the first equal-cost path discovered is kept.
	TieKeepFirst
)

// String returns a readable name for the policy.
func (p TiePolicy) String() string {
	switch p {
	case TieLastWriter:
		return "last-writer"
	case TieKeepFirst:
		return "keep-first"
	default:
		return fmt.Sprintf("TiePolicy(%d)", int(p))
	}
}

// Result is the outcome of one FindPath call.
//
// When Found is false the search exhausted the frontier without reaching the
// goal: Path is nil and Cost is 0, but Expanded still lists every node the
// search processed.
type Result struct {
	// Found reports whether the goal was reached.
	Found bool

	// Path lists node IDs from start to goal inclusive (nil when not found).
	Path []string

	// Expanded lists node IDs in the order they were expanded.
	// The goal itself is never appended.
	Expanded []string

	// Cost is the recorded g-cost of the goal, i.e. the summed edge weight of Path.
	Cost float64
}

// Options configures FindPath.
type Options struct {
	// Heuristic, if non-nil, replaces the graph's static per-node estimate.
	Heuristic HeuristicFunc

	// TiePolicy selects how equal-f rediscoveries are treated.
	TiePolicy TiePolicy

	// OnExpand is called after a node has been expanded, with its g and f.
	OnExpand func(id string, g, f float64)

	// OnRelax is called whenever a successor's g-cost and parent are (re)assigned.
	OnRelax func(from, to string, g float64)

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring FindPath.
type Option func(*Options)

// DefaultOptions returns Options with:
//   - the graph's own heuristic (Heuristic == nil),
//   - TieLastWriter,
//   - no-op hooks.
func DefaultOptions() Options {
	return Options{
		TiePolicy: TieLastWriter,
		OnExpand:  func(string, float64, float64) {},
		OnRelax:   func(string, string, float64) {},
	}
}

// WithHeuristic overrides the per-node heuristic declared in the graph.
// A nil function is recorded as ErrOptionViolation.
func WithHeuristic(fn HeuristicFunc) Option {
	return func(o *Options) {
		if fn == nil {
			o.err = fmt.Errorf("%w: nil heuristic", ErrOptionViolation)
			return
		}
		o.Heuristic = fn
	}
}

// WithTiePolicy selects how equal-f rediscoveries are treated.
// Unknown policies are recorded as ErrOptionViolation.
func WithTiePolicy(p TiePolicy) Option {
	return func(o *Options) {
		if p != TieLastWriter && p != TieKeepFirst {
			o.err = fmt.Errorf("%w: tie policy %v", ErrOptionViolation, p)
			return
		}
		o.TiePolicy = p
	}
}

// WithOnExpand registers a callback run after each expansion.
func WithOnExpand(fn func(id string, g, f float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnRelax registers a callback run on every accepted g-cost update.
func WithOnRelax(fn func(from, to string, g float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRelax = fn
		}
	}
}
