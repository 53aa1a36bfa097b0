package astar

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlath-astar/core"
)

// FindPath runs A* on g from start to goal and returns the path found together
// with the ordered list of expanded nodes.
//
// Selection: the open node with the smallest f = h + g is expanded next; among
// equal f the lexicographically smallest ID wins, so results never depend on
// declaration order.
//
// Relaxation: for every successor s of the expanded node that has not itself
// been expanded, tentative = g(current) + w. If s has no recorded g, or
// h(s) + tentative is below the recorded f(s) (or equal to it, under the
// default TieLastWriter policy), then g(s) and parent(s) are reassigned.
// s joins the open set if it is not already there.
//
// Expanded nodes are never reopened. The returned path is optimal when the
// heuristic is consistent; with a merely admissible heuristic a cheaper route
// to an already expanded node is ignored.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrOptionViolation).
//  2. g must be non-nil (ErrNilGraph).
//  3. start and goal must be declared in g (core.ErrUnknownNode).
//
// During the search, core.ErrUnknownNode from Successors or from the heuristic
// (an edge to an undeclared node) aborts the call, as does ErrBadHeuristic.
// A goal that cannot be reached is not an error: Result.Found is false.
//
// Complexity:
//   - Time:  O((V + E) log V) with a consistent heuristic.
//   - Space: O(V) for the per-call maps and the open set.
func FindPath(g *core.Graph, start, goal string, opts ...Option) (Result, error) {
	// 1) Build and validate Options
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result{}, o.err
	}

	// 2) Validate graph and endpoints before any expansion
	if g == nil {
		return Result{}, ErrNilGraph
	}
	if !g.HasNode(start) {
		return Result{}, fmt.Errorf("%w: start %q", core.ErrUnknownNode, start)
	}
	if !g.HasNode(goal) {
		return Result{}, fmt.Errorf("%w: goal %q", core.ErrUnknownNode, goal)
	}

	heuristic := o.Heuristic
	if heuristic == nil {
		heuristic = g.Heuristic
	}

	// 3) Fresh per-call state; nothing here outlives the call.
	n := g.Order()
	r := &runner{
		g:         g,
		opts:      o,
		start:     start,
		goal:      goal,
		heuristic: heuristic,
		open:      newFrontier(n),
		expanded:  make([]string, 0, n),
		closed:    make(map[string]struct{}, n),
		gCost:     make(map[string]float64, n),
		hCost:     make(map[string]float64, n),
		parent:    make(map[string]string, n),
	}

	if err := r.init(); err != nil {
		return Result{}, err
	}

	return r.process()
}

// runner holds the mutable state for a single FindPath execution.
type runner struct {
	g         *core.Graph
	opts      Options
	start     string
	goal      string
	heuristic HeuristicFunc

	open     *frontier           // discovered, not yet expanded
	expanded []string            // expansion order (audit trail)
	closed   map[string]struct{} // membership view of expanded
	gCost    map[string]float64  // best known cost from start
	hCost    map[string]float64  // memoized heuristic values
	parent   map[string]string   // predecessor on the best known path; start has none
}

// init seeds the open set with the start node at g = 0.
func (r *runner) init() error {
	h, err := r.h(r.start)
	if err != nil {
		return err
	}
	r.gCost[r.start] = 0
	r.open.push(r.start, h)

	return nil
}

// process is the main loop: select, test for goal, expand, record.
func (r *runner) process() (Result, error) {
	for r.open.Len() > 0 {
		// a) + c) take the open node with the smallest (f, id)
		current, f := r.open.popMin()

		// b) goal reached: the goal itself is not recorded as expanded
		if current == r.goal {
			return Result{
				Found:    true,
				Path:     r.reconstruct(),
				Expanded: r.expanded,
				Cost:     r.gCost[r.goal],
			}, nil
		}

		// d) relax successors
		if err := r.relax(current); err != nil {
			return Result{}, err
		}

		// e) record the expansion
		r.expanded = append(r.expanded, current)
		r.closed[current] = struct{}{}
		r.opts.OnExpand(current, r.gCost[current], f)
	}

	return Result{Found: false, Expanded: r.expanded}, nil
}

// relax walks the successors of current in declaration order and updates
// g-cost, parent, and the open set.
func (r *runner) relax(current string) error {
	edges, err := r.g.Successors(current)
	if err != nil {
		return fmt.Errorf("astar: expanding %q: %w", current, err)
	}

	gCurrent := r.gCost[current]
	for _, e := range edges {
		s := e.To

		// Expanded nodes are final. A self-loop can never shorten the path to
		// current and would make current its own parent.
		if _, done := r.closed[s]; done || s == current {
			continue
		}

		hs, err := r.h(s)
		if err != nil {
			return fmt.Errorf("astar: successor of %q: %w", current, err)
		}

		tentative := gCurrent + e.Weight
		fNew := hs + tentative
		gOld, seen := r.gCost[s]
		if !seen || r.improves(fNew, hs+gOld) {
			r.gCost[s] = tentative
			r.parent[s] = current
			r.opts.OnRelax(current, s, tentative)
			r.open.update(s, fNew)
		}

		if !r.open.contains(s) {
			r.open.push(s, r.hCost[s]+r.gCost[s])
		}
	}

	return nil
}

// improves compares a candidate f against the recorded one under the tie policy.
func (r *runner) improves(fNew, fOld float64) bool {
	if r.opts.TiePolicy == TieKeepFirst {
		return fNew < fOld
	}

	return fNew <= fOld
}

// h returns the memoized heuristic value of id.
func (r *runner) h(id string) (float64, error) {
	if v, ok := r.hCost[id]; ok {
		return v, nil
	}
	v, err := r.heuristic(id)
	if err != nil {
		return 0, err
	}
	if v < 0 || math.IsNaN(v) {
		return 0, fmt.Errorf("%w: h(%q)=%v", ErrBadHeuristic, id, v)
	}
	r.hCost[id] = v

	return v, nil
}

// reconstruct follows parent pointers from goal back to start and reverses them.
func (r *runner) reconstruct() []string {
	path := []string{r.goal}
	for id := r.goal; id != r.start; {
		prev, ok := r.parent[id]
		if !ok {
			break
		}
		path = append(path, prev)
		id = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
