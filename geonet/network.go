// Package geonet builds core.Graph values from located waypoints and routes
// between arbitrary coordinates with A*, using straight-line distance to the
// goal as the heuristic.
//
// Coordinates are orb.Point values. Each query snaps its endpoints to the
// nearest waypoint through an R-tree, then runs astar.FindPath with a
// heuristic computed for that goal. The heuristic is admissible as long as
// every link costs at least the distance between its endpoints, which holds
// for links whose weight is left at zero (the distance is used).
package geonet

import (
	"errors"
	"fmt"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/planar"

	"github.com/katalvlaran/lvlath-astar/astar"
	"github.com/katalvlaran/lvlath-astar/core"
)

// ErrEmptyNetwork is returned when snapping a point on a network without waypoints.
var ErrEmptyNetwork = errors.New("geonet: network has no waypoints")

// snapTolerance is the half-side of the square each waypoint occupies in the R-tree.
const snapTolerance = 1e-9

// Waypoint is a named location.
type Waypoint struct {
	ID    string
	Point orb.Point
}

// Link is a directed connection between two waypoints.
// A zero Weight means "use the metric distance between the endpoints".
type Link struct {
	From, To string
	Weight   float64
}

// Metric measures the distance between two points.
type Metric func(a, b orb.Point) float64

// Options configures NewNetwork.
type Options struct {
	// Metric is used for zero-weight links and for the heuristic.
	Metric Metric

	// Bidirectional adds the reverse of every link.
	Bidirectional bool
}

// Option is a functional option for NewNetwork.
type Option func(*Options)

// WithPlanar measures Euclidean distance in coordinate units. This is the default.
func WithPlanar() Option {
	return func(o *Options) { o.Metric = planar.Distance }
}

// WithGeodesic treats points as [lon, lat] and measures great-circle distance in meters.
func WithGeodesic() Option {
	return func(o *Options) { o.Metric = geo.Distance }
}

// WithBidirectional adds the reverse of every link with the same weight.
func WithBidirectional() Option {
	return func(o *Options) { o.Bidirectional = true }
}

// Network is an immutable located graph plus its spatial index.
type Network struct {
	graph  *core.Graph
	points map[string]orb.Point
	tree   *rtreego.Rtree
	metric Metric
}

// waypointEntry wraps a waypoint for R-tree storage.
type waypointEntry struct {
	id   string
	bbox rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *waypointEntry) Bounds() rtreego.Rect { return e.bbox }

// NewNetwork validates waypoints and links and builds the graph and index.
//
// Errors:
//   - core.ErrEmptyNodeID, core.ErrDuplicateNode for bad waypoints.
//   - core.ErrUnknownNode for a link endpoint that is not a waypoint.
//   - core.ErrNegativeWeight for a negative link weight.
func NewNetwork(points []Waypoint, links []Link, opts ...Option) (*Network, error) {
	o := Options{Metric: planar.Distance}
	for _, opt := range opts {
		opt(&o)
	}

	n := &Network{
		points: make(map[string]orb.Point, len(points)),
		tree:   rtreego.NewTree(2, 25, 50),
		metric: o.Metric,
	}

	index := make(map[string]int, len(points))
	adj := make([]core.Adjacency, len(points))
	for i, wp := range points {
		if wp.ID == "" {
			return nil, core.ErrEmptyNodeID
		}
		if _, dup := n.points[wp.ID]; dup {
			return nil, fmt.Errorf("%w: waypoint %q", core.ErrDuplicateNode, wp.ID)
		}
		n.points[wp.ID] = wp.Point
		index[wp.ID] = i
		adj[i].Node = core.Node{ID: wp.ID}

		bbox, err := rtreego.NewRect(
			rtreego.Point{wp.Point.X() - snapTolerance, wp.Point.Y() - snapTolerance},
			[]float64{2 * snapTolerance, 2 * snapTolerance},
		)
		if err != nil {
			return nil, fmt.Errorf("geonet: index waypoint %q: %w", wp.ID, err)
		}
		n.tree.Insert(&waypointEntry{id: wp.ID, bbox: bbox})
	}

	add := func(from, to string, w float64) {
		adj[index[from]].Edges = append(adj[index[from]].Edges, core.Edge{To: to, Weight: w})
	}
	for _, l := range links {
		a, okA := n.points[l.From]
		b, okB := n.points[l.To]
		if !okA || !okB {
			return nil, fmt.Errorf("%w: link %s→%s", core.ErrUnknownNode, l.From, l.To)
		}
		w := l.Weight
		if w == 0 {
			w = n.metric(a, b)
		}
		add(l.From, l.To, w)
		if o.Bidirectional {
			add(l.To, l.From, w)
		}
	}

	g, err := core.NewGraph(adj, core.WithStrictTargets())
	if err != nil {
		return nil, err
	}
	n.graph = g

	return n, nil
}

// Graph returns the underlying immutable graph.
func (n *Network) Graph() *core.Graph { return n.graph }

// Point returns the location of waypoint id.
func (n *Network) Point(id string) (orb.Point, bool) {
	p, ok := n.points[id]

	return p, ok
}

// Nearest returns the ID of the waypoint closest to p.
// Distances for the lookup are measured in coordinate space.
func (n *Network) Nearest(p orb.Point) (string, error) {
	if len(n.points) == 0 {
		return "", ErrEmptyNetwork
	}
	hit := n.tree.NearestNeighbor(rtreego.Point{p.X(), p.Y()})
	if hit == nil {
		return "", ErrEmptyNetwork
	}

	return hit.(*waypointEntry).id, nil
}

// Heuristic returns the straight-line distance from any waypoint to goal.
func (n *Network) Heuristic(goal string) (astar.HeuristicFunc, error) {
	target, ok := n.points[goal]
	if !ok {
		return nil, fmt.Errorf("%w: goal %q", core.ErrUnknownNode, goal)
	}

	return func(id string) (float64, error) {
		p, ok := n.points[id]
		if !ok {
			return 0, fmt.Errorf("%w: %q", core.ErrUnknownNode, id)
		}
		return n.metric(p, target), nil
	}, nil
}

// RouteBetween runs A* between two waypoints with the distance heuristic.
// Options in opts are applied after the heuristic and may override it.
func (n *Network) RouteBetween(start, goal string, opts ...astar.Option) (astar.Result, error) {
	h, err := n.Heuristic(goal)
	if err != nil {
		return astar.Result{}, err
	}
	all := make([]astar.Option, 0, len(opts)+1)
	all = append(all, astar.WithHeuristic(h))
	all = append(all, opts...)

	return astar.FindPath(n.graph, start, goal, all...)
}

// Route snaps from and to onto their nearest waypoints and routes between them.
func (n *Network) Route(from, to orb.Point, opts ...astar.Option) (astar.Result, error) {
	start, err := n.Nearest(from)
	if err != nil {
		return astar.Result{}, err
	}
	goal, err := n.Nearest(to)
	if err != nil {
		return astar.Result{}, err
	}

	return n.RouteBetween(start, goal, opts...)
}
