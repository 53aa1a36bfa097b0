package astar_test

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-astar/astar"
	"github.com/katalvlaran/lvlath-astar/core"
	"github.com/katalvlaran/lvlath-astar/dijkstra"
)

// randomAdjacency declares n vertices V0..V(n-1) with about n*deg random
// directed edges of integer weight in [1, 10]. The generator is seeded so
// every run sees the same graphs.
func randomAdjacency(seed int64, n, deg int) []core.Adjacency {
	r := rand.New(rand.NewSource(seed))
	adj := make([]core.Adjacency, n)
	for i := 0; i < n; i++ {
		adj[i].Node = core.Node{ID: fmt.Sprintf("V%d", i)}
		for k := 0; k < deg; k++ {
			j := r.Intn(n)
			if j == i {
				continue
			}
			adj[i].Edges = append(adj[i].Edges, core.Edge{
				To:     fmt.Sprintf("V%d", j),
				Weight: float64(1 + r.Intn(10)),
			})
		}
	}

	return adj
}

// reversed flips every edge of adj, keeping node declarations.
func reversed(adj []core.Adjacency) []core.Adjacency {
	idx := make(map[string]int, len(adj))
	out := make([]core.Adjacency, len(adj))
	for i, a := range adj {
		idx[a.Node.ID] = i
		out[i].Node = a.Node
	}
	for _, a := range adj {
		for _, e := range a.Edges {
			j := idx[e.To]
			out[j].Edges = append(out[j].Edges, core.Edge{To: a.Node.ID, Weight: e.Weight})
		}
	}

	return out
}

// exactHeuristic returns h(v) = true distance v→goal, a consistent heuristic.
// Vertices that cannot reach goal get a large finite value.
func exactHeuristic(t *testing.T, adj []core.Adjacency, goal string) astar.HeuristicFunc {
	t.Helper()
	rg, err := core.NewGraph(reversed(adj))
	require.NoError(t, err)
	toGoal, err := dijkstra.Distances(rg, goal)
	require.NoError(t, err)

	return func(id string) (float64, error) {
		d, ok := toGoal[id]
		if !ok {
			return 0, core.ErrUnknownNode
		}
		if math.IsInf(d, 1) {
			return 1e9, nil
		}
		return d, nil
	}
}

// TestOptimalityAgainstDijkstra compares A* with consistent heuristics
// (zero and exact) against Dijkstra on seeded random graphs.
func TestOptimalityAgainstDijkstra(t *testing.T) {
	const n = 40
	for seed := int64(1); seed <= 25; seed++ {
		adj := randomAdjacency(seed, n, 3)
		g, err := core.NewGraph(adj)
		require.NoError(t, err)

		start, goal := "V0", fmt.Sprintf("V%d", n-1)
		dist, err := dijkstra.Distances(g, start)
		require.NoError(t, err)

		heuristics := map[string][]astar.Option{
			"declared-zero": nil,
			"exact":         {astar.WithHeuristic(exactHeuristic(t, adj, goal))},
		}
		for name, opts := range heuristics {
			res, err := astar.FindPath(g, start, goal, opts...)
			require.NoError(t, err, "seed %d %s", seed, name)

			if math.IsInf(dist[goal], 1) {
				require.False(t, res.Found, "seed %d %s", seed, name)
				continue
			}
			require.True(t, res.Found, "seed %d %s", seed, name)
			require.Equal(t, dist[goal], res.Cost, "seed %d %s", seed, name)

			walked, err := g.PathCost(res.Path)
			require.NoError(t, err)
			require.Equal(t, res.Cost, walked, "seed %d %s", seed, name)
		}
	}
}

// TestExactHeuristicExpandsLess checks that a perfect heuristic never
// expands more nodes than the zero heuristic on the same query.
func TestExactHeuristicExpandsLess(t *testing.T) {
	adj := randomAdjacency(7, 60, 3)
	g, err := core.NewGraph(adj)
	require.NoError(t, err)

	blind, err := astar.FindPath(g, "V0", "V59")
	require.NoError(t, err)
	informed, err := astar.FindPath(g, "V0", "V59", astar.WithHeuristic(exactHeuristic(t, adj, "V59")))
	require.NoError(t, err)

	require.Equal(t, blind.Found, informed.Found)
	require.LessOrEqual(t, len(informed.Expanded), len(blind.Expanded))
}
