package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvlath-astar/core"
)

type AdjacencySuite struct {
	suite.Suite
	g *core.Graph
}

// SetupTest builds a small diamond A→{B,C}→D plus an isolated node E.
func (s *AdjacencySuite) SetupTest() {
	g, err := core.NewGraph([]core.Adjacency{
		{Node: core.Node{ID: "A", H: 3}, Edges: []core.Edge{{To: "C", Weight: 4}, {To: "B", Weight: 1}}},
		{Node: core.Node{ID: "B", H: 2}, Edges: []core.Edge{{To: "D", Weight: 5}}},
		{Node: core.Node{ID: "C", H: 1}, Edges: []core.Edge{{To: "D", Weight: 1}}},
		{Node: core.Node{ID: "D"}},
		{Node: core.Node{ID: "E", H: 7}},
	})
	s.Require().NoError(err)
	s.g = g
}

func (s *AdjacencySuite) TestSuccessorsKeepDeclarationOrder() {
	require := require.New(s.T())
	edges, err := s.g.Successors("A")
	require.NoError(err)
	require.Equal([]core.Edge{{To: "C", Weight: 4}, {To: "B", Weight: 1}}, edges)
}

func (s *AdjacencySuite) TestSuccessorsOfSinkIsEmptyNotError() {
	require := require.New(s.T())
	edges, err := s.g.Successors("D")
	require.NoError(err)
	require.NotNil(edges)
	require.Empty(edges)
}

func (s *AdjacencySuite) TestSuccessorsOfUnknownNode() {
	_, err := s.g.Successors("Z")
	s.Require().ErrorIs(err, core.ErrUnknownNode)
}

func (s *AdjacencySuite) TestSuccessorsReturnsCopy() {
	require := require.New(s.T())
	edges, err := s.g.Successors("A")
	require.NoError(err)
	edges[0].Weight = 100

	again, err := s.g.Successors("A")
	require.NoError(err)
	require.Equal(4.0, again[0].Weight, "graph must not observe caller mutation")
}

func (s *AdjacencySuite) TestHeuristic() {
	require := require.New(s.T())
	h, err := s.g.Heuristic("B")
	require.NoError(err)
	require.Equal(2.0, h)

	_, err = s.g.Heuristic("Z")
	require.ErrorIs(err, core.ErrUnknownNode)
}

func (s *AdjacencySuite) TestNodeLookup() {
	require := require.New(s.T())
	n, err := s.g.Node("E")
	require.NoError(err)
	require.Equal(core.Node{ID: "E", H: 7}, n)
	require.True(s.g.HasNode("E"))
	require.False(s.g.HasNode("Z"))

	_, err = s.g.Node("Z")
	require.ErrorIs(err, core.ErrUnknownNode)
}

func (s *AdjacencySuite) TestCounts() {
	require := require.New(s.T())
	require.Equal(5, s.g.Order())
	require.Equal(4, s.g.Size())
	require.Equal([]string{"A", "B", "C", "D", "E"}, s.g.Nodes())
}

func (s *AdjacencySuite) TestEdgeWeightAndPathCost() {
	require := require.New(s.T())
	w, ok := s.g.EdgeWeight("A", "B")
	require.True(ok)
	require.Equal(1.0, w)

	_, ok = s.g.EdgeWeight("B", "A")
	require.False(ok, "edges are directed")

	cost, err := s.g.PathCost([]string{"A", "C", "D"})
	require.NoError(err)
	require.Equal(5.0, cost)

	cost, err = s.g.PathCost([]string{"E"})
	require.NoError(err)
	require.Zero(cost)

	_, err = s.g.PathCost([]string{"A", "D"})
	require.ErrorIs(err, core.ErrNoEdge)

	_, err = s.g.PathCost([]string{"A", "Z"})
	require.ErrorIs(err, core.ErrUnknownNode)
}

func TestEdgeWeight_ParallelEdgesUseCheapest(t *testing.T) {
	g, err := core.NewGraph([]core.Adjacency{
		{Node: core.Node{ID: "S"}, Edges: []core.Edge{{To: "G", Weight: 8}, {To: "G", Weight: 2}, {To: "G", Weight: 5}}},
		{Node: core.Node{ID: "G"}},
	})
	require.NoError(t, err)
	require.Equal(t, 3, g.Size())

	w, ok := g.EdgeWeight("S", "G")
	require.True(t, ok)
	require.Equal(t, 2.0, w)

	cost, err := g.PathCost([]string{"S", "G"})
	require.NoError(t, err)
	require.Equal(t, 2.0, cost)
}

func TestAdjacencySuite(t *testing.T) {
	suite.Run(t, new(AdjacencySuite))
}

func TestNewGraph_Validation(t *testing.T) {
	cases := []struct {
		name string
		adj  []core.Adjacency
		opts []core.GraphOption
		want error
	}{
		{
			name: "empty id",
			adj:  []core.Adjacency{{Node: core.Node{ID: ""}}},
			want: core.ErrEmptyNodeID,
		},
		{
			name: "duplicate node",
			adj: []core.Adjacency{
				{Node: core.Node{ID: "A"}},
				{Node: core.Node{ID: "B"}},
				{Node: core.Node{ID: "A", H: 1}},
			},
			want: core.ErrDuplicateNode,
		},
		{
			name: "negative weight",
			adj: []core.Adjacency{
				{Node: core.Node{ID: "A"}, Edges: []core.Edge{{To: "B", Weight: -1}}},
				{Node: core.Node{ID: "B"}},
			},
			want: core.ErrNegativeWeight,
		},
		{
			name: "negative heuristic",
			adj:  []core.Adjacency{{Node: core.Node{ID: "A", H: -0.5}}},
			want: core.ErrNegativeHeuristic,
		},
		{
			name: "strict targets rejects dangling edge",
			adj: []core.Adjacency{
				{Node: core.Node{ID: "A"}, Edges: []core.Edge{{To: "ghost", Weight: 1}}},
			},
			opts: []core.GraphOption{core.WithStrictTargets()},
			want: core.ErrUnknownNode,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := core.NewGraph(tc.adj, tc.opts...)
			require.ErrorIs(t, err, tc.want)
			require.Nil(t, g)
		})
	}
}

func TestNewGraph_DanglingEdgeAllowedByDefault(t *testing.T) {
	g, err := core.NewGraph([]core.Adjacency{
		{Node: core.Node{ID: "A"}, Edges: []core.Edge{{To: "ghost", Weight: 1}}},
	})
	require.NoError(t, err)

	edges, err := g.Successors("A")
	require.NoError(t, err)
	require.Len(t, edges, 1)

	_, err = g.Successors("ghost")
	require.ErrorIs(t, err, core.ErrUnknownNode)
}

func TestNewGraph_ZeroWeightAllowed(t *testing.T) {
	g, err := core.NewGraph([]core.Adjacency{
		{Node: core.Node{ID: "A"}, Edges: []core.Edge{{To: "A", Weight: 0}}},
	})
	require.NoError(t, err)
	require.Equal(t, 1, g.Size())
}

func TestNewGraph_InputIsCopied(t *testing.T) {
	adj := []core.Adjacency{
		{Node: core.Node{ID: "A"}, Edges: []core.Edge{{To: "B", Weight: 2}}},
		{Node: core.Node{ID: "B"}},
	}
	g, err := core.NewGraph(adj)
	require.NoError(t, err)

	adj[0].Edges[0].Weight = 9
	w, ok := g.EdgeWeight("A", "B")
	require.True(t, ok)
	require.Equal(t, 2.0, w)
}
