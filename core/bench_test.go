// Package core_test provides benchmarks for core.Graph construction and queries.
package core_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvlath-astar/core"
)

// chain declares V0→V1→…→V(n-1), each with one forward and one backward edge.
func chain(n int) []core.Adjacency {
	adj := make([]core.Adjacency, n)
	for i := 0; i < n; i++ {
		var edges []core.Edge
		if i+1 < n {
			edges = append(edges, core.Edge{To: fmt.Sprintf("V%d", i+1), Weight: 1})
		}
		if i > 0 {
			edges = append(edges, core.Edge{To: fmt.Sprintf("V%d", i-1), Weight: 1})
		}
		adj[i] = core.Adjacency{Node: core.Node{ID: fmt.Sprintf("V%d", i)}, Edges: edges}
	}

	return adj
}

// BenchmarkNewGraph measures validation and copying of a 10k-node chain.
func BenchmarkNewGraph(b *testing.B) {
	adj := chain(10_000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := core.NewGraph(adj); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSuccessors measures the copy cost of a successor lookup.
func BenchmarkSuccessors(b *testing.B) {
	g, err := core.NewGraph(chain(1_000))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.Successors("V500")
	}
}
