// Command astar loads a graph document, runs an A* search between two of its
// nodes, and prints the expanded nodes and the path found.
//
// Usage:
//
//	astar [-graph file.yaml] [-from ID] [-to ID] [-tie last-writer|keep-first]
//	      [-json] [-verify] [-strict] [-dump]
//
// Without -graph the built-in six-node reference graph is searched from
// Start to Goal. -from/-to default to the document's start/goal fields.
//
// Exit status: 0 when a path is found, 1 when none exists, 2 on usage,
// input, or graph errors.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"

	"github.com/katalvlaran/lvlath-astar/astar"
	"github.com/katalvlaran/lvlath-astar/core"
	"github.com/katalvlaran/lvlath-astar/dijkstra"
	"github.com/katalvlaran/lvlath-astar/graphio"
)

const (
	exitFound    = 0
	exitNotFound = 1
	exitError    = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is main without the process boundary, so tests can drive it.
func run(args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "astar: ", 0)

	fs := flag.NewFlagSet("astar", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		graphPath = fs.String("graph", "", "YAML or JSON graph document (default: built-in reference graph)")
		from      = fs.String("from", "", "start node ID (default: document start)")
		to        = fs.String("to", "", "goal node ID (default: document goal)")
		tie       = fs.String("tie", astar.TieLastWriter.String(), "equal-f parent policy: last-writer or keep-first")
		asJSON    = fs.Bool("json", false, "print the result as JSON")
		verify    = fs.Bool("verify", false, "compare the path cost with Dijkstra and warn on mismatch")
		strict    = fs.Bool("strict", false, "reject edges to undeclared nodes at load time")
		dump      = fs.Bool("dump", false, "print the graph as YAML and exit")
	)
	if err := fs.Parse(args); err != nil {
		return exitError
	}

	policy, err := parseTie(*tie)
	if err != nil {
		logger.Println(err)
		return exitError
	}

	doc := referenceDocument()
	if *graphPath != "" {
		if doc, err = graphio.LoadDocument(*graphPath); err != nil {
			logger.Println(err)
			return exitError
		}
	}

	var gopts []core.GraphOption
	if *strict {
		gopts = append(gopts, core.WithStrictTargets())
	}
	g, err := doc.Graph(gopts...)
	if err != nil {
		logger.Println(err)
		return exitError
	}

	if *dump {
		if err := graphio.Encode(stdout, graphio.FromGraph(g)); err != nil {
			logger.Println(err)
			return exitError
		}
		return exitFound
	}

	start, goal := firstNonEmpty(*from, doc.Start), firstNonEmpty(*to, doc.Goal)
	if start == "" || goal == "" {
		logger.Println("both -from and -to are required when the document names no start/goal")
		return exitError
	}

	res, err := astar.FindPath(g, start, goal, astar.WithTiePolicy(policy))
	if err != nil {
		logger.Println(err)
		return exitError
	}

	if *verify && res.Found {
		verifyCost(logger, g, start, goal, res.Cost)
	}

	if *asJSON {
		err = graphio.WriteJSON(stdout, res)
	} else {
		err = graphio.WriteText(stdout, res)
	}
	if err != nil {
		logger.Println(err)
		return exitError
	}
	if !res.Found {
		return exitNotFound
	}

	return exitFound
}

// verifyCost logs a warning when A* returned a costlier path than Dijkstra,
// which happens only with an inconsistent heuristic.
func verifyCost(logger *log.Logger, g *core.Graph, start, goal string, cost float64) {
	_, best, err := dijkstra.ShortestPath(g, start, goal)
	if err != nil {
		logger.Printf("verify: %v", err)
		return
	}
	if math.Abs(best-cost) > 1e-9 {
		logger.Printf("verify: path cost %g exceeds optimum %g; the heuristic is not consistent", cost, best)
		return
	}
	logger.Printf("verify: path cost %g is optimal", cost)
}

func parseTie(s string) (astar.TiePolicy, error) {
	switch s {
	case astar.TieLastWriter.String():
		return astar.TieLastWriter, nil
	case astar.TieKeepFirst.String():
		return astar.TieKeepFirst, nil
	default:
		return 0, fmt.Errorf("unknown -tie value %q", s)
	}
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}

	return b
}

// referenceDocument is the six-node graph searched when no -graph is given.
func referenceDocument() graphio.Document {
	e := func(to string, w float64) graphio.EdgeSpec { return graphio.EdgeSpec{To: to, Weight: w} }

	return graphio.Document{
		Start: "Start",
		Goal:  "Goal",
		Nodes: []graphio.NodeSpec{
			{ID: "Start", H: 0, Edges: []graphio.EdgeSpec{e("A", 2), e("B", 3), e("D", 5)}},
			{ID: "A", H: 2, Edges: []graphio.EdgeSpec{e("Start", 2), e("C", 4)}},
			{ID: "B", H: 5, Edges: []graphio.EdgeSpec{e("Start", 3), e("D", 4)}},
			{ID: "C", H: 2, Edges: []graphio.EdgeSpec{e("A", 4), e("D", 1), e("Goal", 2)}},
			{ID: "D", H: 1, Edges: []graphio.EdgeSpec{e("Start", 5), e("B", 4), e("C", 1), e("Goal", 5)}},
			{ID: "Goal", H: 0, Edges: []graphio.EdgeSpec{e("C", 2), e("D", 5)}},
		},
	}
}
