// Package graphio reads graph documents into core.Graph values and renders
// astar.Result values for people and programs.
package graphio

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlath-astar/core"
)

// ErrDecode wraps every failure to parse a graph document.
var ErrDecode = errors.New("graphio: cannot decode graph document")

// Document is the on-disk form of a graph: an ordered list of nodes, each with
// its heuristic and ordered outgoing edges. Start and Goal are optional
// defaults for a query against the graph.
//
// Because JSON is a subset of YAML, the same decoder reads both formats.
type Document struct {
	Start string     `yaml:"start,omitempty" json:"start,omitempty"`
	Goal  string     `yaml:"goal,omitempty" json:"goal,omitempty"`
	Nodes []NodeSpec `yaml:"nodes" json:"nodes"`
}

// NodeSpec declares one node.
type NodeSpec struct {
	ID    string     `yaml:"id" json:"id"`
	H     float64    `yaml:"h" json:"h"`
	Edges []EdgeSpec `yaml:"edges,omitempty" json:"edges,omitempty"`
}

// EdgeSpec declares one directed edge.
type EdgeSpec struct {
	To     string  `yaml:"to" json:"to"`
	Weight float64 `yaml:"weight" json:"weight"`
}

// Decode parses a single YAML or JSON document from r.
// Unknown fields are rejected so that typos ("wieght") do not silently become zero.
func Decode(r io.Reader) (Document, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return Document{}, fmt.Errorf("%w: empty document", ErrDecode)
		}
		return Document{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return doc, nil
}

// Encode writes doc as YAML.
func Encode(w io.Writer, doc Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("graphio: encode: %w", err)
	}

	return enc.Close()
}

// Graph validates the document and builds the corresponding core.Graph.
// Validation errors are core's sentinels (ErrDuplicateNode, ErrNegativeWeight, …).
func (d Document) Graph(opts ...core.GraphOption) (*core.Graph, error) {
	adj := make([]core.Adjacency, len(d.Nodes))
	for i, n := range d.Nodes {
		edges := make([]core.Edge, len(n.Edges))
		for j, e := range n.Edges {
			edges[j] = core.Edge{To: e.To, Weight: e.Weight}
		}
		adj[i] = core.Adjacency{Node: core.Node{ID: n.ID, H: n.H}, Edges: edges}
	}

	return core.NewGraph(adj, opts...)
}

// FromGraph converts g back into a Document, preserving declaration order.
func FromGraph(g *core.Graph) Document {
	ids := g.Nodes()
	doc := Document{Nodes: make([]NodeSpec, 0, len(ids))}
	for _, id := range ids {
		n, _ := g.Node(id)
		edges, _ := g.Successors(id)
		spec := NodeSpec{ID: id, H: n.H}
		for _, e := range edges {
			spec.Edges = append(spec.Edges, EdgeSpec{To: e.To, Weight: e.Weight})
		}
		doc.Nodes = append(doc.Nodes, spec)
	}

	return doc
}

// LoadDocument reads and decodes the file at path.
func LoadDocument(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return Document{}, fmt.Errorf("graphio: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Load reads the file at path and builds its graph.
func Load(path string, opts ...core.GraphOption) (*core.Graph, error) {
	doc, err := LoadDocument(path)
	if err != nil {
		return nil, err
	}

	return doc.Graph(opts...)
}
