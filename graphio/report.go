package graphio

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/lvlath-astar/astar"
)

// WriteText prints a search result in the classic two-line report:
//
//	Parsed nodes:  Start - A - D - B - C
//	Path found:  Start - D - C - Goal
//	Cost: 8
//
// or a single "No path found" line when the goal was not reached.
func WriteText(w io.Writer, res astar.Result) error {
	if !res.Found {
		_, err := fmt.Fprintln(w, "No path found")
		return err
	}
	_, err := fmt.Fprintf(w, "Parsed nodes:  %s\nPath found:  %s\nCost: %g\n",
		strings.Join(res.Expanded, " - "),
		strings.Join(res.Path, " - "),
		res.Cost,
	)

	return err
}

// report is the JSON shape of a search result.
type report struct {
	Found    bool     `json:"found"`
	Path     []string `json:"path"`
	Expanded []string `json:"expanded"`
	Cost     float64  `json:"cost"`
}

// WriteJSON prints res as one indented JSON object. Path and Expanded are
// always arrays, never null.
func WriteJSON(w io.Writer, res astar.Result) error {
	out := report{
		Found:    res.Found,
		Path:     res.Path,
		Expanded: res.Expanded,
		Cost:     res.Cost,
	}
	if out.Path == nil {
		out.Path = []string{}
	}
	if out.Expanded == nil {
		out.Expanded = []string{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(out)
}
