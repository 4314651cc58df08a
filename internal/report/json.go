// Package report provides output formatters for searchpath lookup
// results in JSON and human-readable text formats.
package report

import (
	"encoding/json"
	"io"

	"github.com/tbhb/searchpath"
)

// JSONReport is the top-level JSON output structure.
type JSONReport struct {
	Version string      `json:"version"`
	Matches []JSONMatch `json:"matches"`
}

// JSONMatch is one lookup result in JSON output.
type JSONMatch struct {
	Path     string `json:"path"`
	Scope    string `json:"scope"`
	Source   string `json:"source"`
	Relative string `json:"relative"`
}

// WriteJSON writes lookup results as formatted JSON to the writer.
func WriteJSON(w io.Writer, matches []searchpath.Match, version string) error {
	out := make([]JSONMatch, 0, len(matches))
	for _, m := range matches {
		out = append(out, JSONMatch{
			Path:     m.Path,
			Scope:    m.Scope,
			Source:   m.Source,
			Relative: m.Relative(),
		})
	}
	report := JSONReport{
		Version: version,
		Matches: out,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
