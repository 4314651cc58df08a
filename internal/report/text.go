package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/tbhb/searchpath"
)

// WriteText writes lookup results as human-readable styled text to the
// writer, one section per scope in priority order. Output uses lipgloss
// for color and formatting when the output is a TTY; degrades
// gracefully for pipes and CI.
func WriteText(w io.Writer, matches []searchpath.Match) error {
	s := DefaultStyles()

	scopes := 0
	for _, section := range groupByScope(matches) {
		if scopes > 0 {
			fmt.Fprintln(w)
		}
		writeScopeSection(w, section, s, scopes)
		scopes++
	}

	fmt.Fprintf(w, "\n%s\n",
		s.Header.Render(fmt.Sprintf(
			"%d match(es) across %d scope(s)", len(matches), scopes)))

	return nil
}

// groupByScope splits matches into runs sharing a scope, preserving
// priority order. A scope interleaved with others produces one section
// per run.
func groupByScope(matches []searchpath.Match) [][]searchpath.Match {
	var sections [][]searchpath.Match
	for _, m := range matches {
		n := len(sections)
		if n == 0 || sections[n-1][0].Scope != m.Scope {
			sections = append(sections, []searchpath.Match{m})
			continue
		}
		sections[n-1] = append(sections[n-1], m)
	}
	return sections
}

func writeScopeSection(w io.Writer, section []searchpath.Match, s Styles, index int) {
	fmt.Fprintln(w, s.Header.Render(fmt.Sprintf("=== %s ===", section[0].Scope)))
	fmt.Fprintln(w, s.SubHeader.Render(fmt.Sprintf("    %s", section[0].Source)))
	fmt.Fprintln(w)

	// Budget: 80 cols total. Borders take 3 (one each side + 1 inner).
	// Padding: 1 space each side per column = 4 for 2 columns.
	// Available: 76 - 3 - 4 = 69. Split 24 / 45.
	const maxRel = 45
	rows := make([][]string, 0, len(section))
	for _, m := range section {
		rel := m.Relative()
		if len(rel) > maxRel {
			rel = "..." + rel[len(rel)-maxRel+3:]
		}
		rows = append(rows, []string{m.Scope, rel})
	}

	t := table.New().
		Width(76). // Leave 4 chars for left indent.
		Border(lipgloss.NormalBorder()).
		BorderStyle(s.Border).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return s.TableHeader
			}
			if col == 0 {
				return s.ScopeStyle(index)
			}
			return s.TableCell
		}).
		Headers("SCOPE", "RELATIVE PATH").
		Rows(rows...)

	fmt.Fprintln(w, t)
}
