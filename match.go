package searchpath

import "path/filepath"

// Match is a lookup result with provenance: which entry produced the
// path, and from which root.
type Match struct {
	// Path is the absolute path of the matched file or directory.
	Path string `json:"path"`

	// Scope is the scope label of the entry that produced the match.
	Scope string `json:"scope"`

	// Source is the absolute root directory the match was found under.
	Source string `json:"source"`
}

// Relative returns Path relative to Source in slash form. When Path
// cannot be made relative, it falls back to Path in slash form.
func (m Match) Relative() string {
	rel, err := filepath.Rel(m.Source, m.Path)
	if err != nil {
		return filepath.ToSlash(m.Path)
	}
	return filepath.ToSlash(rel)
}
