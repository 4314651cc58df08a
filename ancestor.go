package searchpath

import (
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// AncestorPatterns holds patterns gathered from named pattern files in
// a candidate's ancestor directories. Patterns from directories closer
// to the root appear first, so deeper files refine their ancestors the
// way nested gitignore files do.
type AncestorPatterns struct {
	Include []string
	Exclude []string
}

// CollectAncestorPatterns walks from entryRoot down to filePath's
// parent directory and gathers patterns from any include or exclude
// pattern files found along the way. includeName and excludeName are
// the file names to look for; an empty name disables that side. The
// walk never leaves entryRoot: if filePath is not beneath it, the
// result is empty.
//
// Unlike LoadPatterns, ancestor loading is lenient: unreadable or
// malformed files contribute nothing. cache, keyed by pattern-file
// path, avoids re-reading shared ancestors across candidates in one
// lookup; pass nil to disable caching.
func CollectAncestorPatterns(filePath, entryRoot, includeName, excludeName string, cache map[string][]string) AncestorPatterns {
	if includeName == "" && excludeName == "" {
		return AncestorPatterns{}
	}

	var ap AncestorPatterns
	for _, dir := range ancestorChain(filePath, entryRoot) {
		if includeName != "" {
			ap.Include = append(ap.Include, loadPatternsLenient(filepath.Join(dir, includeName), cache)...)
		}
		if excludeName != "" {
			ap.Exclude = append(ap.Exclude, loadPatternsLenient(filepath.Join(dir, excludeName), cache)...)
		}
	}
	return ap
}

// ancestorChain returns the directories from entryRoot to filePath's
// parent, inclusive, ordered root first. Empty when filePath does not
// sit beneath entryRoot.
func ancestorChain(filePath, entryRoot string) []string {
	rel, err := filepath.Rel(entryRoot, filepath.Dir(filePath))
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return nil
	}

	chain := []string{entryRoot}
	if rel == "." {
		return chain
	}
	dir := entryRoot
	for part := range strings.SplitSeq(filepath.ToSlash(rel), "/") {
		dir = filepath.Join(dir, part)
		chain = append(chain, dir)
	}
	return chain
}

// loadPatternsLenient reads a pattern file, returning nil on any
// failure. Results are memoized in cache when one is supplied.
func loadPatternsLenient(path string, cache map[string][]string) []string {
	if cache != nil {
		if patterns, ok := cache[path]; ok {
			return patterns
		}
	}

	var patterns []string
	if content, err := os.ReadFile(path); err == nil && utf8.Valid(content) {
		patterns = parsePatternLines(string(content))
	}

	if cache != nil {
		cache[path] = patterns
	}
	return patterns
}

// MergePatterns combines ancestor patterns with inline patterns,
// ancestor patterns first. Returns nil when both are empty.
func MergePatterns(ancestor, inline []string) []string {
	if len(ancestor) == 0 && len(inline) == 0 {
		return nil
	}
	merged := make([]string, 0, len(ancestor)+len(inline))
	merged = append(merged, ancestor...)
	return append(merged, inline...)
}
