package searchpath

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Entry is one search root with a scope label describing where it came
// from (project, user, system, ...).
type Entry struct {
	Scope string
	Root  string
}

// Scoped returns an entry with an explicit scope label.
func Scoped(scope, root string) Entry {
	return Entry{Scope: scope, Root: root}
}

// Dir returns an unscoped entry. New assigns it a positional scope
// label of the form "dir0", "dir1", and so on.
func Dir(root string) Entry {
	return Entry{Root: root}
}

// SearchPath is an ordered, immutable list of scoped roots. Earlier
// entries take priority over later ones. The zero value is an empty
// search path.
type SearchPath struct {
	entries []Entry
}

// New builds a search path from entries. Entries with an empty Root are
// dropped. Entries with an empty Scope are labeled positionally among
// the unscoped entries that survive ("dir0", "dir1", ...).
func New(entries ...Entry) SearchPath {
	kept := make([]Entry, 0, len(entries))
	auto := 0
	for _, e := range entries {
		if e.Root == "" {
			continue
		}
		if e.Scope == "" {
			e.Scope = fmt.Sprintf("dir%d", auto)
			auto++
		}
		kept = append(kept, e)
	}
	return SearchPath{entries: kept}
}

// Append returns a new search path with extra entries added at the end,
// lowest priority. Scope labeling follows the same rules as New.
func (sp SearchPath) Append(entries ...Entry) SearchPath {
	return New(append(sp.Items(), entries...)...)
}

// WithSuffix returns a new search path with the given path parts joined
// onto every root, keeping scopes. Useful for narrowing a generic path
// to a subdirectory convention, like "themes/default" under each
// config root.
func (sp SearchPath) WithSuffix(parts ...string) SearchPath {
	entries := make([]Entry, len(sp.entries))
	for i, e := range sp.entries {
		entries[i] = Entry{Scope: e.Scope, Root: filepath.Join(append([]string{e.Root}, parts...)...)}
	}
	return SearchPath{entries: entries}
}

// Filter returns a new search path keeping only entries whose root
// satisfies keep.
func (sp SearchPath) Filter(keep func(root string) bool) SearchPath {
	var entries []Entry
	for _, e := range sp.entries {
		if keep(e.Root) {
			entries = append(entries, e)
		}
	}
	return SearchPath{entries: entries}
}

// Existing returns a new search path keeping only entries whose root
// exists on disk.
func (sp SearchPath) Existing() SearchPath {
	return sp.Filter(func(root string) bool {
		_, err := os.Stat(root)
		return err == nil
	})
}

// Items returns a copy of the entries in priority order.
func (sp SearchPath) Items() []Entry {
	return append([]Entry(nil), sp.entries...)
}

// Dirs returns the roots in priority order.
func (sp SearchPath) Dirs() []string {
	dirs := make([]string, len(sp.entries))
	for i, e := range sp.entries {
		dirs[i] = e.Root
	}
	return dirs
}

// Scopes returns the scope labels in priority order.
func (sp SearchPath) Scopes() []string {
	scopes := make([]string, len(sp.entries))
	for i, e := range sp.entries {
		scopes[i] = e.Scope
	}
	return scopes
}

// Len returns the number of entries.
func (sp SearchPath) Len() int {
	return len(sp.entries)
}

// String renders the search path as "scope: root, scope: root", or
// "(empty)" when there are no entries.
func (sp SearchPath) String() string {
	if len(sp.entries) == 0 {
		return "(empty)"
	}
	parts := make([]string, len(sp.entries))
	for i, e := range sp.entries {
		parts[i] = e.Scope + ": " + e.Root
	}
	return strings.Join(parts, ", ")
}

// Options configures lookups. The zero value searches for files with a
// fresh glob matcher, follows symlinks, and deduplicates results by
// relative path.
type Options struct {
	// Kind selects files, dirs, or both. Defaults to KindFiles.
	Kind Kind

	// Include keeps only paths matching at least one pattern.
	Include []string

	// IncludeFrom names pattern files whose contents extend Include.
	// Files are loaded strictly: a missing or unreadable file fails the
	// lookup with a *PatternFileError.
	IncludeFrom []string

	// IncludeFromAncestors names a pattern file to look for in each
	// ancestor directory of a candidate, up to the entry root. Found
	// patterns extend Include for that candidate. Ancestor files load
	// leniently.
	IncludeFromAncestors string

	// Exclude drops matching paths and prunes matching directories.
	Exclude []string

	// ExcludeFrom names pattern files whose contents extend Exclude.
	ExcludeFrom []string

	// ExcludeFromAncestors is the exclude-side counterpart of
	// IncludeFromAncestors.
	ExcludeFromAncestors string

	// Matcher evaluates patterns. Defaults to a fresh GlobMatcher per
	// lookup.
	Matcher Matcher

	// NoFollowSymlinks stops traversal from descending into symlinked
	// directories.
	NoFollowSymlinks bool

	// NoDedupe reports every hit, including paths shadowed by an
	// earlier entry at the same relative path.
	NoDedupe bool
}

// First returns the absolute path of the first hit across the search
// path, or "" when nothing matches.
func (sp SearchPath) First(pattern string, opts *Options) (string, error) {
	m, err := sp.Match(pattern, opts)
	if err != nil || m == nil {
		return "", err
	}
	return m.Path, nil
}

// Match returns the first hit with provenance, or nil when nothing
// matches.
func (sp SearchPath) Match(pattern string, opts *Options) (*Match, error) {
	var found *Match
	err := sp.search(pattern, opts, func(m Match) bool {
		found = &m
		return false
	})
	return found, err
}

// All returns the absolute paths of every hit across the search path in
// priority order.
func (sp SearchPath) All(pattern string, opts *Options) ([]string, error) {
	matches, err := sp.Matches(pattern, opts)
	if err != nil {
		return nil, err
	}
	paths := make([]string, len(matches))
	for i, m := range matches {
		paths[i] = m.Path
	}
	return paths, nil
}

// Matches returns every hit with provenance in priority order. Unless
// opts.NoDedupe is set, only the first hit for each root-relative path
// is reported, so higher-priority entries shadow lower ones.
func (sp SearchPath) Matches(pattern string, opts *Options) ([]Match, error) {
	var matches []Match
	err := sp.search(pattern, opts, func(m Match) bool {
		matches = append(matches, m)
		return true
	})
	if err != nil {
		return nil, err
	}
	return matches, nil
}

// search runs the lookup, calling fn for each hit in priority order
// until fn returns false or the entries are exhausted.
func (sp SearchPath) search(pattern string, opts *Options, fn func(Match) bool) error {
	if opts == nil {
		opts = &Options{}
	}
	if pattern == "" {
		pattern = matchAll
	}

	matcher := opts.Matcher
	if matcher == nil {
		matcher = NewGlobMatcher()
	}

	include, err := assemblePatterns(opts.Include, opts.IncludeFrom)
	if err != nil {
		return err
	}
	exclude, err := assemblePatterns(opts.Exclude, opts.ExcludeFrom)
	if err != nil {
		return err
	}

	useAncestors := opts.IncludeFromAncestors != "" || opts.ExcludeFromAncestors != ""
	var cache map[string][]string
	if useAncestors {
		cache = make(map[string][]string)
	}

	seen := make(map[string]bool)
	for _, e := range sp.entries {
		absRoot, err := filepath.Abs(e.Root)
		if err != nil {
			return &ConfigurationError{Message: fmt.Sprintf("cannot resolve root %s: %v", e.Root, err)}
		}

		topts := &TraverseOptions{
			Pattern:          pattern,
			Kind:             opts.Kind,
			Exclude:          exclude,
			Matcher:          matcher,
			NoFollowSymlinks: opts.NoFollowSymlinks,
		}
		// With ancestor filtering, inline includes combine with the
		// gathered ancestor includes per candidate instead of
		// constraining the walk itself.
		if !useAncestors {
			topts.Include = include
		}

		for c, err := range walkTree(absRoot, topts) {
			if err != nil {
				return err
			}
			path := filepath.Join(absRoot, filepath.FromSlash(c.rel))
			if useAncestors {
				ok, err := ancestorFilter(path, c, absRoot, matcher, opts, include, exclude, cache)
				if err != nil {
					return err
				}
				if !ok {
					continue
				}
			}
			m := Match{Path: path, Scope: e.Scope, Source: absRoot}
			if !opts.NoDedupe {
				key := m.Relative()
				if seen[key] {
					continue
				}
				seen[key] = true
			}
			if !fn(m) {
				return nil
			}
		}
	}
	return nil
}

// assemblePatterns combines inline patterns with the contents of
// pattern files, inline patterns first.
func assemblePatterns(inline []string, fromFiles []string) ([]string, error) {
	patterns := append([]string(nil), inline...)
	for _, path := range fromFiles {
		loaded, err := LoadPatterns(path)
		if err != nil {
			return nil, err
		}
		patterns = append(patterns, loaded...)
	}
	return patterns, nil
}

// ancestorFilter re-evaluates a candidate against the union of inline
// patterns and patterns gathered from its ancestor directories.
func ancestorFilter(path string, c candidate, root string, matcher Matcher, opts *Options, include, exclude []string, cache map[string][]string) (bool, error) {
	ap := CollectAncestorPatterns(path, root, opts.IncludeFromAncestors, opts.ExcludeFromAncestors, cache)
	return matcher.Matches(c.rel, c.isDir,
		MergePatterns(ap.Include, include),
		MergePatterns(ap.Exclude, exclude))
}
