package searchpath

import (
	"strings"

	ignore "github.com/Sriram-PR/go-ignore"
)

// GitignoreMatcher matches paths with full gitignore semantics by
// delegating to the go-ignore engine. Beyond the glob syntax this adds:
//   - "!pattern" negation, re-including previously excluded paths
//   - "pattern/" directory-only rules, which also cover files inside a
//     matching directory
//   - "/pattern" anchored rules, matching from the root only
//
// Patterns within one list are evaluated in order with last-match-wins,
// which is why ancestor patterns are prepended before inline patterns:
// the more specific source overrides the more general one.
type GitignoreMatcher struct {
	specs map[string]*ignore.Matcher
}

// NewGitignoreMatcher returns a GitignoreMatcher with an empty spec
// cache.
func NewGitignoreMatcher() *GitignoreMatcher {
	return &GitignoreMatcher{specs: make(map[string]*ignore.Matcher)}
}

// SupportsNegation reports whether negation patterns are honored.
// Always true for GitignoreMatcher.
func (m *GitignoreMatcher) SupportsNegation() bool { return true }

// SupportsDirOnly reports whether directory-only patterns are honored.
// Always true for GitignoreMatcher.
func (m *GitignoreMatcher) SupportsDirOnly() bool { return true }

// Matches reports whether path passes the include/exclude patterns under
// gitignore evaluation rules.
func (m *GitignoreMatcher) Matches(path string, isDir bool, include, exclude []string) (bool, error) {
	if len(include) > 0 {
		ok, err := m.matchSpec(path, isDir, include)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	if len(exclude) > 0 {
		ok, err := m.matchSpec(path, isDir, exclude)
		if err != nil || ok {
			return false, err
		}
	}
	return true, nil
}

// matchSpec reports whether the spec built from patterns selects path,
// accounting for negation rules.
func (m *GitignoreMatcher) matchSpec(path string, isDir bool, patterns []string) (bool, error) {
	for _, p := range patterns {
		if p == "" {
			return false, syntaxErr(p, "empty pattern")
		}
	}
	return m.spec(patterns).Match(path, isDir), nil
}

// spec returns the compiled rule set for an ordered pattern list. The
// order is part of the cache key: with negation in play, reordered lists
// are different specs.
func (m *GitignoreMatcher) spec(patterns []string) *ignore.Matcher {
	key := strings.Join(patterns, "\n")
	if s, ok := m.specs[key]; ok {
		return s
	}

	s := ignore.New()
	s.AddPatterns("", []byte(key))
	m.specs[key] = s
	return s
}
