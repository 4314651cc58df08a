package searchpath

import "regexp"

// RegexMatcher matches paths with Go regular expressions (RE2 syntax).
// Patterns are matched against the entire relative path, consistent with
// GlobMatcher. Negation and directory-only patterns are not supported.
type RegexMatcher struct {
	cache map[string]*regexp.Regexp
}

// NewRegexMatcher returns a RegexMatcher with an empty pattern cache.
func NewRegexMatcher() *RegexMatcher {
	return &RegexMatcher{cache: make(map[string]*regexp.Regexp)}
}

// SupportsNegation reports whether negation patterns are honored.
// Always false for RegexMatcher.
func (m *RegexMatcher) SupportsNegation() bool { return false }

// SupportsDirOnly reports whether directory-only patterns are honored.
// Always false for RegexMatcher.
func (m *RegexMatcher) SupportsDirOnly() bool { return false }

// Matches reports whether path passes the include/exclude patterns.
// The isDir flag is accepted for interface compatibility and ignored.
func (m *RegexMatcher) Matches(path string, isDir bool, include, exclude []string) (bool, error) {
	_ = isDir
	return evalPatterns(path, include, exclude, m.matchOne)
}

func (m *RegexMatcher) matchOne(path, pattern string) (bool, error) {
	re, err := m.compile(pattern)
	if err != nil {
		return false, err
	}
	return re.MatchString(path), nil
}

func (m *RegexMatcher) compile(pattern string) (*regexp.Regexp, error) {
	if re, ok := m.cache[pattern]; ok {
		return re, nil
	}
	if pattern == "" {
		return nil, syntaxErr(pattern, "empty pattern")
	}

	// Validate the bare pattern first so the error carries the engine's
	// message for the pattern as written, not the anchored form.
	if _, err := regexp.Compile(pattern); err != nil {
		return nil, &PatternSyntaxError{
			Pattern:  pattern,
			Message:  err.Error(),
			Position: -1,
			Err:      err,
		}
	}
	re, err := regexp.Compile(`\A(?:` + pattern + `)\z`)
	if err != nil {
		return nil, &PatternSyntaxError{
			Pattern:  pattern,
			Message:  err.Error(),
			Position: -1,
			Err:      err,
		}
	}

	m.cache[pattern] = re
	return re, nil
}
