package searchpath

import (
	"regexp"
	"strings"
)

// GlobMatcher matches paths with glob-style patterns, translated to
// regular expressions internally and matched against the full relative
// path (never a substring).
//
// Supported syntax:
//   - "*" matches any characters except "/"
//   - "**" matches across "/" when it is a complete path component
//     (at pattern start or after "/", and at pattern end or before "/");
//     anywhere else it degrades to a single "*"
//   - "?" matches exactly one character except "/"
//   - "[abc]", "[a-z]" character classes; "[!abc]" and "[^abc]" negate
//     and additionally never match "/" (gitignore-style)
//
// Negation patterns ("!pattern") and directory-only patterns
// ("pattern/") are not supported; use GitignoreMatcher for those.
type GlobMatcher struct {
	cache map[string]*regexp.Regexp
}

// NewGlobMatcher returns a GlobMatcher with an empty pattern cache. The
// cache grows for the lifetime of the instance and is never invalidated.
func NewGlobMatcher() *GlobMatcher {
	return &GlobMatcher{cache: make(map[string]*regexp.Regexp)}
}

// SupportsNegation reports whether negation patterns are honored.
// Always false for GlobMatcher.
func (m *GlobMatcher) SupportsNegation() bool { return false }

// SupportsDirOnly reports whether directory-only patterns are honored.
// Always false for GlobMatcher.
func (m *GlobMatcher) SupportsDirOnly() bool { return false }

// Matches reports whether path passes the include/exclude patterns.
// The isDir flag is accepted for interface compatibility and ignored.
func (m *GlobMatcher) Matches(path string, isDir bool, include, exclude []string) (bool, error) {
	_ = isDir
	return evalPatterns(path, include, exclude, m.matchOne)
}

func (m *GlobMatcher) matchOne(path, pattern string) (bool, error) {
	re, err := m.compile(pattern)
	if err != nil {
		return false, err
	}
	return re.MatchString(path), nil
}

// compile translates and caches a glob pattern. Identical pattern
// strings never recompile within one matcher instance.
func (m *GlobMatcher) compile(pattern string) (*regexp.Regexp, error) {
	if re, ok := m.cache[pattern]; ok {
		return re, nil
	}
	if pattern == "" {
		return nil, syntaxErr(pattern, "empty pattern")
	}

	expr, err := globToRegexp(pattern)
	if err != nil {
		return nil, err
	}
	re, err := regexp.Compile(`\A(?:` + expr + `)\z`)
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

// globToRegexp translates a glob pattern into an unanchored regular
// expression over forward-slash separated paths. The caller anchors it
// for full-string matching.
func globToRegexp(pattern string) (string, error) {
	var sb strings.Builder
	n := len(pattern)

	for i := 0; i < n; {
		switch c := pattern[i]; c {
		case '*':
			i = translateStar(pattern, i, &sb)
		case '?':
			sb.WriteString("[^/]")
			i++
		case '[':
			next, err := translateBracket(pattern, i, &sb)
			if err != nil {
				return "", err
			}
			i = next
		default:
			translateLiteral(c, &sb)
			i++
		}
	}

	return sb.String(), nil
}

// translateStar handles "*" and "**". A "**" is recursive only when it
// forms a complete path component, matching gitignore semantics; any
// other "**" (e.g. "a**b") behaves as a single "*".
func translateStar(pattern string, i int, sb *strings.Builder) int {
	n := len(pattern)
	if i+1 >= n || pattern[i+1] != '*' {
		sb.WriteString("[^/]*")
		return i + 1
	}

	next := i + 2
	atStart := i == 0
	atEnd := next >= n
	afterSlash := i > 0 && pattern[i-1] == '/'
	beforeSlash := next < n && pattern[next] == '/'

	if !(atStart || afterSlash) || !(atEnd || beforeSlash) {
		sb.WriteString("[^/]*")
		return next
	}

	if beforeSlash {
		// "**/" matches zero or more whole path segments, so
		// "a/**/b" also matches "a/b".
		sb.WriteString("(?:.*/)?")
		return next + 1
	}
	// Terminal "**" matches anything, including "/".
	sb.WriteString(".*")
	return next
}

// translateLiteral emits a literal byte, escaping regex metacharacters.
func translateLiteral(c byte, sb *strings.Builder) {
	if strings.IndexByte(`\.+^${}()|`, c) >= 0 {
		sb.WriteByte('\\')
	}
	sb.WriteByte(c)
}

// translateBracket translates a character class starting at pattern[start]
// and returns the position after the closing ']'. A ']' first in the
// class is literal; '-' is literal unless it forms a range; '!' or '^'
// first negates the class and additionally rejects '/'.
func translateBracket(pattern string, start int, sb *strings.Builder) (int, error) {
	n := len(pattern)
	i := start + 1
	if i >= n {
		return 0, unclosedBracket(pattern, start)
	}

	if pattern[i] == '!' || pattern[i] == '^' {
		sb.WriteString("[^/")
		i++
	} else {
		sb.WriteByte('[')
	}
	if i >= n {
		return 0, unclosedBracket(pattern, start)
	}

	if pattern[i] == ']' {
		sb.WriteString(`\]`)
		i++
	}

	for i < n && pattern[i] != ']' {
		switch c := pattern[i]; c {
		case '\\':
			// Pass escapes through to the regex engine.
			sb.WriteByte('\\')
			i++
			if i < n {
				sb.WriteByte(pattern[i])
				i++
			}
		case '^':
			sb.WriteString(`\^`)
			i++
		default:
			sb.WriteByte(c)
			i++
		}
	}
	if i >= n {
		return 0, unclosedBracket(pattern, start)
	}

	sb.WriteByte(']')
	return i + 1, nil
}

func unclosedBracket(pattern string, pos int) *PatternSyntaxError {
	return &PatternSyntaxError{
		Pattern:  pattern,
		Message:  "unclosed bracket",
		Position: pos,
	}
}
