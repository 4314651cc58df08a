package searchpath

// Matcher decides whether forward-slash relative paths pass a set of
// include and exclude patterns.
//
// A path passes when it matches at least one include pattern (an empty
// include list matches everything) and matches no exclude pattern.
// Implementations memoize compiled patterns internally; the cache is
// owned by the instance and is not safe for concurrent mutation, so give
// each goroutine its own Matcher or serialize access.
type Matcher interface {
	// SupportsNegation reports whether later patterns may re-include
	// paths rejected by earlier ones (gitignore "!pattern").
	SupportsNegation() bool

	// SupportsDirOnly reports whether directory-only patterns
	// (gitignore "pattern/") are honored.
	SupportsDirOnly() bool

	// Matches reports whether path passes the include/exclude pattern
	// lists. path must be relative to the search root and use forward
	// slashes; isDir tells matchers with directory-only support what
	// kind of entry the path is.
	Matches(path string, isDir bool, include, exclude []string) (bool, error)
}

// evalPatterns applies the shared include/exclude contract for matchers
// without negation support: any-of include (empty include passes all),
// then none-of exclude. matchOne tests a single pattern.
func evalPatterns(path string, include, exclude []string, matchOne func(path, pattern string) (bool, error)) (bool, error) {
	if len(include) > 0 {
		hit := false
		for _, p := range include {
			ok, err := matchOne(path, p)
			if err != nil {
				return false, err
			}
			if ok {
				hit = true
				break
			}
		}
		if !hit {
			return false, nil
		}
	}

	for _, p := range exclude {
		ok, err := matchOne(path, p)
		if err != nil {
			return false, err
		}
		if ok {
			return false, nil
		}
	}

	return true, nil
}
