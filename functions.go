package searchpath

// First searches entries in order and returns the absolute path of the
// first hit, or "" when nothing matches. It is shorthand for building a
// SearchPath for a single lookup.
func First(pattern string, opts *Options, entries ...Entry) (string, error) {
	return New(entries...).First(pattern, opts)
}

// FirstMatch is like First but returns provenance, or nil when nothing
// matches.
func FirstMatch(pattern string, opts *Options, entries ...Entry) (*Match, error) {
	return New(entries...).Match(pattern, opts)
}

// All searches entries in order and returns every hit's absolute path.
func All(pattern string, opts *Options, entries ...Entry) ([]string, error) {
	return New(entries...).All(pattern, opts)
}

// AllMatches is like All but returns provenance for each hit.
func AllMatches(pattern string, opts *Options, entries ...Entry) ([]Match, error) {
	return New(entries...).Matches(pattern, opts)
}
