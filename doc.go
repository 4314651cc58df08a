// Package searchpath locates files and directories across an ordered
// list of scoped roots, the way a PATH lookup locates executables.
//
// A SearchPath is built from entries, each pairing a scope label with a
// root directory:
//
//	sp := searchpath.New(
//		searchpath.Scoped("project", "./config"),
//		searchpath.Scoped("user", "~/.config/app"),
//		searchpath.Scoped("system", "/etc/app"),
//	)
//	path, err := sp.First("settings.toml", nil)
//
// Earlier entries win: First returns the highest-priority hit, and
// Matches deduplicates by root-relative path so a project file shadows
// a system file of the same name.
//
// Lookups filter candidates with include and exclude patterns. Three
// matchers are available: GlobMatcher (the default, with ** for
// recursive descent), RegexMatcher, and GitignoreMatcher, which follows
// gitignore rules including negation and directory-only patterns.
// Patterns can come inline, from pattern files loaded up front, or from
// pattern files discovered in each candidate's ancestor directories so
// that nested directories refine the rules above them.
//
// Traverse exposes the underlying walk directly as a lazy sequence for
// callers that want matching paths under a single root.
package searchpath
