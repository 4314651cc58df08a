package searchpath

import (
	"iter"
	"os"
	"path/filepath"
)

// Kind selects which entry types a traversal yields.
type Kind string

const (
	// KindFiles yields regular files only. The zero value of Kind is
	// treated as KindFiles.
	KindFiles Kind = "files"
	// KindDirs yields directories only.
	KindDirs Kind = "dirs"
	// KindBoth yields both files and directories.
	KindBoth Kind = "both"
)

// matchAll is the pattern that places no constraint on candidates.
const matchAll = "**"

// TraverseOptions configures a single Traverse call.
type TraverseOptions struct {
	// Pattern constrains yielded paths. "**" (or "") matches everything.
	// Any other pattern is treated as an additional include.
	Pattern string

	// Kind selects files, dirs, or both. Defaults to KindFiles.
	Kind Kind

	// Include keeps only paths matching at least one pattern.
	Include []string

	// Exclude drops matching paths. Directories matching an exclude
	// pattern are pruned: their contents are never visited.
	Exclude []string

	// Matcher evaluates patterns. Defaults to a fresh GlobMatcher.
	Matcher Matcher

	// NoFollowSymlinks stops traversal from descending into symlinked
	// directories. Symlinks themselves are still yielded when they
	// resolve and match.
	NoFollowSymlinks bool
}

// Traverse walks root depth-first and yields absolute paths of matching
// entries as a lazy sequence. Within each directory, matching
// subdirectories are yielded before matching files, and names are
// visited in lexical order. A missing or non-directory root yields
// nothing. Unreadable directories and broken symlinks are skipped.
//
// The error side of the sequence carries pattern compilation failures;
// iteration stops after the first error.
func Traverse(root string, opts *TraverseOptions) iter.Seq2[string, error] {
	if opts == nil {
		opts = &TraverseOptions{}
	}
	return func(yield func(string, error) bool) {
		absRoot, err := filepath.Abs(root)
		if err != nil {
			yield("", err)
			return
		}
		for c, err := range walkTree(absRoot, opts) {
			if err != nil {
				yield("", err)
				return
			}
			if !yield(filepath.Join(absRoot, filepath.FromSlash(c.rel)), nil) {
				return
			}
		}
	}
}

// candidate is a traversal hit relative to the root, in slash form.
type candidate struct {
	rel   string
	isDir bool
}

// walkTree implements the traversal over root-relative slash paths so
// that callers can apply further relative-path filtering before
// resolving candidates to absolute paths.
func walkTree(root string, opts *TraverseOptions) iter.Seq2[candidate, error] {
	return func(yield func(candidate, error) bool) {
		fi, err := os.Stat(root)
		if err != nil || !fi.IsDir() {
			return
		}

		w := walker{
			kind:    opts.Kind,
			include: opts.Include,
			exclude: opts.Exclude,
			matcher: opts.Matcher,
			follow:  !opts.NoFollowSymlinks,
		}
		if w.kind == "" {
			w.kind = KindFiles
		}
		if w.matcher == nil {
			w.matcher = NewGlobMatcher()
		}
		if opts.Pattern != "" && opts.Pattern != matchAll {
			w.include = append([]string{opts.Pattern}, w.include...)
		}

		w.walk(root, "", yield)
	}
}

type walker struct {
	kind    Kind
	include []string
	exclude []string
	matcher Matcher
	follow  bool
}

// child is a directory entry that survived classification.
type child struct {
	name    string
	symlink bool
}

// walk visits dir, yielding matches beneath it. rel is dir's slash-form
// path relative to the root ("" for the root itself). Returns false when
// the consumer stopped iteration.
func (w *walker) walk(dir, rel string, yield func(candidate, error) bool) bool {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return true
	}

	var subdirs, files []child
	for _, entry := range entries {
		c := child{name: entry.Name()}
		isDir := entry.IsDir()
		if entry.Type()&os.ModeSymlink != 0 {
			c.symlink = true
			fi, err := os.Stat(filepath.Join(dir, c.name))
			if err != nil {
				// Broken symlink.
				continue
			}
			isDir = fi.IsDir()
		}
		if isDir {
			subdirs = append(subdirs, c)
		} else {
			files = append(files, c)
		}
	}
	// Prune excluded directories before yielding anything from this
	// level so their contents are never visited.
	kept := subdirs[:0]
	for _, sd := range subdirs {
		pass, err := w.matcher.Matches(joinRel(rel, sd.name), true, nil, w.exclude)
		if err != nil {
			yield(candidate{}, err)
			return false
		}
		if pass {
			kept = append(kept, sd)
		}
	}
	subdirs = kept

	if w.kind != KindFiles {
		for _, sd := range subdirs {
			srel := joinRel(rel, sd.name)
			ok, err := w.matcher.Matches(srel, true, w.include, w.exclude)
			if err != nil {
				yield(candidate{}, err)
				return false
			}
			if ok && !yield(candidate{rel: srel, isDir: true}, nil) {
				return false
			}
		}
	}
	if w.kind != KindDirs {
		for _, f := range files {
			frel := joinRel(rel, f.name)
			ok, err := w.matcher.Matches(frel, false, w.include, w.exclude)
			if err != nil {
				yield(candidate{}, err)
				return false
			}
			if ok && !yield(candidate{rel: frel, isDir: false}, nil) {
				return false
			}
		}
	}

	for _, sd := range subdirs {
		if sd.symlink && !w.follow {
			continue
		}
		if !w.walk(filepath.Join(dir, sd.name), joinRel(rel, sd.name), yield) {
			return false
		}
	}
	return true
}

func joinRel(rel, name string) string {
	if rel == "" {
		return name
	}
	return rel + "/" + name
}
