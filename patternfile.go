package searchpath

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"
)

// LoadPatterns reads a pattern file: one pattern per line, UTF-8
// encoded. Lines that are blank after trimming, or whose trimmed form
// starts with "#", are ignored; every other line becomes a pattern with
// surrounding whitespace stripped.
//
// This is the strict loader behind Options.IncludeFrom and
// Options.ExcludeFrom: any failure is a *PatternFileError. Ancestor
// pattern files take the lenient path instead (CollectAncestorPatterns).
func LoadPatterns(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, &PatternFileError{Path: path, Message: "file not found", Err: err}
	case errors.Is(err, fs.ErrPermission):
		return nil, &PatternFileError{Path: path, Message: "permission denied", Err: err}
	case err != nil:
		if fi, statErr := os.Stat(path); statErr == nil && fi.IsDir() {
			return nil, &PatternFileError{Path: path, Message: "is a directory", Err: err}
		}
		return nil, &PatternFileError{Path: path, Message: err.Error(), Err: err}
	}

	if !utf8.Valid(content) {
		return nil, &PatternFileError{
			Path:    path,
			Message: "invalid encoding: not valid UTF-8",
			Line:    invalidUTF8Line(content),
		}
	}

	return parsePatternLines(string(content)), nil
}

// parsePatternLines extracts patterns from pattern-file content,
// dropping blank lines and "#" comments and trimming whitespace.
func parsePatternLines(content string) []string {
	var patterns []string
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		patterns = append(patterns, trimmed)
	}
	return patterns
}

// invalidUTF8Line returns the 1-based line number of the first line that
// is not valid UTF-8, or 0 if none is found.
func invalidUTF8Line(content []byte) int {
	for i, line := range bytes.Split(content, []byte{'\n'}) {
		if !utf8.Valid(line) {
			return i + 1
		}
	}
	return 0
}
