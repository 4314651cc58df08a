package searchpath_test

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/tbhb/searchpath"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadPatterns(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "patterns.txt", "*.go\n\n# vendored code\n  vendor/**  \n")

	got, err := searchpath.LoadPatterns(path)
	if err != nil {
		t.Fatalf("LoadPatterns error: %v", err)
	}
	want := []string{"*.go", "vendor/**"}
	if !slices.Equal(got, want) {
		t.Errorf("LoadPatterns = %v, want %v", got, want)
	}
}

func TestLoadPatternsEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "empty.txt", "")

	got, err := searchpath.LoadPatterns(path)
	if err != nil {
		t.Fatalf("LoadPatterns error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("LoadPatterns = %v, want empty", got)
	}
}

func TestLoadPatternsMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.txt")
	_, err := searchpath.LoadPatterns(path)

	var ferr *searchpath.PatternFileError
	if !errors.As(err, &ferr) {
		t.Fatalf("LoadPatterns error = %v, want *PatternFileError", err)
	}
	if ferr.Path != path {
		t.Errorf("Path = %q, want %q", ferr.Path, path)
	}
	if ferr.Message != "file not found" {
		t.Errorf("Message = %q, want %q", ferr.Message, "file not found")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Error("error should wrap fs.ErrNotExist")
	}
}

func TestLoadPatternsDirectory(t *testing.T) {
	dir := t.TempDir()
	_, err := searchpath.LoadPatterns(dir)

	var ferr *searchpath.PatternFileError
	if !errors.As(err, &ferr) {
		t.Fatalf("LoadPatterns error = %v, want *PatternFileError", err)
	}
	if ferr.Message != "is a directory" {
		t.Errorf("Message = %q, want %q", ferr.Message, "is a directory")
	}
}

func TestLoadPatternsPermissionDenied(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("running as root, permission checks are bypassed")
	}
	dir := t.TempDir()
	path := writeFile(t, dir, "secret.txt", "*.key\n")
	if err := os.Chmod(path, 0o000); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chmod(path, 0o644) })

	_, err := searchpath.LoadPatterns(path)
	var ferr *searchpath.PatternFileError
	if !errors.As(err, &ferr) {
		t.Fatalf("LoadPatterns error = %v, want *PatternFileError", err)
	}
	if ferr.Message != "permission denied" {
		t.Errorf("Message = %q, want %q", ferr.Message, "permission denied")
	}
}

func TestLoadPatternsInvalidEncoding(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.txt")
	if err := os.WriteFile(path, []byte("*.go\n\xff\xfe\n*.md\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := searchpath.LoadPatterns(path)
	var ferr *searchpath.PatternFileError
	if !errors.As(err, &ferr) {
		t.Fatalf("LoadPatterns error = %v, want *PatternFileError", err)
	}
	if ferr.Message != "invalid encoding: not valid UTF-8" {
		t.Errorf("Message = %q", ferr.Message)
	}
	if ferr.Line != 2 {
		t.Errorf("Line = %d, want 2", ferr.Line)
	}
}

func TestPatternFileErrorString(t *testing.T) {
	err := &searchpath.PatternFileError{Path: "p.txt", Message: "file not found"}
	if got, want := err.Error(), "pattern file p.txt: file not found"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	err = &searchpath.PatternFileError{Path: "p.txt", Line: 3, Message: "invalid encoding: not valid UTF-8"}
	if got, want := err.Error(), "pattern file p.txt:3: invalid encoding: not valid UTF-8"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
