package main

import (
	"strings"
	"testing"

	"github.com/tbhb/searchpath"
)

// TestRenderFindContent_EmptyMatches verifies that an empty slice
// produces output indicating zero matches.
func TestRenderFindContent_EmptyMatches(t *testing.T) {
	output := renderFindContent(nil)

	if !strings.Contains(output, "0 match(es)") {
		t.Errorf("expected output to contain '0 match(es)', got:\n%s", output)
	}
	if !strings.Contains(output, "Nothing matched") {
		t.Errorf("expected output to contain 'Nothing matched', got:\n%s", output)
	}
}

// TestRenderFindContent_WithMatches verifies that matches render their
// scope, relative path, and absolute path.
func TestRenderFindContent_WithMatches(t *testing.T) {
	matches := []searchpath.Match{
		{
			Path:   "/home/u/project/conf/settings.toml",
			Scope:  "project",
			Source: "/home/u/project/conf",
		},
		{
			Path:   "/etc/app/defaults.toml",
			Scope:  "system",
			Source: "/etc/app",
		},
	}

	output := renderFindContent(matches)

	if !strings.Contains(output, "2 match(es) from 2 root(s)") {
		t.Errorf("expected output to contain count summary, got:\n%s", output)
	}
	if !strings.Contains(output, "project") {
		t.Errorf("expected output to contain scope 'project', got:\n%s", output)
	}
	if !strings.Contains(output, "settings.toml") {
		t.Errorf("expected output to contain 'settings.toml', got:\n%s", output)
	}
	if !strings.Contains(output, "/etc/app/defaults.toml") {
		t.Errorf("expected output to contain the absolute path, got:\n%s", output)
	}
}

// TestRenderFindContent_TruncatesLongPaths verifies the relative path
// column is bounded.
func TestRenderFindContent_TruncatesLongPaths(t *testing.T) {
	matches := []searchpath.Match{
		{
			Path:   "/r/" + strings.Repeat("deeply/nested/", 10) + "leaf.toml",
			Scope:  "project",
			Source: "/r",
		},
	}

	output := renderFindContent(matches)

	if !strings.Contains(output, "...") {
		t.Errorf("expected truncated relative path, got:\n%s", output)
	}
}

// TestFindModel_UnreadyView verifies the placeholder rendered before
// the first window size message arrives.
func TestFindModel_UnreadyView(t *testing.T) {
	m := newFindModel(nil)

	if !strings.Contains(m.View(), "Initializing") {
		t.Errorf("unready model should render initializing view")
	}
}
