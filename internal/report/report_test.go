package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/tbhb/searchpath"
)

func sampleMatches() []searchpath.Match {
	return []searchpath.Match{
		{
			Path:   "/home/user/project/config/settings.toml",
			Scope:  "project",
			Source: "/home/user/project/config",
		},
		{
			Path:   "/home/user/project/config/themes/dark.toml",
			Scope:  "project",
			Source: "/home/user/project/config",
		},
		{
			Path:   "/etc/app/defaults.toml",
			Scope:  "system",
			Source: "/etc/app",
		},
	}
}

func TestWriteJSON_ValidJSON(t *testing.T) {
	var buf bytes.Buffer
	err := WriteJSON(&buf, sampleMatches(), "0.1.0")
	if err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}

	// Must be valid JSON.
	var parsed map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v\noutput:\n%s", err, buf.String())
	}
}

func TestWriteJSON_HasVersion(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, sampleMatches(), "0.1.0"); err != nil {
		t.Fatal(err)
	}

	var report JSONReport
	if err := json.Unmarshal(buf.Bytes(), &report); err != nil {
		t.Fatal(err)
	}

	if report.Version != "0.1.0" {
		t.Errorf("version = %q, want 0.1.0", report.Version)
	}
}

func TestWriteJSON_HasMatches(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, sampleMatches(), "0.1.0"); err != nil {
		t.Fatal(err)
	}

	var report JSONReport
	if err := json.Unmarshal(buf.Bytes(), &report); err != nil {
		t.Fatal(err)
	}

	if len(report.Matches) != 3 {
		t.Fatalf("expected 3 matches, got %d", len(report.Matches))
	}
	if report.Matches[0].Relative != "settings.toml" {
		t.Errorf("relative = %q, want settings.toml", report.Matches[0].Relative)
	}
	if report.Matches[1].Relative != "themes/dark.toml" {
		t.Errorf("relative = %q, want themes/dark.toml", report.Matches[1].Relative)
	}
}

func TestWriteJSON_EmptyMatches(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, nil, "0.1.0"); err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(buf.String(), `"matches": []`) {
		t.Errorf("empty matches should serialize as an empty array, got:\n%s", buf.String())
	}
}

func TestWriteJSON_ContainsAllFields(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, sampleMatches(), "0.1.0"); err != nil {
		t.Fatal(err)
	}

	output := buf.String()
	requiredFields := []string{
		`"version"`, `"matches"`, `"path"`, `"scope"`,
		`"source"`, `"relative"`,
	}

	for _, field := range requiredFields {
		if !strings.Contains(output, field) {
			t.Errorf("JSON output missing field %s", field)
		}
	}
}

func TestWriteText_HasScopes(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteText(&buf, sampleMatches()); err != nil {
		t.Fatal(err)
	}

	output := buf.String()
	if !strings.Contains(output, "=== project ===") {
		t.Error("text output missing project section header")
	}
	if !strings.Contains(output, "=== system ===") {
		t.Error("text output missing system section header")
	}
}

func TestWriteText_HasRelativePaths(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteText(&buf, sampleMatches()); err != nil {
		t.Fatal(err)
	}

	output := buf.String()
	for _, want := range []string{"settings.toml", "themes/dark.toml", "defaults.toml"} {
		if !strings.Contains(output, want) {
			t.Errorf("text output missing %s", want)
		}
	}
}

func TestWriteText_HasSummary(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteText(&buf, sampleMatches()); err != nil {
		t.Fatal(err)
	}

	output := buf.String()
	if !strings.Contains(output, "3 match(es) across 2 scope(s)") {
		t.Error("text output missing summary line")
	}
}

func TestWriteText_EmptyMatches(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteText(&buf, nil); err != nil {
		t.Fatal(err)
	}

	output := buf.String()
	if !strings.Contains(output, "0 match(es) across 0 scope(s)") {
		t.Error("text output should show zero counts for empty matches")
	}
}

func TestWriteText_TruncatesLongPaths(t *testing.T) {
	long := searchpath.Match{
		Path:   "/r/" + strings.Repeat("deeply/nested/", 10) + "leaf.toml",
		Scope:  "project",
		Source: "/r",
	}

	var buf bytes.Buffer
	if err := WriteText(&buf, []searchpath.Match{long}); err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(buf.String(), "...") {
		t.Error("long relative path should be truncated with an ellipsis")
	}
}

func TestWriteHTML_HasScopesAndPaths(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteHTML(&buf, sampleMatches(), "0.1.0"); err != nil {
		t.Fatal(err)
	}

	output := buf.String()
	for _, want := range []string{
		"<h2>project</h2>", "<h2>system</h2>",
		"themes/dark.toml", "/etc/app/defaults.toml",
		"3 match(es) across 2 scope(s)",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("HTML output missing %q", want)
		}
	}
}

func TestWriteHTML_EmptyMatches(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteHTML(&buf, nil, "0.1.0"); err != nil {
		t.Fatal(err)
	}

	output := buf.String()
	if !strings.Contains(output, "0 match(es) across 0 scope(s)") {
		t.Errorf("HTML output should show zero counts, got:\n%s", output)
	}
	if !strings.Contains(output, "<!DOCTYPE html>") {
		t.Error("HTML output missing doctype")
	}
}

func TestWriteHTML_EscapesPaths(t *testing.T) {
	hostile := searchpath.Match{
		Path:   "/r/<script>alert(1)</script>.toml",
		Scope:  "project",
		Source: "/r",
	}

	var buf bytes.Buffer
	if err := WriteHTML(&buf, []searchpath.Match{hostile}, "0.1.0"); err != nil {
		t.Fatal(err)
	}

	output := buf.String()
	if strings.Contains(output, "<script>alert(1)</script>") {
		t.Error("path content must be HTML-escaped")
	}
	if !strings.Contains(output, "&lt;script&gt;") {
		t.Error("expected escaped script tag in output")
	}
}

func TestWriteJSON_ValidAgainstSchema(t *testing.T) {
	// Compile the embedded JSON Schema.
	sch, err := jsonschema.UnmarshalJSON(strings.NewReader(Schema))
	if err != nil {
		t.Fatalf("failed to parse schema JSON: %v", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", sch); err != nil {
		t.Fatalf("failed to add schema resource: %v", err)
	}
	compiled, err := compiler.Compile("schema.json")
	if err != nil {
		t.Fatalf("failed to compile schema: %v", err)
	}

	// Generate JSON output from sample data.
	var buf bytes.Buffer
	if err := WriteJSON(&buf, sampleMatches(), "0.1.0"); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}

	// Parse and validate against schema.
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("failed to parse JSON output: %v", err)
	}
	if err := compiled.Validate(inst); err != nil {
		t.Errorf("JSON output does not conform to schema:\n%v", err)
	}
}

func TestWriteText_FitsIn80Columns(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteText(&buf, sampleMatches()); err != nil {
		t.Fatal(err)
	}

	// lipgloss.Width strips ANSI sequences and measures display cells,
	// so multi-byte border runes count as one column each.
	const maxWidth = 80
	for _, line := range strings.Split(buf.String(), "\n") {
		if w := lipgloss.Width(line); w > maxWidth {
			t.Errorf("line exceeds %d columns (%d): %q", maxWidth, w, line)
		}
	}
}
