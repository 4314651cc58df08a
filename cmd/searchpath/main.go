package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/tbhb/searchpath"
	"github.com/tbhb/searchpath/internal/report"
)

// logger is the application-wide structured logger (writes to stderr).
var logger = charmlog.NewWithOptions(os.Stderr, charmlog.Options{
	ReportTimestamp: false,
})

// Set by build flags.
var version = "dev"

func main() {
	root := &cobra.Command{
		Use:   "searchpath",
		Short: "searchpath — locate files across an ordered list of scoped roots",
		Long: `Searchpath looks up files and directories across an ordered list
of scoped root directories, the way a PATH lookup locates
executables. Earlier roots take priority, and results can be
filtered with glob, regex, or gitignore patterns.`,
		Version: version,
	}

	root.AddCommand(newFindCmd())
	root.AddCommand(newSchemaCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// rootConfig is one search root in a config file. An empty scope is
// auto-named positionally, same as --root with a bare path.
type rootConfig struct {
	Scope string `yaml:"scope"`
	Path  string `yaml:"path"`
}

// fileConfig is the YAML shape accepted by --config.
type fileConfig struct {
	Roots          []rootConfig `yaml:"roots"`
	Kind           string       `yaml:"kind"`
	Include        []string     `yaml:"include"`
	Exclude        []string     `yaml:"exclude"`
	FollowSymlinks *bool        `yaml:"follow_symlinks"`
	Dedupe         *bool        `yaml:"dedupe"`
}

// loadConfig reads and parses a YAML config file.
func loadConfig(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return &cfg, nil
}

// findParams holds the parsed flags for the find command.
type findParams struct {
	pattern              string
	roots                []string
	configPath           string
	kind                 string
	include              []string
	exclude              []string
	includeFrom          []string
	excludeFrom          []string
	includeFromAncestors string
	excludeFromAncestors string
	regex                bool
	gitignore            bool
	noFollowSymlinks     bool
	noDedupe             bool
	first                bool
	format               string
	interactive          bool
	stdout               io.Writer
	stderr               io.Writer
}

// parseRoot splits a --root value of the form "scope=path" or "path".
func parseRoot(value string) searchpath.Entry {
	if scope, path, ok := strings.Cut(value, "="); ok && scope != "" {
		return searchpath.Scoped(scope, path)
	}
	return searchpath.Dir(value)
}

// buildOptions assembles lookup options from flags layered over an
// optional config file. Flags win.
func buildOptions(p findParams, cfg *fileConfig) (searchpath.SearchPath, *searchpath.Options, error) {
	var entries []searchpath.Entry
	if cfg != nil {
		for _, r := range cfg.Roots {
			entries = append(entries, searchpath.Entry{Scope: r.Scope, Root: r.Path})
		}
	}
	for _, r := range p.roots {
		entries = append(entries, parseRoot(r))
	}

	sp := searchpath.New(entries...)
	if sp.Len() == 0 {
		return sp, nil, &searchpath.ConfigurationError{
			Message: "no roots given (use --root or a config file)",
		}
	}

	opts := &searchpath.Options{
		Include:              p.include,
		Exclude:              p.exclude,
		IncludeFrom:          p.includeFrom,
		ExcludeFrom:          p.excludeFrom,
		IncludeFromAncestors: p.includeFromAncestors,
		ExcludeFromAncestors: p.excludeFromAncestors,
		NoFollowSymlinks:     p.noFollowSymlinks,
		NoDedupe:             p.noDedupe,
	}

	kind := p.kind
	if cfg != nil {
		if kind == "" {
			kind = cfg.Kind
		}
		opts.Include = append(append([]string(nil), cfg.Include...), opts.Include...)
		opts.Exclude = append(append([]string(nil), cfg.Exclude...), opts.Exclude...)
		if cfg.FollowSymlinks != nil && !p.noFollowSymlinks {
			opts.NoFollowSymlinks = !*cfg.FollowSymlinks
		}
		if cfg.Dedupe != nil && !p.noDedupe {
			opts.NoDedupe = !*cfg.Dedupe
		}
	}

	switch kind {
	case "", "files":
		opts.Kind = searchpath.KindFiles
	case "dirs":
		opts.Kind = searchpath.KindDirs
	case "both":
		opts.Kind = searchpath.KindBoth
	default:
		return sp, nil, fmt.Errorf("invalid kind %q: must be 'files', 'dirs', or 'both'", kind)
	}

	switch {
	case p.regex && p.gitignore:
		return sp, nil, fmt.Errorf("--regex and --gitignore are mutually exclusive")
	case p.regex:
		opts.Matcher = searchpath.NewRegexMatcher()
	case p.gitignore:
		opts.Matcher = searchpath.NewGitignoreMatcher()
	}

	return sp, opts, nil
}

// runFind is the extracted, testable body of the find command.
func runFind(p findParams) error {
	if p.format != "text" && p.format != "json" && p.format != "html" {
		return fmt.Errorf("invalid format %q: must be 'text', 'json', or 'html'", p.format)
	}

	var cfg *fileConfig
	if p.configPath != "" {
		loaded, err := loadConfig(p.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	sp, opts, err := buildOptions(p, cfg)
	if err != nil {
		return err
	}

	logger.Info("searching", "path", sp.String(), "pattern", p.pattern)

	var matches []searchpath.Match
	if p.first {
		m, err := sp.Match(p.pattern, opts)
		if err != nil {
			return err
		}
		if m != nil {
			matches = append(matches, *m)
		}
	} else {
		matches, err = sp.Matches(p.pattern, opts)
		if err != nil {
			return err
		}
	}

	logger.Info("search complete", "matches", len(matches))

	if p.interactive {
		return runInteractiveFind(matches)
	}

	switch p.format {
	case "json":
		return report.WriteJSON(p.stdout, matches, version)
	case "html":
		return report.WriteHTML(p.stdout, matches, version)
	default:
		return report.WriteText(p.stdout, matches)
	}
}

func newFindCmd() *cobra.Command {
	p := findParams{format: "text"}

	cmd := &cobra.Command{
		Use:   "find [pattern]",
		Short: "Find files or directories across the search path",
		Long: `Find files or directories matching a pattern across one or more
scoped roots. With no pattern everything under the roots is
reported. Results keep priority order, and by default a path found
under an earlier root shadows the same relative path under later
ones.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				p.pattern = args[0]
			}
			p.stdout = os.Stdout
			p.stderr = os.Stderr
			return runFind(p)
		},
	}

	cmd.Flags().StringArrayVarP(&p.roots, "root", "r", nil,
		"search root as scope=path or path (repeatable, priority order)")
	cmd.Flags().StringVarP(&p.configPath, "config", "c", "",
		"YAML config file with roots and default filters")
	cmd.Flags().StringVar(&p.kind, "kind", "",
		"entry kind: files, dirs, or both (default files)")
	cmd.Flags().StringArrayVar(&p.include, "include", nil,
		"include pattern (repeatable)")
	cmd.Flags().StringArrayVar(&p.exclude, "exclude", nil,
		"exclude pattern (repeatable)")
	cmd.Flags().StringArrayVar(&p.includeFrom, "include-from", nil,
		"pattern file providing include patterns (repeatable)")
	cmd.Flags().StringArrayVar(&p.excludeFrom, "exclude-from", nil,
		"pattern file providing exclude patterns (repeatable)")
	cmd.Flags().StringVar(&p.includeFromAncestors, "include-from-ancestors", "",
		"pattern file name to discover in candidate ancestor directories")
	cmd.Flags().StringVar(&p.excludeFromAncestors, "exclude-from-ancestors", "",
		"pattern file name to discover in candidate ancestor directories")
	cmd.Flags().BoolVar(&p.regex, "regex", false,
		"treat patterns as regular expressions")
	cmd.Flags().BoolVar(&p.gitignore, "gitignore", false,
		"treat patterns as gitignore rules (negation, dir-only)")
	cmd.Flags().BoolVar(&p.noFollowSymlinks, "no-follow-symlinks", false,
		"do not descend into symlinked directories")
	cmd.Flags().BoolVar(&p.noDedupe, "no-dedupe", false,
		"report shadowed paths from lower-priority roots too")
	cmd.Flags().BoolVar(&p.first, "first", false,
		"stop after the first match")
	cmd.Flags().StringVar(&p.format, "format", "text",
		"output format: text, json, or html")
	cmd.Flags().BoolVarP(&p.interactive, "interactive", "i", false,
		"launch interactive TUI for browsing results")

	return cmd
}

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema for find output",
		Long: `Print the JSON Schema (Draft 2020-12) that documents the
structure of searchpath find --format=json output. Useful for
validating output or generating client types.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), report.Schema)
			return err
		},
	}
}
