package report

import (
	"html/template"
	"io"

	"github.com/tbhb/searchpath"
)

// htmlPage is the self-contained template behind WriteHTML: embedded
// CSS, no external assets, one table section per scope run.
var htmlPage = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>searchpath results</title>
<style>
body { font-family: ui-monospace, monospace; margin: 2rem; color: #1a1a2e; }
h1 { font-size: 1.2rem; }
h2 { font-size: 1rem; border-bottom: 1px solid #ccc; padding-bottom: .25rem; }
p.source { color: #666; margin-top: -.5rem; }
table { border-collapse: collapse; margin-bottom: 1.5rem; }
th, td { text-align: left; padding: .25rem .75rem; border: 1px solid #ccc; }
th { background: #f0f0f5; }
p.summary { font-weight: bold; }
</style>
</head>
<body>
<h1>searchpath results</h1>
{{range .Sections}}<h2>{{.Scope}}</h2>
<p class="source">{{.Source}}</p>
<table>
<tr><th>Relative path</th><th>Absolute path</th></tr>
{{range .Matches}}<tr><td>{{.Relative}}</td><td>{{.Path}}</td></tr>
{{end}}</table>
{{end}}<p class="summary">{{.Total}} match(es) across {{len .Sections}} scope(s)</p>
<p class="source">schema version {{.Version}}</p>
</body>
</html>
`))

type htmlSection struct {
	Scope   string
	Source  string
	Matches []JSONMatch
}

type htmlData struct {
	Sections []htmlSection
	Total    int
	Version  string
}

// WriteHTML writes lookup results as a self-contained HTML report, one
// table per scope in priority order. Paths are HTML-escaped by the
// template engine.
func WriteHTML(w io.Writer, matches []searchpath.Match, version string) error {
	data := htmlData{Total: len(matches), Version: version}
	for _, section := range groupByScope(matches) {
		hs := htmlSection{
			Scope:  section[0].Scope,
			Source: section[0].Source,
		}
		for _, m := range section {
			hs.Matches = append(hs.Matches, JSONMatch{
				Path:     m.Path,
				Scope:    m.Scope,
				Source:   m.Source,
				Relative: m.Relative(),
			})
		}
		data.Sections = append(data.Sections, hs)
	}
	return htmlPage.Execute(w, data)
}
