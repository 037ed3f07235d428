package view

import (
	"fmt"
	"html/template"
	"io"

	"gxportfolio/internal/domain"
)

const resultsTemplate = `{{define "results"}}{{if .Cleared}}{{else if not .Records}}
<div class="no-results">
    <svg viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2">
        <circle cx="11" cy="11" r="8"/>
        <path d="m21 21-4.35-4.35"/>
    </svg>
    <h3>No commands found</h3>
    <p>Try searching with different keywords</p>
    {{- if .Suggestions}}
    <p class="suggestions">Did you mean: {{range $i, $s := .Suggestions}}{{if $i}}, {{end}}<span class="suggestion">/{{$s}}</span>{{end}}?</p>
    {{- end}}
</div>
{{else}}{{range .Records}}
<div class="command-card">
    <div class="command-header">
        <span class="command-name">/{{.Name}}</span>
        <span class="command-category">{{.Category}}</span>
    </div>
    <p class="command-description">{{.Description}}</p>
</div>
{{end}}{{end}}{{end}}`

// ResultsRenderer renders search results as HTML. Record text is escaped.
type ResultsRenderer struct {
	tmpl *template.Template
}

// NewResultsRenderer creates a results renderer
func NewResultsRenderer() *ResultsRenderer {
	return &ResultsRenderer{
		tmpl: template.Must(template.New("view").Parse(resultsTemplate)),
	}
}

// Render writes nothing for a cleared result, a "no results" block when the
// query matched nothing, and one card per record otherwise
func (r *ResultsRenderer) Render(w io.Writer, result domain.SearchResult) error {
	if err := r.tmpl.ExecuteTemplate(w, "results", result); err != nil {
		return fmt.Errorf("failed to render results: %w", err)
	}
	return nil
}
