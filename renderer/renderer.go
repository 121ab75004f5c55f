// Package renderer turns book state into markdown reports for the terminal.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed templates/*.md
var templates embed.FS

// RenderSummary renders the dashboard summary to a markdown string.
func RenderSummary(s *Summary) string {
	partials := map[string]string{
		"recent_transactions": "templates/recent_transactions.md",
	}
	return renderTemplate("summary", "templates/summary.md", partials, s)
}

// RenderStatement renders a customer khata to a markdown string.
func RenderStatement(s *Statement) string {
	return renderTemplate("statement", "templates/statement.md", nil, s)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		// An empty file name is a valid case, resulting in an empty template.
		if file != "" {
			var readErr error
			content, readErr = fs.ReadFile(templates, file)
			if readErr != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, readErr)
			}
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
