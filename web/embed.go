// Package web embeds the landing-page templates.
package web

import (
	"embed"
	"html/template"
	"strconv"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Templates parses the embedded templates with the presentation helpers
// registered.
func Templates() (*template.Template, error) {
	funcs := template.FuncMap{
		// stat formats an optional summary value, blank when absent.
		"stat": func(p *float64) string {
			if p == nil {
				return ""
			}
			return strconv.FormatFloat(*p, 'f', 2, 64)
		},
		// coord formats an optional coordinate, blank when null.
		"coord": func(p *float64) string {
			if p == nil {
				return ""
			}
			return strconv.FormatFloat(*p, 'f', 5, 64)
		},
	}
	return template.New("dashboard").Funcs(funcs).ParseFS(templatesFS, "templates/*.html")
}
