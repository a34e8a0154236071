// Package templates embeds the server-rendered pages.
package templates

import (
	"embed"
	"fmt"
	"html/template"
	"time"
)

//go:embed *.html
var files embed.FS

const baseTemplate = "base.html"

// Pages rendered on top of base.html.
var Pages = []string{"index.html", "board.html", "not_found.html", "error.html"}

var funcs = template.FuncMap{
	"date": func(t time.Time) string { return t.UTC().Format("2006-01-02 15:04") },
}

// Load parses every page together with the base layout, keyed by page file name.
func Load() (map[string]*template.Template, error) {
	result := make(map[string]*template.Template, len(Pages))
	for _, page := range Pages {
		tmpl, err := template.New(baseTemplate).Funcs(funcs).ParseFS(files, baseTemplate, page)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", page, err)
		}
		result[page] = tmpl
	}
	return result, nil
}

func MustLoad() map[string]*template.Template {
	t, err := Load()
	if err != nil {
		panic(err)
	}
	return t
}
