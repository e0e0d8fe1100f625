// Package page serves the embedded notes page.
package page

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
)

//go:embed templates/index.gohtml
var templateFS embed.FS

const title = "Recent Job Notes"

type Page struct {
	tmpl        *template.Template
	gateEnabled bool
}

type pageData struct {
	Title       string
	GateEnabled bool
}

// New parses the page template once. gateEnabled makes the page ask for the
// condition text before mutating notes.
func New(gateEnabled bool) (*Page, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/index.gohtml")
	if err != nil {
		return nil, fmt.Errorf("parse page template: %w", err)
	}
	return &Page{tmpl: tmpl, gateEnabled: gateEnabled}, nil
}

func (p *Page) Index(w http.ResponseWriter, _ *http.Request) {
	var buf bytes.Buffer
	data := pageData{Title: title, GateEnabled: p.gateEnabled}
	if err := p.tmpl.ExecuteTemplate(&buf, "index.gohtml", data); err != nil {
		slog.Error("render page", "reason", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
