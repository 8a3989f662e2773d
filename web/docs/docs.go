// Package docs serves the interactive API reference using Scalar UI.
package docs

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/JaimeStill/prompt-mixer/pkg/module"
	"github.com/JaimeStill/prompt-mixer/pkg/routes"
)

// Tag labels the docs module.
const Tag = "docs"

//go:embed index.html
var indexHTML string

var indexTmpl = template.Must(template.New("index").Parse(indexHTML))

type page struct {
	Title   string
	SpecURL string
}

// Handler serves the documentation page for a single OpenAPI document.
type Handler struct {
	index []byte
}

// NewHandler renders the documentation page for the spec served at specURL.
func NewHandler(title, specURL string) (*Handler, error) {
	var buf bytes.Buffer
	if err := indexTmpl.Execute(&buf, page{Title: title, SpecURL: specURL}); err != nil {
		return nil, fmt.Errorf("render docs: %w", err)
	}
	return &Handler{index: buf.Bytes()}, nil
}

// Routes returns the route group for documentation endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/docs",
		Tags:        []string{Tag},
		Description: "Interactive API documentation powered by Scalar",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.serveIndex},
		},
	}
}

// NewModule mounts the documentation page at prefix.
func NewModule(prefix, title, specURL string) (*module.Module, error) {
	h, err := NewHandler(title, specURL)
	if err != nil {
		return nil, err
	}
	return module.New(prefix, Tag, h.Routes().Handler())
}

func (h *Handler) serveIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(h.index)
}
