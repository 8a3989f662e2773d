// Package routes provides declarative route groups. A Group owns an ordered
// list of routes for one feature area, builds the handler that serves them
// relative to the group's mount point, and documents them in an OpenAPI spec.
package routes

import (
	"net/http"

	"github.com/JaimeStill/prompt-mixer/pkg/openapi"
)

// Route represents an HTTP route with method, pattern, and handler.
// Pattern is relative to the owning group; an empty pattern is the group root.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
	OpenAPI *openapi.Operation
}

// Group represents a collection of routes under a common URL prefix.
// Groups can contain child groups for hierarchical route organization.
type Group struct {
	Prefix      string
	Tags        []string
	Description string
	Routes      []Route
	Children    []Group
	Schemas     map[string]*openapi.Schema
}

// Tag returns the primary documentation tag of the group, or "" when untagged.
func (g Group) Tag() string {
	if len(g.Tags) == 0 {
		return ""
	}
	return g.Tags[0]
}

// Handler builds a mux serving the group's routes with the group prefix
// already stripped, as delivered by a mounted module.
func (g Group) Handler() http.Handler {
	mux := http.NewServeMux()
	g.register(mux, "")
	return mux
}

func (g Group) register(mux *http.ServeMux, prefix string) {
	for _, route := range g.Routes {
		mux.HandleFunc(route.Method+" "+muxPattern(prefix+route.Pattern), route.Handler)
	}
	for _, child := range g.Children {
		child.register(mux, prefix+child.Prefix)
	}
}

// AddToSpec documents every route that carries an OpenAPI operation at
// basePath + Prefix + Pattern. Operations without tags inherit the group tags.
func (g Group) AddToSpec(basePath string, spec *openapi.Spec) {
	for _, tag := range g.Tags {
		spec.AddTag(tag, g.Description)
	}

	if len(g.Schemas) > 0 {
		if spec.Components == nil {
			spec.Components = &openapi.Components{}
		}
		spec.Components.AddSchemas(g.Schemas)
	}

	fullPrefix := basePath + g.Prefix
	for _, route := range g.Routes {
		if route.OpenAPI == nil {
			continue
		}

		op := *route.OpenAPI
		if len(op.Tags) == 0 {
			op.Tags = g.Tags
		}

		spec.AddOperation(specPath(fullPrefix+route.Pattern), route.Method, &op)
	}

	for _, child := range g.Children {
		child.AddToSpec(fullPrefix, spec)
	}
}

func muxPattern(path string) string {
	if path == "" || path == "/" {
		return "/{$}"
	}
	return path
}

func specPath(path string) string {
	if path == "" {
		return "/"
	}
	return path
}
