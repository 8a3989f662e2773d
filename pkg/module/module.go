// Package module provides prefix-mounted HTTP modules and the Router that
// composes them into a single dispatch tree.
//
// A Module binds an http.Handler to a literal URL prefix and a documentation
// tag. The Router owns an ordered set of modules with unique prefixes and
// strips the matched prefix before handing the request to the module, so each
// module matches its own routes relative to its mount point.
package module

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
)

// Module is a mount entry: a handler bound to a URL prefix and a tag.
type Module struct {
	prefix     string
	tag        string
	handler    http.Handler
	middleware []func(http.Handler) http.Handler

	once  sync.Once
	chain http.Handler
}

// New creates a module for handler mounted at prefix.
// The prefix must begin with "/", must not end with "/", and must not contain
// empty segments. The tag is metadata for documentation and metrics only.
func New(prefix, tag string, handler http.Handler) (*Module, error) {
	if err := ValidatePrefix(prefix); err != nil {
		return nil, err
	}
	if handler == nil {
		return nil, fmt.Errorf("%w: %s", ErrNilHandler, prefix)
	}

	return &Module{
		prefix:  prefix,
		tag:     tag,
		handler: handler,
	}, nil
}

// Prefix returns the mount prefix.
func (m *Module) Prefix() string {
	return m.prefix
}

// Tag returns the documentation tag.
func (m *Module) Tag() string {
	return m.tag
}

// Use appends middleware to the module. Middleware runs in the order added.
// Middleware added after the first Serve is ignored by Serve.
func (m *Module) Use(mw func(http.Handler) http.Handler) {
	m.middleware = append(m.middleware, mw)
}

// Handler returns the module handler wrapped in its middleware.
func (m *Module) Handler() http.Handler {
	h := m.handler
	for i := len(m.middleware) - 1; i >= 0; i-- {
		h = m.middleware[i](h)
	}
	return h
}

// Serve strips the module prefix from the request path and serves it.
// The middleware chain is built on the first call and reused.
func (m *Module) Serve(w http.ResponseWriter, r *http.Request) {
	m.once.Do(func() {
		m.chain = m.Handler()
	})
	m.chain.ServeHTTP(w, stripPrefix(r, m.prefix))
}

// ValidatePrefix reports whether prefix is a well-formed mount prefix.
func ValidatePrefix(prefix string) error {
	switch {
	case prefix == "":
		return fmt.Errorf("%w: prefix required", ErrInvalidPrefix)
	case !strings.HasPrefix(prefix, "/"):
		return fmt.Errorf("%w: %q must start with /", ErrInvalidPrefix, prefix)
	case strings.HasSuffix(prefix, "/"):
		return fmt.Errorf("%w: %q must not end with /", ErrInvalidPrefix, prefix)
	case strings.Contains(prefix, "//"):
		return fmt.Errorf("%w: %q contains an empty segment", ErrInvalidPrefix, prefix)
	}
	return nil
}

// matches reports whether prefix is a literal leading-segment match of path.
func matches(prefix, path string) bool {
	if !strings.HasPrefix(path, prefix) {
		return false
	}
	return len(path) == len(prefix) || path[len(prefix)] == '/'
}

func remaining(prefix, path string) string {
	rest := path[len(prefix):]
	if rest == "" {
		return "/"
	}
	return rest
}

// stripPrefix returns a shallow copy of r whose URL path has prefix removed.
func stripPrefix(r *http.Request, prefix string) *http.Request {
	path := r.URL.Path
	if matches(prefix, path) {
		path = remaining(prefix, path)
	}

	rawPath := ""
	if r.URL.RawPath != "" && matches(prefix, r.URL.RawPath) {
		rawPath = remaining(prefix, r.URL.RawPath)
	}

	return withPath(r, path, rawPath)
}

func withPath(r *http.Request, path, rawPath string) *http.Request {
	r2 := new(http.Request)
	*r2 = *r
	r2.URL = new(url.URL)
	*r2.URL = *r.URL
	r2.URL.Path = path
	r2.URL.RawPath = rawPath
	return r2
}
