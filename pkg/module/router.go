package module

import (
	"fmt"
	"net/http"
	"strings"
)

// Mount describes a mounted module for listing and documentation.
type Mount struct {
	Prefix string `json:"prefix"`
	Tag    string `json:"tag"`
}

// Router dispatches requests to mounted modules by literal prefix and falls
// back to natively registered routes.
//
// Mount and HandleNative are not safe for concurrent use and must complete
// before the router starts serving. Once serving, the router is read-only and
// may be shared across request goroutines without locking.
type Router struct {
	native  *http.ServeMux
	modules []*Module
	index   map[string]*Module
}

// NewRouter creates an empty router.
func NewRouter() *Router {
	return &Router{
		native: http.NewServeMux(),
		index:  make(map[string]*Module),
	}
}

// HandleNative registers a handler on the fallback mux using
// http.ServeMux pattern syntax.
func (r *Router) HandleNative(pattern string, handler http.HandlerFunc) {
	r.native.HandleFunc(pattern, handler)
}

// Mount adds m to the router. Registration order is preserved by Mounts.
// A prefix that is already mounted is rejected with ErrDuplicatePrefix.
func (r *Router) Mount(m *Module) error {
	if m == nil {
		return ErrNilModule
	}
	if existing, ok := r.index[m.prefix]; ok {
		return fmt.Errorf("%w: %s (tag %q)", ErrDuplicatePrefix, m.prefix, existing.tag)
	}

	r.modules = append(r.modules, m)
	r.index[m.prefix] = m
	return nil
}

// Register creates a module from prefix, tag and handler and mounts it.
func (r *Router) Register(prefix, tag string, handler http.Handler) (*Module, error) {
	m, err := New(prefix, tag, handler)
	if err != nil {
		return nil, err
	}
	if err := r.Mount(m); err != nil {
		return nil, err
	}
	return m, nil
}

// Resolve finds the module whose prefix is the longest literal leading-segment
// match of path and returns it with the remaining path. The bare prefix
// resolves to "/". ErrNotFound is returned when no module matches.
func (r *Router) Resolve(path string) (*Module, string, error) {
	var match *Module
	for _, m := range r.modules {
		if !matches(m.prefix, path) {
			continue
		}
		if match == nil || len(m.prefix) > len(match.prefix) {
			match = m
		}
	}

	if match == nil {
		return nil, "", ErrNotFound
	}
	return match, remaining(match.prefix, path), nil
}

// Mounts lists the mounted modules in registration order.
func (r *Router) Mounts() []Mount {
	mounts := make([]Mount, 0, len(r.modules))
	for _, m := range r.modules {
		mounts = append(mounts, Mount{Prefix: m.prefix, Tag: m.tag})
	}
	return mounts
}

// ServeHTTP normalizes a trailing slash, dispatches to the matching module
// with its prefix stripped, and otherwise serves from the native mux.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	path := req.URL.Path
	if len(path) > 1 && strings.HasSuffix(path, "/") {
		path = strings.TrimSuffix(path, "/")
		req = withPath(req, path, strings.TrimSuffix(req.URL.RawPath, "/"))
	}

	if m, _, err := r.Resolve(path); err == nil {
		m.Serve(w, req)
		return
	}

	r.native.ServeHTTP(w, req)
}
