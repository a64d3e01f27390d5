package app

import (
	"fmt"
	"regexp"

	"github.com/iov-one/adminlist"
	"github.com/iov-one/adminlist/errors"
)

// isPath is the RegExp to ensure the routes make sense
var isPath = regexp.MustCompile(`^[a-z0-9_]+(/[a-z0-9_]+)*$`).MatchString

// Router allows us to register many handlers with different
// paths and then direct each message to the proper handler.
//
// Minimal interface modeled after net/http.ServeMux
type Router struct {
	routes map[string]adminlist.Handler
}

var _ adminlist.Registry = (*Router)(nil)
var _ adminlist.Handler = (*Router)(nil)

// NewRouter returns a new empty router instance.
func NewRouter() *Router {
	return &Router{
		routes: make(map[string]adminlist.Handler, 10),
	}
}

// Handle adds a new Handler for the given path. This function panics if a
// handler for given path is already registered.
func (r *Router) Handle(path string, h adminlist.Handler) {
	if !isPath(path) {
		panic(fmt.Sprintf("invalid path: %s", path))
	}
	if _, ok := r.routes[path]; ok {
		panic(fmt.Sprintf("Re-registering route: %s", path))
	}
	r.routes[path] = h
}

// handler returns the registered Handler for this path. If no path is found,
// returns a noSuchPath Handler. This method always returns a non nil Handler.
func (r *Router) handler(m adminlist.Msg) adminlist.Handler {
	path := m.Path()
	if h, ok := r.routes[path]; ok {
		return h
	}
	return notFoundHandler(path)
}

// Execute dispatches the message to the registered handler.
func (r *Router) Execute(ctx adminlist.Context, store adminlist.KVStore, msg adminlist.Msg) (*adminlist.Result, error) {
	return r.handler(msg).Execute(ctx, store, msg)
}

func notFoundHandler(path string) adminlist.Handler {
	return adminlist.HandlerFunc(func(adminlist.Context, adminlist.KVStore, adminlist.Msg) (*adminlist.Result, error) {
		return nil, errors.Wrapf(errors.ErrNotFound, "no handler for path %q", path)
	})
}

// QueryRouter allows us to register many query handlers to different paths
// and then direct each query to the proper handler.
type QueryRouter struct {
	routes map[string]adminlist.QueryHandler
}

var _ adminlist.QueryRegistry = (*QueryRouter)(nil)
var _ adminlist.QueryHandler = (*QueryRouter)(nil)

// NewQueryRouter initializes a QueryRouter with no routes
func NewQueryRouter() *QueryRouter {
	return &QueryRouter{
		routes: make(map[string]adminlist.QueryHandler, 10),
	}
}

// Register adds a new Handler for the given path.
// panics if another Handler was already registered
func (r *QueryRouter) Register(path string, h adminlist.QueryHandler) {
	if !isPath(path) {
		panic(fmt.Sprintf("invalid path: %s", path))
	}
	if _, ok := r.routes[path]; ok {
		panic(fmt.Sprintf("Re-registering route: %s", path))
	}
	r.routes[path] = h
}

// Query dispatches the query to the registered handler.
func (r *QueryRouter) Query(ctx adminlist.Context, store adminlist.ReadOnlyKVStore, msg adminlist.Msg) (interface{}, error) {
	h, ok := r.routes[msg.Path()]
	if !ok {
		return nil, errors.Wrapf(errors.ErrNotFound, "no query handler for path %q", msg.Path())
	}
	return h.Query(ctx, store, msg)
}
