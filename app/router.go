package app

import (
	"fmt"
	"regexp"

	"github.com/iov-one/spread"
	"github.com/iov-one/spread/errors"
)

var isPath = regexp.MustCompile(`^[a-zA-Z0-9_/]+$`).MatchString

// Router maps message paths to handlers. The message set is closed
// at setup time, so every wiring mistake surfaces as a panic before
// any transaction is processed.
type Router struct {
	routes map[string]spread.Handler
}

var _ spread.Registry = (*Router)(nil)

// NewRouter initializes a router with no routes
func NewRouter() *Router {
	return &Router{
		routes: make(map[string]spread.Handler),
	}
}

// Handle adds a new route matching the path of the given message.
// Panics on invalid path or duplicate registration.
func (r *Router) Handle(m spread.Msg, h spread.Handler) {
	path := m.Path()
	if !isPath(path) {
		panic(fmt.Sprintf("invalid path: %q", path))
	}
	if _, ok := r.routes[path]; ok {
		panic(fmt.Sprintf("re-registering route: %q", path))
	}
	r.routes[path] = h
}

// Handler returns the registered Handler for this path. If no match
// is found, it returns a handler that errors on every call.
func (r *Router) Handler(path string) spread.Handler {
	h, ok := r.routes[path]
	if !ok {
		return notFoundHandler(path)
	}
	return h
}

var _ spread.Handler = (*Router)(nil)

// Check dispatches the transaction to the handler registered for its
// message path. This makes the router usable as the bottom of a
// decorator stack.
func (r *Router) Check(ctx spread.Context, db spread.KVStore, tx spread.Tx) (*spread.CheckResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot get message")
	}
	return r.Handler(msg.Path()).Check(ctx, db, tx)
}

// Deliver dispatches the transaction to the handler registered for
// its message path.
func (r *Router) Deliver(ctx spread.Context, db spread.KVStore, tx spread.Tx) (*spread.DeliverResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot get message")
	}
	return r.Handler(msg.Path()).Deliver(ctx, db, tx)
}

// notFoundHandler always returns ErrNotFound
type notFoundHandler string

var _ spread.Handler = notFoundHandler("")

func (n notFoundHandler) Check(ctx spread.Context, db spread.KVStore, tx spread.Tx) (*spread.CheckResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for %q", string(n))
}

func (n notFoundHandler) Deliver(ctx spread.Context, db spread.KVStore, tx spread.Tx) (*spread.DeliverResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for %q", string(n))
}
