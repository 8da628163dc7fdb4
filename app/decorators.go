package app

import (
	"github.com/iov-one/spread"
)

// Decorators is a chain of decorators that still waits for the final
// handler to dispatch to.
type Decorators struct {
	chain []spread.Decorator
}

// ChainDecorators collects decorators to be wrapped around a handler.
// The first decorator in the chain is executed first.
func ChainDecorators(chain ...spread.Decorator) Decorators {
	return Decorators{chain: chain}
}

// Chain appends more decorators to the stack.
func (d Decorators) Chain(chain ...spread.Decorator) Decorators {
	return Decorators{chain: append(d.chain, chain...)}
}

// WithHandler resolves the stack and returns a concrete Handler that
// passes through the chain of decorators before calling the final
// Handler.
func (d Decorators) WithHandler(h spread.Handler) spread.Handler {
	// wrap from the last decorator to the first one, so the head of
	// the chain ends up outermost
	for i := len(d.chain) - 1; i >= 0; i-- {
		h = step{d: d.chain[i], next: h}
	}
	return h
}

// step binds one decorator to the rest of the stack below it.
type step struct {
	d    spread.Decorator
	next spread.Handler
}

var _ spread.Handler = step{}

func (s step) Check(ctx spread.Context, db spread.KVStore, tx spread.Tx) (*spread.CheckResult, error) {
	return s.d.Check(ctx, db, tx, s.next)
}

func (s step) Deliver(ctx spread.Context, db spread.KVStore, tx spread.Tx) (*spread.DeliverResult, error) {
	return s.d.Deliver(ctx, db, tx, s.next)
}
