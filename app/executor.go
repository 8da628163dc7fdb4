package app

import (
	"github.com/iov-one/spread"
	"github.com/iov-one/spread/coin"
	"github.com/iov-one/spread/errors"
	"github.com/iov-one/spread/x"
	"github.com/iov-one/spread/x/cash"
	"github.com/iov-one/spread/x/utils"
)

// Executor processes transactions against the custody ledger. It is
// the platform piece the handlers rely on: each call runs inside its
// own cache wrap, so either every effect of the call is written, or
// none is.
type Executor struct {
	stack   spread.Handler
	auth    x.Authenticator
	ctrl    cash.Controller
	custody spread.Address
}

// NewExecutor wires the router to the ledger. All payments are
// settled out of the custody account. A panic anywhere in a handler
// is recovered into an error before it can reach the executor, so a
// broken handler rolls its call back like any other failure.
func NewExecutor(r *Router, auth x.Authenticator, ctrl cash.Controller, custody spread.Address) *Executor {
	return &Executor{
		stack:   ChainDecorators(utils.NewRecovery()).WithHandler(r),
		auth:    auth,
		ctrl:    ctrl,
		custody: custody,
	}
}

// Check validates the transaction against a throwaway savepoint.
// Nothing is persisted, no funds move.
func (e *Executor) Check(ctx spread.Context, db spread.CacheableKVStore, tx spread.Tx) (*spread.CheckResult, error) {
	cache := db.CacheWrap()
	defer cache.Discard()
	return e.stack.Check(ctx, cache, tx)
}

// Deliver executes the transaction. The attached funds are moved
// into the custody before the handler runs, and every payment the
// handler returns is settled out of the custody afterwards. If any
// step fails the cache is discarded and the store is untouched.
func (e *Executor) Deliver(ctx spread.Context, db spread.CacheableKVStore, tx spread.Tx) (*spread.DeliverResult, error) {
	cache := db.CacheWrap()
	res, err := e.deliver(ctx, cache, tx)
	if err != nil {
		cache.Discard()
		return nil, err
	}
	if err := cache.Write(); err != nil {
		return nil, errors.Wrap(err, "cannot write cache")
	}
	return res, nil
}

func (e *Executor) deliver(ctx spread.Context, db spread.KVStore, tx spread.Tx) (*spread.DeliverResult, error) {
	if err := e.collectFunds(ctx, db, tx); err != nil {
		return nil, errors.Wrap(err, "cannot collect funds")
	}

	res, err := e.stack.Deliver(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	for _, p := range res.Payments {
		if err := e.ctrl.MoveCoins(db, e.custody, p.Recipient, p.Amount); err != nil {
			return nil, errors.Wrapf(err, "payment to %s", p.Recipient)
		}
	}
	return res, nil
}

// collectFunds moves the attached funds from the caller into the
// custody account. A funded call must be signed, otherwise there is
// nobody to take the funds from.
func (e *Executor) collectFunds(ctx spread.Context, db spread.KVStore, tx spread.Tx) error {
	funds := spread.AttachedFunds(tx)
	if funds.IsEmpty() {
		return nil
	}
	signer := x.MainSigner(ctx, e.auth)
	if signer == nil {
		return errors.Wrap(errors.ErrUnauthorized, "unsigned funded call")
	}
	for _, c := range funds {
		if coin.IsEmpty(c) {
			return errors.Wrap(errors.ErrInput, "empty fund attached")
		}
		if err := e.ctrl.MoveCoins(db, signer.Address(), e.custody, *c); err != nil {
			return err
		}
	}
	return nil
}
