package app

import (
	"github.com/iov-one/spread"
	"github.com/iov-one/spread/errors"
	abci "github.com/tendermint/tendermint/abci/types"
)

// Base exposes the executor through the tendermint abci response
// types. It decodes raw transaction bytes, dispatches to the executor
// and converts both results and errors into abci responses.
type Base struct {
	exec    *Executor
	db      spread.CacheableKVStore
	decoder spread.TxDecoder
	ctx     spread.Context
	debug   bool
}

// NewBase constructs the abci facing adapter. With debug enabled the
// full error message is reported back to the caller, otherwise only
// the error code and its generic description leak out.
func NewBase(exec *Executor, db spread.CacheableKVStore, decoder spread.TxDecoder, ctx spread.Context, debug bool) *Base {
	return &Base{
		exec:    exec,
		db:      db,
		decoder: decoder,
		ctx:     ctx,
		debug:   debug,
	}
}

// DeliverTx decodes and executes a transaction, reporting the outcome
// in abci form.
func (b *Base) DeliverTx(txBytes []byte) abci.ResponseDeliverTx {
	tx, err := b.loadTx(txBytes)
	if err != nil {
		code, log := errors.ABCIInfo(err, b.debug)
		return abci.ResponseDeliverTx{Code: code, Log: log}
	}
	res, err := b.exec.Deliver(b.ctx, b.db, tx)
	if err != nil {
		spread.GetLogger(b.ctx).Error("deliver failed",
			"path", spread.GetPath(tx), "err", err)
	}
	return spread.DeliverOrError(res, err, b.debug)
}

// CheckTx decodes and validates a transaction against a throwaway
// savepoint, reporting the outcome in abci form.
func (b *Base) CheckTx(txBytes []byte) abci.ResponseCheckTx {
	tx, err := b.loadTx(txBytes)
	if err != nil {
		code, log := errors.ABCIInfo(err, b.debug)
		return abci.ResponseCheckTx{Code: code, Log: log}
	}
	res, err := b.exec.Check(b.ctx, b.db, tx)
	return spread.CheckOrError(res, err, b.debug)
}

// loadTx calls the decoder, capturing any panics.
func (b *Base) loadTx(txBytes []byte) (tx spread.Tx, err error) {
	defer errors.Recover(&err)
	tx, err = b.decoder(txBytes)
	return tx, err
}
