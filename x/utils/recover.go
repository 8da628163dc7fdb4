package utils

import (
	"github.com/iov-one/spread"
	"github.com/iov-one/spread/errors"
)

// Recovery is a decorator to recover from panics in transactions,
// so we can log them as errors
type Recovery struct{}

var _ spread.Decorator = Recovery{}

// NewRecovery creates a Recovery decorator
func NewRecovery() Recovery {
	return Recovery{}
}

// Check turns panics into normal errors
func (r Recovery) Check(ctx spread.Context, db spread.KVStore, tx spread.Tx, next spread.Checker) (_ *spread.CheckResult, err error) {
	defer errors.Recover(&err)
	return next.Check(ctx, db, tx)
}

// Deliver turns panics into normal errors
func (r Recovery) Deliver(ctx spread.Context, db spread.KVStore, tx spread.Tx, next spread.Deliverer) (_ *spread.DeliverResult, err error) {
	defer errors.Recover(&err)
	return next.Deliver(ctx, db, tx)
}
