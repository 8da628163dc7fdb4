package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iov-one/spread"
	"github.com/iov-one/spread/errors"
	"github.com/iov-one/spread/store"
)

func TestRecovery(t *testing.T) {
	var h panicHandler
	r := NewRecovery()

	ctx := context.Background()
	db := store.MemStore()

	// Panic handler panics. Test the test tool.
	assert.Panics(t, func() { h.Check(ctx, db, nil) })
	assert.Panics(t, func() { h.Deliver(ctx, db, nil) })

	// Recovery wrapped handler returns an error.
	_, err := r.Check(ctx, db, nil, h)
	assert.True(t, errors.ErrPanic.Is(err))

	_, err = r.Deliver(ctx, db, nil, h)
	assert.True(t, errors.ErrPanic.Is(err))
}

type panicHandler struct{}

var _ spread.Handler = panicHandler{}

func (p panicHandler) Check(ctx spread.Context, db spread.KVStore, tx spread.Tx) (*spread.CheckResult, error) {
	panic("check panic")
}

func (p panicHandler) Deliver(ctx spread.Context, db spread.KVStore, tx spread.Tx) (*spread.DeliverResult, error) {
	panic("deliver panic")
}
