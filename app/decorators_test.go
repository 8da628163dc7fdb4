package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iov-one/spread"
	"github.com/iov-one/spread/spreadtest"
	"github.com/iov-one/spread/store"
)

func TestChainDecorators(t *testing.T) {
	h := &spreadtest.Handler{
		CheckResult:   spread.CheckResult{Log: "."},
		DeliverResult: spread.DeliverResult{Log: "."},
	}
	stack := ChainDecorators(
		labelDecorator{"a"},
	).Chain(
		labelDecorator{"b"},
	).WithHandler(h)

	ctx := context.Background()
	db := store.MemStore()

	// the first decorator in the chain wraps outermost
	cres, err := stack.Check(ctx, db, &spreadtest.Tx{})
	require.NoError(t, err)
	assert.Equal(t, "ab.", cres.Log)

	dres, err := stack.Deliver(ctx, db, &spreadtest.Tx{})
	require.NoError(t, err)
	assert.Equal(t, "ab.", dres.Log)
	assert.Equal(t, 2, h.CallCount())
}

// labelDecorator prepends its label to the result log, recording the
// order decorators were entered.
type labelDecorator struct {
	label string
}

var _ spread.Decorator = labelDecorator{}

func (d labelDecorator) Check(ctx spread.Context, db spread.KVStore, tx spread.Tx, next spread.Checker) (*spread.CheckResult, error) {
	res, err := next.Check(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	res.Log = d.label + res.Log
	return res, nil
}

func (d labelDecorator) Deliver(ctx spread.Context, db spread.KVStore, tx spread.Tx, next spread.Deliverer) (*spread.DeliverResult, error) {
	res, err := next.Deliver(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	res.Log = d.label + res.Log
	return res, nil
}
