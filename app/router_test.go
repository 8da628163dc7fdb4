package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iov-one/spread/errors"
	"github.com/iov-one/spread/spreadtest"
)

func TestRouter(t *testing.T) {
	r := NewRouter()

	h := &spreadtest.Handler{}
	r.Handle(&spreadtest.Msg{RoutePath: "test/good"}, h)

	// invalid registrations panic
	assert.Panics(t, func() { r.Handle(&spreadtest.Msg{RoutePath: "test/good"}, h) })
	assert.Panics(t, func() { r.Handle(&spreadtest.Msg{RoutePath: "l:7"}, h) })

	// proper paths are routed
	tx := &spreadtest.Tx{Msg: &spreadtest.Msg{RoutePath: "test/good"}}
	_, err := r.Handler("test/good").Check(context.Background(), nil, tx)
	require.NoError(t, err)
	_, err = r.Handler("test/good").Deliver(context.Background(), nil, tx)
	require.NoError(t, err)
	assert.Equal(t, 2, h.CallCount())

	// a missing path reports not found instead of panicing
	_, err = r.Handler("test/missing").Deliver(context.Background(), nil, tx)
	assert.True(t, errors.ErrNotFound.Is(err))
	_, err = r.Handler("test/missing").Check(context.Background(), nil, tx)
	assert.True(t, errors.ErrNotFound.Is(err))
	assert.Equal(t, 2, h.CallCount())
}
