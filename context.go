package spread

import (
	"context"
	"regexp"

	"github.com/iov-one/spread/errors"
	"github.com/tendermint/tendermint/libs/log"
)

// Context is just the standard context, with some helpers to safely get
// and set values stored inside.
type Context = context.Context

type contextKey int // local to the spread module

const (
	contextKeyHeight contextKey = iota
	contextKeyChainID
	contextKeyLogger
)

var (
	// DefaultLogger is used for all contexts that have not set anything
	// themselves.
	DefaultLogger = log.NewNopLogger()

	// IsValidChainID is the RegExp to ensure valid chain IDs
	IsValidChainID = regexp.MustCompile(`^[a-zA-Z0-9_\-]{6,20}$`).MatchString
)

// WithHeight sets the block height for the Context. Panics if already
// set, to avoid lower-level modules overwriting the value.
func WithHeight(ctx Context, height int64) Context {
	if _, ok := GetHeight(ctx); ok {
		panic("height already set")
	}
	return context.WithValue(ctx, contextKeyHeight, height)
}

// GetHeight returns the current block height, if set.
func GetHeight(ctx Context) (int64, bool) {
	val, ok := ctx.Value(contextKeyHeight).(int64)
	return val, ok
}

// WithChainID sets the chain id for the Context. Panics if already set
// or if the id is invalid.
func WithChainID(ctx Context, chainID string) Context {
	if ctx.Value(contextKeyChainID) != nil {
		panic("chain id already set")
	}
	if !IsValidChainID(chainID) {
		panic(errors.Wrapf(errors.ErrInput, "chain id: %v", chainID))
	}
	return context.WithValue(ctx, contextKeyChainID, chainID)
}

// GetChainID returns the current chain id. Panics if the chain id was
// not set, as it is required for every call.
func GetChainID(ctx Context) string {
	val, ok := ctx.Value(contextKeyChainID).(string)
	if !ok {
		panic("chain id is not set")
	}
	return val
}

// WithLogger sets the logger for the Context.
func WithLogger(ctx Context, logger log.Logger) Context {
	// Logger can be overridden below, so we don't check for an
	// existing value.
	return context.WithValue(ctx, contextKeyLogger, logger)
}

// GetLogger returns the logger stored in the Context, or the
// DefaultLogger.
func GetLogger(ctx Context) log.Logger {
	val, ok := ctx.Value(contextKeyLogger).(log.Logger)
	if !ok {
		return DefaultLogger
	}
	return val
}
