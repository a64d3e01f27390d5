/*
Package adminlist defines all common interfaces used to put together the
admin list contract, its funds transfer capability and the host that runs
them, as well as implementations of some of the simpler components (when
interfaces would be too much overhead).

We pass context through context.Context between the host, routers and
handlers. To do so, this package defines some common keys to store info, such
as the caller identity, the attached funds and the chain id.

There should exist two functions for every XYZ of type T that we want to
support in Context:

  WithXYZ(Context, T) Context
  GetXYZ(Context) (val T, ok bool)

WithXYZ may panic if the value was previously set to avoid lower-level
modules overwriting the value (eg. caller, funds).
*/
package adminlist

import (
	"context"
	"fmt"
	"regexp"

	"github.com/iov-one/adminlist/coin"
	"github.com/tendermint/tendermint/libs/log"
)

type contextKey int // local to the package

const (
	contextKeyHeight contextKey = iota
	contextKeyChainID
	contextKeyLogger
	contextKeyCaller
	contextKeyFunds
	contextKeyContract
)

var (
	// DefaultLogger is used for all context that have not
	// set anything themselves
	DefaultLogger = log.NewNopLogger()

	// IsValidChainID is the RegExp to ensure valid chain IDs
	IsValidChainID = regexp.MustCompile(`^[a-zA-Z0-9_\-]{6,20}$`).MatchString
)

// Context is just an alias for the standard implementation.
// We use functions to extend it to our domain
type Context = context.Context

// WithHeight sets the block height for the context.
// May only set once per context, panics if set twice.
func WithHeight(ctx Context, height int64) Context {
	if _, ok := ctx.Value(contextKeyHeight).(int64); ok {
		panic("Tried to modify height in context")
	}
	return context.WithValue(ctx, contextKeyHeight, height)
}

// GetHeight returns the current block height
// If it was not set, return (0, false)
func GetHeight(ctx Context) (int64, bool) {
	val, ok := ctx.Value(contextKeyHeight).(int64)
	return val, ok
}

// WithChainID sets the chain id for the Context.
// It panics on empty or invalid chainID, or if it was previously set.
func WithChainID(ctx Context, chainID string) Context {
	if ctx.Value(contextKeyChainID) != nil {
		panic("Chain ID already set in Context")
	}
	if !IsValidChainID(chainID) {
		panic(fmt.Sprintf("Invalid chain ID: %q", chainID))
	}
	return context.WithValue(ctx, contextKeyChainID, chainID)
}

// GetChainID returns the current chain id
// panics if chain id not already set (should never happen)
func GetChainID(ctx Context) string {
	if x := ctx.Value(contextKeyChainID); x == nil {
		panic("Chain id not set in Context")
	}
	return ctx.Value(contextKeyChainID).(string)
}

// WithLogger sets the logger for this Context
func WithLogger(ctx Context, logger log.Logger) Context {
	return context.WithValue(ctx, contextKeyLogger, logger)
}

// GetLogger returns the currently set logger, or
// DefaultLogger if none was set
func GetLogger(ctx Context) log.Logger {
	val, ok := ctx.Value(contextKeyLogger).(log.Logger)
	if !ok {
		return DefaultLogger
	}
	return val
}

// WithLogInfo accepts keyvalue pairs, and returns another
// context like this, after passing all the keyvals to the
// Logger
func WithLogInfo(ctx Context, keyvals ...interface{}) Context {
	logger := GetLogger(ctx).With(keyvals...)
	return WithLogger(ctx, logger)
}

// WithCaller sets the validated identity of whoever issued the current call.
// The caller is never persisted. Panics if set twice.
func WithCaller(ctx Context, caller Address) Context {
	if _, ok := ctx.Value(contextKeyCaller).(Address); ok {
		panic("Tried to modify caller in context")
	}
	return context.WithValue(ctx, contextKeyCaller, caller)
}

// GetCaller returns the identity of the caller. If it was not set, return
// ("", false)
func GetCaller(ctx Context) (Address, bool) {
	val, ok := ctx.Value(contextKeyCaller).(Address)
	return val, ok
}

// WithFunds sets the funds attached to the current call. By the time a
// handler is executed those funds are already owned by the contract.
// Panics if set twice.
func WithFunds(ctx Context, funds coin.Coins) Context {
	if _, ok := ctx.Value(contextKeyFunds).(coin.Coins); ok {
		panic("Tried to modify funds in context")
	}
	return context.WithValue(ctx, contextKeyFunds, funds.Clone())
}

// GetFunds returns the funds attached to the current call. Nil is returned
// if no funds were attached.
func GetFunds(ctx Context) coin.Coins {
	val, _ := ctx.Value(contextKeyFunds).(coin.Coins)
	return val
}

// WithContractAddress sets the address of the account owned by the
// contract that is being executed.
func WithContractAddress(ctx Context, addr Address) Context {
	return context.WithValue(ctx, contextKeyContract, addr)
}

// GetContractAddress returns the address of the executed contract account.
func GetContractAddress(ctx Context) (Address, bool) {
	val, ok := ctx.Value(contextKeyContract).(Address)
	return val, ok
}
