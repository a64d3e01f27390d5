package app

import (
	"time"

	"github.com/iov-one/adminlist"
	"github.com/iov-one/adminlist/errors"
	"github.com/iov-one/adminlist/x/bank"
)

// Logging is a decorator to log messages as they pass through
type Logging struct{}

var _ Decorator = Logging{}

// NewLogging creates a Logging decorator
func NewLogging() Logging {
	return Logging{}
}

// Execute logs error -> error, success -> info
func (Logging) Execute(ctx adminlist.Context, store adminlist.KVStore, msg adminlist.Msg, next adminlist.Handler) (*adminlist.Result, error) {
	start := time.Now()
	res, err := next.Execute(ctx, store, msg)
	var resLog string
	if err == nil {
		resLog = res.Log
	}
	logDuration(ctx, start, resLog, err, false)
	return res, err
}

// logDuration writes information about the time and result to the logger
func logDuration(ctx adminlist.Context, start time.Time, msg string, err error, lowPrio bool) {
	delta := time.Since(start)
	logger := adminlist.GetLogger(ctx).With("duration", delta/time.Microsecond)

	// Although message can be empty, we still want to emit a log entry
	// because it contains other relevant information beside the message.
	switch {
	case err != nil:
		logger.With("err", err).Error(msg)
	case lowPrio:
		logger.Debug(msg)
	default:
		logger.Info(msg)
	}
}

// Recovery is a decorator to recover from panics in handlers,
// so we can log them as errors
type Recovery struct{}

var _ Decorator = Recovery{}

// NewRecovery creates a Recovery decorator
func NewRecovery() Recovery {
	return Recovery{}
}

// Execute turns panics into normal errors
func (Recovery) Execute(ctx adminlist.Context, store adminlist.KVStore, msg adminlist.Msg, next adminlist.Handler) (_ *adminlist.Result, err error) {
	defer errors.Recover(&err)
	return next.Execute(ctx, store, msg)
}

// Savepoint will isolate all data inside of the call,
// and commit/rollback to savepoint based on if error
type Savepoint struct{}

var _ Decorator = Savepoint{}

// NewSavepoint creates a Savepoint decorator
func NewSavepoint() Savepoint {
	return Savepoint{}
}

// Execute runs the handler on a cache of the store. The cache is written
// only if the handler succeeds.
func (Savepoint) Execute(ctx adminlist.Context, store adminlist.KVStore, msg adminlist.Msg, next adminlist.Handler) (*adminlist.Result, error) {
	cstore, ok := store.(adminlist.CacheableKVStore)
	if !ok {
		return nil, errors.Wrapf(errors.ErrHuman, "store %T cannot be cached", store)
	}

	cache := cstore.CacheWrap()
	res, err := next.Execute(ctx, cache, msg)
	if err != nil {
		cache.Discard()
		return nil, err
	}
	if err := cache.Write(); err != nil {
		return nil, errors.Wrap(err, "writing savepoint")
	}
	return res, nil
}

// Funds is a decorator that moves all funds attached to the call from the
// caller to the contract account, before the handler is executed. Must be
// used inside of a Savepoint, so that a failed call returns the funds.
type Funds struct {
	ctrl bank.Controller
}

var _ Decorator = Funds{}

// NewFunds creates a Funds decorator that uses given controller to move
// the coins.
func NewFunds(ctrl bank.Controller) Funds {
	return Funds{ctrl: ctrl}
}

// Execute transfers attached funds and calls the handler.
func (f Funds) Execute(ctx adminlist.Context, store adminlist.KVStore, msg adminlist.Msg, next adminlist.Handler) (*adminlist.Result, error) {
	funds := adminlist.GetFunds(ctx)
	if len(funds) == 0 {
		return next.Execute(ctx, store, msg)
	}

	caller, ok := adminlist.GetCaller(ctx)
	if !ok {
		return nil, errors.Wrap(errors.ErrUnauthorized, "funds attached without a caller")
	}
	contract, ok := adminlist.GetContractAddress(ctx)
	if !ok {
		return nil, errors.Wrap(errors.ErrState, "missing contract address")
	}
	for _, c := range funds {
		if err := f.ctrl.MoveCoins(store, caller, contract, c); err != nil {
			return nil, errors.Wrapf(err, "attach %s", c)
		}
	}
	return next.Execute(ctx, store, msg)
}
