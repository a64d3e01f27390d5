package app

import (
	"encoding/json"
	"time"

	"github.com/tendermint/tendermint/libs/common"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/iov-one/adminlist"
	"github.com/iov-one/adminlist/coin"
	"github.com/iov-one/adminlist/errors"
	"github.com/iov-one/adminlist/identity"
	"github.com/iov-one/adminlist/x/admins"
	"github.com/iov-one/adminlist/x/bank"
)

// Config describes how the host binds the contract.
type Config struct {
	// Validator checks the caller and every admin address. Mock
	// validation is used if not set.
	Validator adminlist.AddressValidator

	// Contract is the address of the account that receives attached
	// funds and pays donations.
	Contract adminlist.Address

	// Logger defaults to a no-op logger.
	Logger log.Logger
}

// Host runs the admin list contract on top of a persistent store. Every
// call is executed on a cache of the state and written only if it
// succeeds. Commit persists all successful calls.
//
// Host is not safe for concurrent use. Calls must be serialized by the
// caller.
type Host struct {
	store       *CommitStore
	handler     adminlist.Handler
	queries     adminlist.QueryHandler
	msgs        *Codec
	queryMsgs   *Codec
	validator   adminlist.AddressValidator
	initializer adminlist.Initializer
	contract    adminlist.Address
	chainID     string
	logger      log.Logger
}

// NewHost loads the latest version of given store and binds the admin list
// contract together with the bank to it.
func NewHost(store adminlist.CommitKVStore, conf Config) (*Host, error) {
	if conf.Contract == "" {
		return nil, errors.Field("Contract", errors.ErrEmpty, "contract address required")
	}
	if conf.Validator == nil {
		conf.Validator = identity.Mock{}
	}
	if conf.Logger == nil {
		conf.Logger = log.NewNopLogger()
	}

	cs, err := NewCommitStore(store)
	if err != nil {
		return nil, err
	}
	chainID, err := loadChainID(cs.DeliverStore())
	if err != nil {
		return nil, err
	}

	ctrl := bank.NewController(bank.NewBucket())

	router := NewRouter()
	admins.RegisterRoutes(router, conf.Validator, ctrl)

	queries := NewQueryRouter()
	admins.RegisterQuery(queries)
	bank.RegisterQuery(queries, ctrl)

	msgs := NewCodec()
	admins.RegisterCodec(msgs)

	queryMsgs := NewCodec()
	admins.RegisterQueryCodec(queryMsgs)
	bank.RegisterCodec(queryMsgs)

	return &Host{
		store: cs,
		handler: ChainDecorators(
			NewLogging(),
			NewRecovery(),
			NewSavepoint(),
			NewFunds(ctrl),
		).WithHandler(router),
		queries:   queries,
		msgs:      msgs,
		queryMsgs: queryMsgs,
		validator: conf.Validator,
		initializer: ChainInitializers(
			bank.Initializer{Validator: conf.Validator},
			admins.Initializer{Validator: conf.Validator},
		),
		contract: conf.Contract,
		chainID:  chainID,
		logger:   conf.Logger,
	}, nil
}

// ChainID returns the chain id set during genesis, if any.
func (h *Host) ChainID() string {
	return h.chainID
}

// Contract returns the address of the contract account.
func (h *Host) Contract() adminlist.Address {
	return h.contract
}

// InitGenesis stores the chain id and loads the initial state of all
// extensions. Nothing is written if any of the extensions fails.
func (h *Host) InitGenesis(ctx adminlist.Context, gen Genesis) error {
	if h.chainID != "" {
		return errors.Wrapf(errors.ErrImmutable, "genesis already loaded for chain %s", h.chainID)
	}
	if len(gen.AppState) == 0 {
		return errors.Wrap(errors.ErrEmpty, "app_state not set in genesis")
	}

	cache := h.store.DeliverStore().CacheWrap()
	if err := saveChainID(cache, gen.ChainID); err != nil {
		cache.Discard()
		return err
	}
	if err := h.initializer.FromGenesis(gen.AppState, cache); err != nil {
		cache.Discard()
		return err
	}
	if err := cache.Write(); err != nil {
		return errors.Wrap(err, "write genesis")
	}
	h.chainID = gen.ChainID
	h.logger.Info("genesis loaded", "chain_id", gen.ChainID)
	return nil
}

// Instantiate creates the contract state directly, without a genesis file.
func (h *Host) Instantiate(ctx adminlist.Context, msg admins.InstantiateMsg) error {
	cache := h.store.DeliverStore().CacheWrap()
	if err := admins.Instantiate(cache, h.validator, &msg); err != nil {
		cache.Discard()
		return err
	}
	if err := cache.Write(); err != nil {
		return errors.Wrap(err, "write instantiation")
	}
	h.logger.Info("contract instantiated", "admins", len(msg.Admins), "denom", msg.DonationDenom)
	return nil
}

// Execute decodes and runs a message on behalf of the caller. Attached funds
// are moved from the caller to the contract before the message is
// processed. If the call fails, no state change is kept and the attached
// funds stay with the caller.
func (h *Host) Execute(ctx adminlist.Context, caller string, funds coin.Coins, raw []byte) (res *adminlist.Result, err error) {
	defer errors.Recover(&err)

	sender, err := h.validator.ValidateAddress(caller)
	if err != nil {
		return nil, errors.Wrap(err, "caller")
	}
	if len(funds) > 0 {
		if funds, err = coin.NormalizeCoins(funds); err != nil {
			return nil, errors.Wrap(err, "funds")
		}
	}
	msg, err := h.msgs.Decode(raw)
	if err != nil {
		return nil, err
	}

	ctx, err = h.context(ctx)
	if err != nil {
		return nil, err
	}
	ctx = adminlist.WithCaller(ctx, sender)
	ctx = adminlist.WithFunds(ctx, funds)
	ctx = adminlist.WithLogInfo(ctx,
		"call", "execute",
		"path", msg.Path(),
		"caller", sender)
	return h.handler.Execute(ctx, h.store.DeliverStore(), msg)
}

// Query decodes and answers a read only request. The response is JSON
// encoded.
func (h *Host) Query(ctx adminlist.Context, raw []byte) (_ []byte, err error) {
	defer errors.Recover(&err)

	msg, err := h.queryMsgs.Decode(raw)
	if err != nil {
		return nil, err
	}
	ctx, err = h.context(ctx)
	if err != nil {
		return nil, err
	}
	ctx = adminlist.WithLogInfo(ctx,
		"call", "query",
		"path", msg.Path())

	start := time.Now()
	res, err := h.queries.Query(ctx, h.store.DeliverStore(), msg)
	logDuration(ctx, start, "", err, true)
	if err != nil {
		return nil, err
	}
	out, err := json.Marshal(res)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrHuman, "cannot serialize %T: %s", res, err)
	}
	return out, nil
}

// Commit persists all successful calls.
func (h *Host) Commit() (adminlist.CommitID, error) {
	id, err := h.store.Commit()
	if err != nil {
		return id, errors.Wrap(err, "commit")
	}
	h.logger.Info("commit", "height", id.Version, "hash", common.HexBytes(id.Hash))
	return id, nil
}

// CommitInfo returns the latest committed version.
func (h *Host) CommitInfo() (adminlist.CommitID, error) {
	return h.store.CommitInfo()
}

// context sets the information shared by all calls.
func (h *Host) context(ctx adminlist.Context) (adminlist.Context, error) {
	info, err := h.store.CommitInfo()
	if err != nil {
		return nil, errors.Wrap(err, "commit info")
	}
	ctx = adminlist.WithLogger(ctx, h.logger)
	ctx = adminlist.WithHeight(ctx, info.Version+1)
	if h.chainID != "" {
		ctx = adminlist.WithChainID(ctx, h.chainID)
	}
	return adminlist.WithContractAddress(ctx, h.contract), nil
}
