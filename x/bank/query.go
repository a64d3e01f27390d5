package bank

import (
	"github.com/iov-one/adminlist"
	"github.com/iov-one/adminlist/coin"
	"github.com/iov-one/adminlist/errors"
)

// BalanceQuery asks for the coins held by an address.
type BalanceQuery struct {
	Address string `json:"address"`
}

var _ adminlist.Msg = (*BalanceQuery)(nil)

// Path returns the routing path for this query.
func (BalanceQuery) Path() string {
	return "bank/balance"
}

// Validate requires the address to be present.
func (q BalanceQuery) Validate() error {
	if q.Address == "" {
		return errors.Field("Address", errors.ErrEmpty, "required")
	}
	return nil
}

// BalanceResponse is returned for a BalanceQuery.
type BalanceResponse struct {
	Coins coin.Coins `json:"coins"`
}

// RegisterCodec declares all queries of this package under their envelope
// names.
func RegisterCodec(r adminlist.MsgRegistry) {
	r.Register("balance", func() adminlist.Msg { return &BalanceQuery{} })
}

// RegisterQuery will register the balance query handler.
func RegisterQuery(qr adminlist.QueryRegistry, control Controller) {
	qr.Register(BalanceQuery{}.Path(), NewBalanceQueryHandler(control))
}

// BalanceQueryHandler answers BalanceQuery.
type BalanceQueryHandler struct {
	control Controller
}

var _ adminlist.QueryHandler = BalanceQueryHandler{}

// NewBalanceQueryHandler creates a handler for BalanceQuery
func NewBalanceQueryHandler(control Controller) BalanceQueryHandler {
	return BalanceQueryHandler{control: control}
}

// Query returns the balance of the requested address. An unknown address
// holds no coins.
func (h BalanceQueryHandler) Query(ctx adminlist.Context, db adminlist.ReadOnlyKVStore, msg adminlist.Msg) (interface{}, error) {
	q, ok := msg.(*BalanceQuery)
	if !ok {
		return nil, errors.WithType(errors.ErrMsg, msg)
	}
	coins, err := h.control.Balance(db, adminlist.Address(q.Address))
	if err != nil {
		return nil, err
	}
	if coins == nil {
		coins = coin.Coins{}
	}
	return BalanceResponse{Coins: coins}, nil
}
