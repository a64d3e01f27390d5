package bank

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/iov-one/adminlist/coin"
	"github.com/iov-one/adminlist/contracttest/assert"
	"github.com/iov-one/adminlist/errors"
	"github.com/iov-one/adminlist/store"
)

func TestBalanceQuery(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController(NewBucket())
	assert.Nil(t, ctrl.IssueCoins(db, "alice", coin.NewCoin("cosmos", 5)))

	h := NewBalanceQueryHandler(ctrl)

	res, err := h.Query(context.Background(), db, &BalanceQuery{Address: "alice"})
	assert.Nil(t, err)
	raw, err := json.Marshal(res)
	assert.Nil(t, err)
	assert.Equal(t, `{"coins":[{"denom":"cosmos","amount":5}]}`, string(raw))

	// unknown accounts return an empty list, not null
	res, err = h.Query(context.Background(), db, &BalanceQuery{Address: "nobody"})
	assert.Nil(t, err)
	raw, err = json.Marshal(res)
	assert.Nil(t, err)
	assert.Equal(t, `{"coins":[]}`, string(raw))
}

func TestBalanceQueryValidate(t *testing.T) {
	assert.FieldError(t, BalanceQuery{}.Validate(), "Address", errors.ErrEmpty)
	assert.Nil(t, BalanceQuery{Address: "alice"}.Validate())
}

func TestWalletPersistence(t *testing.T) {
	db := store.MemStore()
	b := NewBucket()

	w := NewWallet("alice")
	assert.Nil(t, w.Add(coin.NewCoin("cosmos", 7)))
	assert.Nil(t, w.Add(coin.NewCoin("atom", 2)))
	assert.Nil(t, b.Save(db, w))

	got, err := b.Get(db, "alice")
	assert.Nil(t, err)
	assert.Equal(t, w.Coins(), got.Coins())

	// an invalid wallet cannot be saved
	broken := NewWallet("bob")
	broken.value.Coins = coin.Coins{coin.NewCoin("cosmos", 2), coin.NewCoin("atom", 1)}
	assert.IsErr(t, errors.ErrState, b.Save(db, broken))
}
