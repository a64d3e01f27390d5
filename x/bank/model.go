package bank

import (
	"github.com/gogo/protobuf/proto"

	"github.com/iov-one/adminlist"
	"github.com/iov-one/adminlist/coin"
	"github.com/iov-one/adminlist/errors"
	"github.com/iov-one/adminlist/orm"
)

// BucketName is where we store the balances
const BucketName = "bank"

// Balance is the set of coins held by a single address.
type Balance struct {
	Coins coin.Coins
}

var _ orm.Model = (*Balance)(nil)

// Validate requires that all coins are in alphabetical order, unique and
// positive.
func (b *Balance) Validate() error {
	return b.Coins.Validate()
}

// Marshal serializes the balance using protobuf.
func (b *Balance) Marshal() ([]byte, error) {
	return proto.Marshal(&balanceWire{Coins: encodeCoins(b.Coins)})
}

// Unmarshal loads the balance from its protobuf representation.
func (b *Balance) Unmarshal(raw []byte) error {
	var w balanceWire
	if err := proto.Unmarshal(raw, &w); err != nil {
		return err
	}
	b.Coins = decodeCoins(w.Coins)
	return nil
}

//--- Wallet (Balance object, balance + key)

// Wallet is the actual object that we want to pass around
// in our code. It contains a set of coins, as well as the
// address. It is connected to the Bucket to easily manipulate
// state.
//
// Wallet is a type-safe wrapper around orm.SimpleObj
type Wallet struct {
	key   []byte
	value *Balance
}

var _ orm.Object = (*Wallet)(nil)

// NewWallet creates an empty wallet with this address
func NewWallet(key adminlist.Address) *Wallet {
	var raw []byte
	if key != "" {
		raw = []byte(key)
	}
	return &Wallet{key: raw, value: new(Balance)}
}

// Value gets the value stored in the object
func (w Wallet) Value() orm.Model {
	return w.value
}

// Key returns the key to store the object under
func (w Wallet) Key() []byte {
	return w.key
}

// Address returns the owner of the wallet.
func (w Wallet) Address() adminlist.Address {
	return adminlist.Address(w.key)
}

// Validate makes sure the fields aren't empty.
// And delegates to the value validator if present
func (w Wallet) Validate() error {
	if len(w.key) == 0 {
		return errors.Field("Address", errors.ErrEmpty, "missing address")
	}
	return w.value.Validate()
}

// SetKey may be used to update a simple obj key
func (w *Wallet) SetKey(key []byte) {
	w.key = key
}

// Clone will make a copy of this object
func (w *Wallet) Clone() orm.Object {
	res := &Wallet{
		value: &Balance{Coins: w.value.Coins.Clone()},
	}
	// only copy key if non-nil
	if len(w.key) > 0 {
		res.key = append([]byte(nil), w.key...)
	}
	return res
}

// Coins returns the coins stored in the wallet
func (w Wallet) Coins() coin.Coins {
	return w.value.Coins
}

// Add modifies the wallet to add Coin c. The amount may be negative, but
// the resulting wallet cannot hold a negative amount.
func (w *Wallet) Add(c coin.Coin) error {
	cs, err := w.Coins().Add(c)
	if err != nil {
		return err
	}
	if !cs.IsNonNegative() {
		return errors.Wrapf(errors.ErrInsufficientAmount, "%s holds %d%s", w.Address(), w.Coins().AmountOf(c.Denom), c.Denom)
	}
	w.value.Coins = cs
	return nil
}

// Subtract modifies the wallet to remove Coin c
func (w *Wallet) Subtract(c coin.Coin) error {
	return w.Add(c.Negative())
}

//--- bank.Bucket - type-safe bucket

// Bucket is a type-safe wrapper around orm.Bucket
type Bucket struct {
	orm.Bucket
}

// NewBucket initializes a bank.Bucket with default name
func NewBucket() Bucket {
	return Bucket{
		Bucket: orm.NewBucket(BucketName, NewWallet("")),
	}
}

// Get returns the wallet of given address, nil if it does not exist.
func (b Bucket) Get(db adminlist.ReadOnlyKVStore, addr adminlist.Address) (*Wallet, error) {
	obj, err := b.Bucket.Get(db, []byte(addr))
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, nil
	}
	return obj.(*Wallet), nil
}

// Save writes the wallet. Empty wallets are removed from the store.
func (b Bucket) Save(db adminlist.KVStore, w *Wallet) error {
	if w.Coins().IsEmpty() {
		return b.Bucket.Delete(db, w.Key())
	}
	return b.Bucket.Save(db, w)
}

// GetOrCreate returns the wallet of given address, or a new empty one.
func (b Bucket) GetOrCreate(db adminlist.ReadOnlyKVStore, addr adminlist.Address) (*Wallet, error) {
	w, err := b.Get(db, addr)
	if err != nil {
		return nil, err
	}
	if w == nil {
		w = NewWallet(addr)
	}
	return w, nil
}

// All returns every non empty wallet, ordered by address.
func (b Bucket) All(db adminlist.ReadOnlyKVStore) ([]*Wallet, error) {
	objs, err := b.Bucket.All(db)
	if err != nil {
		return nil, err
	}
	res := make([]*Wallet, len(objs))
	for i, o := range objs {
		res[i] = o.(*Wallet)
	}
	return res, nil
}
