package bank

import (
	"github.com/iov-one/adminlist"
	"github.com/iov-one/adminlist/coin"
	"github.com/iov-one/adminlist/errors"
)

// Controller is the funds transfer capability.
type Controller interface {
	// Balance returns the coins held by given address.
	Balance(db adminlist.ReadOnlyKVStore, addr adminlist.Address) (coin.Coins, error)

	// MoveCoins moves the given amount from src to dest.
	// If src doesn't exist, or doesn't have sufficient
	// coins, it fails.
	MoveCoins(db adminlist.KVStore, src, dest adminlist.Address, amount coin.Coin) error

	// IssueCoins attempts to add the given amount of coins to
	// the destination address.
	IssueCoins(db adminlist.KVStore, dest adminlist.Address, amount coin.Coin) error
}

// BaseController is a simple implementation of the Controller backed by a
// bucket.
type BaseController struct {
	bucket Bucket
}

var _ Controller = BaseController{}

// NewController returns a controller that keeps balances in given bucket.
func NewController(bucket Bucket) BaseController {
	return BaseController{bucket: bucket}
}

// Balance returns the coins held by given address. Unknown addresses hold
// nothing.
func (c BaseController) Balance(db adminlist.ReadOnlyKVStore, addr adminlist.Address) (coin.Coins, error) {
	w, err := c.bucket.Get(db, addr)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, nil
	}
	return w.Coins().Clone(), nil
}

// MoveCoins moves the given amount from src to dest.
func (c BaseController) MoveCoins(db adminlist.KVStore, src, dest adminlist.Address, amount coin.Coin) error {
	if !amount.IsPositive() {
		return errors.Wrapf(errors.ErrAmount, "non-positive transfer of %s", amount)
	}
	if err := amount.Validate(); err != nil {
		return err
	}

	sender, err := c.bucket.Get(db, src)
	if err != nil {
		return err
	}
	if sender == nil {
		return errors.Wrapf(errors.ErrInsufficientAmount, "empty account %s", src)
	}
	if !sender.Coins().Contains(amount) {
		return errors.Wrapf(errors.ErrInsufficientAmount, "%s cannot pay %s", src, amount)
	}
	if err := sender.Subtract(amount); err != nil {
		return err
	}
	if err := c.bucket.Save(db, sender); err != nil {
		return err
	}

	// the recipient is loaded after the sender is saved so that moving
	// coins to yourself is a noop
	recipient, err := c.bucket.GetOrCreate(db, dest)
	if err != nil {
		return err
	}
	if err := recipient.Add(amount); err != nil {
		return err
	}
	return c.bucket.Save(db, recipient)
}

// IssueCoins attempts to add the given amount of coins to
// the destination address. Fails if it overflows the wallet.
//
// Note the amount may also be negative, as long as the wallet
// holds enough.
func (c BaseController) IssueCoins(db adminlist.KVStore, dest adminlist.Address, amount coin.Coin) error {
	if err := coin.NewCoin(amount.Denom, 0).Validate(); err != nil {
		return err
	}
	w, err := c.bucket.GetOrCreate(db, dest)
	if err != nil {
		return err
	}
	if err := w.Add(amount); err != nil {
		return err
	}
	return c.bucket.Save(db, w)
}
