package admins

import (
	"github.com/iov-one/adminlist"
	"github.com/iov-one/adminlist/coin"
	"github.com/iov-one/adminlist/errors"
)

// CashController moves coins between accounts. It is implemented by the
// x/bank extension.
type CashController interface {
	MoveCoins(db adminlist.KVStore, src, dest adminlist.Address, amount coin.Coin) error
}

// Payout is a single transfer made as part of a donation.
type Payout struct {
	Admin  adminlist.Address
	Amount coin.Coin
}

// Split describes how a donation is divided between admins.
//
//   donation = share x len(payouts) + remainder
//
// When the share is zero no payouts are made and the whole donation is the
// remainder.
type Split struct {
	Donation  coin.Coin
	Share     coin.Coin
	Remainder coin.Coin
	Payouts   []Payout
}

// SplitDonation divides the donation equally between all admins. Whatever
// cannot be divided equally is returned as the remainder.
func SplitDonation(donation coin.Coin, admins []adminlist.Address) (*Split, error) {
	if len(admins) == 0 {
		return nil, errors.Wrap(ErrNoRecipients, "empty admin registry")
	}
	share, rest, err := donation.Divide(int64(len(admins)))
	if err != nil {
		return nil, errors.Wrap(err, "cannot split donation")
	}
	split := Split{
		Donation:  donation,
		Share:     share,
		Remainder: rest,
	}
	// Share is too small to be distributed, rest is the whole donation.
	if share.IsZero() {
		return &split, nil
	}
	for _, a := range admins {
		split.Payouts = append(split.Payouts, Payout{Admin: a, Amount: share})
	}
	return &split, nil
}

// distribute executes all payouts of the split, taking the funds from the
// source account.
func distribute(db adminlist.KVStore, ctrl CashController, source adminlist.Address, split *Split) error {
	for _, p := range split.Payouts {
		if err := ctrl.MoveCoins(db, source, p.Admin, p.Amount); err != nil {
			return errors.Wrapf(err, "payout to %s", p.Admin)
		}
	}
	return nil
}
