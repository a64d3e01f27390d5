package coin

import (
	"sort"
	"strings"

	"github.com/iov-one/adminlist/errors"
)

// Coins represents a set of coins. Most operations on the coin set require
// normalized form: sorted by denomination, unique, without zero amounts.
// Make sure to normalize you collection before using.
type Coins []Coin

// CombineCoins creates a Coins containing all given coins.
// It will sort them and combine duplicates to produce
// a normalized form regardless of input.
func CombineCoins(cs ...Coin) (Coins, error) {
	var err error
	var coins Coins
	for _, c := range cs {
		coins, err = coins.Add(c)
		if err != nil {
			return nil, err
		}
	}
	if err := coins.Validate(); err != nil {
		return nil, err
	}
	return coins, nil
}

// Clone returns a copy that can be safely modified
func (cs Coins) Clone() Coins {
	if cs == nil {
		return nil
	}
	res := make(Coins, len(cs))
	copy(res, cs)
	return res
}

// Add returns a new collection, with the holdings increased by c. The
// original collection is never modified.
func (cs Coins) Add(c Coin) (Coins, error) {
	// We ignore zero values
	if c.IsZero() {
		return cs.Clone(), nil
	}

	res := cs.Clone()
	has, i := res.findCoin(c.Denom)
	if has != nil {
		sum, err := has.Add(c)
		if err != nil {
			return nil, err
		}
		// if the result is zero, remove this denomination
		if sum.IsZero() {
			return append(res[:i], res[i+1:]...), nil
		}
		res[i] = sum
		return res, nil
	}
	// insert in beginning, middle or end
	res = append(res, Coin{})
	copy(res[i+1:], res[i:])
	res[i] = c
	return res, nil
}

// Subtract returns a new collection, with the holdings decreased by c.
// The resulting Coins may have negative amounts
func (cs Coins) Subtract(c Coin) (Coins, error) {
	return cs.Add(c.Negative())
}

// Combine will create a new Coins adding all the coins
// of s and o together.
func (cs Coins) Combine(o Coins) (Coins, error) {
	var err error
	res := cs.Clone()
	for _, c := range o {
		res, err = res.Add(c)
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

// Contains returns true if there is at least that much
// coin in the Coins.
func (cs Coins) Contains(c Coin) bool {
	has, _ := cs.findCoin(c.Denom)
	if has == nil {
		return c.Amount <= 0
	}
	return has.IsGTE(c)
}

// AmountOf returns the amount held of given denomination, zero if none.
func (cs Coins) AmountOf(denom string) int64 {
	if has, _ := cs.findCoin(denom); has != nil {
		return has.Amount
	}
	return 0
}

// findCoin returns a coin and index that have this
// denomination.
//
// If there was a match, then result is non-nil, and the
// index is where it was. If there was no match, then
// result is nil, and index is where it should be
// (which may be between 0 and len(cs)).
func (cs Coins) findCoin(denom string) (*Coin, int) {
	for i := range cs {
		switch strings.Compare(denom, cs[i].Denom) {
		case -1:
			return nil, i
		case 0:
			return &cs[i], i
		}
	}
	// hit the end, must append
	return nil, len(cs)
}

// IsEmpty returns if nothing is in the Coins
func (cs Coins) IsEmpty() bool {
	return len(cs) == 0
}

// IsPositive returns true there is at least one coin
// and all coins are positive
func (cs Coins) IsPositive() bool {
	if cs.IsEmpty() {
		return false
	}
	for _, c := range cs {
		if !c.IsPositive() {
			return false
		}
	}
	return true
}

// IsNonNegative returns true if no coin holds a negative amount. An empty
// Coins is non negative.
func (cs Coins) IsNonNegative() bool {
	for _, c := range cs {
		if !c.IsNonNegative() {
			return false
		}
	}
	return true
}

// Equals returns true if both Coins contain same coins
func (cs Coins) Equals(o Coins) bool {
	if len(cs) != len(o) {
		return false
	}
	for i := range cs {
		if !cs[i].Equals(o[i]) {
			return false
		}
	}
	return true
}

// Validate requires that all coins are in alphabetical
// order and that each coin is valid in it's own right
//
// Zero amounts should not be present
func (cs Coins) Validate() error {
	var err error
	last := ""
	for _, c := range cs {
		err = errors.Append(err, errors.Wrap(c.Validate(), "coin"))

		if c.IsZero() {
			err = errors.Append(err, errors.Wrap(errors.ErrState, "zero coins"))
		}
		if c.Denom <= last && last != "" {
			err = errors.Append(err, errors.Wrap(errors.ErrState, "not sorted"))
		}
		last = c.Denom
	}
	return err
}

// String returns a comma separated human readable list of coins.
func (cs Coins) String() string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = c.String()
	}
	return strings.Join(parts, ",")
}

// NormalizeCoins is a cleanup operation that merge and orders set of coin instances
// into a unified form. This includes merging coins of the same denomination and
// sorting coins according to the denomination name.
// If given set of coins is normalized this operation return what was given.
// Otherwise a new instance of a slice is returned.
func NormalizeCoins(cs Coins) (Coins, error) {
	if len(cs) == 0 {
		return nil, nil
	}
	if isNormalized(cs) {
		if err := cs.Validate(); err != nil {
			return nil, err
		}
		return cs, nil
	}
	res := cs.Clone()
	sort.SliceStable(res, func(i, j int) bool { return res[i].Denom < res[j].Denom })
	return CombineCoins(res...)
}

func isNormalized(cs Coins) bool {
	for i, c := range cs {
		if c.IsZero() {
			return false
		}
		if i > 0 && cs[i-1].Denom >= c.Denom {
			return false
		}
	}
	return true
}

// ParseCoins parses a comma separated list of human readable coins, for
// example "5cosmos,3atom". The result is normalized.
func ParseCoins(raw string) (Coins, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	var coins []Coin
	for _, part := range strings.Split(raw, ",") {
		c, err := ParseHumanFormat(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		coins = append(coins, c)
	}
	return CombineCoins(coins...)
}
