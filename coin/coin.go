package coin

import (
	"math"
	"regexp"
	"strconv"

	"github.com/iov-one/adminlist/errors"
)

//-------------- Coin -----------------------

// IsDenom is the RegExp to ensure valid denominations
var IsDenom = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9/:._-]{2,127}$`).MatchString

// MaxAmount is the largest amount a single coin can hold.
const MaxAmount int64 = math.MaxInt64

// Coin is an amount of a single denomination.
type Coin struct {
	Denom  string `json:"denom"`
	Amount int64  `json:"amount"`
}

// NewCoin creates a new coin object
func NewCoin(denom string, amount int64) Coin {
	return Coin{
		Denom:  denom,
		Amount: amount,
	}
}

// NewCoinp returns a pointer to a new coin.
func NewCoinp(denom string, amount int64) *Coin {
	c := NewCoin(denom, amount)
	return &c
}

// Divide splits the value of a coin into given amount of equal pieces and
// returns a single piece together with what could not be split.
// For example dividing 5 cosmos into 2 pieces will result in a single piece
// being 2 cosmos and 1 cosmos returned as the rest.
//   5 = 2 x 2 + 1
func (c Coin) Divide(pieces int64) (Coin, Coin, error) {
	if pieces <= 0 {
		zero := Coin{Denom: c.Denom}
		return zero, zero, errors.Wrap(errors.ErrInput, "pieces must be greater than zero")
	}
	if c.Amount < 0 {
		zero := Coin{Denom: c.Denom}
		return zero, zero, errors.Wrap(errors.ErrAmount, "cannot divide a negative amount")
	}
	one := Coin{Denom: c.Denom, Amount: c.Amount / pieces}
	rest := Coin{Denom: c.Denom, Amount: c.Amount % pieces}
	return one, rest, nil
}

// Multiply returns the result of a coin value multiplication. This method can
// fail if the result would overflow maximum coin value.
func (c Coin) Multiply(times int64) (Coin, error) {
	if times == 0 || c.Amount == 0 {
		return Coin{Denom: c.Denom}, nil
	}
	res := c.Amount * times
	if res/times != c.Amount {
		return Coin{}, errors.Wrapf(errors.ErrOverflow, "%s x %d", c, times)
	}
	return Coin{Denom: c.Denom, Amount: res}, nil
}

// Add combines two coins.
// Returns error if they are of different denominations or the result
// overflows.
func (c Coin) Add(o Coin) (Coin, error) {
	if !c.SameType(o) {
		return Coin{}, errors.Wrapf(errors.ErrCurrency, "adding %s to %s", o.Denom, c.Denom)
	}
	sum := c.Amount + o.Amount
	if (o.Amount > 0 && sum < c.Amount) || (o.Amount < 0 && sum > c.Amount) {
		return Coin{}, errors.Wrapf(errors.ErrOverflow, "%s + %s", c, o)
	}
	return Coin{Denom: c.Denom, Amount: sum}, nil
}

// Negative returns the opposite value of this coin
func (c Coin) Negative() Coin {
	return Coin{Denom: c.Denom, Amount: -c.Amount}
}

// Subtract deducts given amount from the coin. The result may be negative.
func (c Coin) Subtract(amount Coin) (Coin, error) {
	return c.Add(amount.Negative())
}

// Compare will check values of two coins, without inspecting the
// denomination. It returns -1, 0 or 1.
func (c Coin) Compare(o Coin) int {
	switch {
	case c.Amount > o.Amount:
		return 1
	case c.Amount < o.Amount:
		return -1
	default:
		return 0
	}
}

// Equals returns true if all fields are identical
func (c Coin) Equals(o Coin) bool {
	return c.Denom == o.Denom && c.Amount == o.Amount
}

// IsZero returns true amounts are 0
func (c Coin) IsZero() bool {
	return c.Amount == 0
}

// IsPositive returns true if the value is greater than 0
func (c Coin) IsPositive() bool {
	return c.Amount > 0
}

// IsNonNegative returns true if the value is 0 or higher
func (c Coin) IsNonNegative() bool {
	return c.Amount >= 0
}

// IsGTE returns true if c is same type and at least
// as large as o.
func (c Coin) IsGTE(o Coin) bool {
	return c.SameType(o) && c.Amount >= o.Amount
}

// SameType returns true if they have the same denomination
func (c Coin) SameType(o Coin) bool {
	return c.Denom == o.Denom
}

// Validate ensures that the coin is in the valid range
// and a valid denomination.
func (c Coin) Validate() error {
	if !IsDenom(c.Denom) {
		return errors.Wrapf(errors.ErrCurrency, "invalid denomination %q", c.Denom)
	}
	if c.Amount < 0 {
		return errors.Wrap(errors.ErrAmount, "negative amount")
	}
	return nil
}

// String provides a human readable representation of the coin, for
// example 5cosmos.
func (c Coin) String() string {
	return strconv.FormatInt(c.Amount, 10) + c.Denom
}

var humanCoinFormatRx = regexp.MustCompile(`^(\d+)\s*([a-zA-Z][a-zA-Z0-9/:._-]{2,127})$`)

// ParseHumanFormat parses a textual representation of a coin, for example
// "5cosmos" or "12 atom".
func ParseHumanFormat(h string) (Coin, error) {
	var c Coin
	results := humanCoinFormatRx.FindAllStringSubmatch(h, -1)
	if len(results) != 1 {
		return c, errors.Wrapf(errors.ErrInput, "invalid coin format %q", h)
	}
	amount, err := strconv.ParseInt(results[0][1], 10, 64)
	if err != nil {
		return c, errors.Wrapf(errors.ErrOverflow, "amount %q: %s", results[0][1], err)
	}
	c = Coin{Denom: results[0][2], Amount: amount}
	return c, c.Validate()
}

// Set updates this coin value to what is provided. This method implements
// flag.Value interface.
func (c *Coin) Set(raw string) error {
	v, err := ParseHumanFormat(raw)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// Type implements the pflag.Value interface.
func (c *Coin) Type() string {
	return "coin"
}
