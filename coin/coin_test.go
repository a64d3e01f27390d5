package coin

import (
	"encoding/json"
	"testing"

	"github.com/iov-one/adminlist/contracttest/assert"
	"github.com/iov-one/adminlist/errors"
)

func TestValidCoin(t *testing.T) {
	cases := map[string]struct {
		coin    Coin
		wantErr *errors.Error
	}{
		"zero amount is valid": {
			coin: NewCoin("cosmos", 0),
		},
		"positive amount": {
			coin: NewCoin("cosmos", 5),
		},
		"denom with path characters": {
			coin: NewCoin("ibc/ABC:1.x_y-z", 1),
		},
		"negative amount": {
			coin:    NewCoin("cosmos", -1),
			wantErr: errors.ErrAmount,
		},
		"too short denom": {
			coin:    NewCoin("ab", 1),
			wantErr: errors.ErrCurrency,
		},
		"denom starting with a digit": {
			coin:    NewCoin("1abc", 1),
			wantErr: errors.ErrCurrency,
		},
		"denom with invalid character": {
			coin:    NewCoin("cos$mos", 1),
			wantErr: errors.ErrCurrency,
		},
		"empty denom": {
			coin:    NewCoin("", 1),
			wantErr: errors.ErrCurrency,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			assert.IsErr(t, tc.wantErr, tc.coin.Validate())
		})
	}
}

func TestCoinArithmetic(t *testing.T) {
	a := NewCoin("cosmos", 7)
	b := NewCoin("cosmos", 3)

	sum, err := a.Add(b)
	assert.Nil(t, err)
	assert.Equal(t, NewCoin("cosmos", 10), sum)

	diff, err := b.Subtract(a)
	assert.Nil(t, err)
	assert.Equal(t, NewCoin("cosmos", -4), diff)
	assert.Equal(t, false, diff.IsNonNegative())

	_, err = a.Add(NewCoin("atom", 1))
	assert.IsErr(t, errors.ErrCurrency, err)

	_, err = NewCoin("cosmos", MaxAmount).Add(NewCoin("cosmos", 1))
	assert.IsErr(t, errors.ErrOverflow, err)

	_, err = NewCoin("cosmos", MaxAmount).Multiply(2)
	assert.IsErr(t, errors.ErrOverflow, err)

	triple, err := b.Multiply(3)
	assert.Nil(t, err)
	assert.Equal(t, NewCoin("cosmos", 9), triple)

	assert.Equal(t, true, a.IsGTE(b))
	assert.Equal(t, false, b.IsGTE(a))
	assert.Equal(t, false, a.IsGTE(NewCoin("atom", 1)))
	assert.Equal(t, 1, a.Compare(b))
	assert.Equal(t, -1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(a))
}

func TestCoinDivide(t *testing.T) {
	cases := map[string]struct {
		total    Coin
		pieces   int64
		wantOne  Coin
		wantRest Coin
		wantErr  *errors.Error
	}{
		"exact split": {
			total:    NewCoin("cosmos", 6),
			pieces:   3,
			wantOne:  NewCoin("cosmos", 2),
			wantRest: NewCoin("cosmos", 0),
		},
		"split with a remainder": {
			total:    NewCoin("cosmos", 5),
			pieces:   2,
			wantOne:  NewCoin("cosmos", 2),
			wantRest: NewCoin("cosmos", 1),
		},
		"amount smaller than pieces": {
			total:    NewCoin("cosmos", 2),
			pieces:   3,
			wantOne:  NewCoin("cosmos", 0),
			wantRest: NewCoin("cosmos", 2),
		},
		"zero amount": {
			total:    NewCoin("cosmos", 0),
			pieces:   4,
			wantOne:  NewCoin("cosmos", 0),
			wantRest: NewCoin("cosmos", 0),
		},
		"zero pieces": {
			total:   NewCoin("cosmos", 5),
			pieces:  0,
			wantErr: errors.ErrInput,
		},
		"negative amount": {
			total:   NewCoin("cosmos", -5),
			pieces:  2,
			wantErr: errors.ErrAmount,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			one, rest, err := tc.total.Divide(tc.pieces)
			assert.IsErr(t, tc.wantErr, err)
			if tc.wantErr != nil {
				return
			}
			assert.Equal(t, tc.wantOne, one)
			assert.Equal(t, tc.wantRest, rest)

			// nothing is created or destroyed
			assert.Equal(t, tc.total.Amount, one.Amount*tc.pieces+rest.Amount)
		})
	}
}

func TestParseHumanFormat(t *testing.T) {
	cases := map[string]struct {
		raw     string
		want    Coin
		wantErr *errors.Error
	}{
		"compact": {
			raw:  "5cosmos",
			want: NewCoin("cosmos", 5),
		},
		"with a space": {
			raw:  "12 atom",
			want: NewCoin("atom", 12),
		},
		"zero": {
			raw:  "0cosmos",
			want: NewCoin("cosmos", 0),
		},
		"negative": {
			raw:     "-5cosmos",
			wantErr: errors.ErrInput,
		},
		"missing denom": {
			raw:     "5",
			wantErr: errors.ErrInput,
		},
		"fractional": {
			raw:     "1.5cosmos",
			wantErr: errors.ErrInput,
		},
		"too large": {
			raw:     "99999999999999999999cosmos",
			wantErr: errors.ErrOverflow,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := ParseHumanFormat(tc.raw)
			assert.IsErr(t, tc.wantErr, err)
			if tc.wantErr == nil {
				assert.Equal(t, tc.want, got)
				assert.Equal(t, tc.raw != "12 atom", got.String() == tc.raw)
			}
		})
	}
}

func TestCoinJSON(t *testing.T) {
	var c Coin
	assert.Nil(t, json.Unmarshal([]byte(`{"denom": "cosmos", "amount": 5}`), &c))
	assert.Equal(t, NewCoin("cosmos", 5), c)

	raw, err := json.Marshal(c)
	assert.Nil(t, err)
	assert.Equal(t, `{"denom":"cosmos","amount":5}`, string(raw))
}

func TestCoinFlagValue(t *testing.T) {
	var c Coin
	assert.Nil(t, c.Set("3cosmos"))
	assert.Equal(t, NewCoin("cosmos", 3), c)
	assert.Equal(t, "coin", c.Type())

	assert.IsErr(t, errors.ErrInput, c.Set("cosmos"))
	// failed set does not modify the value
	assert.Equal(t, NewCoin("cosmos", 3), c)
}
