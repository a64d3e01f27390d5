package bank

import (
	"encoding/json"
	"testing"

	"github.com/iov-one/adminlist"
	"github.com/iov-one/adminlist/coin"
	"github.com/iov-one/adminlist/contracttest/assert"
	"github.com/iov-one/adminlist/errors"
	"github.com/iov-one/adminlist/identity"
	"github.com/iov-one/adminlist/store"
)

func TestGenesis(t *testing.T) {
	cases := map[string]struct {
		genesis   string
		validator adminlist.AddressValidator
		wantErr   *errors.Error
		want      map[adminlist.Address]coin.Coins
	}{
		"no bank section": {
			genesis: `{}`,
			want:    map[adminlist.Address]coin.Coins{},
		},
		"accounts are funded": {
			genesis: `{"bank": [
				{"address": "alice", "coins": [{"denom": "cosmos", "amount": 5}, {"denom": "atom", "amount": 1}]},
				{"address": "bob", "coins": [{"denom": "cosmos", "amount": 2}]}
			]}`,
			validator: identity.Mock{},
			want: map[adminlist.Address]coin.Coins{
				"alice": {coin.NewCoin("atom", 1), coin.NewCoin("cosmos", 5)},
				"bob":   {coin.NewCoin("cosmos", 2)},
			},
		},
		"invalid address": {
			genesis:   `{"bank": [{"address": "A", "coins": [{"denom": "cosmos", "amount": 5}]}]}`,
			validator: identity.Mock{},
			wantErr:   errors.ErrInput,
		},
		"missing address without validator": {
			genesis: `{"bank": [{"address": "", "coins": [{"denom": "cosmos", "amount": 5}]}]}`,
			wantErr: errors.ErrEmpty,
		},
		"negative amount": {
			genesis: `{"bank": [{"address": "alice", "coins": [{"denom": "cosmos", "amount": -5}]}]}`,
			wantErr: errors.ErrAmount,
		},
		"malformed section": {
			genesis: `{"bank": {"address": "alice"}}`,
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var opts adminlist.Options
			assert.Nil(t, json.Unmarshal([]byte(tc.genesis), &opts))

			db := store.MemStore()
			err := Initializer{Validator: tc.validator}.FromGenesis(opts, db)
			assert.IsErr(t, tc.wantErr, err)
			if tc.wantErr != nil {
				return
			}

			ctrl := NewController(NewBucket())
			for addr, want := range tc.want {
				got, err := ctrl.Balance(db, addr)
				assert.Nil(t, err)
				assert.Equal(t, want, got)
			}
			all, err := NewBucket().All(db)
			assert.Nil(t, err)
			assert.Equal(t, len(tc.want), len(all))
		})
	}
}
