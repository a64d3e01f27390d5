package bank

import (
	"strconv"

	"github.com/iov-one/adminlist"
	"github.com/iov-one/adminlist/coin"
	"github.com/iov-one/adminlist/errors"
)

const optKey = "bank"

// GenesisAccount is used to parse the json from genesis file
type GenesisAccount struct {
	Address string     `json:"address"`
	Coins   coin.Coins `json:"coins"`
}

// Initializer fulfils the Initializer interface to load data from
// the genesis file
type Initializer struct {
	// Validator checks account addresses. If nil, any non empty address
	// is accepted.
	Validator adminlist.AddressValidator
}

var _ adminlist.Initializer = Initializer{}

// FromGenesis will parse initial account info from genesis
// and save it to the database
func (i Initializer) FromGenesis(opts adminlist.Options, kv adminlist.KVStore) error {
	var accts []GenesisAccount
	if err := opts.ReadOptions(optKey, &accts); err != nil {
		return err
	}
	ctrl := NewController(NewBucket())
	for n, acct := range accts {
		addr, err := i.validate(acct.Address)
		if err != nil {
			return errors.Field(fieldName(n, "Address"), err, "invalid genesis account")
		}
		for _, c := range acct.Coins {
			if err := c.Validate(); err != nil {
				return errors.Field(fieldName(n, "Coins"), err, "invalid genesis coin")
			}
			if err := ctrl.IssueCoins(kv, addr, c); err != nil {
				return errors.Wrapf(err, "issue %s to %s", c, addr)
			}
		}
	}
	return nil
}

func (i Initializer) validate(raw string) (adminlist.Address, error) {
	if i.Validator != nil {
		return i.Validator.ValidateAddress(raw)
	}
	if raw == "" {
		return "", errors.Wrap(errors.ErrEmpty, "address")
	}
	return adminlist.Address(raw), nil
}

func fieldName(index int, name string) string {
	return "bank." + strconv.Itoa(index) + "." + name
}
