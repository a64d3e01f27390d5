package admins

import (
	"github.com/iov-one/adminlist"
	"github.com/iov-one/adminlist/errors"
	"github.com/iov-one/adminlist/gconf"
)

const optKey = "admins"

// Instantiate creates the contract state. Every admin address is validated
// and duplicates are rejected. The contract can be instantiated only once.
// Nothing is written if any check fails.
func Instantiate(db adminlist.KVStore, validator adminlist.AddressValidator, msg *InstantiateMsg) error {
	if err := msg.Validate(); err != nil {
		return err
	}
	admins, err := validateAddresses(validator, msg.Admins)
	if err != nil {
		return err
	}

	registry := NewRegistry()
	switch exists, err := registry.Exists(db); {
	case err != nil:
		return err
	case exists:
		return errors.Wrap(errors.ErrDuplicate, "contract already instantiated")
	}

	conf := Configuration{DonationDenom: msg.DonationDenom}
	if err := gconf.Save(db, pkg, &conf); err != nil {
		return errors.Wrap(err, "save configuration")
	}
	if err := registry.Store(db, &AdminList{Admins: admins}); err != nil {
		return errors.Wrap(err, "save registry")
	}
	return nil
}

// Initializer fulfils the Initializer interface to instantiate the
// contract from the genesis file.
type Initializer struct {
	Validator adminlist.AddressValidator
}

var _ adminlist.Initializer = Initializer{}

// FromGenesis instantiates the contract if the genesis file contains the
// admins section.
func (i Initializer) FromGenesis(opts adminlist.Options, db adminlist.KVStore) error {
	if _, ok := opts[optKey]; !ok {
		return nil
	}
	var msg InstantiateMsg
	if err := opts.ReadOptions(optKey, &msg); err != nil {
		return err
	}
	if err := Instantiate(db, i.Validator, &msg); err != nil {
		return errors.Wrap(err, "genesis")
	}
	return nil
}
