package admins

import (
	"encoding/json"
	"testing"

	"github.com/iov-one/adminlist"
	"github.com/iov-one/adminlist/contracttest/assert"
	"github.com/iov-one/adminlist/errors"
	"github.com/iov-one/adminlist/gconf"
	"github.com/iov-one/adminlist/identity"
	"github.com/iov-one/adminlist/store"
)

func TestInstantiate(t *testing.T) {
	cases := map[string]struct {
		Msg        InstantiateMsg
		WantErr    *errors.Error
		WantAdmins []string
	}{
		"empty admin list": {
			Msg:        InstantiateMsg{DonationDenom: "cosmos"},
			WantAdmins: []string{},
		},
		"two admins": {
			Msg:        InstantiateMsg{Admins: []string{"admin1", "admin2"}, DonationDenom: "cosmos"},
			WantAdmins: []string{"admin1", "admin2"},
		},
		"invalid admin address": {
			Msg:     InstantiateMsg{Admins: []string{"admin1", "ADMIN2"}, DonationDenom: "cosmos"},
			WantErr: errors.ErrInput,
		},
		"duplicated admin address": {
			Msg:     InstantiateMsg{Admins: []string{"admin1", "admin1"}, DonationDenom: "cosmos"},
			WantErr: ErrAdminAlreadyExists,
		},
		"missing denomination": {
			Msg:     InstantiateMsg{Admins: []string{"admin1"}},
			WantErr: errors.ErrCurrency,
		},
		"invalid denomination": {
			Msg:     InstantiateMsg{Admins: []string{"admin1"}, DonationDenom: "1$"},
			WantErr: errors.ErrCurrency,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			err := Instantiate(db, identity.Mock{}, &tc.Msg)
			if !tc.WantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
			if tc.WantErr != nil {
				// Nothing can be written by a failed instantiation.
				exists, err := NewRegistry().Exists(db)
				assert.Nil(t, err)
				assert.Equal(t, false, exists)
				exists, err = gconf.Exists(db, pkg)
				assert.Nil(t, err)
				assert.Equal(t, false, exists)
				return
			}
			assert.Equal(t, tc.WantAdmins, loadAdmins(t, db))
			conf, err := loadConf(db)
			assert.Nil(t, err)
			assert.Equal(t, tc.Msg.DonationDenom, conf.DonationDenom)
		})
	}
}

func TestInstantiateOnlyOnce(t *testing.T) {
	db := store.MemStore()
	instantiate(t, db, "cosmos", "admin1")

	err := Instantiate(db, identity.Mock{}, &InstantiateMsg{Admins: []string{"admin2"}, DonationDenom: "atom"})
	assert.IsErr(t, errors.ErrDuplicate, err)
	assert.Equal(t, []string{"admin1"}, loadAdmins(t, db))
}

func TestInstantiateFieldErrors(t *testing.T) {
	db := store.MemStore()
	err := Instantiate(db, identity.Mock{}, &InstantiateMsg{DonationDenom: "x"})
	assert.FieldError(t, err, "DonationDenom", errors.ErrCurrency)

	err = Instantiate(db, identity.Mock{}, &InstantiateMsg{
		Admins:        []string{"ok1", "no", "ok2", "Bad"},
		DonationDenom: "cosmos",
	})
	assert.FieldError(t, err, "Admins.1", errors.ErrInput)
	assert.FieldError(t, err, "Admins.3", errors.ErrInput)
}

func TestGenesis(t *testing.T) {
	cases := map[string]struct {
		Genesis    string
		WantErr    *errors.Error
		WantAdmins []string
	}{
		"missing section is ignored": {
			Genesis: `{}`,
		},
		"admins section instantiates the contract": {
			Genesis:    `{"admins": {"admins": ["admin1", "admin2"], "donation_denom": "cosmos"}}`,
			WantAdmins: []string{"admin1", "admin2"},
		},
		"malformed section": {
			Genesis: `{"admins": {"admins": "admin1"}}`,
			WantErr: errors.ErrInput,
		},
		"invalid admin": {
			Genesis: `{"admins": {"admins": ["a"], "donation_denom": "cosmos"}}`,
			WantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var opts adminlist.Options
			assert.Nil(t, json.Unmarshal([]byte(tc.Genesis), &opts))

			db := store.MemStore()
			err := Initializer{Validator: identity.Mock{}}.FromGenesis(opts, db)
			if !tc.WantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
			if tc.WantErr != nil || tc.WantAdmins == nil {
				return
			}
			assert.Equal(t, tc.WantAdmins, loadAdmins(t, db))
		})
	}
}
