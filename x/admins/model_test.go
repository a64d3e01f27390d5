package admins

import (
	"testing"

	"github.com/iov-one/adminlist"
	"github.com/iov-one/adminlist/coin"
	"github.com/iov-one/adminlist/contracttest/assert"
	"github.com/iov-one/adminlist/errors"
	"github.com/iov-one/adminlist/store"
)

func TestAdminListValidate(t *testing.T) {
	cases := map[string]struct {
		List    AdminList
		WantErr *errors.Error
	}{
		"empty":      {List: AdminList{}},
		"unique":     {List: AdminList{Admins: []adminlist.Address{"a", "b"}}},
		"duplicated": {List: AdminList{Admins: []adminlist.Address{"a", "b", "a"}}, WantErr: ErrAdminAlreadyExists},
		"blank":      {List: AdminList{Admins: []adminlist.Address{"a", ""}}, WantErr: errors.ErrEmpty},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			assert.IsErr(t, tc.WantErr, tc.List.Validate())
		})
	}
}

func TestAdminListRemove(t *testing.T) {
	list := &AdminList{Admins: []adminlist.Address{"a", "b", "c"}}
	assert.Equal(t, []string{"a", "c"}, list.Remove("b").Strings())
	assert.Equal(t, []string{"a", "b", "c"}, list.Remove("x").Strings())
	// Original list is not modified.
	assert.Equal(t, []string{"a", "b", "c"}, list.Strings())
	assert.Equal(t, []string{}, (&AdminList{}).Remove("a").Strings())
}

func TestRegistryPersistence(t *testing.T) {
	db := store.MemStore()
	r := NewRegistry()

	_, err := r.Load(db)
	assert.IsErr(t, errors.ErrNotFound, err)

	// An empty list is stored and loaded as empty, not as missing.
	assert.Nil(t, r.Store(db, &AdminList{}))
	list, err := r.Load(db)
	assert.Nil(t, err)
	assert.Equal(t, 0, len(list.Admins))

	want := &AdminList{Admins: []adminlist.Address{"admin1", "admin2"}}
	assert.Nil(t, r.Store(db, want))
	list, err = r.Load(db)
	assert.Nil(t, err)
	assert.Equal(t, want.Admins, list.Admins)

	err = r.Store(db, &AdminList{Admins: []adminlist.Address{"x", "x"}})
	assert.IsErr(t, ErrAdminAlreadyExists, err)
}

func TestCorruptedRegistry(t *testing.T) {
	db := store.MemStore()
	r := NewRegistry()
	assert.Nil(t, db.Set(r.DBKey(registryKey), []byte{0xff, 0xff, 0xff}))

	_, err := r.Load(db)
	assert.IsErr(t, errors.ErrState, err)
}

func TestSchemaMetadata(t *testing.T) {
	var l AdminList
	raw, err := (&AdminList{Admins: []adminlist.Address{"admin1"}}).Marshal()
	assert.Nil(t, err)
	assert.Nil(t, l.Unmarshal(raw))

	var c Configuration
	assert.IsErr(t, errors.ErrSchema, c.Unmarshal(nil))
}

func TestSplitDonation(t *testing.T) {
	admins := []adminlist.Address{"a", "b", "c"}

	split, err := SplitDonation(coin.NewCoin("cosmos", 10), admins)
	assert.Nil(t, err)
	assert.Equal(t, coin.NewCoin("cosmos", 3), split.Share)
	assert.Equal(t, coin.NewCoin("cosmos", 1), split.Remainder)
	assert.Equal(t, 3, len(split.Payouts))
	for i, p := range split.Payouts {
		assert.Equal(t, admins[i], p.Admin)
		assert.Equal(t, split.Share, p.Amount)
	}

	split, err = SplitDonation(coin.NewCoin("cosmos", 2), admins)
	assert.Nil(t, err)
	assert.Equal(t, 0, len(split.Payouts))
	assert.Equal(t, coin.NewCoin("cosmos", 2), split.Remainder)

	_, err = SplitDonation(coin.NewCoin("cosmos", 2), nil)
	assert.IsErr(t, ErrNoRecipients, err)

	_, err = SplitDonation(coin.NewCoin("cosmos", -2), admins)
	assert.IsErr(t, errors.ErrAmount, err)
}
