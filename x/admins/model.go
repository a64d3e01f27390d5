package admins

import (
	"github.com/gogo/protobuf/proto"

	"github.com/iov-one/adminlist"
	"github.com/iov-one/adminlist/coin"
	"github.com/iov-one/adminlist/errors"
	"github.com/iov-one/adminlist/gconf"
	"github.com/iov-one/adminlist/orm"
)

const (
	// BucketName is where the admin registry is stored.
	BucketName = "admins"

	// pkg is the gconf name of the contract configuration.
	pkg = "admins"
)

// registryKey is the only key used in the admins bucket.
var registryKey = []byte("list")

// AdminList is the ordered registry of admin addresses.
type AdminList struct {
	Admins []adminlist.Address
}

var _ orm.Model = (*AdminList)(nil)

// Validate requires every entry to be non empty and unique.
func (l *AdminList) Validate() error {
	seen := make(map[adminlist.Address]struct{}, len(l.Admins))
	for i, a := range l.Admins {
		if a == "" {
			return errors.Field(adminField(i), errors.ErrEmpty, "empty address")
		}
		if _, ok := seen[a]; ok {
			return errors.Wrapf(ErrAdminAlreadyExists, "admin %s", a)
		}
		seen[a] = struct{}{}
	}
	return nil
}

// Marshal serializes the registry using protobuf.
func (l *AdminList) Marshal() ([]byte, error) {
	w := adminListWire{
		Metadata: newMetadata(),
		Admins:   make([]string, len(l.Admins)),
	}
	for i, a := range l.Admins {
		w.Admins[i] = string(a)
	}
	return proto.Marshal(&w)
}

// Unmarshal loads the registry from its protobuf representation.
func (l *AdminList) Unmarshal(raw []byte) error {
	var w adminListWire
	if err := proto.Unmarshal(raw, &w); err != nil {
		return err
	}
	if err := checkMetadata(w.Metadata); err != nil {
		return err
	}
	l.Admins = make([]adminlist.Address, len(w.Admins))
	for i, a := range w.Admins {
		l.Admins[i] = adminlist.Address(a)
	}
	return nil
}

// Contains returns true if given address is a registered admin.
func (l *AdminList) Contains(addr adminlist.Address) bool {
	for _, a := range l.Admins {
		if a.Equals(addr) {
			return true
		}
	}
	return false
}

// Remove returns a copy of the list without given address. Order of the
// remaining entries is preserved.
func (l *AdminList) Remove(addr adminlist.Address) *AdminList {
	res := &AdminList{Admins: make([]adminlist.Address, 0, len(l.Admins))}
	for _, a := range l.Admins {
		if !a.Equals(addr) {
			res.Admins = append(res.Admins, a)
		}
	}
	return res
}

// Strings returns the registry as plain strings. An empty registry is
// returned as an empty, non nil slice.
func (l *AdminList) Strings() []string {
	res := make([]string, len(l.Admins))
	for i, a := range l.Admins {
		res[i] = a.String()
	}
	return res
}

// Registry gives access to the persisted admin list.
type Registry struct {
	orm.Bucket
}

// NewRegistry returns a registry backed by the admins bucket.
func NewRegistry() Registry {
	return Registry{
		Bucket: orm.NewBucket(BucketName, orm.NewSimpleObj(nil, new(AdminList))),
	}
}

// Load returns the persisted admin list. ErrNotFound is returned if the
// contract was never instantiated.
func (r Registry) Load(db adminlist.ReadOnlyKVStore) (*AdminList, error) {
	obj, err := r.Get(db, registryKey)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, errors.Wrap(errors.ErrNotFound, "admin registry")
	}
	list, ok := obj.Value().(*AdminList)
	if !ok {
		return nil, errors.Wrapf(errors.ErrState, "invalid registry type %T", obj.Value())
	}
	return list, nil
}

// Store overwrites the persisted admin list.
func (r Registry) Store(db adminlist.KVStore, list *AdminList) error {
	return r.Save(db, orm.NewSimpleObj(registryKey, list))
}

// Exists returns true if an admin list was already stored.
func (r Registry) Exists(db adminlist.ReadOnlyKVStore) (bool, error) {
	return r.Has(db, registryKey)
}

// Configuration is the immutable setup of the contract.
type Configuration struct {
	DonationDenom string
}

var _ gconf.Configuration = (*Configuration)(nil)

// Validate requires a valid denomination.
func (c *Configuration) Validate() error {
	if !coin.IsDenom(c.DonationDenom) {
		return errors.Field("DonationDenom", errors.ErrCurrency, "invalid denomination %q", c.DonationDenom)
	}
	return nil
}

// Marshal serializes the configuration using protobuf.
func (c *Configuration) Marshal() ([]byte, error) {
	return proto.Marshal(&configurationWire{
		Metadata:      newMetadata(),
		DonationDenom: c.DonationDenom,
	})
}

// Unmarshal loads the configuration from its protobuf representation.
func (c *Configuration) Unmarshal(raw []byte) error {
	var w configurationWire
	if err := proto.Unmarshal(raw, &w); err != nil {
		return err
	}
	if err := checkMetadata(w.Metadata); err != nil {
		return err
	}
	c.DonationDenom = w.DonationDenom
	return nil
}

// loadConf returns the configuration saved during instantiation.
func loadConf(db adminlist.ReadOnlyKVStore) (*Configuration, error) {
	var conf Configuration
	if err := gconf.Load(db, pkg, &conf); err != nil {
		return nil, errors.Wrap(err, "load configuration")
	}
	return &conf, nil
}
