package app

import (
	"github.com/iov-one/adminlist"
	"github.com/iov-one/adminlist/errors"
)

// CommitStore handles loading from a CommitKVStore, maintaining a cache
// wrap for all calls executed since the last commit, and returning useful
// state info.
type CommitStore struct {
	committed adminlist.CommitKVStore
	deliver   adminlist.KVCacheWrap
}

// NewCommitStore loads the latest version of the store and sets up the
// deliver cache.
func NewCommitStore(store adminlist.CommitKVStore) (*CommitStore, error) {
	if err := store.LoadLatestVersion(); err != nil {
		return nil, errors.Wrap(err, "load latest version")
	}
	return &CommitStore{
		committed: store,
		deliver:   store.CacheWrap(),
	}, nil
}

// CommitInfo returns the current height and hash
func (cs *CommitStore) CommitInfo() (adminlist.CommitID, error) {
	return cs.committed.LatestVersion()
}

// Commit will flush deliver to the underlying store and commit it
// to disk. It then regenerates a new deliver cache.
func (cs *CommitStore) Commit() (adminlist.CommitID, error) {
	if err := cs.deliver.Write(); err != nil {
		return adminlist.CommitID{}, errors.Wrap(err, "flush")
	}
	res, err := cs.committed.Commit()
	if err != nil {
		return res, err
	}
	cs.deliver = cs.committed.CacheWrap()
	return res, nil
}

// DeliverStore returns a store implementation that must be used by all
// calls. Its content is persisted by Commit.
func (cs *CommitStore) DeliverStore() adminlist.CacheableKVStore {
	return cs.deliver
}

//------- storing chainID ---------

// _al: is a prefix for host internal data
const chainIDKey = "_al:chainID"

// loadChainID returns the chain id stored if any
func loadChainID(kv adminlist.ReadOnlyKVStore) (string, error) {
	v, err := kv.Get([]byte(chainIDKey))
	if err != nil {
		return "", errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return string(v), nil
}

// saveChainID stores a chain id in the kv store.
// Returns error if already set, or invalid name
func saveChainID(kv adminlist.KVStore, chainID string) error {
	if !adminlist.IsValidChainID(chainID) {
		return errors.Wrapf(errors.ErrInput, "chain id: %v", chainID)
	}
	k := []byte(chainIDKey)
	exists, err := kv.Has(k)
	if err != nil {
		return errors.Wrap(err, "load chain id")
	}
	if exists {
		return errors.Wrap(errors.ErrImmutable, "can't modify chain id after genesis init")
	}
	if err := kv.Set(k, []byte(chainID)); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return nil
}
