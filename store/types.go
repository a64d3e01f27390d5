package store

import "github.com/iov-one/adminlist"

// Aliases of the storage interfaces declared in the root package, so that
// implementations in this package can use short names.
type (
	ReadOnlyKVStore  = adminlist.ReadOnlyKVStore
	SetDeleter       = adminlist.SetDeleter
	KVStore          = adminlist.KVStore
	Batch            = adminlist.Batch
	Iterator         = adminlist.Iterator
	CacheableKVStore = adminlist.CacheableKVStore
	KVCacheWrap      = adminlist.KVCacheWrap
	CommitKVStore    = adminlist.CommitKVStore
	CommitID         = adminlist.CommitID
)
