package store

import (
	"bytes"

	"github.com/google/btree"

	"github.com/iov-one/adminlist/errors"
)

// btreeDegree is the degree of every cache tree.
const btreeDegree = 2

// BTreeCacheable makes any KVStore cacheable by layering an in memory
// btree over it.
type BTreeCacheable struct {
	KVStore
}

var _ CacheableKVStore = BTreeCacheable{}

func (b BTreeCacheable) CacheWrap() KVCacheWrap {
	return NewBTreeCacheWrap(b.KVStore, b.NewBatch(), nil)
}

// MemStore returns an empty store that lives in memory only.
func MemStore() CacheableKVStore {
	var empty EmptyKVStore
	return NewBTreeCacheWrap(empty, empty.NewBatch(), nil)
}

// BTreeCacheWrap buffers writes in a btree. Reads are served from the
// btree first and fall back to the wrapped store. Write flushes the buffered
// operations to the batch, Discard drops them.
type BTreeCacheWrap struct {
	tree  *btree.BTree
	free  *btree.FreeList
	back  ReadOnlyKVStore
	batch Batch
}

var _ KVCacheWrap = BTreeCacheWrap{}

// NewBTreeCacheWrap returns a cache over back. Writes are passed to batch
// and reach back only when the cache is written. A nil free list allocates
// a new one, nested caches share the list of their parent.
func NewBTreeCacheWrap(back ReadOnlyKVStore, batch Batch, free *btree.FreeList) BTreeCacheWrap {
	if free == nil {
		free = btree.NewFreeList(btree.DefaultFreeListSize)
	}
	return BTreeCacheWrap{
		tree:  btree.NewWithFreeList(btreeDegree, free),
		free:  free,
		back:  back,
		batch: batch,
	}
}

// CacheWrap stacks another cache over this one.
func (b BTreeCacheWrap) CacheWrap() KVCacheWrap {
	return NewBTreeCacheWrap(b, b.NewBatch(), b.free)
}

func (b BTreeCacheWrap) NewBatch() Batch {
	return NewNonAtomicBatch(b)
}

// Write flushes all buffered operations and clears the cache.
func (b BTreeCacheWrap) Write() error {
	err := b.batch.Write()
	b.Discard()
	return err
}

// Discard clears the cache. Nodes are returned to the free list.
func (b BTreeCacheWrap) Discard() {
	b.tree.Clear(true)
}

func (b BTreeCacheWrap) Set(key, value []byte) error {
	if key == nil {
		return errors.Wrap(errors.ErrDatabase, "nil key")
	}
	b.tree.ReplaceOrInsert(cacheItem{key: key, value: value})
	return b.batch.Set(key, value)
}

func (b BTreeCacheWrap) Delete(key []byte) error {
	if key == nil {
		return errors.Wrap(errors.ErrDatabase, "nil key")
	}
	b.tree.ReplaceOrInsert(cacheItem{key: key, deleted: true})
	return b.batch.Delete(key)
}

func (b BTreeCacheWrap) Get(key []byte) ([]byte, error) {
	item, ok := b.cached(key)
	if !ok {
		return b.back.Get(key)
	}
	if item.deleted {
		return nil, nil
	}
	return item.value, nil
}

func (b BTreeCacheWrap) Has(key []byte) (bool, error) {
	item, ok := b.cached(key)
	if !ok {
		return b.back.Has(key)
	}
	return !item.deleted, nil
}

func (b BTreeCacheWrap) cached(key []byte) (cacheItem, bool) {
	found := b.tree.Get(cacheItem{key: key})
	if found == nil {
		return cacheItem{}, false
	}
	return found.(cacheItem), true
}

// Iterator merges the cached range with the wrapped store, in ascending
// key order.
func (b BTreeCacheWrap) Iterator(start, end []byte) (Iterator, error) {
	back, err := b.back.Iterator(start, end)
	if err != nil {
		return nil, err
	}
	return newMergeIterator(cachedRange(b.tree, start, end, true), back, true)
}

// ReverseIterator is Iterator in descending key order.
func (b BTreeCacheWrap) ReverseIterator(start, end []byte) (Iterator, error) {
	back, err := b.back.ReverseIterator(start, end)
	if err != nil {
		return nil, err
	}
	return newMergeIterator(cachedRange(b.tree, start, end, false), back, false)
}

// cacheItem is a buffered write. A deleted item hides the key in the
// wrapped store.
type cacheItem struct {
	key     []byte
	value   []byte
	deleted bool
}

var _ btree.Item = cacheItem{}

func (c cacheItem) Less(than btree.Item) bool {
	return bytes.Compare(c.key, than.(cacheItem).key) < 0
}
