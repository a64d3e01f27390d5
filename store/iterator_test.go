package store

import (
	"testing"

	"github.com/iov-one/adminlist/contracttest/assert"
)

func TestCacheIteratorClose(t *testing.T) {
	db := MemStore()
	assert.Nil(t, db.Set([]byte("a"), []byte("A")))
	cache := db.CacheWrap()

	it, err := cache.Iterator([]byte("a"), []byte("z"))
	assert.Nil(t, err)
	assert.Equal(t, true, it.Valid())
	it.Close()
	assert.Equal(t, false, it.Valid())

	// no background work may hold the store after close
	assert.Nil(t, db.Delete([]byte("a")))
}

func TestCacheReverseIteratorOpenRange(t *testing.T) {
	db := MemStore()
	for _, k := range []string{"a", "b", "c"} {
		assert.Nil(t, db.Set([]byte(k), []byte(k)))
	}
	cache := db.CacheWrap()
	assert.Nil(t, cache.Set([]byte("d"), []byte("d")))

	it, err := cache.ReverseIterator([]byte("b"), nil)
	assert.Nil(t, err)
	got := consume(t, it)
	assert.Equal(t, []Model{
		Pair([]byte("d"), []byte("d")),
		Pair([]byte("c"), []byte("c")),
		Pair([]byte("b"), []byte("b")),
	}, got)

	it, err = cache.Iterator(nil, []byte("c"))
	assert.Nil(t, err)
	got = consume(t, it)
	assert.Equal(t, []Model{
		Pair([]byte("a"), []byte("a")),
		Pair([]byte("b"), []byte("b")),
	}, got)
}
