package store

import (
	"bytes"
	"crypto/rand"
	"sort"
	"testing"

	"github.com/iov-one/adminlist/contracttest/assert"
)

/*
TestSuite provides many methods that can be called in package-specific test code.
We just customize the store being tested (pass in constructor), the rest of the
logic is generic to the KVStore interface.

It is shared between btree_test.go and iavl/adapter_test.go, but can be used
for any implementation of KVStore.
*/
type TestSuite struct {
	makeBase TestStoreConstructor
}

// TestStoreConstructor returns a fresh, empty store together with a
// function that releases all of its resources.
type TestStoreConstructor func() (base CacheableKVStore, cleanup func())

// NewTestSuite returns a suite that runs against stores created by given
// constructor.
func NewTestSuite(constructor TestStoreConstructor) *TestSuite {
	return &TestSuite{
		makeBase: constructor,
	}
}

// GetSet does basic sanity checks on our cache
//
// Other tests should handle deletes, setting same value,
// iterating over ranges, and general fuzzing
func (s *TestSuite) GetSet(t *testing.T) {
	base, cleanup := s.makeBase()
	defer cleanup()

	// make sure the store is empty at start but returns results
	// that are written to it
	k, v := []byte("french"), []byte("fry")
	s.AssertGetHas(t, base, k, nil, false)
	assert.Nil(t, base.Set(k, v))
	s.AssertGetHas(t, base, k, v, true)

	// now layer a cache on top and make sure that we get base data
	cache := base.CacheWrap()
	s.AssertGetHas(t, cache, k, v, true)

	// writing more data is only visible in the cache
	k2, v2 := []byte("LA"), []byte("Dodgers")
	s.AssertGetHas(t, cache, k2, nil, false)
	assert.Nil(t, cache.Set(k2, v2))
	s.AssertGetHas(t, cache, k2, v2, true)
	s.AssertGetHas(t, base, k2, nil, false)

	// we can write the cache to the base layer...
	assert.Nil(t, cache.Write())
	s.AssertGetHas(t, base, k, v, true)
	s.AssertGetHas(t, base, k2, v2, true)

	// we can discard one
	k3, v3 := []byte("Bayern"), []byte("Munich")
	c2 := base.CacheWrap()
	s.AssertGetHas(t, c2, k, v, true)
	s.AssertGetHas(t, c2, k2, v2, true)
	assert.Nil(t, c2.Set(k3, v3))
	c2.Discard()
	s.AssertGetHas(t, base, k3, nil, false)

	// and commit another
	c3 := base.CacheWrap()
	s.AssertGetHas(t, c3, k, v, true)
	assert.Nil(t, c3.Delete(k))
	assert.Nil(t, c3.Write())

	// make sure it commits proper
	s.AssertGetHas(t, base, k, nil, false)
	s.AssertGetHas(t, base, k2, v2, true)
	s.AssertGetHas(t, base, k3, nil, false)
}

// CacheConflicts checks that we can handle
// overwriting values and deleting underlying values
func (s *TestSuite) CacheConflicts(t *testing.T) {
	// make 10 keys and 20 values....
	ks := randKeys(10, 16)
	vs := randKeys(20, 40)

	cases := map[string]struct {
		parentOps     []Op
		childOps      []Op
		parentQueries []Model // Key is what we query, Value is what we expect
		childQueries  []Model // Key is what we query, Value is what we expect
	}{
		"overwrite one, delete another, add a third": {
			parentOps:     []Op{SetOp(ks[1], vs[1]), SetOp(ks[2], vs[2])},
			childOps:      []Op{SetOp(ks[1], vs[11]), SetOp(ks[3], vs[7]), DelOp(ks[2])},
			parentQueries: []Model{Pair(ks[1], vs[1]), Pair(ks[2], vs[2]), Pair(ks[3], nil)},
			childQueries:  []Model{Pair(ks[1], vs[11]), Pair(ks[2], nil), Pair(ks[3], vs[7])},
		},
		"add and remove the same key": {
			parentOps:     []Op{SetOp(ks[4], vs[4])},
			childOps:      []Op{SetOp(ks[5], vs[5]), DelOp(ks[5]), DelOp(ks[4])},
			parentQueries: []Model{Pair(ks[4], vs[4]), Pair(ks[5], nil)},
			childQueries:  []Model{Pair(ks[4], nil), Pair(ks[5], nil)},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			parent, cleanup := s.makeBase()
			defer cleanup()

			for _, op := range tc.parentOps {
				assert.Nil(t, op.Apply(parent))
			}

			child := parent.CacheWrap()
			for _, op := range tc.childOps {
				assert.Nil(t, op.Apply(child))
			}

			// now check the parent is unaffected
			for _, q := range tc.parentQueries {
				s.AssertGetHas(t, parent, q.Key, q.Value, q.Value != nil)
			}
			// the child shows changes
			for _, q := range tc.childQueries {
				s.AssertGetHas(t, child, q.Key, q.Value, q.Value != nil)
			}

			// write child to parent and make sure it also shows proper data
			assert.Nil(t, child.Write())
			for _, q := range tc.childQueries {
				s.AssertGetHas(t, parent, q.Key, q.Value, q.Value != nil)
			}
		})
	}
}

// IteratorWithConflicts ensures that iteration over a cache wrap merges the
// cached changes with the content of the parent, in both directions.
func (s *TestSuite) IteratorWithConflicts(t *testing.T) {
	cases := map[string]struct {
		parentOps  []Op
		childOps   []Op
		start, end []byte
		expected   []Model
	}{
		"only parent data": {
			parentOps: []Op{SetOp([]byte("a"), []byte("1")), SetOp([]byte("c"), []byte("3"))},
			expected:  []Model{Pair([]byte("a"), []byte("1")), Pair([]byte("c"), []byte("3"))},
		},
		"only child data": {
			childOps: []Op{SetOp([]byte("b"), []byte("2")), SetOp([]byte("a"), []byte("1"))},
			expected: []Model{Pair([]byte("a"), []byte("1")), Pair([]byte("b"), []byte("2"))},
		},
		"interleaved, overwritten and deleted": {
			parentOps: []Op{
				SetOp([]byte("a"), []byte("1")),
				SetOp([]byte("c"), []byte("3")),
				SetOp([]byte("e"), []byte("5")),
			},
			childOps: []Op{
				SetOp([]byte("b"), []byte("2")),
				SetOp([]byte("c"), []byte("33")),
				DelOp([]byte("e")),
				SetOp([]byte("f"), []byte("6")),
			},
			expected: []Model{
				Pair([]byte("a"), []byte("1")),
				Pair([]byte("b"), []byte("2")),
				Pair([]byte("c"), []byte("33")),
				Pair([]byte("f"), []byte("6")),
			},
		},
		"bounded range": {
			parentOps: []Op{
				SetOp([]byte("a"), []byte("1")),
				SetOp([]byte("c"), []byte("3")),
				SetOp([]byte("e"), []byte("5")),
			},
			childOps: []Op{SetOp([]byte("d"), []byte("4")), DelOp([]byte("a"))},
			start:    []byte("a"),
			end:      []byte("e"),
			expected: []Model{Pair([]byte("c"), []byte("3")), Pair([]byte("d"), []byte("4"))},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			parent, cleanup := s.makeBase()
			defer cleanup()

			for _, op := range tc.parentOps {
				assert.Nil(t, op.Apply(parent))
			}
			child := parent.CacheWrap()
			for _, op := range tc.childOps {
				assert.Nil(t, op.Apply(child))
			}

			it, err := child.Iterator(tc.start, tc.end)
			assert.Nil(t, err)
			assert.Equal(t, tc.expected, consume(t, it))

			rit, err := child.ReverseIterator(tc.start, tc.end)
			assert.Nil(t, err)
			assert.Equal(t, reversed(tc.expected), consume(t, rit))
		})
	}
}

// AssertGetHas makes sure that both Get and Has of the store return given
// values.
func (s *TestSuite) AssertGetHas(t testing.TB, kv ReadOnlyKVStore, key, val []byte, has bool) {
	t.Helper()
	got, err := kv.Get(key)
	assert.Nil(t, err)
	if !bytes.Equal(val, got) {
		t.Fatalf("key %q: want %q, got %q", key, val, got)
	}
	exists, err := kv.Has(key)
	assert.Nil(t, err)
	assert.Equal(t, has, exists)
}

func consume(t testing.TB, it Iterator) []Model {
	t.Helper()
	defer it.Close()

	var res []Model
	for ; it.Valid(); assert.Nil(t, it.Next()) {
		res = append(res, Pair(it.Key(), it.Value()))
	}
	return res
}

func reversed(models []Model) []Model {
	if models == nil {
		return nil
	}
	res := make([]Model, len(models))
	for i, m := range models {
		res[len(models)-1-i] = m
	}
	return res
}

// randKeys returns a sorted list of random, unique keys of given length.
func randKeys(count, length int) [][]byte {
	res := make([][]byte, count)
	for i := range res {
		res[i] = make([]byte, length)
		if _, err := rand.Read(res[i]); err != nil {
			panic(err)
		}
	}
	sort.Slice(res, func(i, j int) bool { return bytes.Compare(res[i], res[j]) < 0 })
	return res
}
