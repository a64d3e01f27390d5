package app

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iov-one/adminlist"
	"github.com/iov-one/adminlist/errors"
	"github.com/iov-one/adminlist/store"
)

type countInit struct {
	called int
	err    error
}

func (c *countInit) FromGenesis(opts adminlist.Options, kv adminlist.KVStore) error {
	c.called++
	return c.err
}

func TestChainInitializers(t *testing.T) {
	first := &countInit{}
	failing := &countInit{err: errors.ErrInput}
	last := &countInit{}

	err := ChainInitializers(first, last).FromGenesis(nil, store.MemStore())
	require.NoError(t, err)
	assert.Equal(t, 1, first.called)
	assert.Equal(t, 1, last.called)

	// the first error aborts the chain
	err = ChainInitializers(first, failing, last).FromGenesis(nil, store.MemStore())
	assert.True(t, errors.ErrInput.Is(err))
	assert.Equal(t, 2, first.called)
	assert.Equal(t, 1, failing.called)
	assert.Equal(t, 1, last.called)
}

func TestLoadGenesis(t *testing.T) {
	dir, err := ioutil.TempDir("", "genesis-")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "genesis.json")
	content := `{
		"chain_id": "test-chain",
		"app_state": {
			"admins": {"admins": ["admin1"], "donation_denom": "cosmos"}
		}
	}`
	require.NoError(t, ioutil.WriteFile(path, []byte(content), 0600))

	gen, err := LoadGenesis(path)
	require.NoError(t, err)
	assert.Equal(t, "test-chain", gen.ChainID)
	assert.Contains(t, gen.AppState, "admins")

	_, err = LoadGenesis(filepath.Join(dir, "missing.json"))
	assert.True(t, errors.ErrInput.Is(err))

	require.NoError(t, ioutil.WriteFile(path, []byte("{"), 0600))
	_, err = LoadGenesis(path)
	assert.True(t, errors.ErrInput.Is(err))
}
