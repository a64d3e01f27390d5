package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tendermint/tendermint/libs/common"

	"github.com/iov-one/adminlist"
)

func TestTags(t *testing.T) {
	assert.Nil(t, Tags(nil))

	res := &adminlist.Result{}
	res.AddAttribute("action", "add_members")
	res.AddAttribute("added_count", "2")
	res.AddEvent("admin_added", "addr", "alice")
	res.AddEvent("admin_added", "addr", "bob")

	want := []common.KVPair{
		{Key: []byte("action"), Value: []byte("add_members")},
		{Key: []byte("added_count"), Value: []byte("2")},
		{Key: []byte("admin_added.addr"), Value: []byte("alice")},
		{Key: []byte("admin_added.addr"), Value: []byte("bob")},
	}
	assert.Equal(t, want, Tags(res))
}
