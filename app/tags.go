package app

import (
	"github.com/iov-one/adminlist"
	"github.com/tendermint/tendermint/libs/common"
)

// Tags flattens result attributes and events into a single list of ABCI
// tags. Call attributes are copied as they are, event attributes are
// prefixed with the event type, for example "admin_added.addr".
func Tags(res *adminlist.Result) []common.KVPair {
	if res == nil {
		return nil
	}
	tags := make([]common.KVPair, 0, len(res.Attributes))
	tags = append(tags, res.Attributes...)
	for _, ev := range res.Events {
		for _, a := range ev.Attributes {
			key := make([]byte, 0, len(ev.Type)+1+len(a.Key))
			key = append(key, ev.Type...)
			key = append(key, '.')
			key = append(key, a.Key...)
			tags = append(tags, common.KVPair{Key: key, Value: a.Value})
		}
	}
	return tags
}
