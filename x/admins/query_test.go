package admins

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/iov-one/adminlist/contracttest/assert"
	"github.com/iov-one/adminlist/errors"
	"github.com/iov-one/adminlist/store"
)

func TestQueries(t *testing.T) {
	cases := map[string]struct {
		Admins   []string
		Query    QueryMsg
		WantJSON string
	}{
		"greet": {
			Query:    &GreetQuery{},
			WantJSON: `{"message":"Hello World"}`,
		},
		"empty admin list is not null": {
			Query:    &AdminListQuery{},
			WantJSON: `{"admins":[]}`,
		},
		"admin list keeps insertion order": {
			Admins:   []string{"admin1", "admin2"},
			Query:    &AdminListQuery{},
			WantJSON: `{"admins":["admin1","admin2"]}`,
		},
		"config": {
			Query:    &ConfigQuery{},
			WantJSON: `{"donation_denom":"cosmos"}`,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			instantiate(t, db, "cosmos", tc.Admins...)

			res, err := NewQueryHandler().Query(context.Background(), db, tc.Query)
			assert.Nil(t, err)
			raw, err := json.Marshal(res)
			assert.Nil(t, err)
			assert.Equal(t, tc.WantJSON, string(raw))
		})
	}
}

func TestGreetNeedsNoState(t *testing.T) {
	res, err := NewQueryHandler().Query(context.Background(), store.MemStore(), &GreetQuery{})
	assert.Nil(t, err)
	assert.Equal(t, GreetResponse{Message: "Hello World"}, res)
}

func TestQueryBeforeInstantiate(t *testing.T) {
	db := store.MemStore()
	h := NewQueryHandler()

	_, err := h.Query(context.Background(), db, &AdminListQuery{})
	assert.IsErr(t, errors.ErrNotFound, err)
	_, err = h.Query(context.Background(), db, &ConfigQuery{})
	assert.IsErr(t, errors.ErrNotFound, err)
}

func TestQueryRejectsMessages(t *testing.T) {
	_, err := NewQueryHandler().Query(context.Background(), store.MemStore(), &LeaveMsg{})
	assert.IsErr(t, errors.ErrMsg, err)
}
