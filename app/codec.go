package app

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/iov-one/adminlist"
	"github.com/iov-one/adminlist/errors"
)

// Codec decodes JSON envelopes into messages. An envelope is an object with
// a single key naming the message, for example
//
//   {"add_members": {"admins": ["alice"]}}
type Codec struct {
	kinds map[string]func() adminlist.Msg
}

var _ adminlist.MsgRegistry = (*Codec)(nil)

// NewCodec returns a codec with no messages registered.
func NewCodec() *Codec {
	return &Codec{kinds: make(map[string]func() adminlist.Msg)}
}

// Register declares a message under given envelope name. The function must
// return a pointer to a new, empty message instance. Registering the same
// name twice panics.
func (c *Codec) Register(name string, fn func() adminlist.Msg) {
	if _, ok := c.kinds[name]; ok {
		panic(fmt.Sprintf("message %q already registered", name))
	}
	c.kinds[name] = fn
}

// Decode parses an envelope into the registered message and validates it.
func (c *Codec) Decode(raw []byte) (adminlist.Msg, error) {
	var env map[string]json.RawMessage
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "envelope: %s", err)
	}
	if len(env) != 1 {
		return nil, errors.Wrapf(errors.ErrMsg, "envelope must contain exactly one message, got %d", len(env))
	}

	for name, body := range env {
		fn, ok := c.kinds[name]
		if !ok {
			return nil, errors.Wrapf(errors.ErrMsg, "unknown message %q", name)
		}
		msg := fn()
		if !isNull(body) {
			dec := json.NewDecoder(bytes.NewReader(body))
			dec.DisallowUnknownFields()
			if err := dec.Decode(msg); err != nil {
				return nil, errors.Wrapf(errors.ErrInput, "message %q: %s", name, err)
			}
		}
		if err := msg.Validate(); err != nil {
			return nil, errors.Wrapf(err, "message %q", name)
		}
		return msg, nil
	}
	panic("unreachable")
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
