package adminlist

import (
	"encoding/json"

	"github.com/iov-one/adminlist/errors"
	"github.com/tendermint/tendermint/libs/common"
)

// Msg is an action requested from a contract. Every concrete message is
// routed by its path, and must be able to validate its own content.
type Msg interface {
	// Path returns the path of the handler that can process this message.
	Path() string

	// Validate performs a sanity check of the message content. It does
	// not read the state.
	Validate() error
}

// Handler is a core engine that can process a few specific messages.
// This could represent "add admins" or "donate funds".
//
// All changes done to the store are written only if no error is returned.
type Handler interface {
	Execute(ctx Context, store KVStore, msg Msg) (*Result, error)
}

// HandlerFunc allows to use a function as a Handler.
type HandlerFunc func(ctx Context, store KVStore, msg Msg) (*Result, error)

// Execute calls the wrapped function.
func (fn HandlerFunc) Execute(ctx Context, store KVStore, msg Msg) (*Result, error) {
	return fn(ctx, store, msg)
}

// QueryHandler answers a read only question about the state. The returned
// value must be JSON serializable.
type QueryHandler interface {
	Query(ctx Context, store ReadOnlyKVStore, msg Msg) (interface{}, error)
}

// QueryHandlerFunc allows to use a function as a QueryHandler.
type QueryHandlerFunc func(ctx Context, store ReadOnlyKVStore, msg Msg) (interface{}, error)

// Query calls the wrapped function.
func (fn QueryHandlerFunc) Query(ctx Context, store ReadOnlyKVStore, msg Msg) (interface{}, error) {
	return fn(ctx, store, msg)
}

// Registry is an interface to register your handler,
// the setup side of a Router
type Registry interface {
	Handle(path string, h Handler)
}

// QueryRegistry is the setup side of a query router.
type QueryRegistry interface {
	Register(path string, h QueryHandler)
}

// MsgRegistry is used to declare how a message envelope key maps to a
// concrete Msg implementation.
type MsgRegistry interface {
	Register(name string, fn func() Msg)
}

// Result is the outcome of a successful execution.
//
// Attributes are key/value pairs attached to the whole call, while Events
// carry structured notifications, each with its own attributes.
type Result struct {
	// Data is a machine readable result, may be empty
	Data []byte
	// Log is a human readable message, may be empty
	Log string
	// Attributes describe the call as a whole
	Attributes []common.KVPair
	// Events are emitted in the order they happened
	Events []Event
}

// Event is a typed notification emitted during an execution.
type Event struct {
	Type       string
	Attributes []common.KVPair
}

// NewAttribute returns a key value pair built from strings.
func NewAttribute(key, value string) common.KVPair {
	return common.KVPair{Key: []byte(key), Value: []byte(value)}
}

// AddAttribute appends a key value pair to the result attributes.
func (r *Result) AddAttribute(key, value string) {
	r.Attributes = append(r.Attributes, NewAttribute(key, value))
}

// AddEvent appends an event with given attributes. Attributes must be
// provided as key, value pairs.
func (r *Result) AddEvent(kind string, keyvals ...string) {
	if len(keyvals)%2 != 0 {
		panic("event attributes must be key value pairs")
	}
	ev := Event{Type: kind}
	for i := 0; i < len(keyvals); i += 2 {
		ev.Attributes = append(ev.Attributes, NewAttribute(keyvals[i], keyvals[i+1]))
	}
	r.Events = append(r.Events, ev)
}

// Attribute returns the value of the first attribute with given key.
func (r *Result) Attribute(key string) (string, bool) {
	for _, a := range r.Attributes {
		if string(a.Key) == key {
			return string(a.Value), true
		}
	}
	return "", false
}

// Options are the app options
// Each extension can look up it's key and parse the json as desired
type Options map[string]json.RawMessage

// ReadOptions reads the values stored under a given key,
// and parses the json into the given obj.
// Returns an error if it cannot parse.
// Noop and no error if key is missing
func (o Options) ReadOptions(key string, obj interface{}) error {
	msg := o[key]
	if len(msg) == 0 {
		return nil
	}
	if err := json.Unmarshal(msg, obj); err != nil {
		return errors.Wrapf(errors.ErrInput, "genesis %q: %s", key, err)
	}
	return nil
}

// Initializer implementations are used to initialize
// extensions from genesis file contents
type Initializer interface {
	FromGenesis(Options, KVStore) error
}
