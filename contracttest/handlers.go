package contracttest

import (
	"github.com/iov-one/adminlist"
)

// Handler is a mock implementation of the adminlist.Handler interface.
//
// Set Err to force an error response. Set Panic to make every call panic
// with that value. If Key is set, Key/Value pair is written to the store
// before returning the result.
type Handler struct {
	call int

	Result adminlist.Result
	Err    error
	Panic  interface{}

	Key   []byte
	Value []byte
}

var _ adminlist.Handler = (*Handler)(nil)

// Execute counts the call and returns the configured response.
func (h *Handler) Execute(ctx adminlist.Context, db adminlist.KVStore, msg adminlist.Msg) (*adminlist.Result, error) {
	h.call++
	if h.Panic != nil {
		panic(h.Panic)
	}
	if h.Key != nil {
		if err := db.Set(h.Key, h.Value); err != nil {
			return nil, err
		}
	}
	if h.Err != nil {
		return nil, h.Err
	}
	res := h.Result
	return &res, nil
}

// CallCount returns how many times this handler was executed.
func (h *Handler) CallCount() int {
	return h.call
}

// Decorator is a mock decorator. Set Err to force an error response before
// calling the wrapped handler. Each call is counted regardless of the
// result.
type Decorator struct {
	call int
	Err  error
}

// Execute counts the call and passes the message to the next handler.
func (d *Decorator) Execute(ctx adminlist.Context, db adminlist.KVStore, msg adminlist.Msg, next adminlist.Handler) (*adminlist.Result, error) {
	d.call++
	if d.Err != nil {
		return nil, d.Err
	}
	return next.Execute(ctx, db, msg)
}

// CallCount returns how many times this decorator was executed.
func (d *Decorator) CallCount() int {
	return d.call
}

// Msg is a mock message routed to RoutePath. Validate returns Err.
type Msg struct {
	RoutePath string `json:"path,omitempty"`
	Err       error  `json:"-"`
}

var _ adminlist.Msg = (*Msg)(nil)

// Path returns the configured route.
func (m *Msg) Path() string {
	return m.RoutePath
}

// Validate returns the configured error.
func (m *Msg) Validate() error {
	return m.Err
}
