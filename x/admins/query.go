package admins

import (
	"github.com/iov-one/adminlist"
	"github.com/iov-one/adminlist/errors"
)

// Greeting is the constant message returned by the greet query.
const Greeting = "Hello World"

// RegisterQuery registers all admin list queries.
func RegisterQuery(qr adminlist.QueryRegistry) {
	h := NewQueryHandler()
	qr.Register(pathGreetQuery, h)
	qr.Register(pathAdminListQuery, h)
	qr.Register(pathConfigQuery, h)
}

// QueryHandler answers all read only requests of the contract.
type QueryHandler struct {
	registry Registry
}

var _ adminlist.QueryHandler = QueryHandler{}

// NewQueryHandler returns a handler reading the admins bucket.
func NewQueryHandler() QueryHandler {
	return QueryHandler{registry: NewRegistry()}
}

// Query dispatches the request to its implementation. Queries never modify
// the state.
func (h QueryHandler) Query(ctx adminlist.Context, db adminlist.ReadOnlyKVStore, msg adminlist.Msg) (interface{}, error) {
	q, ok := msg.(QueryMsg)
	if !ok {
		return nil, errors.WithType(errors.ErrMsg, msg)
	}

	switch q.(type) {
	case *GreetQuery:
		return GreetResponse{Message: Greeting}, nil
	case *AdminListQuery:
		list, err := h.registry.Load(db)
		if err != nil {
			return nil, err
		}
		return AdminListResponse{Admins: list.Strings()}, nil
	case *ConfigQuery:
		conf, err := loadConf(db)
		if err != nil {
			return nil, err
		}
		return ConfigResponse{DonationDenom: conf.DonationDenom}, nil
	default:
		return nil, errors.WithType(errors.ErrMsg, msg)
	}
}
