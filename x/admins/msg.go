package admins

import (
	"github.com/iov-one/adminlist"
	"github.com/iov-one/adminlist/coin"
	"github.com/iov-one/adminlist/errors"
)

const (
	pathAddMembersMsg = "admins/add_members"
	pathLeaveMsg      = "admins/leave"
	pathDonateMsg     = "admins/donate"

	pathGreetQuery     = "admins/greet"
	pathAdminListQuery = "admins/admin_list"
	pathConfigQuery    = "admins/config"
)

// ExecuteMsg is implemented by every message that mutates the contract
// state. The set of implementations is closed.
type ExecuteMsg interface {
	adminlist.Msg
	executeMsg()
}

// QueryMsg is implemented by every read only request. The set of
// implementations is closed.
type QueryMsg interface {
	adminlist.Msg
	queryMsg()
}

// AddMembersMsg appends new admins to the registry. Only an existing admin
// can send it.
type AddMembersMsg struct {
	Admins []string `json:"admins"`
}

var _ ExecuteMsg = (*AddMembersMsg)(nil)

func (AddMembersMsg) executeMsg() {}

// Path returns the routing path for this message.
func (AddMembersMsg) Path() string {
	return pathAddMembersMsg
}

// Validate always succeeds. Addresses are checked by the handler, once the
// sender is known to be allowed to add them.
func (AddMembersMsg) Validate() error {
	return nil
}

// LeaveMsg removes the sender from the registry.
type LeaveMsg struct{}

var _ ExecuteMsg = (*LeaveMsg)(nil)

func (LeaveMsg) executeMsg() {}

// Path returns the routing path for this message.
func (LeaveMsg) Path() string {
	return pathLeaveMsg
}

// Validate always succeeds.
func (LeaveMsg) Validate() error {
	return nil
}

// DonateMsg splits the attached funds of the donation denomination between
// all admins.
type DonateMsg struct{}

var _ ExecuteMsg = (*DonateMsg)(nil)

func (DonateMsg) executeMsg() {}

// Path returns the routing path for this message.
func (DonateMsg) Path() string {
	return pathDonateMsg
}

// Validate always succeeds.
func (DonateMsg) Validate() error {
	return nil
}

// GreetQuery returns a constant greeting.
type GreetQuery struct{}

var _ QueryMsg = (*GreetQuery)(nil)

func (GreetQuery) queryMsg() {}

// Path returns the routing path for this query.
func (GreetQuery) Path() string {
	return pathGreetQuery
}

// Validate always succeeds.
func (GreetQuery) Validate() error {
	return nil
}

// AdminListQuery returns the registry in insertion order.
type AdminListQuery struct{}

var _ QueryMsg = (*AdminListQuery)(nil)

func (AdminListQuery) queryMsg() {}

// Path returns the routing path for this query.
func (AdminListQuery) Path() string {
	return pathAdminListQuery
}

// Validate always succeeds.
func (AdminListQuery) Validate() error {
	return nil
}

// ConfigQuery returns the contract configuration.
type ConfigQuery struct{}

var _ QueryMsg = (*ConfigQuery)(nil)

func (ConfigQuery) queryMsg() {}

// Path returns the routing path for this query.
func (ConfigQuery) Path() string {
	return pathConfigQuery
}

// Validate always succeeds.
func (ConfigQuery) Validate() error {
	return nil
}

// GreetResponse is returned for GreetQuery.
type GreetResponse struct {
	Message string `json:"message"`
}

// AdminListResponse is returned for AdminListQuery.
type AdminListResponse struct {
	Admins []string `json:"admins"`
}

// ConfigResponse is returned for ConfigQuery.
type ConfigResponse struct {
	DonationDenom string `json:"donation_denom"`
}

// InstantiateMsg creates the contract. It can be used only once.
type InstantiateMsg struct {
	Admins        []string `json:"admins"`
	DonationDenom string   `json:"donation_denom"`
}

// Validate checks the denomination. Addresses are checked during
// instantiation, using the host address rule.
func (m InstantiateMsg) Validate() error {
	if !coin.IsDenom(m.DonationDenom) {
		return errors.Field("DonationDenom", errors.ErrCurrency, "invalid denomination %q", m.DonationDenom)
	}
	return nil
}

// RegisterCodec declares all messages and queries of this package under
// their envelope names.
func RegisterCodec(r adminlist.MsgRegistry) {
	r.Register("add_members", func() adminlist.Msg { return &AddMembersMsg{} })
	r.Register("leave", func() adminlist.Msg { return &LeaveMsg{} })
	r.Register("donate", func() adminlist.Msg { return &DonateMsg{} })
}

// RegisterQueryCodec declares all queries of this package under their
// envelope names.
func RegisterQueryCodec(r adminlist.MsgRegistry) {
	r.Register("greet", func() adminlist.Msg { return &GreetQuery{} })
	r.Register("admin_list", func() adminlist.Msg { return &AdminListQuery{} })
	r.Register("config", func() adminlist.Msg { return &ConfigQuery{} })
}
