package admins

import (
	"strconv"

	"github.com/iov-one/adminlist"
	"github.com/iov-one/adminlist/coin"
	"github.com/iov-one/adminlist/errors"
)

const (
	eventAdminAdded   = "admin_added"
	eventDonationPaid = "donation_paid"
)

// RegisterRoutes registers handlers for all admin list messages.
func RegisterRoutes(r adminlist.Registry, validator adminlist.AddressValidator, ctrl CashController) {
	h := NewHandler(validator, ctrl)
	r.Handle(pathAddMembersMsg, h)
	r.Handle(pathLeaveMsg, h)
	r.Handle(pathDonateMsg, h)
}

// Handler processes all messages that change the admin list contract.
type Handler struct {
	registry  Registry
	validator adminlist.AddressValidator
	ctrl      CashController
}

var _ adminlist.Handler = Handler{}

// NewHandler returns a handler that validates new admin addresses with
// given validator and pays donations using given controller.
func NewHandler(validator adminlist.AddressValidator, ctrl CashController) Handler {
	return Handler{
		registry:  NewRegistry(),
		validator: validator,
		ctrl:      ctrl,
	}
}

// Execute dispatches the message to its implementation.
func (h Handler) Execute(ctx adminlist.Context, db adminlist.KVStore, msg adminlist.Msg) (*adminlist.Result, error) {
	m, ok := msg.(ExecuteMsg)
	if !ok {
		return nil, errors.WithType(errors.ErrMsg, msg)
	}
	caller, ok := adminlist.GetCaller(ctx)
	if !ok {
		return nil, errors.Wrap(errors.ErrUnauthorized, "missing caller")
	}

	switch m := m.(type) {
	case *AddMembersMsg:
		return h.addMembers(db, caller, m)
	case *LeaveMsg:
		return h.leave(db, caller)
	case *DonateMsg:
		return h.donate(ctx, db)
	default:
		return nil, errors.WithType(errors.ErrMsg, msg)
	}
}

func (h Handler) addMembers(db adminlist.KVStore, caller adminlist.Address, msg *AddMembersMsg) (*adminlist.Result, error) {
	list, err := h.registry.Load(db)
	if err != nil {
		return nil, err
	}
	if !IsAuthorized(list, caller) {
		return nil, errors.Wrapf(errors.ErrUnauthorized, "sender %s", caller)
	}

	added, err := validateAddresses(h.validator, msg.Admins)
	if err != nil {
		return nil, err
	}
	for _, a := range added {
		if list.Contains(a) {
			return nil, errors.Wrapf(ErrAdminAlreadyExists, "admin %s", a)
		}
	}

	updated := &AdminList{Admins: append(list.Admins[:len(list.Admins):len(list.Admins)], added...)}
	if err := h.registry.Store(db, updated); err != nil {
		return nil, errors.Wrap(err, "cannot save registry")
	}

	res := &adminlist.Result{}
	res.AddAttribute("action", "add_members")
	res.AddAttribute("added_count", strconv.Itoa(len(added)))
	for _, a := range added {
		res.AddEvent(eventAdminAdded, "addr", a.String())
	}
	return res, nil
}

func (h Handler) leave(db adminlist.KVStore, caller adminlist.Address) (*adminlist.Result, error) {
	list, err := h.registry.Load(db)
	if err != nil {
		return nil, err
	}
	if err := h.registry.Store(db, list.Remove(caller)); err != nil {
		return nil, errors.Wrap(err, "cannot save registry")
	}

	res := &adminlist.Result{}
	res.AddAttribute("action", "leave")
	res.AddAttribute("sender", caller.String())
	return res, nil
}

func (h Handler) donate(ctx adminlist.Context, db adminlist.KVStore) (*adminlist.Result, error) {
	list, err := h.registry.Load(db)
	if err != nil {
		return nil, err
	}
	if len(list.Admins) == 0 {
		return nil, errors.Wrap(ErrNoRecipients, "empty admin registry")
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	contract, ok := adminlist.GetContractAddress(ctx)
	if !ok {
		return nil, errors.Wrap(errors.ErrState, "missing contract address")
	}

	funds := adminlist.GetFunds(ctx)
	donation := coin.NewCoin(conf.DonationDenom, funds.AmountOf(conf.DonationDenom))
	split, err := SplitDonation(donation, list.Admins)
	if err != nil {
		return nil, err
	}
	if err := distribute(db, h.ctrl, contract, split); err != nil {
		return nil, errors.Wrap(err, "cannot distribute donation")
	}
	adminlist.GetLogger(ctx).Debug("donation distributed",
		"donation", split.Donation.String(),
		"recipients", len(split.Payouts))

	res := &adminlist.Result{}
	res.AddAttribute("action", "donate")
	res.AddAttribute("donation", split.Donation.String())
	res.AddAttribute("share", split.Share.String())
	res.AddAttribute("remainder", split.Remainder.String())
	for _, p := range split.Payouts {
		res.AddEvent(eventDonationPaid, "addr", p.Admin.String(), "amount", p.Amount.String())
	}
	return res, nil
}

// validateAddresses converts all raw addresses using the validator. All
// addresses are checked and every failure is reported. An address listed
// more than once is rejected.
func validateAddresses(validator adminlist.AddressValidator, raw []string) ([]adminlist.Address, error) {
	var errs error
	res := make([]adminlist.Address, 0, len(raw))
	for i, r := range raw {
		addr, err := validator.ValidateAddress(r)
		if err != nil {
			errs = errors.AppendField(errs, adminField(i), err)
			continue
		}
		res = append(res, addr)
	}
	if errs != nil {
		return nil, errs
	}

	seen := make(map[adminlist.Address]struct{}, len(res))
	for _, a := range res {
		if _, ok := seen[a]; ok {
			return nil, errors.Wrapf(ErrAdminAlreadyExists, "admin %s listed twice", a)
		}
		seen[a] = struct{}{}
	}
	return res, nil
}

func adminField(index int) string {
	return "Admins." + strconv.Itoa(index)
}
