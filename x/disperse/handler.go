package disperse

import (
	"github.com/iov-one/spread"
	"github.com/iov-one/spread/coin"
	"github.com/iov-one/spread/errors"
	"github.com/iov-one/spread/gconf"
	"github.com/iov-one/spread/x"
)

const (
	tagDisperse      = "disperse"
	tagWithdrawFunds = "withdraw_funds"
	tagUpdateAdmin   = "update_admin"
)

// RegisterRoutes registers handlers for disperse message processing.
func RegisterRoutes(r spread.Registry, auth x.Authenticator) {
	r.Handle(&DisperseMsg{}, &disperseHandler{auth: auth})
	r.Handle(&DisperseSameValueMsg{}, &disperseSameValueHandler{auth: auth})
	r.Handle(&WithdrawFundsMsg{}, &withdrawFundsHandler{auth: auth})
	r.Handle(&UpdateAdminMsg{}, &updateAdminHandler{auth: auth})
}

// singleFund returns the one coin the call operates on. A
// disbursement call must attach exactly one non-empty denomination.
func singleFund(funds coin.Coins) (coin.Coin, error) {
	switch len(funds) {
	case 0:
		return coin.Coin{}, errors.Wrap(errors.ErrInput, "no funds attached")
	case 1:
		c := funds[0]
		if coin.IsEmpty(c) {
			return coin.Coin{}, errors.Wrap(errors.ErrInput, "empty fund attached")
		}
		if err := c.Validate(); err != nil {
			return coin.Coin{}, errors.Wrap(err, "attached fund")
		}
		return *c, nil
	default:
		return coin.Coin{}, errors.Wrapf(errors.ErrInput,
			"%d denominations attached, want one", len(funds))
	}
}

// splitFunds builds one payment per account and a trailing refund of
// whatever is left. It fails before producing anything when the
// requested total cannot be represented or is not covered by the fund.
func splitFunds(caller spread.Address, fund coin.Coin, accounts []spread.Address, amounts []int64) ([]spread.Payment, error) {
	total := coin.NewCoin(0, fund.Ticker)
	payments := make([]spread.Payment, 0, len(accounts)+1)
	for i, acct := range accounts {
		c := coin.NewCoin(amounts[i], fund.Ticker)
		var err error
		total, err = total.Add(c)
		if err != nil {
			return nil, errors.Wrap(err, "amounts total")
		}
		payments = append(payments, spread.NewPayment(acct, c))
	}

	remaining, err := fund.Subtract(total)
	if err != nil {
		return nil, errors.Wrap(err, "remaining funds")
	}
	if !remaining.IsNonNegative() {
		return nil, errors.Wrapf(errors.ErrFunds,
			"requested %s but only %s attached", total, fund)
	}
	if remaining.IsPositive() {
		payments = append(payments, spread.NewPayment(caller, remaining))
	}
	return payments, nil
}

// caller returns the identity that signed the call. The refund
// recipient is always the caller, so an unsigned call cannot be
// dispersed.
func caller(ctx spread.Context, auth x.Authenticator) (spread.Address, error) {
	signer := x.MainSigner(ctx, auth)
	if signer == nil {
		return nil, errors.Wrap(errors.ErrUnauthorized, "no signer")
	}
	return signer.Address(), nil
}

// authorizeAdmin succeeds only when the stored admin signed the call.
func authorizeAdmin(ctx spread.Context, auth x.Authenticator, db gconf.ReadStore) error {
	conf, err := loadConf(db)
	if err != nil {
		return err
	}
	if !auth.HasAddress(ctx, conf.Admin) {
		return errors.Wrap(errors.ErrUnauthorized, "not the admin")
	}
	return nil
}

// --- Disperse

type disperseHandler struct {
	auth x.Authenticator
}

var _ spread.Handler = (*disperseHandler)(nil)

func (h *disperseHandler) Check(ctx spread.Context, db spread.KVStore, tx spread.Tx) (*spread.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &spread.CheckResult{}, nil
}

func (h *disperseHandler) Deliver(ctx spread.Context, db spread.KVStore, tx spread.Tx) (*spread.DeliverResult, error) {
	payments, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	return &spread.DeliverResult{
		Payments: payments,
		Tags:     spread.ActionTags(tagDisperse),
	}, nil
}

func (h *disperseHandler) validate(ctx spread.Context, db spread.KVStore, tx spread.Tx) ([]spread.Payment, error) {
	var msg DisperseMsg
	if err := spread.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	src, err := caller(ctx, h.auth)
	if err != nil {
		return nil, err
	}
	fund, err := singleFund(spread.AttachedFunds(tx))
	if err != nil {
		return nil, err
	}
	return splitFunds(src, fund, msg.Accounts, msg.Amounts)
}

// --- DisperseSameValue

type disperseSameValueHandler struct {
	auth x.Authenticator
}

var _ spread.Handler = (*disperseSameValueHandler)(nil)

func (h *disperseSameValueHandler) Check(ctx spread.Context, db spread.KVStore, tx spread.Tx) (*spread.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &spread.CheckResult{}, nil
}

func (h *disperseSameValueHandler) Deliver(ctx spread.Context, db spread.KVStore, tx spread.Tx) (*spread.DeliverResult, error) {
	payments, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	return &spread.DeliverResult{
		Payments: payments,
		Tags:     spread.ActionTags(tagDisperse),
	}, nil
}

func (h *disperseSameValueHandler) validate(ctx spread.Context, db spread.KVStore, tx spread.Tx) ([]spread.Payment, error) {
	var msg DisperseSameValueMsg
	if err := spread.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	src, err := caller(ctx, h.auth)
	if err != nil {
		return nil, err
	}
	fund, err := singleFund(spread.AttachedFunds(tx))
	if err != nil {
		return nil, err
	}
	amounts := make([]int64, len(msg.Accounts))
	for i := range amounts {
		amounts[i] = msg.Amount
	}
	return splitFunds(src, fund, msg.Accounts, amounts)
}

// --- WithdrawFunds

type withdrawFundsHandler struct {
	auth x.Authenticator
}

var _ spread.Handler = (*withdrawFundsHandler)(nil)

func (h *withdrawFundsHandler) Check(ctx spread.Context, db spread.KVStore, tx spread.Tx) (*spread.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &spread.CheckResult{}, nil
}

func (h *withdrawFundsHandler) Deliver(ctx spread.Context, db spread.KVStore, tx spread.Tx) (*spread.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	// The exact requested amounts are paid out of the custody, in
	// input order. Whether the custody can cover them is decided by
	// the host when it executes the payments.
	payments := make([]spread.Payment, 0, len(msg.Accounts))
	for i, acct := range msg.Accounts {
		payments = append(payments, spread.NewPayment(acct, *msg.Amounts[i]))
	}
	return &spread.DeliverResult{
		Payments: payments,
		Tags:     spread.ActionTags(tagWithdrawFunds),
	}, nil
}

func (h *withdrawFundsHandler) validate(ctx spread.Context, db spread.KVStore, tx spread.Tx) (*WithdrawFundsMsg, error) {
	var msg WithdrawFundsMsg
	if err := spread.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := authorizeAdmin(ctx, h.auth, db); err != nil {
		return nil, err
	}
	return &msg, nil
}

// --- UpdateAdmin

type updateAdminHandler struct {
	auth x.Authenticator
}

var _ spread.Handler = (*updateAdminHandler)(nil)

func (h *updateAdminHandler) Check(ctx spread.Context, db spread.KVStore, tx spread.Tx) (*spread.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &spread.CheckResult{}, nil
}

func (h *updateAdminHandler) Deliver(ctx spread.Context, db spread.KVStore, tx spread.Tx) (*spread.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := saveConf(db, &Configuration{Admin: msg.NewAdmin}); err != nil {
		return nil, errors.Wrap(err, "save configuration")
	}
	return &spread.DeliverResult{
		Tags: spread.ActionTags(tagUpdateAdmin),
	}, nil
}

func (h *updateAdminHandler) validate(ctx spread.Context, db spread.KVStore, tx spread.Tx) (*UpdateAdminMsg, error) {
	var msg UpdateAdminMsg
	if err := spread.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := authorizeAdmin(ctx, h.auth, db); err != nil {
		return nil, err
	}
	return &msg, nil
}
