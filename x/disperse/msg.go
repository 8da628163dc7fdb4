package disperse

import (
	"github.com/iov-one/spread"
	"github.com/iov-one/spread/coin"
	"github.com/iov-one/spread/errors"
)

const (
	pathDisperseMsg          = "disperse/disperse"
	pathDisperseSameValueMsg = "disperse/samevalue"
	pathWithdrawFundsMsg     = "disperse/withdraw"
	pathUpdateAdminMsg       = "disperse/updateadmin"
)

var _ spread.Msg = (*DisperseMsg)(nil)
var _ spread.Msg = (*DisperseSameValueMsg)(nil)
var _ spread.Msg = (*WithdrawFundsMsg)(nil)
var _ spread.Msg = (*UpdateAdminMsg)(nil)

// Path implements spread.Msg interface.
func (DisperseMsg) Path() string {
	return pathDisperseMsg
}

// Validate implements spread.Msg interface.
func (m *DisperseMsg) Validate() error {
	if len(m.Accounts) != len(m.Amounts) {
		return errors.Wrapf(errors.ErrInput,
			"got %d accounts but %d amounts", len(m.Accounts), len(m.Amounts))
	}
	for i, a := range m.Accounts {
		if err := a.Validate(); err != nil {
			return errors.Wrapf(err, "account #%d", i)
		}
	}
	for i, amount := range m.Amounts {
		if amount <= 0 {
			return errors.Wrapf(errors.ErrAmount, "amount #%d must be positive", i)
		}
	}
	return nil
}

// Path implements spread.Msg interface.
func (DisperseSameValueMsg) Path() string {
	return pathDisperseSameValueMsg
}

// Validate implements spread.Msg interface.
func (m *DisperseSameValueMsg) Validate() error {
	for i, a := range m.Accounts {
		if err := a.Validate(); err != nil {
			return errors.Wrapf(err, "account #%d", i)
		}
	}
	if m.Amount <= 0 {
		return errors.Wrap(errors.ErrAmount, "amount must be positive")
	}
	return nil
}

// Path implements spread.Msg interface.
func (WithdrawFundsMsg) Path() string {
	return pathWithdrawFundsMsg
}

// Validate implements spread.Msg interface.
func (m *WithdrawFundsMsg) Validate() error {
	if len(m.Accounts) != len(m.Amounts) {
		return errors.Wrapf(errors.ErrInput,
			"got %d accounts but %d amounts", len(m.Accounts), len(m.Amounts))
	}
	for i, a := range m.Accounts {
		if err := a.Validate(); err != nil {
			return errors.Wrapf(err, "account #%d", i)
		}
	}
	for i, amount := range m.Amounts {
		if coin.IsEmpty(amount) {
			return errors.Wrapf(errors.ErrAmount, "amount #%d is empty", i)
		}
		if err := amount.Validate(); err != nil {
			return errors.Wrapf(err, "amount #%d", i)
		}
		if !amount.IsPositive() {
			return errors.Wrapf(errors.ErrAmount, "amount #%d must be positive", i)
		}
	}
	return nil
}

// Path implements spread.Msg interface.
func (UpdateAdminMsg) Path() string {
	return pathUpdateAdminMsg
}

// Validate implements spread.Msg interface.
func (m *UpdateAdminMsg) Validate() error {
	if err := m.NewAdmin.Validate(); err != nil {
		return errors.Wrap(err, "new admin")
	}
	return nil
}
