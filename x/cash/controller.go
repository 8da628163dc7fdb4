package cash

import (
	"github.com/iov-one/spread"
	"github.com/iov-one/spread/coin"
	"github.com/iov-one/spread/errors"
)

// Controller is the functionality needed by the host to settle
// payments. BaseController should work plenty fine, but you can
// add other logic if so desired
type Controller interface {
	// Balance returns the coins held by the account. Error is
	// returned when the account does not exist.
	Balance(spread.KVStore, spread.Address) (coin.Coins, error)
	MoveCoins(db spread.KVStore, src spread.Address, dest spread.Address, amount coin.Coin) error
	IssueCoins(db spread.KVStore, dest spread.Address, amount coin.Coin) error
}

// BaseController implements Controller using a wallet bucket as
// the backing store.
type BaseController struct {
	bucket Bucket
}

var _ Controller = BaseController{}

// NewController returns a base controller implementation.
func NewController(bucket Bucket) BaseController {
	return BaseController{bucket: bucket}
}

// Balance returns the amount of funds stored under given account address.
func (c BaseController) Balance(db spread.KVStore, src spread.Address) (coin.Coins, error) {
	wallet, err := c.bucket.Get(db, src)
	if err != nil {
		return nil, errors.Wrap(err, "cannot get wallet")
	}
	if wallet == nil {
		return nil, errors.Wrap(errors.ErrEmpty, "no wallet")
	}
	return wallet.Coins(), nil
}

// MoveCoins moves the given amount from src to dest.
// If src doesn't exist, or doesn't have sufficient
// coins, it fails.
func (c BaseController) MoveCoins(db spread.KVStore,
	src spread.Address, dest spread.Address, amount coin.Coin) error {

	if !amount.IsPositive() {
		return errors.Wrapf(errors.ErrAmount, "non-positive transfer: %#v", &amount)
	}

	sender, err := c.bucket.Get(db, src)
	if err != nil {
		return err
	}
	if sender == nil {
		return errors.Wrapf(errors.ErrEmpty, "empty account %s", src)
	}
	if !sender.Coins().Contains(amount) {
		return errors.Wrap(errors.ErrFunds, "funds in source")
	}

	recipient, err := c.bucket.GetOrCreate(db, dest)
	if err != nil {
		return err
	}
	if err := sender.Subtract(amount); err != nil {
		return err
	}
	if err := recipient.Add(amount); err != nil {
		return err
	}

	// save them and return
	if err := c.bucket.Save(db, sender); err != nil {
		return err
	}
	return c.bucket.Save(db, recipient)
}

// IssueCoins attempts to add the given amount of coins to
// the destination address. Fails if it overflows the wallet.
//
// Note the amount may also be negative:
// "the lord giveth and the lord taketh away"
func (c BaseController) IssueCoins(db spread.KVStore,
	dest spread.Address, amount coin.Coin) error {

	recipient, err := c.bucket.GetOrCreate(db, dest)
	if err != nil {
		return err
	}
	if err := recipient.Add(amount); err != nil {
		return err
	}
	return c.bucket.Save(db, recipient)
}
