package spread

import (
	"github.com/iov-one/spread/coin"
	"github.com/iov-one/spread/errors"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/common"
)

// Payment is a single outgoing transfer instruction: move the given
// amount to the recipient. Payments are built by handlers and executed
// by the host platform. A payment is immutable once constructed and
// never retained by the engine after the call returns.
type Payment struct {
	Recipient Address
	Amount    coin.Coin
}

// NewPayment constructs a transfer instruction.
func NewPayment(recipient Address, amount coin.Coin) Payment {
	return Payment{
		Recipient: recipient.Clone(),
		Amount:    amount,
	}
}

// Validate returns an error if the payment cannot be executed by any
// host.
func (p Payment) Validate() error {
	if err := p.Recipient.Validate(); err != nil {
		return errors.Wrap(err, "recipient")
	}
	if err := p.Amount.Validate(); err != nil {
		return errors.Wrap(err, "amount")
	}
	if !p.Amount.IsPositive() {
		return errors.Wrap(errors.ErrAmount, "non-positive payment")
	}
	return nil
}

// CheckResult captures any non-error result of a check call.
type CheckResult struct {
	// Data is a machine-parseable return value, like the id of a
	// created entity.
	Data []byte
	// Log is a human-readable informational string.
	Log string
	// GasAllocated is the maximum units of work we allow this tx to
	// perform.
	GasAllocated int64
}

// DeliverResult captures any non-error result of a deliver call. Use
// the error return value for the error cases.
type DeliverResult struct {
	// Data is a machine-parseable return value, like the id of a
	// created entity.
	Data []byte
	// Log is a human-readable informational string.
	Log string
	// Payments is the ordered list of outgoing transfer instructions
	// the host must execute atomically with this call. When any of
	// them cannot be satisfied, the host rolls back the whole call.
	Payments []Payment
	// Tags, if present, will be used by tendermint to index and search
	// the transaction history.
	Tags []common.KVPair
	// GasUsed is currently unused field until effects in tendermint
	// are clear.
	GasUsed int64
}

// ActionTags returns the observability tags marking what operation was
// performed by a handler.
func ActionTags(action string) []common.KVPair {
	return []common.KVPair{
		{Key: []byte("action"), Value: []byte(action)},
	}
}

// ToABCI converts our internal result into an abci response.
func (d DeliverResult) ToABCI() abci.ResponseDeliverTx {
	return abci.ResponseDeliverTx{
		Data:    d.Data,
		Log:     d.Log,
		Tags:    d.Tags,
		GasUsed: d.GasUsed,
	}
}

// ToABCI converts our internal result into an abci response.
func (c CheckResult) ToABCI() abci.ResponseCheckTx {
	return abci.ResponseCheckTx{
		Data:      c.Data,
		Log:       c.Log,
		GasWanted: c.GasAllocated,
	}
}
