package spreadtest

import (
	"github.com/iov-one/spread"
	"github.com/iov-one/spread/coin"
)

// Tx represents a transaction carrying a single message and
// optionally attached funds.
type Tx struct {
	// Msg is the message that is to be processed by this transaction.
	Msg spread.Msg
	// Funds are the coins attached to this transaction. They are
	// placed in the custody of the processing contract.
	Funds coin.Coins
	// Err if set is returned by any method call.
	Err error
}

var _ spread.Tx = (*Tx)(nil)
var _ spread.FundsTx = (*Tx)(nil)

func (tx *Tx) GetMsg() (spread.Msg, error) {
	return tx.Msg, tx.Err
}

func (tx *Tx) GetFunds() coin.Coins {
	return tx.Funds
}

func (tx *Tx) Unmarshal([]byte) error {
	panic("not implemented")
}

func (tx *Tx) Marshal() ([]byte, error) {
	panic("not implemented")
}

// Msg is a mock message with a configurable routing path.
type Msg struct {
	// Path returned by the path method, consumed by the router.
	RoutePath string
	// Serialized represents the serialized form of this message.
	Serialized []byte
	// Err if set is returned by any method call.
	Err error
}

var _ spread.Msg = (*Msg)(nil)

func (m *Msg) Path() string {
	return m.RoutePath
}

func (m *Msg) Validate() error {
	return m.Err
}

func (m *Msg) Unmarshal(b []byte) error {
	m.Serialized = b
	return m.Err
}

func (m *Msg) Marshal() ([]byte, error) {
	return m.Serialized, m.Err
}
