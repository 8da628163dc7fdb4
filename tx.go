package spread

import (
	"reflect"

	"github.com/iov-one/spread/coin"
	"github.com/iov-one/spread/errors"
)

// Msg is a request for the engine to take an action (make a state
// transition or produce payments). It is just the request and must be
// validated by the handlers. All authentication information is in the
// wrapping Tx.
type Msg interface {
	Persistent

	// Validate returns an error if the message is in an invalid state
	// and can never be processed.
	Validate() error

	// Path returns the routing path for this message, used by the
	// Router to locate the proper Handler. Must be alphanumeric
	// [0-9A-Za-z_\-/]+
	Path() string
}

// Marshaller is anything that can be represented in binary.
//
// Marshal may validate the data before serializing it and unless you
// previously validated the struct, errors should be expected.
type Marshaller interface {
	Marshal() ([]byte, error)
}

// Persistent supports Marshal and Unmarshal.
//
// This is separated from Marshaller, as Unmarshal almost always requires
// a pointer, and functions that only need to marshal bytes can use the
// Marshaller interface to accept non-pointers.
type Persistent interface {
	Marshaller
	Unmarshal([]byte) error
}

// Tx represents the data sent from the user to the engine. It includes
// the actual message, along with information needed to authenticate the
// sender, and anything else needed to pass through middleware.
type Tx interface {
	Persistent

	// GetMsg returns the action we wish to communicate.
	GetMsg() (Msg, error)
}

// FundsTx is implemented by transactions that carry funds attached to
// the call. The disbursement operations require a funded call as the
// source of the value being split.
type FundsTx interface {
	Tx

	// GetFunds returns the coins attached to this call.
	GetFunds() coin.Coins
}

// TxDecoder parses raw transaction bytes into a transaction.
type TxDecoder func(txBytes []byte) (Tx, error)

// GetPath returns the path of the message, or (missing) if no message.
func GetPath(tx Tx) string {
	msg, err := tx.GetMsg()
	if err == nil && msg != nil {
		return msg.Path()
	}
	return "(missing)"
}

// LoadMsg extracts the message from the transaction, ensures its
// validity and loads it into the destination.
func LoadMsg(tx Tx, destination Msg) error {
	msg, err := tx.GetMsg()
	if err != nil {
		return errors.Wrap(err, "cannot get message")
	}
	if err := msg.Validate(); err != nil {
		return errors.Wrap(err, "invalid message")
	}

	dst := reflect.ValueOf(destination)
	if dst.Kind() != reflect.Ptr {
		return errors.Wrap(errors.ErrType, "destination must be a pointer")
	}
	val := reflect.ValueOf(msg)
	if val.Kind() != reflect.Ptr {
		return errors.Wrap(errors.ErrType, "message must be a pointer")
	}
	if dst.Type() != val.Type() {
		return errors.Wrapf(errors.ErrType, "want %T, got %T", destination, msg)
	}
	dst.Elem().Set(val.Elem())
	return nil
}

// AttachedFunds returns the funds carried by the transaction. It is nil
// when the transaction does not support attached funds or none were
// provided.
func AttachedFunds(tx Tx) coin.Coins {
	ftx, ok := tx.(FundsTx)
	if !ok {
		return nil
	}
	return ftx.GetFunds()
}
