package spread

import (
	"encoding/json"
)

// Handler is a core engine that can process a few specific messages.
// This could represent "split an inbound payment" or "withdraw custody
// funds".
type Handler interface {
	Checker
	Deliverer
}

// Checker is a subset of Handler to verify the validity of a
// transaction. It is its own interface to allow better type control in
// the next arguments in Decorator.
type Checker interface {
	Check(ctx Context, store KVStore, tx Tx) (*CheckResult, error)
}

// Deliverer is a subset of Handler to execute a transaction.
type Deliverer interface {
	Deliver(ctx Context, store KVStore, tx Tx) (*DeliverResult, error)
}

// Decorator wraps a Handler to provide common functionality like
// authentication or panic recovery to many Handlers.
type Decorator interface {
	Check(ctx Context, store KVStore, tx Tx, next Checker) (*CheckResult, error)
	Deliver(ctx Context, store KVStore, tx Tx, next Deliverer) (*DeliverResult, error)
}

// Registry is an interface to register your handler,
// the setup side of a Router.
type Registry interface {
	Handle(Msg, Handler)
}

// Options are the genesis options. Each extension can look up its key
// and parse the json as desired.
type Options map[string]json.RawMessage

// ReadOptions reads the value stored under a given key and parses the
// json into the given obj. Returns an error if it cannot parse. Noop and
// no error if the key is missing.
func (o Options) ReadOptions(key string, obj interface{}) error {
	msg := o[key]
	if len(msg) == 0 {
		return nil
	}
	return json.Unmarshal(msg, obj)
}

// Initializer implementations are used to initialize extensions from the
// genesis file contents. This is the creation call of the contract: it
// runs exactly once per instance, before any transaction is processed.
type Initializer interface {
	FromGenesis(Options, KVStore) error
}
