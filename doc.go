/*
Package spread defines the common interfaces that tie the disbursement
engine together: messages and transactions, handlers, the key-value
store family, and the payment instructions that handlers return to the
host platform for execution.

The actual business logic lives in the extensions. x/disperse implements
the contract operations (splitting an inbound payment between accounts,
admin controlled withdrawals), x/cash keeps the custody ledger and app
provides the host side dispatch that executes payments atomically.

We pass context through context.Context between the host, middleware and
handlers. For every value XYZ of type T stored in a Context there are two
functions:

  WithXYZ(Context, T) Context
  GetXYZ(Context) (val T, ok bool)
*/
package spread
