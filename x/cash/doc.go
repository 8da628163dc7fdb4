/*
Package cash defines a simple ledger of wallets holding coins.

There is no logic in the coins (tokens), except that the balance
of any coin may not go below zero. Thus, this implementation is
referred to as cash. Simple and safe.

The host uses this ledger to track funds attached to
transactions and to settle the payments produced by handlers.
*/
package cash
