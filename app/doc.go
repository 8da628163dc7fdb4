/*
Package app is the host side of the engine. It routes incoming
transactions to the registered handlers and executes the payments
they return.

Handlers only compute. The Executor owns the money flow: it
collects the funds attached to a call into the contract custody
account, runs the handler, and settles every returned payment out
of the custody, all inside one cache-wrapped store that is thrown
away if any step fails.
*/
package app
