/*
Package disperse implements a fund-disbursement engine with a
single-admin authority.

Anyone may split a payment they attach to a call into transfers
to a list of recipients, either with itemized amounts or one
uniform amount per recipient. Whatever is left over after the
split is returned to the caller in the same call. Amounts are
validated against the attached funds before any transfer is
produced, so a call either disburses exactly what was supplied
or has no effect at all.

Funds kept in the contract custody from previous calls can only
be moved by the admin, a single account recorded at genesis.
The admin can also hand the privilege over to another account.

Handlers do not move money themselves. They return an ordered
list of payments which the host executes atomically against the
cash ledger.
*/
package disperse
