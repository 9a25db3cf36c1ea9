// Package ledgerapi holds the generic pieces every ledger state relies on:
// composite keys, the class-tagged envelope used for persistence, the
// StateList collection over the world state, and coded errors.
package ledgerapi
