// Package signing produces Ed25519 signatures with context-scoped keys.
//
// Arbitrary data goes through decode → reserved-tag rejection → schema
// validation → signature, in that order; the tag check is a security
// invariant, not an optimization, and always precedes the schema.
// Transactions are signed as given.
package signing
