// Package bip32ed25519 implements hierarchical-deterministic key derivation
// over the Ed25519 non-linear keyspace.
//
// # Overview
//
// A 96-byte extended key {scalar ‖ extension ‖ chainCode} is derived from a
// seed and then walked down a path of child indices. Two kinds of step
// exist:
//   - Hardened (index ≥ 2^31): requires the private parent. The expansion
//     mixes the parent's private halves, so the child reveals nothing about
//     siblings even if its own material leaks.
//   - Soft (index < 2^31): the expansion uses only the parent public key
//     and chain code. A watch-only holder of {publicKey, chainCode} can
//     derive the same child public keys that the private walk would yield.
//
// # Schemes
//
// Two conventions control how many top bits of each derived zL are cleared
// before the child scalar kL + 8·zL is formed: Khovratovich (32 bits, the
// original paper) and Peikert (9 bits). The outputs are not interchangeable
// and a single walk must never mix them.
//
// # Errors
//
// ErrPrivateKeyRequired is returned when a hardened child is requested from
// a public-only node. Derivation itself never fails: every (seed, path,
// scheme) triple maps to exactly one key.
//
// # Security notes
//
// The root expansion loops until the third-highest scalar bit is clear,
// leaving head-room so child additions cannot carry into the clamped bits.
// Intermediate expansion outputs are zeroized before returning.
package bip32ed25519
