// Package crypto wraps the low-level Edwards and Montgomery arithmetic the
// derivation engine and services are built on: wide scalar reduction,
// no-clamp base multiplication, 256-bit little-endian integer arithmetic,
// scalar-keyed Ed25519 signing, and the Ed25519→Curve25519 conversion.
package crypto
