// Package exchange turns context-scoped Ed25519 keys into Curve25519
// Diffie-Hellman secrets and directional session keys.
package exchange
