// Package keyring maps semantic key selectors (context, account, index) to
// BIP44 paths and walks the derivation engine to concrete keys.
package keyring
