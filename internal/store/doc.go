// Package store provides file-based persistence for the wallet seed.
//
// The derivation core itself is stateless; the only thing kept on disk is
// the seed, sealed with a passphrase-derived key (scrypt +
// ChaCha20-Poly1305) and written atomically under the user's configured
// home directory. Methods are concurrency-safe via internal locking.
package store
