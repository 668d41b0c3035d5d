// Package commands defines the xhdwallet CLI and wires dependencies for subcommands.
//
// Commands
//
//   - init           Generate or import the wallet seed
//   - keygen         Derive a context-scoped public key
//   - sign-data      Sign an arbitrary payload after tag and schema checks
//   - sign-tx        Sign a prefix-encoded transaction
//   - verify         Verify an Ed25519 signature
//   - shared-secret  Derive the ECDH shared secret with a counterparty
//   - session-keys   Derive directional session keys with a counterparty
//
// # Implementation
//
// The root command resolves the config directory before any subcommand runs.
// Commands that touch keys load the encrypted seed with the passphrase and
// build the service graph on demand; init only writes the seed.
package commands
