package types

// PublicKey is a 32-byte Ed25519 public key.
type PublicKey [32]byte

// Slice returns the key as a []byte.
func (p PublicKey) Slice() []byte { return p[:] }

// Signature is a 64-byte Ed25519 signature (R ‖ S).
type Signature [64]byte

// Slice returns the signature as a []byte.
func (s Signature) Slice() []byte { return s[:] }

// SharedSecret is a 32-byte secret derived from a Diffie-Hellman exchange.
type SharedSecret [32]byte

// Slice returns the secret as a []byte.
func (s SharedSecret) Slice() []byte { return s[:] }

// SessionKeys is the directional secret pair derived from one shared
// Diffie-Hellman value. Rx protects traffic arriving from the counterparty,
// Tx protects traffic sent to it; one party's Rx is the other's Tx.
type SessionKeys struct {
	Rx [32]byte
	Tx [32]byte
}
