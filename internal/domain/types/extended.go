package types

import "fmt"

// ExtendedKeySize is the flattened size of a private derivation node.
const ExtendedKeySize = 96

// ExtendedKey is a private derivation node: the signing scalar, the nonce
// extension that feeds deterministic nonce generation, and the chain code.
// It is a pure function of (seed, path) and is never mutated after creation.
type ExtendedKey struct {
	Scalar    [32]byte
	Extension [32]byte
	ChainCode [32]byte
}

// Bytes flattens the node to scalar ‖ extension ‖ chainCode.
func (k ExtendedKey) Bytes() []byte {
	out := make([]byte, 0, ExtendedKeySize)
	out = append(out, k.Scalar[:]...)
	out = append(out, k.Extension[:]...)
	out = append(out, k.ChainCode[:]...)
	return out
}

// ExtendedKeyFromBytes rebuilds a node from its 96-byte flattened form.
func ExtendedKeyFromBytes(b []byte) (ExtendedKey, error) {
	if len(b) != ExtendedKeySize {
		return ExtendedKey{}, fmt.Errorf("extended key: want %d bytes, got %d", ExtendedKeySize, len(b))
	}
	var k ExtendedKey
	copy(k.Scalar[:], b[:32])
	copy(k.Extension[:], b[32:64])
	copy(k.ChainCode[:], b[64:])
	return k, nil
}

// PublicNode is the public-only projection of a derivation node. It can
// derive soft children but carries no signing capability; hardened
// derivation is not defined on it.
type PublicNode struct {
	PublicKey PublicKey
	ChainCode [32]byte
}
