package crypto

import (
	"golang.org/x/crypto/curve25519"

	"filippo.io/edwards25519"

	"xhdwallet/internal/domain"
)

// EdwardsToMontgomery maps an Ed25519 public key to its Curve25519
// equivalent through the birational map u = (1+y)/(1-y).
func EdwardsToMontgomery(pub domain.PublicKey) ([32]byte, error) {
	p, err := new(edwards25519.Point).SetBytes(pub.Slice())
	if err != nil {
		return [32]byte{}, err
	}
	var out [32]byte
	copy(out[:], p.BytesMontgomery())
	return out, nil
}

// X25519 computes the Curve25519 Diffie-Hellman function. The scalar copy
// is clamped per RFC 7748 before multiplication; low-order peer points are
// rejected with an error.
func X25519(scalar, point [32]byte) ([32]byte, error) {
	secret, err := curve25519.X25519(scalar[:], point[:])
	if err != nil {
		return [32]byte{}, err
	}
	var out [32]byte
	copy(out[:], secret)
	return out, nil
}
