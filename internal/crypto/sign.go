package crypto

import (
	"crypto/ed25519"
	"crypto/sha512"

	"filippo.io/edwards25519"

	"xhdwallet/internal/domain"
)

// SignWithScalar produces an Ed25519 signature from an expanded private
// scalar and its nonce extension. The RFC 8032 shape is kept, but the seed
// expansion is replaced by the node's derived material: the extension plays
// the role of the nonce prefix, the scalar signs directly.
func SignWithScalar(scalar, extension [32]byte, msg []byte) domain.Signature {
	s := reduce(scalar)
	pub := new(edwards25519.Point).ScalarBaseMult(s).Bytes()

	h := sha512.New()
	h.Write(extension[:])
	h.Write(msg)
	r, err := new(edwards25519.Scalar).SetUniformBytes(h.Sum(nil))
	if err != nil {
		panic("crypto: nonce reduction: " + err.Error())
	}

	R := new(edwards25519.Point).ScalarBaseMult(r).Bytes()

	h.Reset()
	h.Write(R)
	h.Write(pub)
	h.Write(msg)
	k, err := new(edwards25519.Scalar).SetUniformBytes(h.Sum(nil))
	if err != nil {
		panic("crypto: challenge reduction: " + err.Error())
	}

	S := new(edwards25519.Scalar).MultiplyAdd(k, s, r)

	var sig domain.Signature
	copy(sig[:32], R)
	copy(sig[32:], S.Bytes())
	return sig
}

// Verify reports whether sig is a valid Ed25519 signature over msg by pub.
// Wrong-length inputs verify as false rather than panicking; malformed
// same-length inputs also verify as false.
func Verify(sig, msg, pub []byte) bool {
	if len(sig) != ed25519.SignatureSize || len(pub) != ed25519.PublicKeySize {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(pub), msg, sig)
}
