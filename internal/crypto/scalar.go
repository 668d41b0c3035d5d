package crypto

import (
	"filippo.io/edwards25519"

	"xhdwallet/internal/domain"
)

// reduce interprets b as a little-endian integer and reduces it modulo the
// Ed25519 group order. Derived scalars routinely exceed the order, so every
// point operation goes through a wide reduction first.
func reduce(b [32]byte) *edwards25519.Scalar {
	var wide [64]byte
	copy(wide[:32], b[:])
	s, err := new(edwards25519.Scalar).SetUniformBytes(wide[:])
	if err != nil {
		// SetUniformBytes only fails on a wrong-length input.
		panic("crypto: scalar wide reduction: " + err.Error())
	}
	return s
}

// ScalarBaseMultNoClamp computes k·B for the little-endian integer k
// without RFC 8032 bit clamping. This is how a derived scalar, which is not
// a seed, maps to its public key.
func ScalarBaseMultNoClamp(k [32]byte) domain.PublicKey {
	p := new(edwards25519.Point).ScalarBaseMult(reduce(k))
	var out domain.PublicKey
	copy(out[:], p.Bytes())
	return out
}

// AddPublic returns pub + k·B, the public counterpart of adding k to the
// private scalar behind pub.
func AddPublic(pub domain.PublicKey, k [32]byte) (domain.PublicKey, error) {
	p, err := new(edwards25519.Point).SetBytes(pub.Slice())
	if err != nil {
		return domain.PublicKey{}, err
	}
	q := new(edwards25519.Point).ScalarBaseMult(reduce(k))
	var out domain.PublicKey
	copy(out[:], new(edwards25519.Point).Add(p, q).Bytes())
	return out, nil
}

// AddLE adds two 32-byte little-endian integers modulo 2^256. Child-scalar
// combination is defined over plain 256-bit integers, not the group order.
func AddLE(a, b [32]byte) [32]byte {
	var out [32]byte
	var carry uint16
	for i := 0; i < 32; i++ {
		v := uint16(a[i]) + uint16(b[i]) + carry
		out[i] = byte(v)
		carry = v >> 8
	}
	return out
}

// MulByCofactor multiplies a 256-bit little-endian integer by the curve
// cofactor 8, dropping overflow past 256 bits.
func MulByCofactor(b [32]byte) [32]byte {
	var out [32]byte
	var carry byte
	for i := 0; i < 32; i++ {
		out[i] = b[i]<<3 | carry
		carry = b[i] >> 5
	}
	return out
}

// TruncateBits zeroes the top n bits of a 256-bit little-endian integer.
// The derivation schemes differ only in how many bits they clear here.
func TruncateBits(b [32]byte, n uint) [32]byte {
	out := b
	full := n / 8
	rem := n % 8
	if full > 32 {
		full = 32
	}
	for i := uint(0); i < full; i++ {
		out[31-i] = 0
	}
	if rem > 0 && full < 32 {
		out[31-full] &= byte(0xff) >> rem
	}
	return out
}
