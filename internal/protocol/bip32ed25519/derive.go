package bip32ed25519

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/binary"
	"errors"

	"xhdwallet/internal/crypto"
	"xhdwallet/internal/domain"
	"xhdwallet/internal/util/memzero"
)

// ErrPrivateKeyRequired is returned when a hardened child is requested from
// a public-only node. Hardened derivation is defined only on private
// parents; failing loudly here is deliberate, a silently wrong child key is
// far worse than an error.
var ErrPrivateKeyRequired = errors.New("hardened derivation requires the private parent")

// HMAC domain tags for the expansion steps.
const (
	tagHardenedZ     = 0x00
	tagHardenedChain = 0x01
	tagSoftZ         = 0x02
	tagSoftChain     = 0x03

	tagRootChain = 0x01
)

// RootFromSeed expands a seed into the 96-byte root node.
//
// The private halves come from SHA-512 of the seed, re-expanded with
// HMAC-SHA-512(kL, kR) until the third-highest bit of kL is clear; that
// head-room keeps later child-scalar additions from carrying into the
// clamped top bits. kL is then clamped as an Ed25519 scalar and the chain
// code is SHA-256(0x01 ‖ seed). Same seed, same root, always.
func RootFromSeed(seed []byte) domain.ExtendedKey {
	sum := sha512.Sum512(seed)
	for sum[31]&0b0010_0000 != 0 {
		mac := hmac.New(sha512.New, sum[:32])
		mac.Write(sum[32:])
		copy(sum[:], mac.Sum(nil))
	}
	sum[0] &= 0b1111_1000
	sum[31] &= 0b0111_1111
	sum[31] |= 0b0100_0000

	h := sha256.New()
	h.Write([]byte{tagRootChain})
	h.Write(seed)
	chain := h.Sum(nil)

	var root domain.ExtendedKey
	copy(root.Scalar[:], sum[:32])
	copy(root.Extension[:], sum[32:])
	copy(root.ChainCode[:], chain)
	memzero.Zero64(&sum)
	return root
}

// ChildPrivate derives the child node at index from a private parent.
//
// Hardened indices mix the parent's private halves into the expansion; soft
// indices use the parent public key instead, which is exactly what makes
// the matching public-only derivation possible. The child scalar is
// kL + 8·trunc(zL) and the child extension kR + zR, both over plain 256-bit
// little-endian integers. The scheme fixes how many top bits of zL are
// cleared before the addition; callers must use one scheme for a whole walk.
func ChildPrivate(parent domain.ExtendedKey, index uint32, scheme domain.DerivationScheme) domain.ExtendedKey {
	var z, chain [64]byte
	if domain.Hardened(index) {
		priv := make([]byte, 0, 64)
		priv = append(priv, parent.Scalar[:]...)
		priv = append(priv, parent.Extension[:]...)
		z = expand(parent.ChainCode, tagHardenedZ, priv, index)
		chain = expand(parent.ChainCode, tagHardenedChain, priv, index)
		memzero.Zero(priv)
	} else {
		pub := crypto.ScalarBaseMultNoClamp(parent.Scalar)
		z = expand(parent.ChainCode, tagSoftZ, pub.Slice(), index)
		chain = expand(parent.ChainCode, tagSoftChain, pub.Slice(), index)
	}

	var zL, zR [32]byte
	copy(zL[:], z[:32])
	copy(zR[:], z[32:])
	zL = crypto.TruncateBits(zL, scheme.Bits())

	var child domain.ExtendedKey
	child.Scalar = crypto.AddLE(parent.Scalar, crypto.MulByCofactor(zL))
	child.Extension = crypto.AddLE(parent.Extension, zR)
	copy(child.ChainCode[:], chain[32:])

	memzero.Zero64(&z)
	memzero.Zero32(&zL)
	memzero.Zero32(&zR)
	return child
}

// ChildPublic derives a soft child from a public-only parent:
// pk' = pk + (8·trunc(zL))·B. For every soft index this equals the public
// projection of the corresponding private child. A hardened index cannot be
// served without the private parent and returns ErrPrivateKeyRequired.
func ChildPublic(parent domain.PublicNode, index uint32, scheme domain.DerivationScheme) (domain.PublicNode, error) {
	if domain.Hardened(index) {
		return domain.PublicNode{}, ErrPrivateKeyRequired
	}

	z := expand(parent.ChainCode, tagSoftZ, parent.PublicKey.Slice(), index)
	chain := expand(parent.ChainCode, tagSoftChain, parent.PublicKey.Slice(), index)

	var zL [32]byte
	copy(zL[:], z[:32])
	zL = crypto.TruncateBits(zL, scheme.Bits())

	pub, err := crypto.AddPublic(parent.PublicKey, crypto.MulByCofactor(zL))
	if err != nil {
		return domain.PublicNode{}, err
	}

	var child domain.PublicNode
	child.PublicKey = pub
	copy(child.ChainCode[:], chain[32:])
	return child, nil
}

// PublicNodeOf projects a private node to its public-only form.
func PublicNodeOf(key domain.ExtendedKey) domain.PublicNode {
	return domain.PublicNode{
		PublicKey: crypto.ScalarBaseMultNoClamp(key.Scalar),
		ChainCode: key.ChainCode,
	}
}

// expand computes HMAC-SHA-512(chainCode, tag ‖ data ‖ le32(index)).
func expand(chainCode [32]byte, tag byte, data []byte, index uint32) [64]byte {
	mac := hmac.New(sha512.New, chainCode[:])
	mac.Write([]byte{tag})
	mac.Write(data)
	var le [4]byte
	binary.LittleEndian.PutUint32(le[:], index)
	mac.Write(le[:])

	var out [64]byte
	copy(out[:], mac.Sum(nil))
	return out
}
