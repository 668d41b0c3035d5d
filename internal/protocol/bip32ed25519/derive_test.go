package bip32ed25519_test

import (
	"bytes"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/tyler-smith/go-bip39"

	"xhdwallet/internal/domain"
	"xhdwallet/internal/protocol/bip32ed25519"
)

const vectorMnemonic = "salon zoo engage submit smile frost later decide wing sight " +
	"chaos renew lizard rely canal coral scene hobby scare step bus leaf tobacco slice"

func vectorSeed(t *testing.T) []byte {
	t.Helper()
	if !bip39.IsMnemonicValid(vectorMnemonic) {
		t.Fatal("vector mnemonic is invalid")
	}
	return bip39.NewSeed(vectorMnemonic, "")
}

func TestRootFromSeedVector(t *testing.T) {
	root := bip32ed25519.RootFromSeed(vectorSeed(t))
	got := hex.EncodeToString(root.Bytes())

	if !strings.HasPrefix(got, "a8ba8002") {
		t.Fatalf("root prefix: got %s", got[:8])
	}
	const suffix = "09cd05796b9206ec30e142e94b790a98805bf999042b55046963174ee6cee2d0375946"
	if !strings.HasSuffix(got, suffix) {
		t.Fatalf("root suffix mismatch: got %s", got)
	}
}

func TestRootFromSeedDeterministic(t *testing.T) {
	seed := vectorSeed(t)
	a := bip32ed25519.RootFromSeed(seed)
	b := bip32ed25519.RootFromSeed(seed)
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Fatal("same seed produced different roots")
	}
}

func TestRootScalarClamped(t *testing.T) {
	root := bip32ed25519.RootFromSeed(vectorSeed(t))
	if root.Scalar[0]&0b0000_0111 != 0 {
		t.Fatalf("low bits not cleared: %08b", root.Scalar[0])
	}
	if root.Scalar[31]&0b1000_0000 != 0 || root.Scalar[31]&0b0100_0000 == 0 {
		t.Fatalf("high bits not clamped: %08b", root.Scalar[31])
	}
	if root.Scalar[31]&0b0010_0000 != 0 {
		t.Fatalf("head-room bit still set: %08b", root.Scalar[31])
	}
}

func TestPublicDerivabilityMatchesPrivate(t *testing.T) {
	root := bip32ed25519.RootFromSeed(vectorSeed(t))

	// Hardened account prefix, then soft children from the public-only
	// projection of the account node.
	account := root
	for _, idx := range []uint32{domain.Harden(44), domain.Harden(283), domain.Harden(0)} {
		account = bip32ed25519.ChildPrivate(account, idx, domain.SchemePeikert)
	}
	accountPub := bip32ed25519.PublicNodeOf(account)

	for index := uint32(0); index < 10; index++ {
		viaPrivate := bip32ed25519.PublicNodeOf(
			bip32ed25519.ChildPrivate(account, index, domain.SchemePeikert))
		viaPublic, err := bip32ed25519.ChildPublic(accountPub, index, domain.SchemePeikert)
		if err != nil {
			t.Fatalf("ChildPublic(%d): %v", index, err)
		}
		if viaPrivate.PublicKey != viaPublic.PublicKey {
			t.Fatalf("index %d: public derivation diverged from private", index)
		}
		if viaPrivate.ChainCode != viaPublic.ChainCode {
			t.Fatalf("index %d: chain codes diverged", index)
		}
	}
}

func TestChildPublicRejectsHardened(t *testing.T) {
	root := bip32ed25519.RootFromSeed(vectorSeed(t))
	node := bip32ed25519.PublicNodeOf(root)

	_, err := bip32ed25519.ChildPublic(node, domain.Harden(0), domain.SchemePeikert)
	if err != bip32ed25519.ErrPrivateKeyRequired {
		t.Fatalf("want ErrPrivateKeyRequired, got %v", err)
	}
}

func TestSchemesDiverge(t *testing.T) {
	root := bip32ed25519.RootFromSeed(vectorSeed(t))

	kh := bip32ed25519.ChildPrivate(root, domain.Harden(44), domain.SchemeKhovratovich)
	pk := bip32ed25519.ChildPrivate(root, domain.Harden(44), domain.SchemePeikert)
	if kh.Scalar == pk.Scalar {
		t.Fatal("schemes produced the same child scalar")
	}
}

func TestHardenedOpacity(t *testing.T) {
	// Walking the soft twins of a hardened path from the root's public
	// projection must not land on the true derived key.
	root := bip32ed25519.RootFromSeed(vectorSeed(t))

	truth := root
	for _, idx := range []uint32{domain.Harden(44), domain.Harden(283), domain.Harden(0), 0, 0} {
		truth = bip32ed25519.ChildPrivate(truth, idx, domain.SchemePeikert)
	}
	truePub := bip32ed25519.PublicNodeOf(truth).PublicKey

	node := bip32ed25519.PublicNodeOf(root)
	for _, idx := range []uint32{44, 283, 0, 0, 0} {
		var err error
		node, err = bip32ed25519.ChildPublic(node, idx, domain.SchemePeikert)
		if err != nil {
			t.Fatalf("ChildPublic(%d): %v", idx, err)
		}
	}

	if node.PublicKey == truePub {
		t.Fatal("soft public walk reproduced a hardened derivation")
	}
}
