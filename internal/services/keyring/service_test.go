package keyring_test

import (
	"encoding/hex"
	"errors"
	"testing"

	"github.com/tyler-smith/go-bip39"

	"xhdwallet/internal/domain"
	"xhdwallet/internal/services/keyring"
)

const vectorMnemonic = "salon zoo engage submit smile frost later decide wing sight " +
	"chaos renew lizard rely canal coral scene hobby scare step bus leaf tobacco slice"

func vectorService(t *testing.T) *keyring.Service {
	t.Helper()
	return keyring.FromSeed(bip39.NewSeed(vectorMnemonic, ""))
}

func TestKeyGenAddressVector(t *testing.T) {
	svc := vectorService(t)

	pub, err := svc.KeyGen(domain.KeyContextAddress, 0, 0, domain.SchemePeikert)
	if err != nil {
		t.Fatalf("KeyGen: %v", err)
	}
	const want = "7bda7ac12627b2c259f1df6875d30c10b35f55b33ad2cc8ea2736eaa3ebcfab9"
	if got := hex.EncodeToString(pub.Slice()); got != want {
		t.Fatalf("KeyGen(address,0,0) = %s, want %s", got, want)
	}
}

func TestKeyGenDeterministic(t *testing.T) {
	svc := vectorService(t)

	a, err := svc.KeyGen(domain.KeyContextIdentity, 2, 7, domain.SchemeKhovratovich)
	if err != nil {
		t.Fatalf("KeyGen: %v", err)
	}
	b, err := svc.KeyGen(domain.KeyContextIdentity, 2, 7, domain.SchemeKhovratovich)
	if err != nil {
		t.Fatalf("KeyGen: %v", err)
	}
	if a != b {
		t.Fatal("same arguments produced different keys")
	}
}

func TestContextIsolation(t *testing.T) {
	svc := vectorService(t)

	addr, err := svc.KeyGen(domain.KeyContextAddress, 0, 0, domain.SchemePeikert)
	if err != nil {
		t.Fatalf("KeyGen(address): %v", err)
	}
	id, err := svc.KeyGen(domain.KeyContextIdentity, 0, 0, domain.SchemePeikert)
	if err != nil {
		t.Fatalf("KeyGen(identity): %v", err)
	}
	if addr == id {
		t.Fatal("address and identity contexts produced the same key")
	}
}

func TestDerivePrivateEmptyPath(t *testing.T) {
	svc := vectorService(t)

	if _, err := svc.DerivePrivate(nil, domain.SchemePeikert); !errors.Is(err, domain.ErrInvalidPath) {
		t.Fatalf("want ErrInvalidPath, got %v", err)
	}
}

func TestKeyGenRejectsWideIndices(t *testing.T) {
	svc := vectorService(t)

	if _, err := svc.KeyGen(domain.KeyContextAddress, domain.HardenedOffset, 0, domain.SchemePeikert); !errors.Is(err, domain.ErrInvalidPath) {
		t.Fatalf("wide account: want ErrInvalidPath, got %v", err)
	}
	if _, err := svc.KeyGen(domain.KeyContextAddress, 0, domain.HardenedOffset, domain.SchemePeikert); !errors.Is(err, domain.ErrInvalidPath) {
		t.Fatalf("wide key index: want ErrInvalidPath, got %v", err)
	}
}

func TestDerivePublicMatchesKeyGen(t *testing.T) {
	svc := vectorService(t)

	path, err := domain.PathForContext(domain.KeyContextAddress, 1, 3)
	if err != nil {
		t.Fatalf("PathForContext: %v", err)
	}
	node, err := svc.DerivePublic(path, domain.SchemePeikert)
	if err != nil {
		t.Fatalf("DerivePublic: %v", err)
	}
	pub, err := svc.KeyGen(domain.KeyContextAddress, 1, 3, domain.SchemePeikert)
	if err != nil {
		t.Fatalf("KeyGen: %v", err)
	}
	if node.PublicKey != pub {
		t.Fatal("DerivePublic and KeyGen disagree")
	}
}
