package exchange_test

import (
	"testing"

	"github.com/tyler-smith/go-bip39"

	"xhdwallet/internal/domain"
	"xhdwallet/internal/services/exchange"
	"xhdwallet/internal/services/keyring"
)

const (
	mnemonicA = "salon zoo engage submit smile frost later decide wing sight " +
		"chaos renew lizard rely canal coral scene hobby scare step bus leaf tobacco slice"
	mnemonicB = "legal winner thank year wave sausage worth useful legal winner thank year " +
		"wave sausage worth useful legal winner thank year wave sausage worth title"
)

// twoParties builds independent wallets A and B with each other's identity
// public keys at (0,0). Key agreement derives under Peikert, so the
// exchanged public keys must too.
func twoParties(t *testing.T) (svcA, svcB *exchange.Service, pubA, pubB domain.PublicKey) {
	t.Helper()

	keysA := keyring.FromSeed(bip39.NewSeed(mnemonicA, ""))
	keysB := keyring.FromSeed(bip39.NewSeed(mnemonicB, ""))

	var err error
	pubA, err = keysA.KeyGen(domain.KeyContextIdentity, 0, 0, domain.SchemePeikert)
	if err != nil {
		t.Fatalf("KeyGen(A): %v", err)
	}
	pubB, err = keysB.KeyGen(domain.KeyContextIdentity, 0, 0, domain.SchemePeikert)
	if err != nil {
		t.Fatalf("KeyGen(B): %v", err)
	}
	return exchange.New(keysA), exchange.New(keysB), pubA, pubB
}

func TestSharedSecretSymmetry(t *testing.T) {
	svcA, svcB, pubA, pubB := twoParties(t)

	aAsClient, err := svcA.SharedSecret(domain.KeyContextIdentity, 0, 0, pubB, true)
	if err != nil {
		t.Fatalf("SharedSecret(A as client): %v", err)
	}
	bAsServer, err := svcB.SharedSecret(domain.KeyContextIdentity, 0, 0, pubA, false)
	if err != nil {
		t.Fatalf("SharedSecret(B as server): %v", err)
	}
	if aAsClient != bAsServer {
		t.Fatal("complementary roles disagree on the shared secret")
	}

	aAsServer, err := svcA.SharedSecret(domain.KeyContextIdentity, 0, 0, pubB, false)
	if err != nil {
		t.Fatalf("SharedSecret(A as server): %v", err)
	}
	bAsClient, err := svcB.SharedSecret(domain.KeyContextIdentity, 0, 0, pubA, true)
	if err != nil {
		t.Fatalf("SharedSecret(B as client): %v", err)
	}
	if aAsServer != bAsClient {
		t.Fatal("complementary roles disagree on the shared secret (swapped)")
	}

	if aAsClient == aAsServer {
		t.Fatal("the two orientations of one pair produced the same secret")
	}
}

func TestSessionKeysCrossover(t *testing.T) {
	svcA, svcB, pubA, pubB := twoParties(t)

	client, err := svcA.SessionKeys(domain.KeyContextIdentity, 0, 0, pubB, true)
	if err != nil {
		t.Fatalf("SessionKeys(client): %v", err)
	}
	server, err := svcB.SessionKeys(domain.KeyContextIdentity, 0, 0, pubA, false)
	if err != nil {
		t.Fatalf("SessionKeys(server): %v", err)
	}

	if client.Rx != server.Tx {
		t.Fatal("client Rx != server Tx")
	}
	if client.Tx != server.Rx {
		t.Fatal("client Tx != server Rx")
	}
	if client.Rx == client.Tx {
		t.Fatal("directional keys are equal")
	}
}

func TestSharedSecretDistinctCounterparties(t *testing.T) {
	keysA := keyring.FromSeed(bip39.NewSeed(mnemonicA, ""))
	keysB := keyring.FromSeed(bip39.NewSeed(mnemonicB, ""))
	svcA := exchange.New(keysA)

	pubB0, err := keysB.KeyGen(domain.KeyContextIdentity, 0, 0, domain.SchemePeikert)
	if err != nil {
		t.Fatalf("KeyGen(B,0): %v", err)
	}
	pubB1, err := keysB.KeyGen(domain.KeyContextIdentity, 0, 1, domain.SchemePeikert)
	if err != nil {
		t.Fatalf("KeyGen(B,1): %v", err)
	}

	s0, err := svcA.SharedSecret(domain.KeyContextIdentity, 0, 0, pubB0, true)
	if err != nil {
		t.Fatalf("SharedSecret(B,0): %v", err)
	}
	s1, err := svcA.SharedSecret(domain.KeyContextIdentity, 0, 0, pubB1, true)
	if err != nil {
		t.Fatalf("SharedSecret(B,1): %v", err)
	}
	if s0 == s1 {
		t.Fatal("different counterparty keys produced the same secret")
	}
}
