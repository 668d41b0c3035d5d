package exchange

import (
	"golang.org/x/crypto/blake2b"

	"xhdwallet/internal/crypto"
	"xhdwallet/internal/domain"
	"xhdwallet/internal/util/memzero"
)

// Key agreement derives under the Peikert convention, the same default the
// rest of the wallet uses; both parties must agree on how their identity
// keys were derived for the shared point to match.
const scheme = domain.SchemePeikert

// Service derives shared secrets and directional session keys from a
// context-scoped key and a counterparty's Ed25519 public key. Both sides
// convert to Curve25519 through the birational map, so ordinary signing
// identities double as key-agreement identities.
type Service struct {
	keys domain.KeyService
}

// New returns an exchange service over the given key service.
func New(keys domain.KeyService) *Service { return &Service{keys: keys} }

// SharedSecret computes the role-oriented ECDH output:
// BLAKE2b-256(q ‖ clientCurvePub ‖ serverCurvePub), where q is the raw
// X25519 shared point and amClient fixes the orientation. Complementary
// role flags on the two sides produce the same value; the two orientations
// of one key pair never produce equal values.
func (s *Service) SharedSecret(
	ctx domain.KeyContext,
	account, keyIndex uint32,
	counterparty domain.PublicKey,
	amClient bool,
) (domain.SharedSecret, error) {
	q, local, remote, err := s.sharedPoint(ctx, account, keyIndex, counterparty)
	if err != nil {
		return domain.SharedSecret{}, err
	}
	defer memzero.Zero32(&q)

	clientPub, serverPub := orient(local, remote, amClient)

	h, err := blake2b.New256(nil)
	if err != nil {
		return domain.SharedSecret{}, err
	}
	h.Write(q[:])
	h.Write(clientPub[:])
	h.Write(serverPub[:])

	var out domain.SharedSecret
	copy(out[:], h.Sum(nil))
	return out, nil
}

// SessionKeys derives the directional pair from one shared point:
// rx ‖ tx = BLAKE2b-512(q ‖ clientCurvePub ‖ serverCurvePub), with the
// halves swapped for the server role. The client's Rx is the server's Tx
// and vice versa.
func (s *Service) SessionKeys(
	ctx domain.KeyContext,
	account, keyIndex uint32,
	counterparty domain.PublicKey,
	amClient bool,
) (domain.SessionKeys, error) {
	q, local, remote, err := s.sharedPoint(ctx, account, keyIndex, counterparty)
	if err != nil {
		return domain.SessionKeys{}, err
	}
	defer memzero.Zero32(&q)

	clientPub, serverPub := orient(local, remote, amClient)

	h, err := blake2b.New512(nil)
	if err != nil {
		return domain.SessionKeys{}, err
	}
	h.Write(q[:])
	h.Write(clientPub[:])
	h.Write(serverPub[:])
	sum := h.Sum(nil)
	defer memzero.Zero(sum)

	var keys domain.SessionKeys
	if amClient {
		copy(keys.Rx[:], sum[:32])
		copy(keys.Tx[:], sum[32:])
	} else {
		copy(keys.Tx[:], sum[:32])
		copy(keys.Rx[:], sum[32:])
	}
	return keys, nil
}

// sharedPoint derives the local key, converts both ends to Curve25519 and
// runs the Diffie-Hellman function.
func (s *Service) sharedPoint(
	ctx domain.KeyContext,
	account, keyIndex uint32,
	counterparty domain.PublicKey,
) (q, localCurvePub, remoteCurvePub [32]byte, err error) {
	path, err := domain.PathForContext(ctx, account, keyIndex)
	if err != nil {
		return q, localCurvePub, remoteCurvePub, err
	}
	key, err := s.keys.DerivePrivate(path, scheme)
	if err != nil {
		return q, localCurvePub, remoteCurvePub, err
	}

	localCurvePub, err = crypto.EdwardsToMontgomery(crypto.ScalarBaseMultNoClamp(key.Scalar))
	if err != nil {
		return q, localCurvePub, remoteCurvePub, err
	}
	remoteCurvePub, err = crypto.EdwardsToMontgomery(counterparty)
	if err != nil {
		return q, localCurvePub, remoteCurvePub, err
	}

	q, err = crypto.X25519(key.Scalar, remoteCurvePub)
	memzero.Zero32(&key.Scalar)
	memzero.Zero32(&key.Extension)
	return q, localCurvePub, remoteCurvePub, err
}

// orient returns (clientPub, serverPub) for the local role.
func orient(local, remote [32]byte, amClient bool) ([32]byte, [32]byte) {
	if amClient {
		return local, remote
	}
	return remote, local
}

// Compile-time assertion that Service implements domain.ExchangeService.
var _ domain.ExchangeService = (*Service)(nil)
