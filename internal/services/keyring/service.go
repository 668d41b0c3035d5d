package keyring

import (
	"xhdwallet/internal/crypto"
	"xhdwallet/internal/domain"
	"xhdwallet/internal/protocol/bip32ed25519"
)

// Service derives context-scoped keys from a fixed root node.
//
// The root is set once at construction and never mutated, so a single
// Service is safe for concurrent use. Nothing is cached or persisted;
// every call is a pure function of the root and its arguments.
type Service struct {
	root domain.ExtendedKey
}

// New returns a key service rooted at the given extended key. Construction
// is the explicit readiness step: once New returns, the service is usable
// with no further global setup.
func New(root domain.ExtendedKey) *Service { return &Service{root: root} }

// FromSeed expands raw seed bytes into the root node and returns the
// service around it.
func FromSeed(seed []byte) *Service {
	return New(bip32ed25519.RootFromSeed(seed))
}

// KeyGen returns the public key for a context, account and key index.
func (s *Service) KeyGen(
	ctx domain.KeyContext,
	account, keyIndex uint32,
	scheme domain.DerivationScheme,
) (domain.PublicKey, error) {
	path, err := domain.PathForContext(ctx, account, keyIndex)
	if err != nil {
		return domain.PublicKey{}, err
	}
	key, err := s.DerivePrivate(path, scheme)
	if err != nil {
		return domain.PublicKey{}, err
	}
	return crypto.ScalarBaseMultNoClamp(key.Scalar), nil
}

// DerivePrivate walks the full path from the private root.
func (s *Service) DerivePrivate(
	path domain.DerivationPath,
	scheme domain.DerivationScheme,
) (domain.ExtendedKey, error) {
	if len(path) == 0 {
		return domain.ExtendedKey{}, domain.ErrInvalidPath
	}
	node := s.root
	for _, index := range path {
		node = bip32ed25519.ChildPrivate(node, index, scheme)
	}
	return node, nil
}

// DerivePublic walks the path and returns the public-only projection of
// the final node.
func (s *Service) DerivePublic(
	path domain.DerivationPath,
	scheme domain.DerivationScheme,
) (domain.PublicNode, error) {
	key, err := s.DerivePrivate(path, scheme)
	if err != nil {
		return domain.PublicNode{}, err
	}
	return bip32ed25519.PublicNodeOf(key), nil
}

// Compile-time assertion that Service implements domain.KeyService.
var _ domain.KeyService = (*Service)(nil)
