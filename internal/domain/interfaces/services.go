package interfaces

import domaintypes "xhdwallet/internal/domain/types"

// KeyService derives context-scoped keys from a fixed root node.
type KeyService interface {
	// KeyGen returns the public key for a context, account and key index.
	KeyGen(
		ctx domaintypes.KeyContext,
		account, keyIndex uint32,
		scheme domaintypes.DerivationScheme,
	) (domaintypes.PublicKey, error)

	// DerivePrivate walks the path from the private root.
	DerivePrivate(
		path domaintypes.DerivationPath,
		scheme domaintypes.DerivationScheme,
	) (domaintypes.ExtendedKey, error)

	// DerivePublic walks the path and returns the public-only projection.
	DerivePublic(
		path domaintypes.DerivationPath,
		scheme domaintypes.DerivationScheme,
	) (domaintypes.PublicNode, error)
}

// SigningService signs schema-gated data and prefix-encoded transactions.
type SigningService interface {
	SignData(
		ctx domaintypes.KeyContext,
		account, keyIndex uint32,
		payload []byte,
		meta domaintypes.SignMetadata,
		scheme domaintypes.DerivationScheme,
	) (domaintypes.Signature, error)

	SignTransaction(
		ctx domaintypes.KeyContext,
		account, keyIndex uint32,
		tx []byte,
		scheme domaintypes.DerivationScheme,
	) (domaintypes.Signature, error)

	Verify(sig domaintypes.Signature, msg []byte, pub domaintypes.PublicKey) bool
}

// ExchangeService derives shared secrets and directional session keys from
// a context-scoped key and a counterparty's Ed25519 public key.
type ExchangeService interface {
	SharedSecret(
		ctx domaintypes.KeyContext,
		account, keyIndex uint32,
		counterparty domaintypes.PublicKey,
		amClient bool,
	) (domaintypes.SharedSecret, error)

	SessionKeys(
		ctx domaintypes.KeyContext,
		account, keyIndex uint32,
		counterparty domaintypes.PublicKey,
		amClient bool,
	) (domaintypes.SessionKeys, error)
}

// SchemaValidator checks a decoded JSON document against a JSON-Schema.
// Implementations are external collaborators; the signing service only
// relies on a nil error meaning "conformant".
type SchemaValidator interface {
	Validate(schema, document []byte) error
}
