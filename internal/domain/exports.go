package domain

import (
	interfaces "xhdwallet/internal/domain/interfaces"
	types "xhdwallet/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	PublicKey        = types.PublicKey
	Signature        = types.Signature
	SharedSecret     = types.SharedSecret
	SessionKeys      = types.SessionKeys
	ExtendedKey      = types.ExtendedKey
	PublicNode       = types.PublicNode
	DerivationPath   = types.DerivationPath
	KeyContext       = types.KeyContext
	DerivationScheme = types.DerivationScheme
	Encoding         = types.Encoding
	SignMetadata     = types.SignMetadata
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	KeyService      = interfaces.KeyService
	SigningService  = interfaces.SigningService
	ExchangeService = interfaces.ExchangeService
	SchemaValidator = interfaces.SchemaValidator
	SeedStore       = interfaces.SeedStore
)

// Constant re-exports.
const (
	ExtendedKeySize = types.ExtendedKeySize
	HardenedOffset  = types.HardenedOffset

	KeyContextAddress  = types.KeyContextAddress
	KeyContextIdentity = types.KeyContextIdentity

	SchemeKhovratovich = types.SchemeKhovratovich
	SchemePeikert      = types.SchemePeikert

	EncodingNone    = types.EncodingNone
	EncodingBase64  = types.EncodingBase64
	EncodingMsgpack = types.EncodingMsgpack
)

// Error re-exports.
var (
	ErrInvalidPath    = types.ErrInvalidPath
	ErrUnknownContext = types.ErrUnknownContext
)

// Harden tags a 31-bit index as hardened.
func Harden(i uint32) uint32 { return types.Harden(i) }

// Hardened reports whether the index carries the hardened bit.
func Hardened(i uint32) bool { return types.Hardened(i) }

// ParsePath parses apostrophe notation such as "44'/283'/0'/0/0".
func ParsePath(s string) (DerivationPath, error) { return types.ParsePath(s) }

// PathForContext returns the fixed five-level BIP44 path for a context.
func PathForContext(ctx KeyContext, account, keyIndex uint32) (DerivationPath, error) {
	return types.PathForContext(ctx, account, keyIndex)
}

// ExtendedKeyFromBytes rebuilds a node from its 96-byte flattened form.
func ExtendedKeyFromBytes(b []byte) (ExtendedKey, error) {
	return types.ExtendedKeyFromBytes(b)
}
