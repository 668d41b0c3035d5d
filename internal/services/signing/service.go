package signing

import (
	"bytes"
	"errors"
	"fmt"

	"xhdwallet/internal/crypto"
	"xhdwallet/internal/domain"
)

var (
	// ErrDecoding is returned when the payload cannot be decoded with the
	// declared encoding.
	ErrDecoding = errors.New("payload cannot be decoded with the declared encoding")
	// ErrReservedTagPrefix is returned when the decoded payload starts with
	// a reserved protocol tag. Always fatal, regardless of the schema.
	ErrReservedTagPrefix = errors.New("payload starts with a reserved protocol tag")
	// ErrSchemaValidation is returned when the decoded payload does not
	// conform to the declared schema.
	ErrSchemaValidation = errors.New("payload does not conform to the declared schema")
)

// reservedPrefixes are the protocol domain tags a generic signing call must
// never reproduce: a signature over bytes starting with one of these would
// be accepted by a transaction or program-execution verifier.
var reservedPrefixes = [][]byte{
	[]byte("TX"),
	[]byte("MX"),
	[]byte("Program"),
	[]byte("ProgData"),
}

// Service signs schema-gated data and prefix-encoded transactions with
// context-scoped keys.
type Service struct {
	keys      domain.KeyService
	validator domain.SchemaValidator
}

// New returns a signing service over the given key service and schema
// validator.
func New(keys domain.KeyService, validator domain.SchemaValidator) *Service {
	return &Service{keys: keys, validator: validator}
}

// SignData decodes, gates and signs an arbitrary payload.
//
// The reserved-tag check runs on the decoded bytes before schema
// validation, in every path; reordering would let a schema-approved payload
// masquerade as a transaction. The signature covers the exact decoded
// bytes, not the encoded payload.
func (s *Service) SignData(
	ctx domain.KeyContext,
	account, keyIndex uint32,
	payload []byte,
	meta domain.SignMetadata,
	scheme domain.DerivationScheme,
) (domain.Signature, error) {
	decoded, err := decodePayload(payload, meta.Encoding)
	if err != nil {
		return domain.Signature{}, err
	}
	if tag, found := reservedPrefix(decoded); found {
		return domain.Signature{}, fmt.Errorf("%w: %q", ErrReservedTagPrefix, tag)
	}
	if meta.Schema != nil {
		if err := s.validator.Validate(meta.Schema, decoded); err != nil {
			return domain.Signature{}, fmt.Errorf("%w: %v", ErrSchemaValidation, err)
		}
	}
	return s.sign(ctx, account, keyIndex, decoded, scheme)
}

// SignTransaction signs a prefix-encoded transaction exactly as given. No
// tag check and no schema run here: the caller asserts the bytes already
// carry a valid transaction domain tag.
func (s *Service) SignTransaction(
	ctx domain.KeyContext,
	account, keyIndex uint32,
	tx []byte,
	scheme domain.DerivationScheme,
) (domain.Signature, error) {
	return s.sign(ctx, account, keyIndex, tx, scheme)
}

// Verify reports whether sig is a valid signature over msg by pub.
func (s *Service) Verify(sig domain.Signature, msg []byte, pub domain.PublicKey) bool {
	return crypto.Verify(sig.Slice(), msg, pub.Slice())
}

func (s *Service) sign(
	ctx domain.KeyContext,
	account, keyIndex uint32,
	msg []byte,
	scheme domain.DerivationScheme,
) (domain.Signature, error) {
	path, err := domain.PathForContext(ctx, account, keyIndex)
	if err != nil {
		return domain.Signature{}, err
	}
	key, err := s.keys.DerivePrivate(path, scheme)
	if err != nil {
		return domain.Signature{}, err
	}
	return crypto.SignWithScalar(key.Scalar, key.Extension, msg), nil
}

// reservedPrefix returns the reserved tag the decoded bytes start with.
func reservedPrefix(decoded []byte) ([]byte, bool) {
	for _, tag := range reservedPrefixes {
		if bytes.HasPrefix(decoded, tag) {
			return tag, true
		}
	}
	return nil, false
}

// Compile-time assertion that Service implements domain.SigningService.
var _ domain.SigningService = (*Service)(nil)
