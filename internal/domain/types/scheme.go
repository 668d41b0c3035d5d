package types

// DerivationScheme selects how many high bits of each derived zL are
// zeroed before the child-scalar addition. The two conventions produce
// different keys for the same path and must never be mixed within one
// derivation walk.
type DerivationScheme int

const (
	// SchemeKhovratovich zeroes 32 bits, as in the original BIP32-Ed25519
	// paper. Conservative head-room; supports deeper trees.
	SchemeKhovratovich DerivationScheme = 32
	// SchemePeikert zeroes 9 bits, per Peikert's amendment. Tighter bound
	// on scalar growth with larger per-level entropy.
	SchemePeikert DerivationScheme = 9
)

// Bits returns the number of high bits zeroed from zL.
func (s DerivationScheme) Bits() uint { return uint(s) }

// String returns the convention name.
func (s DerivationScheme) String() string {
	switch s {
	case SchemeKhovratovich:
		return "khovratovich"
	case SchemePeikert:
		return "peikert"
	default:
		return "scheme(?)"
	}
}
