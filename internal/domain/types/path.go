package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// HardenedOffset marks a derivation index as hardened (the BIP44
// apostrophe). Indices below it are soft.
const HardenedOffset uint32 = 1 << 31

// DerivationPath is an ordered list of child indices. Entries at or above
// HardenedOffset are hardened levels.
type DerivationPath []uint32

// Harden tags a 31-bit index as hardened.
func Harden(i uint32) uint32 { return i | HardenedOffset }

// Hardened reports whether the index carries the hardened bit.
func Hardened(i uint32) bool { return i >= HardenedOffset }

// KeyContext selects the semantic derivation subtree for a key. Distinct
// contexts never share a subtree, so keys derived for one use cannot
// collide with another.
type KeyContext int

const (
	// KeyContextAddress scopes account address keys: 44'/283'/account'/0/index.
	KeyContextAddress KeyContext = iota
	// KeyContextIdentity scopes identity keys: 44'/0'/account'/0/index.
	KeyContextIdentity
)

// String returns the lower-case context name.
func (c KeyContext) String() string {
	switch c {
	case KeyContextAddress:
		return "address"
	case KeyContextIdentity:
		return "identity"
	default:
		return fmt.Sprintf("context(%d)", int(c))
	}
}

// BIP44 path constants.
const (
	purposeBIP44     = 44
	coinTypeAlgorand = 283
	coinTypeIdentity = 0
)

var (
	// ErrInvalidPath is returned for malformed paths or out-of-range levels.
	ErrInvalidPath = errors.New("invalid derivation path")
	// ErrUnknownContext is returned for a context outside the enum.
	ErrUnknownContext = errors.New("unknown key context")
)

// PathForContext returns the five-level BIP44 path for a context: the
// first three levels hardened, the last two soft.
func PathForContext(ctx KeyContext, account, keyIndex uint32) (DerivationPath, error) {
	if account >= HardenedOffset || keyIndex >= HardenedOffset {
		return nil, fmt.Errorf("%w: account and key index must fit 31 bits", ErrInvalidPath)
	}
	var coin uint32
	switch ctx {
	case KeyContextAddress:
		coin = coinTypeAlgorand
	case KeyContextIdentity:
		coin = coinTypeIdentity
	default:
		return nil, ErrUnknownContext
	}
	return DerivationPath{
		Harden(purposeBIP44),
		Harden(coin),
		Harden(account),
		0,
		keyIndex,
	}, nil
}

// ParsePath parses apostrophe notation such as "44'/283'/0'/0/0".
// A leading "m/" is accepted and ignored.
func ParsePath(s string) (DerivationPath, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "m/")
	if s == "" {
		return nil, ErrInvalidPath
	}
	levels := strings.Split(s, "/")
	path := make(DerivationPath, 0, len(levels))
	for _, level := range levels {
		hardened := strings.HasSuffix(level, "'")
		level = strings.TrimSuffix(level, "'")
		n, err := strconv.ParseUint(level, 10, 32)
		if err != nil || uint32(n) >= HardenedOffset {
			return nil, fmt.Errorf("%w: level %q", ErrInvalidPath, level)
		}
		idx := uint32(n)
		if hardened {
			idx = Harden(idx)
		}
		path = append(path, idx)
	}
	return path, nil
}

// String renders the path in apostrophe notation.
func (p DerivationPath) String() string {
	var b strings.Builder
	for i, idx := range p {
		if i > 0 {
			b.WriteByte('/')
		}
		if Hardened(idx) {
			fmt.Fprintf(&b, "%d'", idx&^HardenedOffset)
		} else {
			fmt.Fprintf(&b, "%d", idx)
		}
	}
	return b.String()
}
